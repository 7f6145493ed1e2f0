package seating

// Mutation is one Editor call bound to its arguments.
type Mutation func(e *Editor, s *Stadium) (*Stadium, error)

// Session is one editor's working copy of a layout: the current tree, the
// selection, and a revision counter bumped by every committed mutation.
type Session struct {
	ID        string    `json:"id"`
	LayoutID  string    `json:"layoutId"`
	Stadium   *Stadium  `json:"stadium"`
	Selection Selection `json:"selection"`
	Revision  int       `json:"revision"`
	Dirty     bool      `json:"dirty"`
}

func NewSession(id, layoutID string, s *Stadium) *Session {
	return &Session{
		ID:        id,
		LayoutID:  layoutID,
		Stadium:   s,
		Selection: Selection{}.Repair(s),
	}
}

// Apply runs m against the current tree and then repairs the selection
// against the tree m produced. No-op and rejected mutations leave the tree as
// it was but still return their error.
func (ss *Session) Apply(e *Editor, m Mutation) error {
	next, err := m(e, ss.Stadium)
	if err == nil && next != nil {
		ss.Stadium = next
		ss.Revision++
		ss.Dirty = true
	}
	ss.Selection = ss.Selection.Repair(ss.Stadium)
	return err
}

// QuickAddStand adds a populated stand and moves the selection onto it.
func (ss *Session) QuickAddStand(e *Editor, name string) (QuickAdded, error) {
	next, added, err := e.QuickAddStand(ss.Stadium, name)
	if err != nil {
		return QuickAdded{}, err
	}
	ss.Stadium = next
	ss.Revision++
	ss.Dirty = true
	ss.Selection = Selection{StandID: added.StandID, TierID: added.TierID, SectionID: added.SectionID}.Repair(next)
	return added, nil
}

func (ss *Session) SelectStand(standID string) bool {
	sel, ok := ss.Selection.SelectStand(ss.Stadium, standID)
	ss.Selection = sel.Repair(ss.Stadium)
	return ok
}

func (ss *Session) SelectTier(standID, tierID string) bool {
	sel, ok := ss.Selection.SelectTier(ss.Stadium, standID, tierID)
	ss.Selection = sel.Repair(ss.Stadium)
	return ok
}

func (ss *Session) SelectSection(standID, tierID, sectionID string) bool {
	sel, ok := ss.Selection.SelectSection(ss.Stadium, standID, tierID, sectionID)
	ss.Selection = sel.Repair(ss.Stadium)
	return ok
}

// MarkSaved clears the dirty flag after the tree was persisted.
func (ss *Session) MarkSaved() {
	ss.Dirty = false
}
