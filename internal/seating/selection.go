package seating

// Selection tracks the stand, tier and section being edited. An empty id means
// nothing is selected at that level. After Repair, a non-empty TierID belongs
// to StandID and a non-empty SectionID belongs to TierID.
type Selection struct {
	StandID   string `json:"standId"`
	TierID    string `json:"tierId"`
	SectionID string `json:"sectionId"`
}

// Repair revalidates the selection against s. A stale stand falls back to
// the first stand, a stale tier to the stand's first tier and a stale section
// to the tier's first section; every reset cascades downwards. Empty levels
// are filled the same way so the builder always has a focus when one exists.
func (sel Selection) Repair(s *Stadium) Selection {
	st, ok := s.FindStand(sel.StandID)
	if !ok {
		return firstSelection(s)
	}
	i := st.tierIndex(sel.TierID)
	if i < 0 {
		return drillStand(st)
	}
	t := st.Tiers[i]
	if t.sectionIndex(sel.SectionID) < 0 {
		return drillTier(st.ID, t)
	}
	return sel
}

// SelectStand focuses a stand and drills down to its first tier and section.
// Unknown ids leave the selection as it was.
func (sel Selection) SelectStand(s *Stadium, standID string) (Selection, bool) {
	st, ok := s.FindStand(standID)
	if !ok {
		return sel, false
	}
	return drillStand(st), true
}

func (sel Selection) SelectTier(s *Stadium, standID, tierID string) (Selection, bool) {
	t, ok := s.FindTier(standID, tierID)
	if !ok {
		return sel, false
	}
	return drillTier(standID, t), true
}

func (sel Selection) SelectSection(s *Stadium, standID, tierID, sectionID string) (Selection, bool) {
	if _, ok := s.FindSection(standID, tierID, sectionID); !ok {
		return sel, false
	}
	return Selection{StandID: standID, TierID: tierID, SectionID: sectionID}, true
}

func firstSelection(s *Stadium) Selection {
	if s == nil || len(s.Stands) == 0 {
		return Selection{}
	}
	return drillStand(s.Stands[0])
}

func drillStand(st Stand) Selection {
	if len(st.Tiers) == 0 {
		return Selection{StandID: st.ID}
	}
	return drillTier(st.ID, st.Tiers[0])
}

func drillTier(standID string, t Tier) Selection {
	sel := Selection{StandID: standID, TierID: t.ID}
	if len(t.Sections) > 0 {
		sel.SectionID = t.Sections[0].ID
	}
	return sel
}
