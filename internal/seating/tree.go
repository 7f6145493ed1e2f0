package seating

import "fmt"

// Path locates a node by sibling indexes. Indexes below the node's own level
// are -1.
type Path struct {
	Kind       NodeKind
	ID         string
	Stand      int
	Tier       int
	Section    int
	Row        int
	SeatNumber int
}

// FindStand returns the stand with id. Stale ids yield ok == false.
func (s *Stadium) FindStand(id string) (Stand, bool) {
	if s == nil {
		return Stand{}, false
	}
	if i := s.standIndex(id); i >= 0 {
		return s.Stands[i], true
	}
	return Stand{}, false
}

func (s *Stadium) FindTier(standID, tierID string) (Tier, bool) {
	st, ok := s.FindStand(standID)
	if !ok {
		return Tier{}, false
	}
	if i := st.tierIndex(tierID); i >= 0 {
		return st.Tiers[i], true
	}
	return Tier{}, false
}

func (s *Stadium) FindSection(standID, tierID, sectionID string) (Section, bool) {
	t, ok := s.FindTier(standID, tierID)
	if !ok {
		return Section{}, false
	}
	if i := t.sectionIndex(sectionID); i >= 0 {
		return t.Sections[i], true
	}
	return Section{}, false
}

func (s *Stadium) FindRow(standID, tierID, sectionID, rowID string) (Row, bool) {
	sec, ok := s.FindSection(standID, tierID, sectionID)
	if !ok {
		return Row{}, false
	}
	if i := sec.rowIndex(rowID); i >= 0 {
		return sec.Rows[i], true
	}
	return Row{}, false
}

// Locate resolves any node id, including derived seat ids, to its path.
func (s *Stadium) Locate(id string) (Path, bool) {
	if s == nil || id == "" {
		return Path{}, false
	}
	if id == s.ID {
		return Path{Kind: KindStadium, ID: id, Stand: -1, Tier: -1, Section: -1, Row: -1}, true
	}
	for si, st := range s.Stands {
		if st.ID == id {
			return Path{Kind: KindStand, ID: id, Stand: si, Tier: -1, Section: -1, Row: -1}, true
		}
		for ti, t := range st.Tiers {
			if t.ID == id {
				return Path{Kind: KindTier, ID: id, Stand: si, Tier: ti, Section: -1, Row: -1}, true
			}
			for ci, sec := range t.Sections {
				if sec.ID == id {
					return Path{Kind: KindSection, ID: id, Stand: si, Tier: ti, Section: ci, Row: -1}, true
				}
				for ri, r := range sec.Rows {
					if r.ID == id {
						return Path{Kind: KindRow, ID: id, Stand: si, Tier: ti, Section: ci, Row: ri}, true
					}
				}
			}
		}
	}

	rowID, number, err := ParseSeatID(id)
	if err != nil {
		return Path{}, false
	}
	p, ok := s.Locate(rowID)
	if !ok || p.Kind != KindRow {
		return Path{}, false
	}
	if number > s.Stands[p.Stand].Tiers[p.Tier].Sections[p.Section].Rows[p.Row].SeatCount {
		return Path{}, false
	}
	p.Kind = KindSeat
	p.ID = id
	p.SeatNumber = number
	return p, true
}

// Contains reports whether any structural node carries id.
func (s *Stadium) Contains(id string) bool {
	p, ok := s.Locate(id)
	return ok && p.Kind != KindSeat
}

func (s *Stadium) standAt(p Path) *Stand {
	return &s.Stands[p.Stand]
}

func (s *Stadium) tierAt(p Path) *Tier {
	return &s.Stands[p.Stand].Tiers[p.Tier]
}

func (s *Stadium) sectionAt(p Path) *Section {
	return &s.Stands[p.Stand].Tiers[p.Tier].Sections[p.Section]
}

func (s *Stadium) rowAt(p Path) *Row {
	return &s.Stands[p.Stand].Tiers[p.Tier].Sections[p.Section].Rows[p.Row]
}

func (s *Stadium) standIndex(id string) int {
	for i := range s.Stands {
		if s.Stands[i].ID == id {
			return i
		}
	}
	return -1
}

func (st *Stand) tierIndex(id string) int {
	for i := range st.Tiers {
		if st.Tiers[i].ID == id {
			return i
		}
	}
	return -1
}

func (t *Tier) sectionIndex(id string) int {
	for i := range t.Sections {
		if t.Sections[i].ID == id {
			return i
		}
	}
	return -1
}

func (sec *Section) rowIndex(id string) int {
	for i := range sec.Rows {
		if sec.Rows[i].ID == id {
			return i
		}
	}
	return -1
}

// resolve walks ids from the stand down and returns the path to the last one.
// A missing id that exists elsewhere in the tree is a structural violation;
// one that exists nowhere is not found.
func (s *Stadium) resolve(ids ...string) (Path, error) {
	p := Path{Stand: -1, Tier: -1, Section: -1, Row: -1}
	kinds := []NodeKind{KindStand, KindTier, KindSection, KindRow}
	for depth, id := range ids {
		var idx int
		switch depth {
		case 0:
			idx = s.standIndex(id)
			p.Stand = idx
		case 1:
			idx = s.standAt(p).tierIndex(id)
			p.Tier = idx
		case 2:
			idx = s.tierAt(p).sectionIndex(id)
			p.Section = idx
		case 3:
			idx = s.sectionAt(p).rowIndex(id)
			p.Row = idx
		}
		if idx < 0 {
			if depth > 0 && s.Contains(id) {
				return Path{}, fmt.Errorf("%w: %s %q is not under %s %q", ErrStructuralViolation, kinds[depth], id, kinds[depth-1], ids[depth-1])
			}
			return Path{}, fmt.Errorf("%w: %s %q", ErrNotFound, kinds[depth], id)
		}
		p.Kind = kinds[depth]
		p.ID = id
	}
	return p, nil
}

// Path copying: each helper copies the slice on the way down so the previous
// tree keeps its own backing arrays.

func cloneSlice[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func (s *Stadium) withStands(fn func(stands []Stand) []Stand) *Stadium {
	out := *s
	out.Stands = fn(cloneSlice(s.Stands))
	return &out
}

func (s *Stadium) withStand(p Path, fn func(st *Stand)) *Stadium {
	return s.withStands(func(stands []Stand) []Stand {
		fn(&stands[p.Stand])
		return stands
	})
}

func (s *Stadium) withTier(p Path, fn func(t *Tier)) *Stadium {
	return s.withStand(p, func(st *Stand) {
		st.Tiers = cloneSlice(st.Tiers)
		fn(&st.Tiers[p.Tier])
	})
}

func (s *Stadium) withSection(p Path, fn func(sec *Section)) *Stadium {
	return s.withTier(p, func(t *Tier) {
		t.Sections = cloneSlice(t.Sections)
		fn(&t.Sections[p.Section])
	})
}

func (s *Stadium) withRow(p Path, fn func(r *Row)) *Stadium {
	return s.withSection(p, func(sec *Section) {
		sec.Rows = cloneSlice(sec.Rows)
		fn(&sec.Rows[p.Row])
	})
}
