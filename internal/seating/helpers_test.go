package seating

import (
	"fmt"
	"io"
	"testing"

	"venuebuilder/pkg/logger"
)

type seqIDs struct{ n int }

func (g *seqIDs) NewID(kind NodeKind) string {
	g.n++
	return fmt.Sprintf("%s-%d", kind, g.n)
}

func newTestEditor() *Editor {
	return NewEditor(
		WithIDGenerator(&seqIDs{}),
		WithLogger(logger.NewWithLevel("error", io.Discard)),
	)
}

// buildStand adds a stand with tiers × sections × rows, each row holding seats.
func buildStand(t *testing.T, e *Editor, s *Stadium, name string, tiers, sections, rows, seats int) (*Stadium, string) {
	t.Helper()
	s, standID, err := e.AddStand(s, name)
	if err != nil {
		t.Fatalf("AddStand: %v", err)
	}
	for i := 0; i < tiers; i++ {
		var tierID string
		s, tierID, err = e.AddTier(s, standID, "")
		if err != nil {
			t.Fatalf("AddTier: %v", err)
		}
		for j := 0; j < sections; j++ {
			var sectionID string
			s, sectionID, err = e.AddSection(s, standID, tierID, "")
			if err != nil {
				t.Fatalf("AddSection: %v", err)
			}
			for k := 0; k < rows; k++ {
				var rowID string
				s, rowID, err = e.AddRow(s, standID, tierID, sectionID)
				if err != nil {
					t.Fatalf("AddRow: %v", err)
				}
				s, err = e.UpdateRow(s, standID, tierID, sectionID, rowID, RowUpdate{SeatCount: &seats})
				if err != nil {
					t.Fatalf("UpdateRow: %v", err)
				}
			}
		}
	}
	return s, standID
}

// allIDs lists every structural id in the tree.
func allIDs(s *Stadium) []string {
	ids := []string{s.ID}
	for _, st := range s.Stands {
		ids = append(ids, st.ID)
		for _, t := range st.Tiers {
			ids = append(ids, t.ID)
			for _, sec := range t.Sections {
				ids = append(ids, sec.ID)
				for _, r := range sec.Rows {
					ids = append(ids, r.ID)
				}
			}
		}
	}
	return ids
}

func assertContiguous(t *testing.T, s *Stadium) {
	t.Helper()
	for i, st := range s.Stands {
		if st.Order != i {
			t.Errorf("stand %s order = %d, want %d", st.ID, st.Order, i)
		}
		for j, tier := range st.Tiers {
			if tier.Level != j {
				t.Errorf("tier %s level = %d, want %d", tier.ID, tier.Level, j)
			}
			for k, sec := range tier.Sections {
				if sec.Order != k {
					t.Errorf("section %s order = %d, want %d", sec.ID, sec.Order, k)
				}
				for l, r := range sec.Rows {
					if r.Order != l {
						t.Errorf("row %s order = %d, want %d", r.ID, r.Order, l)
					}
				}
			}
		}
	}
}
