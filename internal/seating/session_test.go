package seating

import (
	"errors"
	"testing"
)

func TestSessionRepairsAfterEveryMutation(t *testing.T) {
	e := newTestEditor()
	s := e.NewStadium("Arena", "AR")
	s, a := buildStand(t, e, s, "A", 1, 1, 1, 5)
	s, b := buildStand(t, e, s, "B", 1, 2, 1, 5)

	ss := NewSession("session-1", "layout-1", s)
	if ss.Selection.StandID != a {
		t.Fatalf("new session selected %+v", ss.Selection)
	}

	err := ss.Apply(e, func(e *Editor, s *Stadium) (*Stadium, error) { return e.DeleteStand(s, a) })
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	stB, _ := ss.Stadium.FindStand(b)
	want := Selection{StandID: b, TierID: stB.Tiers[0].ID, SectionID: stB.Tiers[0].Sections[0].ID}
	if ss.Selection != want {
		t.Errorf("selection = %+v, want %+v", ss.Selection, want)
	}
	if ss.Revision != 1 || !ss.Dirty {
		t.Errorf("revision=%d dirty=%v", ss.Revision, ss.Dirty)
	}

	before := ss.Stadium
	err = ss.Apply(e, func(e *Editor, s *Stadium) (*Stadium, error) { return e.DeleteStand(s, a) })
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v", err)
	}
	if ss.Stadium != before || ss.Revision != 1 {
		t.Error("no-op changed the session")
	}

	ss.MarkSaved()
	if ss.Dirty {
		t.Error("MarkSaved left session dirty")
	}
}

func TestSessionQuickAddFocusesNewStand(t *testing.T) {
	e := newTestEditor()
	s, a := buildStand(t, e, e.NewStadium("Arena", "AR"), "A", 1, 1, 1, 5)
	ss := NewSession("session-1", "layout-1", s)

	added, err := ss.QuickAddStand(e, "Quick")
	if err != nil {
		t.Fatalf("QuickAddStand: %v", err)
	}
	if ss.Selection != (Selection{StandID: added.StandID, TierID: added.TierID, SectionID: added.SectionID}) {
		t.Errorf("selection = %+v, added %+v", ss.Selection, added)
	}

	// manual add leaves the focus alone
	if err := ss.Apply(e, func(e *Editor, s *Stadium) (*Stadium, error) {
		out, _, err := e.AddStand(s, "Manual")
		return out, err
	}); err != nil {
		t.Fatal(err)
	}
	if ss.Selection.StandID != added.StandID {
		t.Errorf("manual add moved selection to %s", ss.Selection.StandID)
	}

	if !ss.SelectStand(a) || ss.Selection.StandID != a {
		t.Errorf("SelectStand failed: %+v", ss.Selection)
	}
	if ss.SelectStand("ghost") || ss.Selection.StandID != a {
		t.Errorf("SelectStand on stale id changed selection: %+v", ss.Selection)
	}
}
