package seating

import "testing"

func TestRepairAfterDeletingSelectedStand(t *testing.T) {
	e := newTestEditor()
	s := e.NewStadium("Arena", "AR")
	s, a := buildStand(t, e, s, "A", 1, 1, 0, 0)
	s, b := buildStand(t, e, s, "B", 2, 2, 0, 0)
	stA, _ := s.FindStand(a)
	stB, _ := s.FindStand(b)

	sel := Selection{StandID: a, TierID: stA.Tiers[0].ID, SectionID: stA.Tiers[0].Sections[0].ID}
	s, err := e.DeleteStand(s, a)
	if err != nil {
		t.Fatalf("DeleteStand: %v", err)
	}

	got := sel.Repair(s)
	want := Selection{StandID: b, TierID: stB.Tiers[0].ID, SectionID: stB.Tiers[0].Sections[0].ID}
	if got != want {
		t.Errorf("Repair = %+v, want %+v", got, want)
	}

	s, _ = e.DeleteStand(s, b)
	if got := got.Repair(s); got != (Selection{}) {
		t.Errorf("Repair on empty stadium = %+v", got)
	}
}

func TestRepairCascade(t *testing.T) {
	e := newTestEditor()
	s, standID := buildStand(t, e, e.NewStadium("Arena", "AR"), "A", 2, 2, 0, 0)
	st, _ := s.FindStand(standID)
	t0, t1 := st.Tiers[0], st.Tiers[1]

	tests := []struct {
		name string
		sel  Selection
		want Selection
	}{
		{
			"valid selection kept",
			Selection{StandID: standID, TierID: t1.ID, SectionID: t1.Sections[1].ID},
			Selection{StandID: standID, TierID: t1.ID, SectionID: t1.Sections[1].ID},
		},
		{
			"stale section falls back to first section",
			Selection{StandID: standID, TierID: t1.ID, SectionID: "ghost"},
			Selection{StandID: standID, TierID: t1.ID, SectionID: t1.Sections[0].ID},
		},
		{
			"section from another tier",
			Selection{StandID: standID, TierID: t1.ID, SectionID: t0.Sections[1].ID},
			Selection{StandID: standID, TierID: t1.ID, SectionID: t1.Sections[0].ID},
		},
		{
			"stale tier resets section too",
			Selection{StandID: standID, TierID: "ghost", SectionID: t1.Sections[1].ID},
			Selection{StandID: standID, TierID: t0.ID, SectionID: t0.Sections[0].ID},
		},
		{
			"empty selection drills to first",
			Selection{},
			Selection{StandID: standID, TierID: t0.ID, SectionID: t0.Sections[0].ID},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Repair(s); got != tt.want {
				t.Errorf("Repair = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRepairWithEmptyChildren(t *testing.T) {
	e := newTestEditor()
	s, standID, _ := e.AddStand(e.NewStadium("Arena", "AR"), "")
	got := Selection{StandID: standID, TierID: "ghost", SectionID: "ghost"}.Repair(s)
	if got != (Selection{StandID: standID}) {
		t.Errorf("Repair = %+v", got)
	}

	s, tierID, _ := e.AddTier(s, standID, "")
	got = Selection{StandID: standID, TierID: tierID, SectionID: "ghost"}.Repair(s)
	if got != (Selection{StandID: standID, TierID: tierID}) {
		t.Errorf("Repair = %+v", got)
	}
}

func TestSelectDrillsDown(t *testing.T) {
	e := newTestEditor()
	s := e.NewStadium("Arena", "AR")
	s, _ = buildStand(t, e, s, "A", 1, 1, 0, 0)
	s, b := buildStand(t, e, s, "B", 2, 2, 0, 0)
	stB, _ := s.FindStand(b)

	sel, ok := Selection{}.SelectStand(s, b)
	if !ok || sel.TierID != stB.Tiers[0].ID || sel.SectionID != stB.Tiers[0].Sections[0].ID {
		t.Errorf("SelectStand = %+v, %v", sel, ok)
	}

	sel, ok = sel.SelectTier(s, b, stB.Tiers[1].ID)
	if !ok || sel.SectionID != stB.Tiers[1].Sections[0].ID {
		t.Errorf("SelectTier = %+v, %v", sel, ok)
	}

	before := sel
	if sel, ok = sel.SelectSection(s, b, stB.Tiers[0].ID, stB.Tiers[1].Sections[1].ID); ok || sel != before {
		t.Errorf("SelectSection with mismatched parent = %+v, %v", sel, ok)
	}
}
