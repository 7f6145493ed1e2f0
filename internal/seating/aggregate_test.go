package seating

import "testing"

func TestBlockedStandCapacity(t *testing.T) {
	e := newTestEditor()
	s, standID := buildStand(t, e, e.NewStadium("Arena", "AR"), "North", 2, 2, 3, 10)

	blocked := StatusBlocked
	s, err := e.UpdateStand(s, standID, StandUpdate{Status: &blocked})
	if err != nil {
		t.Fatalf("UpdateStand: %v", err)
	}

	if got, _ := s.Capacity(standID, CapacityOptions{}); got != 0 {
		t.Errorf("sellable capacity = %d, want 0", got)
	}
	if got, _ := s.Capacity(standID, CapacityOptions{IncludeBlocked: true}); got != 120 {
		t.Errorf("total capacity = %d, want 120", got)
	}

	st, _ := s.FindStand(standID)
	sec := st.Tiers[1].Sections[0]
	if status, _ := s.EffectiveStatus(sec.ID); status != StatusBlocked {
		t.Errorf("section under blocked stand has status %s", status)
	}
	if status, _ := s.EffectiveStatus(SeatID(sec.Rows[0].ID, 1)); status != StatusBlocked {
		t.Errorf("seat under blocked stand has status %s", status)
	}
	seats, _ := s.Seats(sec.Rows[0].ID)
	for _, seat := range seats {
		if seat.Status != SeatBlocked {
			t.Fatalf("seat %s status = %s, want blocked", seat.ID, seat.Status)
		}
	}
}

func TestCapacityAdditive(t *testing.T) {
	e := newTestEditor()
	s := e.NewStadium("Arena", "AR")
	s, a := buildStand(t, e, s, "A", 2, 2, 2, 7)
	s, b := buildStand(t, e, s, "B", 1, 3, 4, 12)

	blocked := StatusBlocked
	stB, _ := s.FindStand(b)
	s, err := e.UpdateSection(s, b, stB.Tiers[0].ID, stB.Tiers[0].Sections[1].ID, SectionUpdate{Status: &blocked})
	if err != nil {
		t.Fatalf("UpdateSection: %v", err)
	}

	for _, opts := range []CapacityOptions{{}, {IncludeBlocked: true}} {
		ca, _ := s.Capacity(a, opts)
		cb, _ := s.Capacity(b, opts)
		if total := s.StadiumCapacity(opts); total != ca+cb {
			t.Errorf("opts %+v: stadium %d != %d + %d", opts, total, ca, cb)
		}
		for _, st := range s.Stands {
			sum := 0
			for _, tier := range st.Tiers {
				c, _ := s.Capacity(tier.ID, opts)
				sum += c
			}
			if c, _ := s.Capacity(st.ID, opts); c != sum {
				t.Errorf("opts %+v: stand %s capacity %d != tier sum %d", opts, st.ID, c, sum)
			}
		}
	}

	if got := s.StadiumCapacity(CapacityOptions{}); got != 2*2*2*7+2*4*12 {
		t.Errorf("sellable stadium capacity = %d", got)
	}
	if got := s.StadiumCapacity(CapacityOptions{IncludeBlocked: true}); got != 2*2*2*7+3*4*12 {
		t.Errorf("total stadium capacity = %d", got)
	}
	if c, _ := s.Capacity(s.ID, CapacityOptions{}); c != s.StadiumCapacity(CapacityOptions{}) {
		t.Error("Capacity(stadium id) disagrees with StadiumCapacity")
	}
}

func TestEffectivePrice(t *testing.T) {
	e := newTestEditor()
	s, standID := buildStand(t, e, e.NewStadium("Arena", "AR"), "North", 1, 1, 2, 5)
	st, _ := s.FindStand(standID)
	tier := st.Tiers[0]
	sec := tier.Sections[0]
	rowA, rowB := sec.Rows[0], sec.Rows[1]
	seatA, seatB := SeatID(rowA.ID, 1), SeatID(rowB.ID, 1)

	if p, _ := s.EffectivePrice(seatA); p != 500 {
		t.Errorf("base price = %v, want 500", p)
	}

	override := 600.0
	s, err := e.UpdateSection(s, standID, tier.ID, sec.ID, SectionUpdate{PriceOverride: &override})
	if err != nil {
		t.Fatalf("UpdateSection: %v", err)
	}
	if p, _ := s.EffectivePrice(seatA); p != 600 {
		t.Errorf("section override price = %v, want 600", p)
	}

	rowPrice := 750.0
	s, err = e.UpdateRow(s, standID, tier.ID, sec.ID, rowA.ID, RowUpdate{PriceOverride: &rowPrice})
	if err != nil {
		t.Fatalf("UpdateRow: %v", err)
	}
	if p, _ := s.EffectivePrice(seatA); p != 750 {
		t.Errorf("row override price = %v, want 750", p)
	}
	if p, _ := s.EffectivePrice(seatB); p != 600 {
		t.Errorf("sibling row price = %v, want 600", p)
	}

	s, err = e.UpdateSection(s, standID, tier.ID, sec.ID, SectionUpdate{ClearPriceOverride: true})
	if err != nil {
		t.Fatalf("UpdateSection: %v", err)
	}
	if p, _ := s.EffectivePrice(seatB); p != 500 {
		t.Errorf("price after clearing section override = %v, want 500", p)
	}

	if _, ok := s.EffectivePrice(rowA.ID); ok {
		t.Error("EffectivePrice accepted a row id")
	}
}

func TestTicketTypeResolution(t *testing.T) {
	e := newTestEditor()
	s, standID := buildStand(t, e, e.NewStadium("Arena", "AR"), "North", 1, 2, 1, 3)
	st, _ := s.FindStand(standID)
	tier := st.Tiers[0]
	secA, secB := tier.Sections[0], tier.Sections[1]

	s, err := e.AssignTicketType(s, tier.ID, "standard")
	if err != nil {
		t.Fatalf("AssignTicketType tier: %v", err)
	}
	s, err = e.AssignTicketType(s, secB.ID, "premium")
	if err != nil {
		t.Fatalf("AssignTicketType section: %v", err)
	}
	s, err = e.AssignTicketType(s, SeatID(secB.Rows[0].ID, 2), "vip")
	if err != nil {
		t.Fatalf("AssignTicketType seat: %v", err)
	}

	seat, _ := s.Seat(SeatID(secA.Rows[0].ID, 1))
	if seat.TicketTypeID != "standard" {
		t.Errorf("tier ticket type not inherited: %q", seat.TicketTypeID)
	}
	seat, _ = s.Seat(SeatID(secB.Rows[0].ID, 1))
	if seat.TicketTypeID != "premium" {
		t.Errorf("section ticket type not applied: %q", seat.TicketTypeID)
	}
	seat, _ = s.Seat(SeatID(secB.Rows[0].ID, 2))
	if seat.TicketTypeID != "vip" {
		t.Errorf("seat override not applied: %q", seat.TicketTypeID)
	}

	if _, err := e.AssignTicketType(s, standID, "x"); !IsNoOp(err) {
		t.Errorf("assigning to a stand should be a no-op, got %v", err)
	}
}

func TestSummary(t *testing.T) {
	e := newTestEditor()
	s := e.NewStadium("Arena", "AR")
	s, a := buildStand(t, e, s, "A", 1, 2, 3, 10)
	s, _ = buildStand(t, e, s, "B", 2, 1, 1, 4)

	blocked := StatusBlocked
	s, _ = e.UpdateStand(s, a, StandUpdate{Status: &blocked})

	sum := s.Summary()
	if len(sum) != 2 {
		t.Fatalf("got %d stands", len(sum))
	}
	if sum[0].Capacity != 0 || sum[0].TotalCapacity != 60 || sum[0].RowCount != 6 || sum[0].SectionCount != 2 {
		t.Errorf("stand A summary = %+v", sum[0])
	}
	if sum[1].Capacity != 8 || sum[1].TotalCapacity != 8 || sum[1].TierCount != 2 {
		t.Errorf("stand B summary = %+v", sum[1])
	}
}

func TestRender(t *testing.T) {
	e := newTestEditor()
	s, standID := buildStand(t, e, e.NewStadium("Arena", "AR"), "North", 1, 1, 1, 4)
	st, _ := s.FindStand(standID)
	row := st.Tiers[0].Sections[0].Rows[0]

	info, ok := s.Render(row.ID)
	if !ok {
		t.Fatal("Render missed a row")
	}
	if info.Kind != KindRow || info.Capacity != 4 || len(info.Seats) != 4 {
		t.Errorf("row render = %+v", info)
	}
	if info.EffectivePrice == nil || *info.EffectivePrice != 500 {
		t.Errorf("row render price = %v", info.EffectivePrice)
	}

	info, _ = s.Render(standID)
	if info.EffectivePrice != nil || info.Seats != nil {
		t.Errorf("stand render carried price or seats: %+v", info)
	}
	if _, ok := s.Render("missing"); ok {
		t.Error("Render accepted a missing id")
	}
}
