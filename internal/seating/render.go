package seating

// RenderInfo is what a drawing surface needs for one node.
type RenderInfo struct {
	ID              string   `json:"id"`
	Kind            NodeKind `json:"kind"`
	Name            string   `json:"name"`
	Geometry        any      `json:"geometry,omitempty"`
	Color           string   `json:"color,omitempty"`
	EffectiveStatus Status   `json:"effectiveStatus"`
	EffectivePrice  *float64 `json:"effectivePrice,omitempty"`
	Capacity        int      `json:"capacity"`
	TotalCapacity   int      `json:"totalCapacity"`
	Seats           []Seat   `json:"seats,omitempty"`
}

// Render collects geometry, status, price and seats for id. Prices are
// reported for sections, rows and seats; seats are listed for rows and seats.
func (s *Stadium) Render(id string) (RenderInfo, bool) {
	p, ok := s.Locate(id)
	if !ok {
		return RenderInfo{}, false
	}
	status, _ := s.EffectiveStatus(id)
	capacity, _ := s.Capacity(id, CapacityOptions{})
	total, _ := s.Capacity(id, CapacityOptions{IncludeBlocked: true})
	info := RenderInfo{
		ID:              id,
		Kind:            p.Kind,
		EffectiveStatus: status,
		Capacity:        capacity,
		TotalCapacity:   total,
	}

	switch p.Kind {
	case KindStadium:
		info.Name = s.Name
		info.Color = s.Style.Color
	case KindStand:
		st := s.standAt(p)
		info.Name, info.Geometry, info.Color = st.Name, st.Geometry, st.Style.Color
	case KindTier:
		t := s.tierAt(p)
		info.Name, info.Geometry, info.Color = t.Name, t.Geometry, t.Style.Color
	case KindSection:
		t, sec := s.tierAt(p), s.sectionAt(p)
		info.Name, info.Geometry, info.Color = sec.Name, sec.Geometry, t.Style.Color
		info.EffectivePrice = Float(SectionPrice(*t, *sec))
	case KindRow:
		t, sec, r := s.tierAt(p), s.sectionAt(p), s.rowAt(p)
		info.Name, info.Geometry, info.Color = r.Label, r.Geometry, t.Style.Color
		info.EffectivePrice = Float(RowPrice(*t, *sec, *r))
		info.Seats = s.seatsAt(p)
	case KindSeat:
		seat := s.seatsAt(p)[p.SeatNumber-1]
		info.Name = seat.Label
		info.Geometry = seat.Placement
		info.Color = s.tierAt(p).Style.Color
		info.EffectivePrice = Float(seat.Price)
		info.Seats = []Seat{seat}
	}
	return info, true
}
