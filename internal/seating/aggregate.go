package seating

// CapacityOptions selects between sellable capacity and raw capacity.
type CapacityOptions struct {
	// IncludeBlocked counts seats under blocked nodes too.
	IncludeBlocked bool
}

// StadiumCapacity folds seat counts over every stand.
func (s *Stadium) StadiumCapacity(opts CapacityOptions) int {
	if s == nil {
		return 0
	}
	total := 0
	for i := range s.Stands {
		total += standCapacity(&s.Stands[i], false, opts)
	}
	return total
}

// Capacity returns the capacity of the subtree rooted at id. The same fold is
// used for every level; ancestors' blocked state is applied first.
func (s *Stadium) Capacity(id string, opts CapacityOptions) (int, bool) {
	p, ok := s.Locate(id)
	if !ok {
		return 0, false
	}
	inherited := s.ancestorsBlocked(p)
	switch p.Kind {
	case KindStadium:
		return s.StadiumCapacity(opts), true
	case KindStand:
		return standCapacity(s.standAt(p), inherited, opts), true
	case KindTier:
		return tierCapacity(s.tierAt(p), inherited, opts), true
	case KindSection:
		return sectionCapacity(s.sectionAt(p), inherited, opts), true
	case KindRow:
		return rowCapacity(s.rowAt(p), inherited, opts), true
	case KindSeat:
		if !opts.IncludeBlocked && (inherited || s.rowAt(p).Status == StatusBlocked) {
			return 0, true
		}
		return 1, true
	}
	return 0, false
}

func standCapacity(st *Stand, blocked bool, opts CapacityOptions) int {
	blocked = blocked || st.Status == StatusBlocked
	total := 0
	for i := range st.Tiers {
		total += tierCapacity(&st.Tiers[i], blocked, opts)
	}
	return total
}

func tierCapacity(t *Tier, blocked bool, opts CapacityOptions) int {
	blocked = blocked || t.Status == StatusBlocked
	total := 0
	for i := range t.Sections {
		total += sectionCapacity(&t.Sections[i], blocked, opts)
	}
	return total
}

func sectionCapacity(sec *Section, blocked bool, opts CapacityOptions) int {
	blocked = blocked || sec.Status == StatusBlocked
	total := 0
	for i := range sec.Rows {
		total += rowCapacity(&sec.Rows[i], blocked, opts)
	}
	return total
}

func rowCapacity(r *Row, blocked bool, opts CapacityOptions) int {
	if !opts.IncludeBlocked && (blocked || r.Status == StatusBlocked) {
		return 0
	}
	return r.SeatCount
}

// EffectiveStatus is blocked when the node or any ancestor is blocked. Seat
// ids resolve through their row.
func (s *Stadium) EffectiveStatus(id string) (Status, bool) {
	p, ok := s.Locate(id)
	if !ok {
		return "", false
	}
	if p.Kind == KindStadium {
		return StatusActive, true
	}
	blocked := s.ancestorsBlocked(p) || s.ownStatus(p) == StatusBlocked
	if blocked {
		return StatusBlocked, true
	}
	return StatusActive, true
}

// ancestorsBlocked reports whether any strict ancestor of p is blocked.
func (s *Stadium) ancestorsBlocked(p Path) bool {
	depth := p.depth()
	if depth > 1 && s.standAt(p).Status == StatusBlocked {
		return true
	}
	if depth > 2 && s.tierAt(p).Status == StatusBlocked {
		return true
	}
	if depth > 3 && s.sectionAt(p).Status == StatusBlocked {
		return true
	}
	if depth > 4 && s.rowAt(p).Status == StatusBlocked {
		return true
	}
	return false
}

func (s *Stadium) ownStatus(p Path) Status {
	switch p.Kind {
	case KindStand:
		return s.standAt(p).Status
	case KindTier:
		return s.tierAt(p).Status
	case KindSection:
		return s.sectionAt(p).Status
	case KindRow:
		return s.rowAt(p).Status
	}
	return StatusActive
}

func (p Path) depth() int {
	switch p.Kind {
	case KindStand:
		return 1
	case KindTier:
		return 2
	case KindSection:
		return 3
	case KindRow:
		return 4
	case KindSeat:
		return 5
	}
	return 0
}

// RowPrice resolves the price of every seat in a row:
// Row.PriceOverride, then Section.PriceOverride, then Tier.BasePrice.
func RowPrice(t Tier, sec Section, r Row) float64 {
	if r.PriceOverride != nil {
		return *r.PriceOverride
	}
	if sec.PriceOverride != nil {
		return *sec.PriceOverride
	}
	return t.BasePrice
}

// SectionPrice is the price a row in sec pays when it has no override.
func SectionPrice(t Tier, sec Section) float64 {
	if sec.PriceOverride != nil {
		return *sec.PriceOverride
	}
	return t.BasePrice
}

// EffectivePrice resolves the price of a seat id.
func (s *Stadium) EffectivePrice(seatID string) (float64, bool) {
	p, ok := s.Locate(seatID)
	if !ok || p.Kind != KindSeat {
		return 0, false
	}
	return RowPrice(*s.tierAt(p), *s.sectionAt(p), *s.rowAt(p)), true
}

// effectiveTicketType is the section assignment, falling back to the tier.
func effectiveTicketType(t *Tier, sec *Section) string {
	if sec.TicketTypeID != "" {
		return sec.TicketTypeID
	}
	return t.TicketTypeID
}

// Seats materialises every seat in the row with id rowID.
func (s *Stadium) Seats(rowID string) ([]Seat, bool) {
	p, ok := s.Locate(rowID)
	if !ok || p.Kind != KindRow {
		return nil, false
	}
	return s.seatsAt(p), true
}

// Seat materialises a single seat.
func (s *Stadium) Seat(seatID string) (Seat, bool) {
	p, ok := s.Locate(seatID)
	if !ok || p.Kind != KindSeat {
		return Seat{}, false
	}
	return s.seatsAt(p)[p.SeatNumber-1], true
}

func (s *Stadium) seatsAt(p Path) []Seat {
	t, sec, r := s.tierAt(p), s.sectionAt(p), s.rowAt(p)
	rowPath := p
	rowPath.Kind = KindRow
	return MaterializeSeats(*r, s.ancestorsBlocked(rowPath), RowPrice(*t, *sec, *r), effectiveTicketType(t, sec))
}

// StandSummary is the capacity of one stand in both counting modes.
type StandSummary struct {
	StandID       string `json:"standId"`
	Name          string `json:"name"`
	Status        Status `json:"status"`
	Capacity      int    `json:"capacity"`
	TotalCapacity int    `json:"totalCapacity"`
	TierCount     int    `json:"tierCount"`
	SectionCount  int    `json:"sectionCount"`
	RowCount      int    `json:"rowCount"`
}

// Summary reports per-stand capacity in stand order.
func (s *Stadium) Summary() []StandSummary {
	if s == nil {
		return nil
	}
	out := make([]StandSummary, 0, len(s.Stands))
	for i := range s.Stands {
		st := &s.Stands[i]
		sum := StandSummary{
			StandID:       st.ID,
			Name:          st.Name,
			Status:        st.Status,
			Capacity:      standCapacity(st, false, CapacityOptions{}),
			TotalCapacity: standCapacity(st, false, CapacityOptions{IncludeBlocked: true}),
			TierCount:     len(st.Tiers),
		}
		for _, t := range st.Tiers {
			sum.SectionCount += len(t.Sections)
			for _, sec := range t.Sections {
				sum.RowCount += len(sec.Rows)
			}
		}
		out = append(out, sum)
	}
	return out
}
