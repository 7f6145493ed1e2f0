package seating

import (
	"fmt"
	"strings"
)

// SECTIONS

func (e *Editor) newSection(t Tier, order int, name string) Section {
	if name = strings.TrimSpace(name); name == "" {
		name = fmt.Sprintf("Section %d", order+1)
	}
	return Section{
		ID:       e.ids.NewID(KindSection),
		TierID:   t.ID,
		StandID:  t.StandID,
		Name:     name,
		Code:     fmt.Sprintf("%s-%d", t.Code, order+1),
		Order:    order,
		Geometry: SectionGeometry{Curve: e.defaults.SectionCurve},
		Status:   StatusActive,
		Rows:     []Row{},
	}
}

// AddSection appends a section to the tier and splits the stand arc evenly
// between the tier's sections.
func (e *Editor) AddSection(s *Stadium, standID, tierID, name string) (*Stadium, string, error) {
	p, err := s.resolve(standID, tierID)
	if err != nil {
		out, err := e.noop(s, "add_section", err)
		return out, "", err
	}
	span := s.standAt(p).Geometry.Span()
	var id string
	out := s.withTier(p, func(t *Tier) {
		sec := e.newSection(*t, len(t.Sections), name)
		id = sec.ID
		t.Sections = rebalanceSections(append(cloneSlice(t.Sections), sec), span)
	})
	return out, id, nil
}

type SectionUpdate struct {
	Name               *string
	Code               *string
	Geometry           *SectionGeometry
	Status             *Status
	PriceOverride      *float64
	ClearPriceOverride bool
	TicketTypeID       *string
}

func (u SectionUpdate) validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if u.Geometry != nil {
		if err := u.Geometry.Validate(); err != nil {
			return err
		}
	}
	if u.Status != nil && !IsValidStatus(string(*u.Status)) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *u.Status)
	}
	if u.PriceOverride != nil && !(*u.PriceOverride >= 0) {
		return fmt.Errorf("%w: priceOverride must be >= 0", ErrInvalidInput)
	}
	if u.PriceOverride != nil && u.ClearPriceOverride {
		return fmt.Errorf("%w: priceOverride cannot be set and cleared at once", ErrInvalidInput)
	}
	return nil
}

func (e *Editor) UpdateSection(s *Stadium, standID, tierID, sectionID string, u SectionUpdate) (*Stadium, error) {
	if err := u.validate(); err != nil {
		return e.invalid(s, "update_section", err)
	}
	p, err := s.resolve(standID, tierID, sectionID)
	if err != nil {
		return e.noop(s, "update_section", err)
	}
	if u.Geometry != nil {
		if err := u.Geometry.fitsWithin(s.standAt(p).Geometry.Span()); err != nil {
			return e.invalid(s, "update_section", err)
		}
	}
	return s.withSection(p, func(sec *Section) {
		if u.Name != nil {
			sec.Name = strings.TrimSpace(*u.Name)
		}
		if u.Code != nil {
			sec.Code = strings.TrimSpace(*u.Code)
		}
		if u.Geometry != nil {
			sec.Geometry = *u.Geometry
		}
		if u.Status != nil {
			sec.Status = *u.Status
		}
		if u.PriceOverride != nil {
			sec.PriceOverride = Float(*u.PriceOverride)
		}
		if u.ClearPriceOverride {
			sec.PriceOverride = nil
		}
		if u.TicketTypeID != nil {
			sec.TicketTypeID = strings.TrimSpace(*u.TicketTypeID)
		}
	}), nil
}

// DeleteSection removes the section and its rows, then renumbers and
// rebalances the remaining sections of the tier.
func (e *Editor) DeleteSection(s *Stadium, standID, tierID, sectionID string) (*Stadium, error) {
	p, err := s.resolve(standID, tierID, sectionID)
	if err != nil {
		return e.noop(s, "delete_section", err)
	}
	span := s.standAt(p).Geometry.Span()
	return s.withTier(p, func(t *Tier) {
		sections := cloneSlice(t.Sections)
		sections = append(sections[:p.Section], sections[p.Section+1:]...)
		t.Sections = rebalanceSections(sections, span)
	}), nil
}

// rebalanceSections renumbers sections and splits span into equal windows,
// measured from the start of the parent stand's arc.
func rebalanceSections(sections []Section, span float64) []Section {
	n := len(sections)
	if n == 0 {
		return sections
	}
	width := span / float64(n)
	for i := range sections {
		sections[i].Order = i
		sections[i].Geometry.StartAngle = normalizeAngle(float64(i) * width)
		sections[i].Geometry.EndAngle = normalizeAngle(float64(i+1) * width)
	}
	return sections
}

// ROWS

// newRow builds the row that follows the section's current last row. Labels
// continue after the highest spreadsheet label in use so deletes never cause
// a repeat.
func (e *Editor) newRow(sec Section) Row {
	d := e.defaults
	order := len(sec.Rows)
	offsetY := 0.0
	if order > 0 {
		offsetY = sec.Rows[order-1].Geometry.OffsetY + d.RowSpacing
	}
	return Row{
		ID:        e.ids.NewID(KindRow),
		SectionID: sec.ID,
		TierID:    sec.TierID,
		StandID:   sec.StandID,
		Label:     nextRowLabel(sec.Rows),
		Order:     order,
		SeatCount: d.SeatsPerRow,
		Geometry: RowGeometry{
			Curve:   d.RowCurve,
			Spacing: d.RowSpacing,
			OffsetY: offsetY,
		},
		Status: StatusActive,
	}
}

func nextRowLabel(rows []Row) string {
	next := 0
	for _, r := range rows {
		if i, ok := RowLabelIndex(r.Label); ok && i >= next {
			next = i + 1
		}
	}
	return RowLabel(next)
}

// AddRow appends a row labelled with the next letter and the default seat count.
func (e *Editor) AddRow(s *Stadium, standID, tierID, sectionID string) (*Stadium, string, error) {
	p, err := s.resolve(standID, tierID, sectionID)
	if err != nil {
		out, err := e.noop(s, "add_row", err)
		return out, "", err
	}
	var id string
	out := s.withSection(p, func(sec *Section) {
		r := e.newRow(*sec)
		id = r.ID
		sec.Rows = append(cloneSlice(sec.Rows), r)
	})
	return out, id, nil
}

type RowUpdate struct {
	Label              *string
	SeatCount          *int
	Geometry           *RowGeometry
	Status             *Status
	PriceOverride      *float64
	ClearPriceOverride bool
}

func (e *Editor) validateRow(u RowUpdate) error {
	if u.Label != nil && strings.TrimSpace(*u.Label) == "" {
		return fmt.Errorf("%w: label must not be empty", ErrInvalidInput)
	}
	if u.SeatCount != nil && (*u.SeatCount < 0 || *u.SeatCount > e.defaults.MaxSeatsPerRow) {
		return fmt.Errorf("%w: seatCount must be within [0,%d], got %d", ErrInvalidGeometry, e.defaults.MaxSeatsPerRow, *u.SeatCount)
	}
	if u.Geometry != nil {
		if err := u.Geometry.Validate(); err != nil {
			return err
		}
	}
	if u.Status != nil && !IsValidStatus(string(*u.Status)) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *u.Status)
	}
	if u.PriceOverride != nil && !(*u.PriceOverride >= 0) {
		return fmt.Errorf("%w: priceOverride must be >= 0", ErrInvalidInput)
	}
	if u.PriceOverride != nil && u.ClearPriceOverride {
		return fmt.Errorf("%w: priceOverride cannot be set and cleared at once", ErrInvalidInput)
	}
	return nil
}

func (e *Editor) UpdateRow(s *Stadium, standID, tierID, sectionID, rowID string, u RowUpdate) (*Stadium, error) {
	if err := e.validateRow(u); err != nil {
		return e.invalid(s, "update_row", err)
	}
	p, err := s.resolve(standID, tierID, sectionID, rowID)
	if err != nil {
		return e.noop(s, "update_row", err)
	}
	return s.withRow(p, func(r *Row) {
		if u.Label != nil {
			r.Label = strings.TrimSpace(*u.Label)
		}
		if u.SeatCount != nil {
			r.SeatCount = *u.SeatCount
			r.SeatOverrides = pruneOverrides(r.ID, r.SeatOverrides, r.SeatCount)
		}
		if u.Geometry != nil {
			r.Geometry = *u.Geometry
		}
		if u.Status != nil {
			r.Status = *u.Status
		}
		if u.PriceOverride != nil {
			r.PriceOverride = Float(*u.PriceOverride)
		}
		if u.ClearPriceOverride {
			r.PriceOverride = nil
		}
	}), nil
}

// DeleteRow removes the row with its seat overrides and renumbers the rest.
// Labels are display strings and are left as they are.
func (e *Editor) DeleteRow(s *Stadium, standID, tierID, sectionID, rowID string) (*Stadium, error) {
	p, err := s.resolve(standID, tierID, sectionID, rowID)
	if err != nil {
		return e.noop(s, "delete_row", err)
	}
	return s.withSection(p, func(sec *Section) {
		rows := cloneSlice(sec.Rows)
		rows = append(rows[:p.Row], rows[p.Row+1:]...)
		for i := range rows {
			rows[i].Order = i
		}
		sec.Rows = rows
	}), nil
}

// pruneOverrides drops overrides for seat numbers beyond seatCount.
func pruneOverrides(rowID string, overrides map[string]SeatOverride, seatCount int) map[string]SeatOverride {
	if len(overrides) == 0 {
		return overrides
	}
	out := make(map[string]SeatOverride, len(overrides))
	for id, o := range overrides {
		r, n, err := ParseSeatID(id)
		if err != nil || r != rowID || n > seatCount {
			continue
		}
		out[id] = o
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SEAT OVERRIDES AND TICKET TYPES

// SetSeatOverride records an individual status or ticket type for one seat.
// An override with no fields set clears the seat back to its generated default.
func (e *Editor) SetSeatOverride(s *Stadium, seatID string, o SeatOverride) (*Stadium, error) {
	if o.Status != "" && !IsValidSeatStatus(string(o.Status)) {
		return e.invalid(s, "set_seat_override", fmt.Errorf("%w: seat status %q cannot be stored", ErrInvalidInput, o.Status))
	}
	o.TicketTypeID = strings.TrimSpace(o.TicketTypeID)
	p, ok := s.Locate(seatID)
	if !ok || p.Kind != KindSeat {
		return e.noop(s, "set_seat_override", fmt.Errorf("%w: seat %q", ErrNotFound, seatID))
	}
	return s.withRow(p, func(r *Row) {
		overrides := make(map[string]SeatOverride, len(r.SeatOverrides)+1)
		for k, v := range r.SeatOverrides {
			overrides[k] = v
		}
		if o == (SeatOverride{}) {
			delete(overrides, seatID)
		} else {
			overrides[seatID] = o
		}
		if len(overrides) == 0 {
			overrides = nil
		}
		r.SeatOverrides = overrides
	}), nil
}

func (e *Editor) ClearSeatOverride(s *Stadium, seatID string) (*Stadium, error) {
	return e.SetSeatOverride(s, seatID, SeatOverride{})
}

// AssignTicketType sets or, with an empty ticketTypeID, clears the ticket
// category of a tier or section found by id alone.
func (e *Editor) AssignTicketType(s *Stadium, nodeID, ticketTypeID string) (*Stadium, error) {
	ticketTypeID = strings.TrimSpace(ticketTypeID)
	p, ok := s.Locate(nodeID)
	if !ok {
		return e.noop(s, "assign_ticket_type", fmt.Errorf("%w: node %q", ErrNotFound, nodeID))
	}
	switch p.Kind {
	case KindTier:
		return s.withTier(p, func(t *Tier) { t.TicketTypeID = ticketTypeID }), nil
	case KindSection:
		return s.withSection(p, func(sec *Section) { sec.TicketTypeID = ticketTypeID }), nil
	case KindSeat:
		o := s.rowAt(p).SeatOverrides[nodeID]
		o.TicketTypeID = ticketTypeID
		return e.SetSeatOverride(s, nodeID, o)
	default:
		return e.noop(s, "assign_ticket_type", fmt.Errorf("%w: %s %q cannot carry a ticket type", ErrStructuralViolation, p.Kind, nodeID))
	}
}
