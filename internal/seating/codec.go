package seating

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Marshal encodes the layout in its persisted JSON form.
func Marshal(s *Stadium) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil layout", ErrInvalidDocument)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal layout: %w", err)
	}
	return data, nil
}

// Unmarshal decodes and validates a persisted layout. Documents that break a
// tree invariant are rejected as a whole.
func Unmarshal(data []byte) (*Stadium, error) {
	var s Stadium
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every structural invariant of a layout: globally unique
// ids, contiguous order and level values, lineage ids matching the actual
// parents, valid statuses, geometry and prices, and seat overrides that refer
// to seats inside their row.
func Validate(s *Stadium) error {
	if s == nil {
		return fmt.Errorf("%w: nil layout", ErrInvalidDocument)
	}
	v := validator{seen: map[string]bool{}}
	v.id("stadium", s.ID)
	for si, st := range s.Stands {
		where := fmt.Sprintf("stand %q", st.ID)
		v.id(where, st.ID)
		v.check(st.Order == si, "%s: order %d at position %d", where, st.Order, si)
		v.check(st.StadiumID == s.ID, "%s: stadiumId %q does not match %q", where, st.StadiumID, s.ID)
		v.status(where, st.Status)
		v.err(where, st.Geometry.Validate())

		for ti, t := range st.Tiers {
			where := fmt.Sprintf("tier %q", t.ID)
			v.id(where, t.ID)
			v.check(t.Level == ti, "%s: level %d at position %d", where, t.Level, ti)
			v.check(t.StandID == st.ID, "%s: standId %q does not match %q", where, t.StandID, st.ID)
			v.check(t.BasePrice >= 0, "%s: negative basePrice", where)
			v.status(where, t.Status)
			v.err(where, t.Geometry.Validate())

			for ci, sec := range t.Sections {
				where := fmt.Sprintf("section %q", sec.ID)
				v.id(where, sec.ID)
				v.check(sec.Order == ci, "%s: order %d at position %d", where, sec.Order, ci)
				v.check(sec.TierID == t.ID && sec.StandID == st.ID, "%s: lineage does not match tier %q", where, t.ID)
				v.check(sec.PriceOverride == nil || *sec.PriceOverride >= 0, "%s: negative priceOverride", where)
				v.status(where, sec.Status)
				v.err(where, sec.Geometry.Validate())

				for ri, r := range sec.Rows {
					where := fmt.Sprintf("row %q", r.ID)
					v.id(where, r.ID)
					v.check(r.Order == ri, "%s: order %d at position %d", where, r.Order, ri)
					v.check(r.SectionID == sec.ID && r.TierID == t.ID && r.StandID == st.ID, "%s: lineage does not match section %q", where, sec.ID)
					v.check(r.SeatCount >= 0, "%s: negative seatCount", where)
					v.check(r.PriceOverride == nil || *r.PriceOverride >= 0, "%s: negative priceOverride", where)
					v.status(where, r.Status)
					v.err(where, r.Geometry.Validate())
					for seatID, o := range r.SeatOverrides {
						rowID, n, err := ParseSeatID(seatID)
						v.check(err == nil && rowID == r.ID && n <= r.SeatCount, "%s: override for unknown seat %q", where, seatID)
						v.check(o.Status == "" || IsValidSeatStatus(string(o.Status)), "%s: override status %q", where, o.Status)
					}
				}
			}
		}
	}
	if len(v.errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, errors.Join(v.errs...))
	}
	return nil
}

type validator struct {
	seen map[string]bool
	errs []error
}

func (v *validator) id(where, id string) {
	switch {
	case id == "":
		v.errs = append(v.errs, fmt.Errorf("%s: empty id", where))
	case strings.Contains(id, ":"):
		v.errs = append(v.errs, fmt.Errorf("%s: id %q must not contain ':'", where, id))
	case v.seen[id]:
		v.errs = append(v.errs, fmt.Errorf("%s: duplicate id", where))
	default:
		v.seen[id] = true
	}
}

func (v *validator) status(where string, s Status) {
	v.check(IsValidStatus(string(s)), "%s: unknown status %q", where, s)
}

func (v *validator) check(ok bool, format string, args ...any) {
	if !ok {
		v.errs = append(v.errs, fmt.Errorf(format, args...))
	}
}

func (v *validator) err(where string, err error) {
	if err != nil {
		v.errs = append(v.errs, fmt.Errorf("%s: %w", where, err))
	}
}
