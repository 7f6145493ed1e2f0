package seating

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"venuebuilder/pkg/logger"
)

// Editor is the only sanctioned way to change a layout. Every method takes a
// tree and returns a new one; the input is never modified. Mutations whose
// target cannot be resolved return the input unchanged together with an error
// for which IsNoOp is true. Invalid input is rejected before anything is
// copied.
type Editor struct {
	ids      IDGenerator
	defaults Defaults
	log      *logger.Logger
}

type EditorOption func(*Editor)

func WithIDGenerator(ids IDGenerator) EditorOption {
	return func(e *Editor) {
		if ids != nil {
			e.ids = ids
		}
	}
}

func WithDefaults(d Defaults) EditorOption {
	return func(e *Editor) {
		e.defaults = d.withFallbacks()
	}
}

func WithLogger(l *logger.Logger) EditorOption {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

func NewEditor(opts ...EditorOption) *Editor {
	e := &Editor{
		ids:      NewUUIDGenerator(),
		defaults: DefaultDefaults(),
		log:      logger.GetDefault(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) Defaults() Defaults {
	return e.defaults
}

// noop logs a skipped mutation and hands the unchanged tree back.
func (e *Editor) noop(s *Stadium, op string, err error) (*Stadium, error) {
	e.log.LogMutationNoOp(context.Background(), op, err)
	return s, err
}

func (e *Editor) invalid(s *Stadium, op string, err error) (*Stadium, error) {
	e.log.Debug("Layout mutation rejected", slog.String("operation", op), slog.String("error", err.Error()))
	return s, err
}

// NewStadium creates an empty layout.
func (e *Editor) NewStadium(name, code string) *Stadium {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "New Stadium"
	}
	return &Stadium{
		ID:     e.ids.NewID(KindStadium),
		Name:   name,
		Code:   strings.TrimSpace(code),
		Stands: []Stand{},
	}
}

type StadiumUpdate struct {
	Name  *string
	Code  *string
	Color *string
}

func (e *Editor) UpdateStadium(s *Stadium, u StadiumUpdate) (*Stadium, error) {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return e.invalid(s, "update_stadium", fmt.Errorf("%w: name must not be empty", ErrInvalidInput))
	}
	out := *s
	if u.Name != nil {
		out.Name = strings.TrimSpace(*u.Name)
	}
	if u.Code != nil {
		out.Code = strings.TrimSpace(*u.Code)
	}
	if u.Color != nil {
		out.Style.Color = *u.Color
	}
	return &out, nil
}

// STANDS

func (e *Editor) newStand(s *Stadium, order int, name string) Stand {
	if name = strings.TrimSpace(name); name == "" {
		name = fmt.Sprintf("Stand %d", order+1)
	}
	return Stand{
		ID:        e.ids.NewID(KindStand),
		StadiumID: s.ID,
		Name:      name,
		Code:      fmt.Sprintf("S%d", order+1),
		Order:     order,
		Geometry:  StandGeometry{VisualWeight: 1, Shape: ShapeArc},
		Status:    StatusActive,
		Style:     Style{Color: PaletteColor(e.defaults.Palette, order)},
		Tiers:     []Tier{},
	}
}

// AddStand appends an empty stand and rebalances every stand's arc.
func (e *Editor) AddStand(s *Stadium, name string) (*Stadium, string, error) {
	st := e.newStand(s, len(s.Stands), name)
	out := s.withStands(func(stands []Stand) []Stand {
		return rebalanceStands(append(stands, st))
	})
	return out, st.ID, nil
}

// QuickAdded names the chain created by QuickAddStand.
type QuickAdded struct {
	StandID   string
	TierID    string
	SectionID string
}

// QuickAddStand appends a stand already populated with one tier, the default
// number of sections and rows.
func (e *Editor) QuickAddStand(s *Stadium, name string) (*Stadium, QuickAdded, error) {
	st := e.newStand(s, len(s.Stands), name)
	tier := e.newTier(st, 0, "")
	n := e.defaults.QuickAddSections
	for i := 0; i < n; i++ {
		sec := e.newSection(tier, i, "")
		for r := 0; r < e.defaults.QuickAddRows; r++ {
			sec.Rows = append(sec.Rows, e.newRow(sec))
		}
		tier.Sections = append(tier.Sections, sec)
	}
	tier.Sections = rebalanceSections(tier.Sections, st.Geometry.Span())
	st.Tiers = append(st.Tiers, tier)

	out := s.withStands(func(stands []Stand) []Stand {
		return rebalanceStands(append(stands, st))
	})
	return out, QuickAdded{StandID: st.ID, TierID: tier.ID, SectionID: tier.Sections[0].ID}, nil
}

type StandUpdate struct {
	Name     *string
	Code     *string
	Geometry *StandGeometry
	Status   *Status
	Color    *string
}

func (u StandUpdate) validate() error {
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
	return nil
}

func (e *Editor) UpdateStand(s *Stadium, standID string, u StandUpdate) (*Stadium, error) {
	if err := u.validate(); err != nil {
		return e.invalid(s, "update_stand", err)
	}
	p, err := s.resolve(standID)
	if err != nil {
		return e.noop(s, "update_stand", err)
	}
	return s.withStand(p, func(st *Stand) {
		if u.Name != nil {
			st.Name = strings.TrimSpace(*u.Name)
		}
		if u.Code != nil {
			st.Code = strings.TrimSpace(*u.Code)
		}
		if u.Geometry != nil {
			oldSpan := st.Geometry.Span()
			st.Geometry = *u.Geometry
			if span := st.Geometry.Span(); span != oldSpan {
				st.Tiers = respanTiers(st.Tiers, span)
			}
		}
		if u.Status != nil {
			st.Status = *u.Status
		}
		if u.Color != nil {
			st.Style.Color = *u.Color
		}
	}), nil
}

// DeleteStand removes the stand and everything beneath it, renumbers the
// remaining stands and rebalances their arcs.
func (e *Editor) DeleteStand(s *Stadium, standID string) (*Stadium, error) {
	p, err := s.resolve(standID)
	if err != nil {
		return e.noop(s, "delete_stand", err)
	}
	return s.withStands(func(stands []Stand) []Stand {
		stands = append(stands[:p.Stand], stands[p.Stand+1:]...)
		return rebalanceStands(stands)
	}), nil
}

// rebalanceStands renumbers stands and splits the circle into equal windows.
func rebalanceStands(stands []Stand) []Stand {
	n := len(stands)
	if n == 0 {
		return stands
	}
	width := 360 / float64(n)
	for i := range stands {
		oldSpan := stands[i].Geometry.Span()
		stands[i].Order = i
		stands[i].Geometry.StartAngle = normalizeAngle(float64(i) * width)
		stands[i].Geometry.EndAngle = normalizeAngle(float64(i+1) * width)
		if stands[i].Geometry.VisualWeight <= 0 {
			stands[i].Geometry.VisualWeight = 1
		}
		if stands[i].Geometry.Shape == "" {
			stands[i].Geometry.Shape = ShapeArc
		}
		if span := stands[i].Geometry.Span(); span != oldSpan {
			stands[i].Tiers = respanTiers(stands[i].Tiers, span)
		}
	}
	return stands
}

// respanTiers redistributes every tier's sections over a changed stand arc.
func respanTiers(tiers []Tier, span float64) []Tier {
	out := cloneSlice(tiers)
	for i := range out {
		out[i].Sections = rebalanceSections(cloneSlice(out[i].Sections), span)
	}
	return out
}

// TIERS

func (e *Editor) newTier(st Stand, level int, name string) Tier {
	if name = strings.TrimSpace(name); name == "" {
		name = fmt.Sprintf("Level %d", level+1)
	}
	d := e.defaults
	return Tier{
		ID:      e.ids.NewID(KindTier),
		StandID: st.ID,
		Name:    name,
		Code:    tierCode(level),
		Level:   level,
		Geometry: TierGeometry{
			RadiusOffset: float64(level) * d.TierThickness,
			Thickness:    d.TierThickness,
			Elevation:    float64(level) * d.TierElevation,
		},
		BasePrice: d.TierPrice(level),
		Status:    StatusActive,
		Style:     Style{Color: PaletteColor(d.Palette, level)},
		Sections:  []Section{},
	}
}

// AddTier appends a tier one level above the stand's current top tier.
func (e *Editor) AddTier(s *Stadium, standID, name string) (*Stadium, string, error) {
	p, err := s.resolve(standID)
	if err != nil {
		out, err := e.noop(s, "add_tier", err)
		return out, "", err
	}
	var id string
	out := s.withStand(p, func(st *Stand) {
		t := e.newTier(*st, len(st.Tiers), name)
		id = t.ID
		st.Tiers = append(cloneSlice(st.Tiers), t)
	})
	return out, id, nil
}

type TierUpdate struct {
	Name         *string
	Code         *string
	Geometry     *TierGeometry
	BasePrice    *float64
	Status       *Status
	TicketTypeID *string
	Color        *string
}

func (u TierUpdate) validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if u.Geometry != nil {
		if err := u.Geometry.Validate(); err != nil {
			return err
		}
	}
	if u.BasePrice != nil && !(*u.BasePrice >= 0) {
		return fmt.Errorf("%w: basePrice must be >= 0", ErrInvalidInput)
	}
	if u.Status != nil && !IsValidStatus(string(*u.Status)) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *u.Status)
	}
	return nil
}

func (e *Editor) UpdateTier(s *Stadium, standID, tierID string, u TierUpdate) (*Stadium, error) {
	if err := u.validate(); err != nil {
		return e.invalid(s, "update_tier", err)
	}
	p, err := s.resolve(standID, tierID)
	if err != nil {
		return e.noop(s, "update_tier", err)
	}
	return s.withTier(p, func(t *Tier) {
		if u.Name != nil {
			t.Name = strings.TrimSpace(*u.Name)
		}
		if u.Code != nil {
			t.Code = strings.TrimSpace(*u.Code)
		}
		if u.Geometry != nil {
			t.Geometry = *u.Geometry
		}
		if u.BasePrice != nil {
			t.BasePrice = *u.BasePrice
		}
		if u.Status != nil {
			t.Status = *u.Status
		}
		if u.TicketTypeID != nil {
			t.TicketTypeID = strings.TrimSpace(*u.TicketTypeID)
		}
		if u.Color != nil {
			t.Style.Color = *u.Color
		}
	}), nil
}

// DeleteTier removes the tier subtree and renumbers the remaining levels.
// Tiers that still carry the defaults of their old level move down with
// their new level; edited values are kept.
func (e *Editor) DeleteTier(s *Stadium, standID, tierID string) (*Stadium, error) {
	p, err := s.resolve(standID, tierID)
	if err != nil {
		return e.noop(s, "delete_tier", err)
	}
	d := e.defaults
	return s.withStand(p, func(st *Stand) {
		tiers := cloneSlice(st.Tiers)
		tiers = append(tiers[:p.Tier], tiers[p.Tier+1:]...)
		for i := range tiers {
			t := &tiers[i]
			old := t.Level
			if old != i {
				if t.Geometry.RadiusOffset == float64(old)*d.TierThickness {
					t.Geometry.RadiusOffset = float64(i) * d.TierThickness
				}
				if t.Geometry.Elevation == float64(old)*d.TierElevation {
					t.Geometry.Elevation = float64(i) * d.TierElevation
				}
				if t.Code == tierCode(old) {
					t.Code = tierCode(i)
				}
			}
			t.Level = i
		}
		st.Tiers = tiers
	}), nil
}

func tierCode(level int) string {
	return fmt.Sprintf("T%d", level+1)
}
