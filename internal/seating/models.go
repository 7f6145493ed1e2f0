package seating

// Status is the stored state of a structural node.
type Status string

const (
	StatusActive  Status = "active"
	StatusBlocked Status = "blocked"
)

func IsValidStatus(status string) bool {
	switch Status(status) {
	case StatusActive, StatusBlocked:
		return true
	default:
		return false
	}
}

// SeatStatus is the resolved state of a single seat.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatBooked    SeatStatus = "booked"
	SeatReserved  SeatStatus = "reserved"
	SeatDisabled  SeatStatus = "disabled"
	SeatBlocked   SeatStatus = "blocked"
)

// IsValidSeatStatus reports whether status may be stored as a seat override.
// SeatBlocked is derived from ancestors and never stored.
func IsValidSeatStatus(status string) bool {
	switch SeatStatus(status) {
	case SeatAvailable, SeatBooked, SeatReserved, SeatDisabled:
		return true
	default:
		return false
	}
}

type Style struct {
	Color string `json:"color,omitempty"`
}

// Stadium is the root of a seating layout. Stadium values are treated as
// immutable: the Editor returns a new *Stadium for every change and shares
// untouched subtrees with the previous version.
type Stadium struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Code   string  `json:"code"`
	Style  Style   `json:"style"`
	Stands []Stand `json:"stands"`
}

type Stand struct {
	ID        string        `json:"id"`
	StadiumID string        `json:"stadiumId"`
	Name      string        `json:"name"`
	Code      string        `json:"code"`
	Order     int           `json:"order"`
	Geometry  StandGeometry `json:"geometry"`
	Status    Status        `json:"status"`
	Style     Style         `json:"style"`
	Tiers     []Tier        `json:"tiers"`
}

type Tier struct {
	ID           string       `json:"id"`
	StandID      string       `json:"standId"`
	Name         string       `json:"name"`
	Code         string       `json:"code"`
	Level        int          `json:"level"`
	Geometry     TierGeometry `json:"geometry"`
	BasePrice    float64      `json:"basePrice"`
	Status       Status       `json:"status"`
	TicketTypeID string       `json:"ticketTypeId,omitempty"`
	Style        Style        `json:"style"`
	Sections     []Section    `json:"sections"`
}

type Section struct {
	ID            string          `json:"id"`
	TierID        string          `json:"tierId"`
	StandID       string          `json:"standId"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Order         int             `json:"order"`
	Geometry      SectionGeometry `json:"geometry"`
	Status        Status          `json:"status"`
	PriceOverride *float64        `json:"priceOverride"`
	TicketTypeID  string          `json:"ticketTypeId,omitempty"`
	Rows          []Row           `json:"rows"`
}

// Row keeps SeatCount as the source of truth for its seats; only seats that
// were customised individually appear in SeatOverrides, keyed by seat id.
type Row struct {
	ID            string                  `json:"id"`
	SectionID     string                  `json:"sectionId"`
	TierID        string                  `json:"tierId"`
	StandID       string                  `json:"standId"`
	Label         string                  `json:"label"`
	Order         int                     `json:"order"`
	SeatCount     int                     `json:"seatCount"`
	Geometry      RowGeometry             `json:"geometry"`
	Status        Status                  `json:"status"`
	PriceOverride *float64                `json:"priceOverride"`
	SeatOverrides map[string]SeatOverride `json:"seatOverrides,omitempty"`
}

type SeatOverride struct {
	Status       SeatStatus `json:"status,omitempty"`
	TicketTypeID string     `json:"ticketTypeId,omitempty"`
}

// Seat is materialised from a Row on read.
type Seat struct {
	ID           string        `json:"id"`
	RowID        string        `json:"rowId"`
	SectionID    string        `json:"sectionId"`
	TierID       string        `json:"tierId"`
	StandID      string        `json:"standId"`
	Index        int           `json:"index"`
	Number       int           `json:"number"`
	Label        string        `json:"label"`
	Status       SeatStatus    `json:"status"`
	Price        float64       `json:"price"`
	TicketTypeID string        `json:"ticketTypeId,omitempty"`
	Placement    SeatPlacement `json:"placement"`
}

// NodeKind names a level of the layout tree.
type NodeKind string

const (
	KindStadium NodeKind = "stadium"
	KindStand   NodeKind = "stand"
	KindTier    NodeKind = "tier"
	KindSection NodeKind = "section"
	KindRow     NodeKind = "row"
	KindSeat    NodeKind = "seat"
)

// Float returns a pointer to v, for price overrides.
func Float(v float64) *float64 {
	return &v
}
