package venues

import (
	"time"

	"github.com/google/uuid"
)

type LayoutType string

const (
	LayoutTypeStadium LayoutType = "STADIUM"
	LayoutTypeTheater LayoutType = "THEATER"
	LayoutTypeArena   LayoutType = "ARENA"
	LayoutTypeGeneral LayoutType = "GENERAL"
)

// VenueLayout is a persisted seating layout. Document holds the full tree as
// produced by seating.Marshal; the capacity columns are recomputed on every
// save so listings never need to decode the document.
type VenueLayout struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name             string    `gorm:"not null"`
	Code             string    `gorm:"uniqueIndex;not null"`
	LayoutType       string    `gorm:"not null;default:GENERAL"` // STADIUM, THEATER, ARENA, GENERAL
	Document         []byte    `gorm:"type:jsonb;not null"`
	TotalCapacity    int       `gorm:"not null;default:0"`
	SellableCapacity int       `gorm:"not null;default:0"`
	StandCount       int       `gorm:"not null;default:0"`
	Version          int       `gorm:"not null;default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LayoutStats are the derived columns written alongside a document.
type LayoutStats struct {
	Name             string
	Code             string
	TotalCapacity    int
	SellableCapacity int
	StandCount       int
}
