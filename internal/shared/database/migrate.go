package database

import (
	"venuebuilder/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&venues.VenueLayout{},
	)
}
