package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds checks and indexes AutoMigrate cannot express
func MigrateConstraints(db *gorm.DB) error {
	statements := []string{
		// Capacities are derived on save and can never disagree
		`DO $$ BEGIN
			ALTER TABLE venue_layouts
			ADD CONSTRAINT chk_venue_layouts_capacity
			CHECK (sellable_capacity >= 0 AND sellable_capacity <= total_capacity);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,

		`DO $$ BEGIN
			ALTER TABLE venue_layouts
			ADD CONSTRAINT chk_venue_layouts_version CHECK (version >= 1);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,

		// Listings filter by type and sort by recency
		`CREATE INDEX IF NOT EXISTS idx_venue_layouts_type_created
		ON venue_layouts (layout_type, created_at DESC);`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
