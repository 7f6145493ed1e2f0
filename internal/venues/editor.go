package venues

import (
	"venuebuilder/internal/seating"
	"venuebuilder/internal/shared/config"
	"venuebuilder/pkg/logger"
)

// NewEditor builds the layout editor with the configured presentation
// defaults. Unset values fall back to the seating package defaults.
func NewEditor(cfg config.BuilderConfig, log *logger.Logger) *seating.Editor {
	d := seating.DefaultDefaults()
	d.SeatsPerRow = cfg.DefaultSeatsPerRow
	d.MaxSeatsPerRow = cfg.MaxSeatsPerRow
	d.BaseTierPrice = cfg.BaseTierPrice
	d.TierPriceStep = cfg.TierPriceStep
	d.QuickAddRows = cfg.QuickAddRows
	if len(cfg.Palette) > 0 {
		d.Palette = cfg.Palette
	}
	return seating.NewEditor(seating.WithDefaults(d), seating.WithLogger(log))
}
