package seating

import "strings"

// DefaultPalette is cycled by tier level and stand order when no palette is configured.
var DefaultPalette = []string{
	"#3B82F6", // blue
	"#10B981", // green
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#14B8A6", // teal
	"#F97316", // orange
}

// Defaults are the presentation values used when the Editor creates nodes.
type Defaults struct {
	SeatsPerRow      int
	MaxSeatsPerRow   int
	BaseTierPrice    float64
	TierPriceStep    float64
	TierThickness    float64
	TierElevation    float64
	RowSpacing       float64
	RowCurve         float64
	SectionCurve     float64
	QuickAddRows     int
	QuickAddSections int
	Palette          []string
}

func DefaultDefaults() Defaults {
	return Defaults{
		SeatsPerRow:      20,
		MaxSeatsPerRow:   200,
		BaseTierPrice:    500,
		TierPriceStep:    250,
		TierThickness:    40,
		TierElevation:    10,
		RowSpacing:       24,
		RowCurve:         12,
		SectionCurve:     0.5,
		QuickAddRows:     5,
		QuickAddSections: 1,
		Palette:          DefaultPalette,
	}
}

// withFallbacks fills zero values so a partially configured Defaults is usable.
func (d Defaults) withFallbacks() Defaults {
	base := DefaultDefaults()
	if d.SeatsPerRow <= 0 {
		d.SeatsPerRow = base.SeatsPerRow
	}
	if d.MaxSeatsPerRow <= 0 {
		d.MaxSeatsPerRow = base.MaxSeatsPerRow
	}
	if d.SeatsPerRow > d.MaxSeatsPerRow {
		d.SeatsPerRow = d.MaxSeatsPerRow
	}
	if d.BaseTierPrice < 0 {
		d.BaseTierPrice = base.BaseTierPrice
	}
	if d.TierPriceStep < 0 {
		d.TierPriceStep = base.TierPriceStep
	}
	if d.TierThickness <= 0 {
		d.TierThickness = base.TierThickness
	}
	if d.TierElevation < 0 {
		d.TierElevation = base.TierElevation
	}
	if d.RowSpacing <= 0 {
		d.RowSpacing = base.RowSpacing
	}
	if d.SectionCurve < 0 || d.SectionCurve > 1 {
		d.SectionCurve = base.SectionCurve
	}
	if d.QuickAddRows <= 0 {
		d.QuickAddRows = base.QuickAddRows
	}
	if d.QuickAddSections <= 0 {
		d.QuickAddSections = base.QuickAddSections
	}
	if len(d.Palette) == 0 {
		d.Palette = base.Palette
	}
	return d
}

// PaletteColor picks the palette entry for index, wrapping around.
func PaletteColor(palette []string, index int) string {
	if len(palette) == 0 {
		return ""
	}
	if index < 0 {
		index = -index
	}
	return palette[index%len(palette)]
}

// TierPrice is the default base price for a tier at level.
func (d Defaults) TierPrice(level int) float64 {
	return d.BaseTierPrice + float64(level)*d.TierPriceStep
}

// RowLabel returns the spreadsheet-style label for a zero-based row position:
// 0 → "A", 25 → "Z", 26 → "AA".
func RowLabel(index int) string {
	if index < 0 {
		return ""
	}
	var b strings.Builder
	var letters []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		letters = append(letters, byte('A'+(n-1)%26))
	}
	for i := len(letters) - 1; i >= 0; i-- {
		b.WriteByte(letters[i])
	}
	return b.String()
}

// RowLabelIndex is the inverse of RowLabel. Labels that are not an uppercase
// letter sequence report false.
func RowLabelIndex(label string) (int, bool) {
	if label == "" || len(label) > 6 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c < 'A' || c > 'Z' {
			return 0, false
		}
		n = n*26 + int(c-'A') + 1
	}
	return n - 1, true
}
