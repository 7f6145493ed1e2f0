package seating

import (
	"fmt"
	"math"
)

type StandShape string

const (
	ShapeArc      StandShape = "arc"
	ShapeStraight StandShape = "straight"
)

func IsValidShape(shape string) bool {
	switch StandShape(shape) {
	case ShapeArc, ShapeStraight:
		return true
	default:
		return false
	}
}

// StandGeometry places a stand on the bowl. EndAngle may be numerically
// smaller than StartAngle for arcs that wrap past 0°.
type StandGeometry struct {
	StartAngle   float64    `json:"startAngle"`
	EndAngle     float64    `json:"endAngle"`
	VisualWeight float64    `json:"visualWeight"`
	Shape        StandShape `json:"shape"`
}

func (g StandGeometry) Validate() error {
	if err := validAngle("startAngle", g.StartAngle); err != nil {
		return err
	}
	if err := validAngle("endAngle", g.EndAngle); err != nil {
		return err
	}
	if !(g.VisualWeight > 0) || math.IsInf(g.VisualWeight, 0) {
		return fmt.Errorf("%w: visualWeight must be greater than 0, got %v", ErrInvalidGeometry, g.VisualWeight)
	}
	if !IsValidShape(string(g.Shape)) {
		return fmt.Errorf("%w: unknown shape %q", ErrInvalidGeometry, g.Shape)
	}
	return nil
}

// Span returns the arc covered by the stand in degrees. Equal start and end
// angles cover the full circle.
func (g StandGeometry) Span() float64 {
	return arcSpan(g.StartAngle, g.EndAngle)
}

type TierGeometry struct {
	RadiusOffset float64 `json:"radiusOffset"`
	Thickness    float64 `json:"thickness"`
	Elevation    float64 `json:"elevation"`
}

func (g TierGeometry) Validate() error {
	if !(g.RadiusOffset >= 0) || math.IsInf(g.RadiusOffset, 0) {
		return fmt.Errorf("%w: radiusOffset must be >= 0, got %v", ErrInvalidGeometry, g.RadiusOffset)
	}
	if !(g.Thickness > 0) || math.IsInf(g.Thickness, 0) {
		return fmt.Errorf("%w: thickness must be greater than 0, got %v", ErrInvalidGeometry, g.Thickness)
	}
	if !(g.Elevation >= 0) || math.IsInf(g.Elevation, 0) {
		return fmt.Errorf("%w: elevation must be >= 0, got %v", ErrInvalidGeometry, g.Elevation)
	}
	return nil
}

// SectionGeometry angles are offsets into the parent stand's arc.
type SectionGeometry struct {
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
	Curve      float64 `json:"curve"`
}

func (g SectionGeometry) Validate() error {
	if err := validAngle("startAngle", g.StartAngle); err != nil {
		return err
	}
	if err := validAngle("endAngle", g.EndAngle); err != nil {
		return err
	}
	if !(g.Curve >= 0 && g.Curve <= 1) {
		return fmt.Errorf("%w: curve must be within [0,1], got %v", ErrInvalidGeometry, g.Curve)
	}
	return nil
}

// fitsWithin reports whether the section's window lies inside a stand arc of
// the given span.
func (g SectionGeometry) fitsWithin(standSpan float64) error {
	const eps = 1e-6
	if g.StartAngle+arcSpan(g.StartAngle, g.EndAngle) > standSpan+eps {
		return fmt.Errorf("%w: section [%v,%v] exceeds the stand arc of %v degrees",
			ErrInvalidGeometry, g.StartAngle, g.EndAngle, standSpan)
	}
	return nil
}

// RowGeometry is expressed in rendering pixels.
type RowGeometry struct {
	Curve   float64 `json:"curve"`
	Spacing float64 `json:"spacing"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

func (g RowGeometry) Validate() error {
	if !(g.Spacing > 0) || math.IsInf(g.Spacing, 0) {
		return fmt.Errorf("%w: spacing must be greater than 0, got %v", ErrInvalidGeometry, g.Spacing)
	}
	for name, v := range map[string]float64{"curve": g.Curve, "offsetX": g.OffsetX, "offsetY": g.OffsetY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidGeometry, name)
		}
	}
	return nil
}

func validAngle(name string, v float64) error {
	if !(v >= 0 && v < 360) {
		return fmt.Errorf("%w: %s must be within [0,360), got %v", ErrInvalidGeometry, name, v)
	}
	return nil
}

func arcSpan(start, end float64) float64 {
	span := end - start
	if span <= 0 {
		span += 360
	}
	return span
}

// normalizeAngle folds a into [0,360).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}
