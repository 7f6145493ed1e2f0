package venues

import "venuebuilder/internal/seating"

type CreateLayoutRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=255"`
	Code        string `json:"code" binding:"required,min=2,max=50"`
	LayoutType  string `json:"layout_type" binding:"required,oneof=STADIUM THEATER ARENA GENERAL"`
	UseTemplate bool   `json:"use_template"`
}

type LayoutFilters struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search     string `form:"search"`
	LayoutType string `form:"layout_type" binding:"omitempty,oneof=STADIUM THEATER ARENA GENERAL"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=name code total_capacity created_at updated_at"`
	SortOrder  string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// AddNodeRequest is the optional body of every add endpoint.
type AddNodeRequest struct {
	Name string `json:"name" binding:"omitempty,max=100"`
}

type SelectRequest struct {
	StandID   string `json:"stand_id" binding:"required"`
	TierID    string `json:"tier_id"`
	SectionID string `json:"section_id"`
}

type UpdateStadiumRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Code  *string `json:"code" binding:"omitempty,min=2,max=50"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}

func (r UpdateStadiumRequest) toUpdate() seating.StadiumUpdate {
	return seating.StadiumUpdate{Name: r.Name, Code: r.Code, Color: r.Color}
}

type StandGeometryRequest struct {
	StartAngle   float64 `json:"start_angle" binding:"min=0,lt=360"`
	EndAngle     float64 `json:"end_angle" binding:"min=0,lt=360"`
	VisualWeight float64 `json:"visual_weight" binding:"gt=0"`
	Shape        string  `json:"shape" binding:"required,stand_shape"`
}

type UpdateStandRequest struct {
	Name     *string               `json:"name" binding:"omitempty,min=1,max=100"`
	Code     *string               `json:"code" binding:"omitempty,max=20"`
	Geometry *StandGeometryRequest `json:"geometry"`
	Status   *string               `json:"status" binding:"omitempty,node_status"`
	Color    *string               `json:"color" binding:"omitempty,hexcolor"`
}

func (r UpdateStandRequest) toUpdate() seating.StandUpdate {
	u := seating.StandUpdate{Name: r.Name, Code: r.Code, Status: statusPtr(r.Status), Color: r.Color}
	if g := r.Geometry; g != nil {
		u.Geometry = &seating.StandGeometry{
			StartAngle:   g.StartAngle,
			EndAngle:     g.EndAngle,
			VisualWeight: g.VisualWeight,
			Shape:        seating.StandShape(g.Shape),
		}
	}
	return u
}

type TierGeometryRequest struct {
	RadiusOffset float64 `json:"radius_offset" binding:"min=0"`
	Thickness    float64 `json:"thickness" binding:"gt=0"`
	Elevation    float64 `json:"elevation" binding:"min=0"`
}

type UpdateTierRequest struct {
	Name         *string              `json:"name" binding:"omitempty,min=1,max=100"`
	Code         *string              `json:"code" binding:"omitempty,max=20"`
	Geometry     *TierGeometryRequest `json:"geometry"`
	BasePrice    *float64             `json:"base_price" binding:"omitempty,min=0"`
	Status       *string              `json:"status" binding:"omitempty,node_status"`
	TicketTypeID *string              `json:"ticket_type_id" binding:"omitempty,max=100"`
	Color        *string              `json:"color" binding:"omitempty,hexcolor"`
}

func (r UpdateTierRequest) toUpdate() seating.TierUpdate {
	u := seating.TierUpdate{
		Name:         r.Name,
		Code:         r.Code,
		BasePrice:    r.BasePrice,
		Status:       statusPtr(r.Status),
		TicketTypeID: r.TicketTypeID,
		Color:        r.Color,
	}
	if g := r.Geometry; g != nil {
		u.Geometry = &seating.TierGeometry{RadiusOffset: g.RadiusOffset, Thickness: g.Thickness, Elevation: g.Elevation}
	}
	return u
}

type SectionGeometryRequest struct {
	StartAngle float64 `json:"start_angle" binding:"min=0,lt=360"`
	EndAngle   float64 `json:"end_angle" binding:"min=0,lt=360"`
	Curve      float64 `json:"curve" binding:"min=0,max=1"`
}

type UpdateSectionRequest struct {
	Name               *string                 `json:"name" binding:"omitempty,min=1,max=100"`
	Code               *string                 `json:"code" binding:"omitempty,max=20"`
	Geometry           *SectionGeometryRequest `json:"geometry"`
	Status             *string                 `json:"status" binding:"omitempty,node_status"`
	PriceOverride      *float64                `json:"price_override" binding:"omitempty,min=0"`
	ClearPriceOverride bool                    `json:"clear_price_override"`
	TicketTypeID       *string                 `json:"ticket_type_id" binding:"omitempty,max=100"`
}

func (r UpdateSectionRequest) toUpdate() seating.SectionUpdate {
	u := seating.SectionUpdate{
		Name:               r.Name,
		Code:               r.Code,
		Status:             statusPtr(r.Status),
		PriceOverride:      r.PriceOverride,
		ClearPriceOverride: r.ClearPriceOverride,
		TicketTypeID:       r.TicketTypeID,
	}
	if g := r.Geometry; g != nil {
		u.Geometry = &seating.SectionGeometry{StartAngle: g.StartAngle, EndAngle: g.EndAngle, Curve: g.Curve}
	}
	return u
}

type RowGeometryRequest struct {
	Curve   float64 `json:"curve"`
	Spacing float64 `json:"spacing" binding:"gt=0"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

type UpdateRowRequest struct {
	Label              *string             `json:"label" binding:"omitempty,min=1,max=10"`
	SeatCount          *int                `json:"seat_count" binding:"omitempty,min=0"`
	Geometry           *RowGeometryRequest `json:"geometry"`
	Status             *string             `json:"status" binding:"omitempty,node_status"`
	PriceOverride      *float64            `json:"price_override" binding:"omitempty,min=0"`
	ClearPriceOverride bool                `json:"clear_price_override"`
}

// toUpdate leaves the upper seat-count bound to the editor, which knows the
// configured maximum.
func (r UpdateRowRequest) toUpdate() seating.RowUpdate {
	u := seating.RowUpdate{
		Label:              r.Label,
		SeatCount:          r.SeatCount,
		Status:             statusPtr(r.Status),
		PriceOverride:      r.PriceOverride,
		ClearPriceOverride: r.ClearPriceOverride,
	}
	if g := r.Geometry; g != nil {
		u.Geometry = &seating.RowGeometry{Curve: g.Curve, Spacing: g.Spacing, OffsetX: g.OffsetX, OffsetY: g.OffsetY}
	}
	return u
}

// TicketTypeRequest with an empty id clears the assignment.
type TicketTypeRequest struct {
	TicketTypeID string `json:"ticket_type_id" binding:"max=100"`
}

type SeatOverrideRequest struct {
	Status       string `json:"status" binding:"omitempty,seat_status"`
	TicketTypeID string `json:"ticket_type_id" binding:"omitempty,max=100"`
}

func (r SeatOverrideRequest) toOverride() seating.SeatOverride {
	return seating.SeatOverride{Status: seating.SeatStatus(r.Status), TicketTypeID: r.TicketTypeID}
}

func statusPtr(s *string) *seating.Status {
	if s == nil {
		return nil
	}
	status := seating.Status(*s)
	return &status
}
