package venues

import (
	"encoding/json"
	"time"

	"venuebuilder/internal/seating"
)

type LayoutResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Code             string    `json:"code"`
	LayoutType       string    `json:"layout_type"`
	TotalCapacity    int       `json:"total_capacity"`
	SellableCapacity int       `json:"sellable_capacity"`
	StandCount       int       `json:"stand_count"`
	Version          int       `json:"version"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// LayoutDetailResponse carries the persisted document verbatim.
type LayoutDetailResponse struct {
	LayoutResponse
	Document json.RawMessage `json:"document"`
}

type PaginatedLayouts struct {
	Layouts    []LayoutResponse `json:"layouts"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

type CapacitySummaryResponse struct {
	LayoutID         string                 `json:"layout_id"`
	Version          int                    `json:"version"`
	TotalCapacity    int                    `json:"total_capacity"`
	SellableCapacity int                    `json:"sellable_capacity"`
	Stands           []seating.StandSummary `json:"stands"`
}

type CapacityResponse struct {
	Sellable int `json:"sellable"`
	Total    int `json:"total"`
}

// SessionResponse is returned by every builder operation so the client can
// redraw from a single payload.
type SessionResponse struct {
	SessionID string            `json:"session_id"`
	LayoutID  string            `json:"layout_id"`
	Revision  int               `json:"revision"`
	Dirty     bool              `json:"dirty"`
	Selection seating.Selection `json:"selection"`
	Capacity  CapacityResponse  `json:"capacity"`
	CreatedID string            `json:"created_id,omitempty"`
	Stadium   *seating.Stadium  `json:"stadium"`
}

func (l *VenueLayout) ToResponse() LayoutResponse {
	return LayoutResponse{
		ID:               l.ID.String(),
		Name:             l.Name,
		Code:             l.Code,
		LayoutType:       l.LayoutType,
		TotalCapacity:    l.TotalCapacity,
		SellableCapacity: l.SellableCapacity,
		StandCount:       l.StandCount,
		Version:          l.Version,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func (l *VenueLayout) ToDetailResponse() LayoutDetailResponse {
	return LayoutDetailResponse{
		LayoutResponse: l.ToResponse(),
		Document:       json.RawMessage(l.Document),
	}
}

func toSessionResponse(s *seating.Session) *SessionResponse {
	return &SessionResponse{
		SessionID: s.ID,
		LayoutID:  s.LayoutID,
		Revision:  s.Revision,
		Dirty:     s.Dirty,
		Selection: s.Selection,
		Capacity: CapacityResponse{
			Sellable: s.Stadium.StadiumCapacity(seating.CapacityOptions{}),
			Total:    s.Stadium.StadiumCapacity(seating.CapacityOptions{IncludeBlocked: true}),
		},
		Stadium: s.Stadium,
	}
}
