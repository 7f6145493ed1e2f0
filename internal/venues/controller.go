package venues

import (
	"log"
	"net/http"

	"venuebuilder/internal/seating"
	"venuebuilder/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	if err := RegisterValidators(); err != nil {
		log.Fatalf("Failed to register request validators: %v", err)
	}
	return &Controller{service: service}
}

// LAYOUTS

// CreateLayout godoc
// @Summary      Create a venue layout
// @Tags         layouts
// @Accept       json
// @Produce      json
// @Param        request body CreateLayoutRequest true "Layout"
// @Success      201 {object} response.StandardApiResponse
// @Router       /admin/venue-layouts [post]
func (c *Controller) CreateLayout(ctx *gin.Context) {
	var req CreateLayoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	layout, err := c.service.CreateLayout(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, "Failed to create layout", err, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Layout created successfully", layout, nil)
}

// GetLayouts godoc
// @Summary      List venue layouts
// @Tags         layouts
// @Produce      json
// @Param        page query int false "Page"
// @Param        limit query int false "Page size"
// @Param        search query string false "Name or code"
// @Param        layout_type query string false "STADIUM, THEATER, ARENA or GENERAL"
// @Success      200 {object} response.StandardApiResponse
// @Router       /admin/venue-layouts [get]
func (c *Controller) GetLayouts(ctx *gin.Context) {
	var filters LayoutFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.ListLayouts(ctx.Request.Context(), filters)
	if err != nil {
		respondError(ctx, "Failed to get layouts", err, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Layouts retrieved successfully", result, nil)
}

func (c *Controller) GetLayout(ctx *gin.Context) {
	layout, err := c.service.GetLayout(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "Failed to get layout", err, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Layout retrieved successfully", layout, nil)
}

func (c *Controller) DeleteLayout(ctx *gin.Context) {
	if err := c.service.DeleteLayout(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, "Failed to delete layout", err, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Layout deleted successfully", nil, nil)
}

// READS

// GetSummary godoc
// @Summary      Capacity per stand and layout totals
// @Tags         layouts
// @Produce      json
// @Param        id path string true "Layout ID"
// @Success      200 {object} response.StandardApiResponse
// @Router       /venue-layouts/{id}/summary [get]
func (c *Controller) GetSummary(ctx *gin.Context) {
	summary, err := c.service.GetSummary(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "Failed to get layout summary", err, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Layout summary retrieved successfully", summary, nil)
}

func (c *Controller) GetNode(ctx *gin.Context) {
	info, err := c.service.RenderNode(ctx.Request.Context(), ctx.Param("id"), ctx.Param("nodeId"))
	if err != nil {
		respondError(ctx, "Failed to get node", err, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Node retrieved successfully", info, nil)
}

func (c *Controller) GetRowSeats(ctx *gin.Context) {
	seats, err := c.service.GetRowSeats(ctx.Request.Context(), ctx.Param("id"), ctx.Param("rowId"))
	if err != nil {
		respondError(ctx, "Failed to get seats", err, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seats retrieved successfully", seats, nil)
}

// SESSIONS

// OpenSession godoc
// @Summary      Open an editing session on a layout
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Layout ID"
// @Success      201 {object} response.StandardApiResponse
// @Router       /admin/venue-layouts/{id}/sessions [post]
func (c *Controller) OpenSession(ctx *gin.Context) {
	session, err := c.service.OpenSession(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "Failed to open session", err, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Session opened successfully", session, nil)
}

func (c *Controller) GetSession(ctx *gin.Context) {
	session, err := c.service.GetSession(ctx.Request.Context(), ctx.Param("sessionId"))
	if err != nil {
		respondError(ctx, "Failed to get session", err, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Session retrieved successfully", session, nil)
}

func (c *Controller) CloseSession(ctx *gin.Context) {
	if err := c.service.CloseSession(ctx.Request.Context(), ctx.Param("sessionId")); err != nil {
		respondError(ctx, "Failed to close session", err, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Session closed successfully", nil, nil)
}

// SaveSession godoc
// @Summary      Persist the session's layout
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.StandardApiResponse
// @Router       /admin/layout-sessions/{sessionId}/save [post]
func (c *Controller) SaveSession(ctx *gin.Context) {
	layout, err := c.service.SaveSession(ctx.Request.Context(), ctx.Param("sessionId"))
	if err != nil {
		respondError(ctx, "Failed to save layout", err, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Layout saved successfully", layout, nil)
}

func (c *Controller) Select(ctx *gin.Context) {
	var req SelectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	session, err := c.service.Select(ctx.Request.Context(), ctx.Param("sessionId"), req)
	if err != nil {
		respondError(ctx, "Failed to change selection", err, sessionData(session))
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Selection updated", session, nil)
}

// BUILDER MUTATIONS

func (c *Controller) UpdateStadium(ctx *gin.Context) {
	var req UpdateStadiumRequest
	if !bindJSON(ctx, &req) {
		return
	}
	c.mutate(ctx, http.StatusOK, "Stadium updated", func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		return e.UpdateStadium(s, req.toUpdate())
	})
}

func (c *Controller) AddStand(ctx *gin.Context) {
	var req AddNodeRequest
	if !bindOptionalJSON(ctx, &req) {
		return
	}
	var created string
	c.mutateCreate(ctx, "Stand added", &created, func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		next, id, err := e.AddStand(s, req.Name)
		created = id
		return next, err
	})
}

// QuickAddStand godoc
// @Summary      Add a stand with one tier, one section and default rows
// @Tags         builder
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      201 {object} response.StandardApiResponse
// @Router       /admin/layout-sessions/{sessionId}/quick-stands [post]
func (c *Controller) QuickAddStand(ctx *gin.Context) {
	var req AddNodeRequest
	if !bindOptionalJSON(ctx, &req) {
		return
	}

	session, err := c.service.QuickAddStand(ctx.Request.Context(), ctx.Param("sessionId"), req.Name)
	if err != nil {
		respondError(ctx, "Failed to add stand", err, sessionData(session))
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Stand added", session, nil)
}

func (c *Controller) UpdateStand(ctx *gin.Context) {
	var req UpdateStandRequest
	if !bindJSON(ctx, &req) {
		return
	}
	standID := ctx.Param("standId")
	c.mutate(ctx, http.StatusOK, "Stand updated", func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		return e.UpdateStand(s, standID, req.toUpdate())
	})
}

func (c *Controller) DeleteStand(ctx *gin.Context) {
	standID := ctx.Param("standId")
	c.mutate(ctx, http.StatusOK, "Stand deleted", func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		return e.DeleteStand(s, standID)
	})
}

func (c *Controller) AddTier(ctx *gin.Context) {
	var req AddNodeRequest
	if !bindOptionalJSON(ctx, &req) {
		return
	}
	standID := ctx.Param("standId")
	var created string
	c.mutateCreate(ctx, "Tier added", &created, func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		next, id, err := e.AddTier(s, standID, req.Name)
		created = id
		return next, err
	})
}

func (c *Controller) UpdateTier(ctx *gin.Context) {
	var req UpdateTierRequest
	if !bindJSON(ctx, &req) {
		return
	}
	standID, tierID := ctx.Param("standId"), ctx.Param("tierId")
	c.mutate(ctx, http.StatusOK, "Tier updated", func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		return e.UpdateTier(s, standID, tierID, req.toUpdate())
	})
}

func (c *Controller) DeleteTier(ctx *gin.Context) {
	standID, tierID := ctx.Param("standId"), ctx.Param("tierId")
	c.mutate(ctx, http.StatusOK, "Tier deleted", func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		return e.DeleteTier(s, standID, tierID)
	})
}

func (c *Controller) AddSection(ctx *gin.Context) {
	var req AddNodeRequest
	if !bindOptionalJSON(ctx, &req) {
		return
	}
	standID, tierID := ctx.Param("standId"), ctx.Param("tierId")
	var created string
	c.mutateCreate(ctx, "Section added", &created, func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		next, id, err := e.AddSection(s, standID, tierID, req.Name)
		created = id
		return next, err
	})
}

func (c *Controller) UpdateSection(ctx *gin.Context) {
	var req UpdateSectionRequest
	if !bindJSON(ctx, &req) {
		return
	}
	standID, tierID, sectionID := ctx.Param("standId"), ctx.Param("tierId"), ctx.Param("sectionId")
	c.mutate(ctx, http.StatusOK, "Section updated", func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		return e.UpdateSection(s, standID, tierID, sectionID, req.toUpdate())
	})
}

func (c *Controller) DeleteSection(ctx *gin.Context) {
	standID, tierID, sectionID := ctx.Param("standId"), ctx.Param("tierId"), ctx.Param("sectionId")
	c.mutate(ctx, http.StatusOK, "Section deleted", func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		return e.DeleteSection(s, standID, tierID, sectionID)
	})
}

func (c *Controller) AddRow(ctx *gin.Context) {
	standID, tierID, sectionID := ctx.Param("standId"), ctx.Param("tierId"), ctx.Param("sectionId")
	var created string
	c.mutateCreate(ctx, "Row added", &created, func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		next, id, err := e.AddRow(s, standID, tierID, sectionID)
		created = id
		return next, err
	})
}

func (c *Controller) UpdateRow(ctx *gin.Context) {
	var req UpdateRowRequest
	if !bindJSON(ctx, &req) {
		return
	}
	standID, tierID, sectionID, rowID := ctx.Param("standId"), ctx.Param("tierId"), ctx.Param("sectionId"), ctx.Param("rowId")
	c.mutate(ctx, http.StatusOK, "Row updated", func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		return e.UpdateRow(s, standID, tierID, sectionID, rowID, req.toUpdate())
	})
}

func (c *Controller) DeleteRow(ctx *gin.Context) {
	standID, tierID, sectionID, rowID := ctx.Param("standId"), ctx.Param("tierId"), ctx.Param("sectionId"), ctx.Param("rowId")
	c.mutate(ctx, http.StatusOK, "Row deleted", func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		return e.DeleteRow(s, standID, tierID, sectionID, rowID)
	})
}

// AssignTicketType returns a handler that assigns a ticket type to the node
// named by the given path parameter.
func (c *Controller) AssignTicketType(param string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req TicketTypeRequest
		if !bindJSON(ctx, &req) {
			return
		}
		nodeID := ctx.Param(param)
		c.mutate(ctx, http.StatusOK, "Ticket type assigned", func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
			return e.AssignTicketType(s, nodeID, req.TicketTypeID)
		})
	}
}

func (c *Controller) SetSeatOverride(ctx *gin.Context) {
	var req SeatOverrideRequest
	if !bindJSON(ctx, &req) {
		return
	}
	seatID := ctx.Param("seatId")
	c.mutate(ctx, http.StatusOK, "Seat updated", func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		return e.SetSeatOverride(s, seatID, req.toOverride())
	})
}

func (c *Controller) ClearSeatOverride(ctx *gin.Context) {
	seatID := ctx.Param("seatId")
	c.mutate(ctx, http.StatusOK, "Seat reset", func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		return e.ClearSeatOverride(s, seatID)
	})
}

// mutate applies m to the session named in the path. Rejected and no-op
// mutations still return the session so the client can resync.
func (c *Controller) mutate(ctx *gin.Context, code int, message string, m seating.Mutation) {
	session, err := c.service.ApplyMutation(ctx.Request.Context(), ctx.Param("sessionId"), m)
	if err != nil {
		respondError(ctx, "Layout change was not applied", err, sessionData(session))
		return
	}

	response.RespondJSON(ctx, "success", code, message, session, nil)
}

// mutateCreate is mutate for add operations; created is filled in by m.
func (c *Controller) mutateCreate(ctx *gin.Context, message string, created *string, m seating.Mutation) {
	session, err := c.service.ApplyMutation(ctx.Request.Context(), ctx.Param("sessionId"), m)
	if err != nil {
		respondError(ctx, "Layout change was not applied", err, sessionData(session))
		return
	}

	session.CreatedID = *created
	response.RespondJSON(ctx, "success", http.StatusCreated, message, session, nil)
}
