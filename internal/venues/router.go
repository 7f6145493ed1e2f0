package venues

import (
	"venuebuilder/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupLayoutRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Persisted layouts
	layouts := rg.Group("/admin/venue-layouts")
	layouts.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		layouts.POST("", controller.CreateLayout)             // POST /api/v1/admin/venue-layouts
		layouts.GET("", controller.GetLayouts)                // GET /api/v1/admin/venue-layouts
		layouts.GET("/:id", controller.GetLayout)             // GET /api/v1/admin/venue-layouts/:id
		layouts.DELETE("/:id", controller.DeleteLayout)       // DELETE /api/v1/admin/venue-layouts/:id
		layouts.POST("/:id/sessions", controller.OpenSession) // POST /api/v1/admin/venue-layouts/:id/sessions
	}

	// Editing sessions
	sessions := rg.Group("/admin/layout-sessions/:sessionId")
	sessions.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		sessions.GET("", controller.GetSession)
		sessions.DELETE("", controller.CloseSession)
		sessions.POST("/save", controller.SaveSession)
		sessions.POST("/select", controller.Select)
		sessions.PATCH("/stadium", controller.UpdateStadium)

		sessions.POST("/stands", controller.AddStand)
		sessions.POST("/quick-stands", controller.QuickAddStand)
		sessions.PATCH("/stands/:standId", controller.UpdateStand)
		sessions.DELETE("/stands/:standId", controller.DeleteStand)

		sessions.POST("/stands/:standId/tiers", controller.AddTier)
		sessions.PATCH("/stands/:standId/tiers/:tierId", controller.UpdateTier)
		sessions.DELETE("/stands/:standId/tiers/:tierId", controller.DeleteTier)

		sessions.POST("/stands/:standId/tiers/:tierId/sections", controller.AddSection)
		sessions.PATCH("/stands/:standId/tiers/:tierId/sections/:sectionId", controller.UpdateSection)
		sessions.DELETE("/stands/:standId/tiers/:tierId/sections/:sectionId", controller.DeleteSection)

		sessions.POST("/stands/:standId/tiers/:tierId/sections/:sectionId/rows", controller.AddRow)
		sessions.PATCH("/stands/:standId/tiers/:tierId/sections/:sectionId/rows/:rowId", controller.UpdateRow)
		sessions.DELETE("/stands/:standId/tiers/:tierId/sections/:sectionId/rows/:rowId", controller.DeleteRow)

		sessions.PUT("/tiers/:tierId/ticket-type", controller.AssignTicketType("tierId"))
		sessions.PUT("/sections/:sectionId/ticket-type", controller.AssignTicketType("sectionId"))
		sessions.PUT("/seats/:seatId/override", controller.SetSeatOverride)
		sessions.DELETE("/seats/:seatId/override", controller.ClearSeatOverride)
	}

	// Public reads for renderers and ticketing
	public := rg.Group("/venue-layouts")
	{
		public.GET("/:id/summary", controller.GetSummary)            // GET /api/v1/venue-layouts/:id/summary
		public.GET("/:id/nodes/:nodeId", controller.GetNode)         // GET /api/v1/venue-layouts/:id/nodes/:nodeId
		public.GET("/:id/rows/:rowId/seats", controller.GetRowSeats) // GET /api/v1/venue-layouts/:id/rows/:rowId/seats
	}
}
