// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	_ "venuebuilder/docs"
	"venuebuilder/internal/shared/config"
	"venuebuilder/internal/shared/database"
	"venuebuilder/internal/venues"
	"venuebuilder/pkg/cache"
	"venuebuilder/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher venues.Publisher
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher venues.Publisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	if !r.config.IsProduction() {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupLayoutRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		checks := gin.H{"postgres": "ok", "redis": "disabled"}
		healthy := true

		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			checks["postgres"] = err.Error()
			healthy = false
		}
		if cache.IsInitialized() {
			checks["redis"] = "ok"
			if err := cache.Ping(c.Request.Context()); err != nil {
				checks["redis"] = err.Error()
				healthy = false
			}
		}

		status, code := "healthy", http.StatusOK
		if !healthy {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"checks":    checks,
			"timestamp": time.Now(),
			"service":   "venuebuilder",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupLayoutRoutes wires the layout builder
func (r *Router) setupLayoutRoutes(rg *gin.RouterGroup) {
	var cacheService cache.Service
	if client := cache.Client(); client != nil {
		cacheService = cache.NewService(client)
	}

	layoutRepo := venues.NewRepository(r.db.PostgreSQL)
	sessionStore := venues.NewSessionStore(cacheService, r.config.Redis.SessionTTL)
	editor := venues.NewEditor(r.config.Builder, logger.GetDefault())

	layoutService := venues.NewService(layoutRepo, sessionStore, r.publisher, editor)
	layoutController := venues.NewController(layoutService)

	venues.SetupLayoutRoutes(rg, layoutController)
}
