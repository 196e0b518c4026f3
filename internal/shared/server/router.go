package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/activity"
	"portal-backend/internal/clients"
	"portal-backend/internal/documents"
	"portal-backend/internal/messages"
	"portal-backend/internal/presets"
	"portal-backend/internal/services/health"
	"portal-backend/internal/shared/config"
	"portal-backend/internal/shared/metrics"
	"portal-backend/internal/shared/server/middleware"
	"portal-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router registers.
type RouterDeps struct {
	Config          config.Config
	DocumentHandler *documents.Handler
	PresetHandler   *presets.Handler
	ClientHandler   *clients.Handler
	MessageHandler  *messages.Handler
	ActivityHandler *activity.Handler
	Health          *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(api)
	}
	if deps.PresetHandler != nil {
		deps.PresetHandler.RegisterRoutes(api)
	}
	if deps.ClientHandler != nil {
		deps.ClientHandler.RegisterRoutes(api)
	}
	if deps.MessageHandler != nil {
		deps.MessageHandler.RegisterRoutes(api)
	}
	if deps.ActivityHandler != nil {
		deps.ActivityHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
