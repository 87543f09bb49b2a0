package http

import (
	"github.com/gin-gonic/gin"
	"github.com/scanlens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Info and liveness, no upstream call
	router.GET("/", handler.Info)
	router.GET("/health", handler.HealthCheck)

	// Proxy routes
	api := router.Group("/api")
	{
		api.GET("/lookup/:barcode", handler.LookupBarcode)
		api.GET("/search", handler.SearchProducts)
	}

	router.NoRoute(handler.NotFound)

	return router
}
