package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SkylineKAI/platform-api/internal/config"
	"github.com/SkylineKAI/platform-api/internal/controllers"
	"github.com/SkylineKAI/platform-api/internal/loaders"
)

// SetupHealthRoutes configures health check and status endpoints
func SetupHealthRoutes(router *gin.Engine, db *loaders.PostgresClient, cfg *config.Config) {
	healthController := controllers.NewHealthController(db)
	systemController := controllers.NewSystemController(cfg)

	// Root endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	router.GET("/health", healthController.HealthCheck)
	router.GET("/health/live", healthController.Liveness)
	router.GET("/health/ready", healthController.Readiness)

	// Platform status consumed by the dashboard
	router.GET("/api/health", systemController.Status)
	router.GET("/api/info", systemController.Info)
}
