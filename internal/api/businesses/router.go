package businesses

import (
	"github.com/gin-gonic/gin"

	"github.com/SkylineKAI/platform-api/internal/config"
	"github.com/SkylineKAI/platform-api/internal/middleware"
)

func RegisterRoutes(router *gin.Engine, store Store, cfg *config.Config) {
	svc := NewService(store, cfg.AIModel)
	ctrl := NewController(svc)

	api := router.Group("/api", middleware.RequireAuth(cfg.JwtSecret))
	api.GET("/businesses", ctrl.List)
	api.POST("/businesses", ctrl.Create)
	api.GET("/businesses/:id", ctrl.Get)
	api.GET("/subscriptions/:businessId", ctrl.GetSubscription)
}
