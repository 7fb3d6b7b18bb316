package settings

import (
	"github.com/gin-gonic/gin"

	"github.com/SkylineKAI/platform-api/internal/config"
	"github.com/SkylineKAI/platform-api/internal/middleware"
)

func RegisterRoutes(router *gin.Engine, store Store, cfg *config.Config) {
	svc := NewService(store)
	ctrl := NewController(svc)

	api := router.Group("/api", middleware.RequireAuth(cfg.JwtSecret))
	api.GET("/bot-settings/:businessId", ctrl.Get)
	api.PATCH("/bot-settings/:businessId", ctrl.Update)
}
