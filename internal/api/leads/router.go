package leads

import (
	"github.com/gin-gonic/gin"

	"github.com/SkylineKAI/platform-api/internal/config"
	"github.com/SkylineKAI/platform-api/internal/middleware"
)

func RegisterRoutes(router *gin.Engine, store Store, cfg *config.Config) {
	svc := NewService(store)
	ctrl := NewController(svc)

	api := router.Group("/api")
	// Lead capture stays open so widgets can post without a session.
	api.POST("/leads", ctrl.Create)

	authed := api.Group("", middleware.RequireAuth(cfg.JwtSecret))
	authed.GET("/leads/:businessId", ctrl.List)
	authed.PATCH("/leads/:id", ctrl.Update)
}
