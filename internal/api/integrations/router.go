package integrations

import (
	"github.com/gin-gonic/gin"

	"github.com/SkylineKAI/platform-api/internal/config"
	"github.com/SkylineKAI/platform-api/internal/middleware"
)

func RegisterRoutes(router *gin.Engine, store Store, cfg *config.Config) {
	ctl := NewController(NewService(store, cfg.PublicBaseURL))

	authed := router.Group("/api")
	authed.Use(middleware.RequireAuth(cfg.JwtSecret))
	authed.GET("/integrations/:businessId", ctl.List)
	authed.POST("/integrations/:businessId", ctl.Connect)
	authed.DELETE("/integrations/:businessId/:channel", ctl.Disconnect)
}
