package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/SkylineKAI/platform-api/internal/config"
	"github.com/SkylineKAI/platform-api/internal/middleware"
)

func RegisterRoutes(router *gin.Engine, store Store, cfg *config.Config) {
	svc := NewService(store, cfg.JwtSecret)
	ctrl := NewController(svc)

	api := router.Group("/api")
	api.POST("/signup", ctrl.Signup)
	api.POST("/login", ctrl.Login)
	api.GET("/me", middleware.RequireAuth(cfg.JwtSecret), ctrl.Me)
}
