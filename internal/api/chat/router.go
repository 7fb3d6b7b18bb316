package chat

import (
	"github.com/gin-gonic/gin"

	"github.com/SkylineKAI/platform-api/internal/config"
	"github.com/SkylineKAI/platform-api/internal/core"
	"github.com/SkylineKAI/platform-api/internal/llm"
	"github.com/SkylineKAI/platform-api/internal/middleware"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

func RegisterRoutes(router *gin.Engine, store Store, cfg *config.Config, ai llm.Completer, keys *utils.ApiKeyCache, saver *core.ConversationSaver) {
	ctl := NewController(NewService(store, ai, keys, saver))

	api := router.Group("/api")
	api.POST("/widget/chat", ctl.WidgetChat)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(cfg.JwtSecret))
	authed.POST("/chat", ctl.Chat)
}
