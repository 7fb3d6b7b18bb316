package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SkylineKAI/platform-api/internal/api/auth"
	"github.com/SkylineKAI/platform-api/internal/api/businesses"
	"github.com/SkylineKAI/platform-api/internal/api/chat"
	"github.com/SkylineKAI/platform-api/internal/api/integrations"
	"github.com/SkylineKAI/platform-api/internal/api/leads"
	"github.com/SkylineKAI/platform-api/internal/api/settings"
	"github.com/SkylineKAI/platform-api/internal/api/webhooks"
	"github.com/SkylineKAI/platform-api/internal/config"
	"github.com/SkylineKAI/platform-api/internal/core"
	"github.com/SkylineKAI/platform-api/internal/llm"
	"github.com/SkylineKAI/platform-api/internal/loaders"
	"github.com/SkylineKAI/platform-api/internal/middleware"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, db *loaders.PostgresClient, cfg *config.Config, ai llm.Completer, saver *core.ConversationSaver) {
	// Apply global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	keys := utils.NewApiKeyCache(db.GetBusinessByAPIKey, 0)

	// Setup route groups
	SetupHealthRoutes(router, db, cfg)
	auth.RegisterRoutes(router, db, cfg)
	businesses.RegisterRoutes(router, db, cfg)
	leads.RegisterRoutes(router, db, cfg)
	settings.RegisterRoutes(router, db, cfg)
	integrations.RegisterRoutes(router, db, cfg)
	chat.RegisterRoutes(router, db, cfg, ai, keys, saver)
	webhooks.RegisterRoutes(router, db, cfg, ai)
	Setup404Handler(router)
}
