package webhooks

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/SkylineKAI/platform-api/internal/config"
	"github.com/SkylineKAI/platform-api/internal/llm"
	"github.com/SkylineKAI/platform-api/internal/middleware"
)

// RegisterRoutes wires the channel webhook endpoints and their legacy
// aliases.
func RegisterRoutes(router *gin.Engine, store Store, cfg *config.Config, ai llm.Completer) {
	svc := NewService(store, ai, cfg.MetaVerifyToken, cfg.InstagramVerifyToken, cfg.TwitterConsumerSecret)
	ctrl := NewController(svc, ai)

	limit := middleware.RateLimitPerBusiness(rate.Limit(cfg.WebhookRateLimit), cfg.WebhookRateBurst)

	api := router.Group("/api")
	api.POST("/webhooks/:channel/:businessId", limit, ctrl.Dispatch)
	api.GET("/webhooks/:channel/:businessId", ctrl.Verify)

	api.POST("/whatsapp-webhook", ctrl.LegacyWhatsApp)
	api.POST("/instagram-webhook", ctrl.LegacyInstagram)
	api.GET("/instagram-webhook", ctrl.LegacyInstagramVerify)
}
