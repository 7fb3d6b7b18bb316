package webhooks

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/api/channels"
	"github.com/SkylineKAI/platform-api/internal/llm"
	"github.com/SkylineKAI/platform-api/internal/types"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

// Controller exposes the channel webhook endpoints.
type Controller struct {
	svc *Service
	ai  llm.Completer
}

func NewController(svc *Service, ai llm.Completer) *Controller {
	return &Controller{svc: svc, ai: ai}
}

// Dispatch handles POST /api/webhooks/:channel/:businessId for every
// supported platform.
func (c *Controller) Dispatch(ctx *gin.Context) {
	channelName := ctx.Param("channel")
	businessID := ctx.Param("businessId")

	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	outcome, err := c.svc.Dispatch(ctx.Request.Context(), channelName, businessID, body, ctx.Request.Header)
	if err != nil {
		switch {
		case errors.Is(err, ErrBusinessNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		case errors.Is(err, ErrIntegrationNotConfigured):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Integration not configured"})
		default:
			utils.Zlog.Error("Webhook dispatch failed",
				zap.String("channel", channelName),
				zap.String("business_id", businessID),
				zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error":     err.Error(),
				"timestamp": time.Now().UTC(),
			})
		}
		return
	}

	switch {
	case outcome.LeadCreated:
		ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Order processed"})
	case outcome.Unavailable:
		outcome.Adapter.EncodeUnavailable(ctx)
	case outcome.Acked:
		ctx.JSON(http.StatusOK, gin.H{"success": true})
	default:
		outcome.Adapter.EncodeReply(ctx, outcome.Reply, outcome.SenderID)
	}
}

// Verify handles GET /api/webhooks/:channel/:businessId, the
// subscription handshake. Twitter answers a CRC challenge; the
// Meta-family channels echo hub.challenge.
func (c *Controller) Verify(ctx *gin.Context) {
	channelName := ctx.Param("channel")
	businessID := ctx.Param("businessId")

	if channelName == string(types.ChannelTwitter) {
		crcToken := ctx.Query("crc_token")
		if crcToken == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "CRC token required"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"response_token": c.svc.TwitterCRCResponse(ctx.Request.Context(), businessID, crcToken),
		})
		return
	}

	mode := ctx.Query("hub.mode")
	token := ctx.Query("hub.verify_token")
	challenge := ctx.Query("hub.challenge")

	if c.svc.VerifyMetaSubscription(ctx.Request.Context(), channelName, businessID, mode, token) {
		utils.Zlog.Info("Webhook verified",
			zap.String("channel", channelName),
			zap.String("business_id", businessID))
		ctx.String(http.StatusOK, challenge)
		return
	}

	ctx.String(http.StatusForbidden, "Forbidden")
}

// LegacyWhatsApp handles POST /api/whatsapp-webhook, the pre-dispatcher
// Twilio endpoint kept for installations that never migrated their
// webhook URL. It answers with the default assistant, no tenant lookup.
func (c *Controller) LegacyWhatsApp(ctx *gin.Context) {
	if c.ai == nil {
		channels.WriteTwiML(ctx, llm.UnavailableTwimlMessage)
		return
	}

	body, _ := io.ReadAll(ctx.Request.Body)
	adapter := channels.Resolve(string(types.ChannelWhatsApp))
	result, err := adapter.Extract(body, ctx.Request.Header)
	if err != nil {
		utils.Zlog.Warn("Failed to parse legacy WhatsApp payload", zap.Error(err))
	}

	utils.Zlog.Info("WhatsApp message received",
		zap.String("from", result.SenderID),
		zap.String("body", result.Text))

	reply, err := c.ai.Complete(ctx.Request.Context(), "", []types.ChatMessage{
		{Role: "system", Content: llm.DefaultSystemPrompt},
		{Role: "user", Content: result.Text},
	})
	if err != nil {
		utils.Zlog.Error("Legacy WhatsApp completion failed", zap.Error(err))
		channels.WriteTwiML(ctx, llm.ErrorTwimlMessage)
		return
	}
	if reply == "" {
		reply = llm.FallbackReply
	}

	channels.WriteTwiML(ctx, reply)
}

// LegacyInstagram handles POST /api/instagram-webhook: log and ack, no
// reply is sent on this alias.
func (c *Controller) LegacyInstagram(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adapter := channels.Resolve(string(types.ChannelInstagram))
	if result, err := adapter.Extract(body, ctx.Request.Header); err == nil && result.Text != "" {
		utils.Zlog.Info("Instagram message", zap.String("text", result.Text), zap.String("sender", result.SenderID))
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// LegacyInstagramVerify handles GET /api/instagram-webhook against the
// platform-wide verify token.
func (c *Controller) LegacyInstagramVerify(ctx *gin.Context) {
	mode := ctx.Query("hub.mode")
	token := ctx.Query("hub.verify_token")
	challenge := ctx.Query("hub.challenge")

	if mode == "subscribe" && token != "" && token == c.svc.instagramVerifyToken {
		utils.Zlog.Info("Instagram webhook verified")
		ctx.String(http.StatusOK, challenge)
		return
	}
	ctx.String(http.StatusForbidden, "Forbidden")
}
