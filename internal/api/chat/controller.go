package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/llm"
	"github.com/SkylineKAI/platform-api/internal/middleware"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

type Controller struct {
	svc *Service
}

func NewController(svc *Service) *Controller {
	return &Controller{svc: svc}
}

func (ctl *Controller) Chat(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(req.History) == 0 && req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either 'history' or 'message' is required"})
		return
	}

	resp, err := ctl.svc.Chat(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "AI service not configured",
				"reply": llm.UnavailableReplyRetry,
			})
		case errors.Is(err, ErrAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			utils.Zlog.Error("Chat completion failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to get response",
				"reply": llm.TroubleReplyRetry,
			})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (ctl *Controller) WidgetChat(c *gin.Context) {
	apiKey := c.GetHeader("X-API-Key")
	if apiKey == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
		return
	}

	var req WidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := ctl.svc.WidgetChat(c.Request.Context(), apiKey, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "AI service not configured",
				"reply": llm.UnavailableReply,
			})
		case errors.Is(err, ErrInvalidAPIKey):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
		default:
			utils.Zlog.Error("Widget chat completion failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to get response",
				"reply": llm.TroubleReply,
			})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
