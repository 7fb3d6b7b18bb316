package integrations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SkylineKAI/platform-api/internal/middleware"
)

type Controller struct {
	svc *Service
}

func NewController(svc *Service) *Controller {
	return &Controller{svc: svc}
}

func (c *Controller) List(ctx *gin.Context) {
	integrations, err := c.svc.List(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("businessId"))
	if err != nil {
		writeIntegrationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"integrations": integrations})
}

func (c *Controller) Connect(ctx *gin.Context) {
	var req ConnectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	integration, err := c.svc.Connect(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("businessId"), &req)
	if err != nil {
		writeIntegrationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"integration": integration})
}

func (c *Controller) Disconnect(ctx *gin.Context) {
	err := c.svc.Disconnect(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("businessId"), ctx.Param("channel"))
	if err != nil {
		writeIntegrationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func writeIntegrationError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBusinessNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
	case errors.Is(err, ErrNotConnected):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Integration not found"})
	case errors.Is(err, ErrAccessDenied):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
