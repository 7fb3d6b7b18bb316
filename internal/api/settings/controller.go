package settings

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

func (c *Controller) Get(ctx *gin.Context) {
	settings, err := c.svc.Get(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("businessId"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (c *Controller) Update(ctx *gin.Context) {
	var req UpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := c.svc.Update(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("businessId"), &req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"settings": settings})
}

func writeError(ctx *gin.Context, err error) {
	if errors.Is(err, ErrAccessDenied) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
