package businesses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/middleware"
	"github.com/SkylineKAI/platform-api/internal/types"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

type Controller struct {
	svc *Service
}

func NewController(svc *Service) *Controller {
	return &Controller{svc: svc}
}

func (c *Controller) Create(ctx *gin.Context) {
	var req CreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business, err := c.svc.Create(ctx.Request.Context(), middleware.UserID(ctx), &req)
	if err != nil {
		utils.Zlog.Error("Create business failed", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"business": business})
}

func (c *Controller) List(ctx *gin.Context) {
	businesses, err := c.svc.List(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if businesses == nil {
		businesses = []types.Business{}
	}
	ctx.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

func (c *Controller) Get(ctx *gin.Context) {
	business, err := c.svc.Get(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("id"))
	if err != nil {
		writeOwnershipError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"business": business})
}

func (c *Controller) GetSubscription(ctx *gin.Context) {
	subscription, err := c.svc.GetSubscription(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("businessId"))
	if err != nil {
		writeOwnershipError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"subscription": subscription})
}

// writeOwnershipError maps the shared ownership failures onto their
// HTTP shapes.
func writeOwnershipError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
	case errors.Is(err, ErrAccessDenied):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
