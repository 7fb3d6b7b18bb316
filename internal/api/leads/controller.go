package leads

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SkylineKAI/platform-api/internal/middleware"
	"github.com/SkylineKAI/platform-api/internal/types"
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

	lead, err := c.svc.Create(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrBusinessNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"lead": lead})
}

func (c *Controller) List(ctx *gin.Context) {
	leads, err := c.svc.List(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("businessId"))
	if err != nil {
		writeLeadError(ctx, err)
		return
	}
	if leads == nil {
		leads = []types.Lead{}
	}
	ctx.JSON(http.StatusOK, gin.H{"leads": leads})
}

func (c *Controller) Update(ctx *gin.Context) {
	var req UpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := c.svc.Update(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("id"), &req)
	if err != nil {
		writeLeadError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"lead": lead})
}

func writeLeadError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrLeadNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
	case errors.Is(err, ErrAccessDenied):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
