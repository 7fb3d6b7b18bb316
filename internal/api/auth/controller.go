package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/middleware"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

type Controller struct {
	svc *Service
}

func NewController(svc *Service) *Controller {
	return &Controller{svc: svc}
}

func (c *Controller) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := c.svc.Signup(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		utils.Zlog.Error("Signup failed", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Signup failed"})
		return
	}

	ctx.JSON(http.StatusOK, res)
}

func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := c.svc.Login(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		utils.Zlog.Error("Login failed", zap.Error(err))
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Login failed"})
		return
	}

	ctx.JSON(http.StatusOK, res)
}

func (c *Controller) Me(ctx *gin.Context) {
	user, err := c.svc.Me(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}
