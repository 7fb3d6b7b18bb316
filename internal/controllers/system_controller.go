package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SkylineKAI/platform-api/internal/config"
)

type SystemController struct {
	cfg *config.Config
}

func NewSystemController(cfg *config.Config) *SystemController {
	return &SystemController{cfg: cfg}
}

// Status godoc
// @Summary Get platform status
// @Description Report whether the AI and auth subsystems are configured
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (s *SystemController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"bot":           "SkylineKAI SaaS Platform",
		"aiConfigured":  s.cfg.AIAPIKey != "",
		"jwtConfigured": s.cfg.JwtSecret != "",
	})
}

// Info godoc
// @Summary Get system information
// @Description Get detailed system information
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/info [get]
func (s *SystemController) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     s.cfg.ServiceName,
		"version":     "1.0.0",
		"environment": s.cfg.Environment,
		"debug":       s.cfg.Debug,
		"log_level":   s.cfg.LogLevel,
		"timestamp":   time.Now().UTC(),
	})
}
