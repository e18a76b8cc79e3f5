package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pageza/moodbites/backend/internal/database"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check returns the health status of the API
func (h *HealthHandler) Check(c *gin.Context) {
	if err := database.HealthCheck(c.Request.Context(), h.db); err != nil {
		log.Warn().Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Root handles GET /
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the MoodBites API")
}
