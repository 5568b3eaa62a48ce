package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/afitoip/portfolio-api/internal/database"
	"github.com/afitoip/portfolio-api/pkg/logger"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports database reachability. It always answers 200: an
// unreachable database is reported in the body, not by failing the
// process or the endpoint.
// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		logger.Log.Warn("Health check database ping failed",
			zap.Error(err),
		)
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": true})
}
