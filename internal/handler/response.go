package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/afitoip/portfolio-api/internal/repository"
	"github.com/afitoip/portfolio-api/pkg/logger"
)

// errorJSON writes the uniform error shape shared by every endpoint.
func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondRepoError maps repository errors onto the HTTP taxonomy.
// Unexpected errors are logged with full detail and surfaced as a
// generic 500; the original error never reaches the client.
func respondRepoError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		errorJSON(c, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, repository.ErrNoFieldsToUpdate):
		errorJSON(c, http.StatusBadRequest, "No fields to update")
	default:
		logger.Log.Error("Database operation failed",
			zap.String("path", c.FullPath()),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
}
