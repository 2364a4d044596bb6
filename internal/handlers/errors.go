package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pairlab/pairtinder/internal/models"
	"github.com/pairlab/pairtinder/pkg/logger"
)

// respondError maps service errors onto HTTP statuses: NotFound -> 404,
// Conflict -> 409, validation failures -> 400, anything else -> 500 with a
// generic detail so store internals never leak to the caller.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError

	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	default:
		logger.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
