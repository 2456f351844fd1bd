package handlers

import (
	"errors"
	"net/http"

	"sensiblenews/internal/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service-layer errors onto HTTP responses.
// Moderation blocks and validation failures surface their reasons; anything
// unrecognised is a retryable server error.
func respondServiceError(c *gin.Context, err error) {
	var blocked *services.BlockedError
	var verr *services.ValidationError

	switch {
	case errors.As(err, &blocked):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": blocked.Reason})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "details": verr.Messages})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, services.ErrAlreadyResolved):
		c.JSON(http.StatusConflict, gin.H{"error": "Report already resolved"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please retry"})
	}
}
