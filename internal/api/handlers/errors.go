package handlers

import (
	"net/http"

	apperrors "motion-pcs-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status. The error message is
// passed through verbatim so policy deny reasons reach the client unmasked.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
