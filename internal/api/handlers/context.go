package handlers

import (
	"net/http"

	"motion-pcs-backend/internal/auth"
	apperrors "motion-pcs-backend/internal/errors"
	"motion-pcs-backend/internal/policy"

	"github.com/gin-gonic/gin"
)

// requireActor pulls the authenticated actor from the request context. The
// auth middleware sets it on every protected route; a miss means the route
// was wired without RequireAuth.
func requireActor(c *gin.Context) (policy.Actor, bool) {
	actor, ok := auth.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
	}
	return actor, ok
}
