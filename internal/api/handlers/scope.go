package handlers

import (
	"net/http"

	"motion-pcs-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScopeHandler handles HTTP requests for scopes
type ScopeHandler struct {
	scopeService service.ScopeServiceInterface
}

// NewScopeHandler creates a new scope handler
func NewScopeHandler(scopeService service.ScopeServiceInterface) *ScopeHandler {
	return &ScopeHandler{scopeService: scopeService}
}

// ToggleComments flips a scope's cross-team comment gate
// @Summary Toggle cross-team comments
// @Description Flip whether members of other teams may comment on this scope. Allowed for the owning team's Lead and for Admins.
// @Tags scopes
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Success 200 {object} service.ScopeResponse "Successfully toggled"
// @Failure 400 {object} map[string]interface{} "Invalid scope ID"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Scope not found"
// @Security CookieAuth
// @Router /scopes/{id}/comments/toggle [post]
func (h *ScopeHandler) ToggleComments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scope ID"})
		return
	}

	scope, err := h.scopeService.ToggleComments(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scope)
}
