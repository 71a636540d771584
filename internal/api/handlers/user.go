package handlers

import (
	"net/http"

	"motion-pcs-backend/internal/database/models"
	"motion-pcs-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the authenticated user's own account
// @Summary Get current user
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security CookieAuth
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	user, err := h.userService.Me(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetEngineers lists a team's assignable members
// @Summary List a team's engineers
// @Description Get the members of a team that can be assigned to tickets, including the team's Lead.
// @Tags users
// @Produce json
// @Param team query string true "Team name"
// @Success 200 {array} service.UserResponse "Successfully retrieved engineers"
// @Failure 400 {object} map[string]interface{} "Unknown team"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security CookieAuth
// @Router /engineers [get]
func (h *UserHandler) GetEngineers(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	team := models.Team(c.Query("team"))
	engineers, err := h.userService.Engineers(team)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, engineers)
}
