package handlers

import (
	"net/http"

	"motion-pcs-backend/internal/auth"
	"motion-pcs-backend/internal/config"
	"motion-pcs-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authService service.AuthServiceInterface
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthServiceInterface, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// Login authenticates a user and starts a session
// @Summary Log in
// @Description Check credentials and set the session cookie. Unknown username and wrong password return the same error.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} service.LoginResponse "Successfully logged in"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, result.Token, auth.SessionCookieMaxAge, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)

	c.JSON(http.StatusOK, result)
}

// Logout ends the session
// @Summary Log out
// @Description Clear the session cookie. Logging out without a session is not an error.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
