package auth

import (
	"net/http"
	"strings"

	apperrors "motion-pcs-backend/internal/errors"
	"motion-pcs-backend/internal/policy"

	"github.com/gin-gonic/gin"
)

// Middleware resolves the session token into actor claims
type Middleware struct {
	tokens *TokenService
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(tokens *TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireAuth resolves the caller's session and rejects anonymous requests.
// The token is read from the session cookie first, then from a Bearer
// header for non-browser clients. Rejection happens before any policy
// check and uses the authentication error message, not a policy deny.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
			c.Abort()
			return
		}

		claims, err := m.tokens.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
			c.Abort()
			return
		}

		actor, err := claims.Actor()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
			c.Abort()
			return
		}

		c.Set("actor", actor)
		c.Set("user_id", claims.UserID)
		c.Set("claims", claims)

		c.Next()
	}
}

func (m *Middleware) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}
	return tokenString
}

// CurrentActor extracts the resolved policy actor from the request context
func CurrentActor(c *gin.Context) (policy.Actor, bool) {
	value, exists := c.Get("actor")
	if !exists {
		return policy.Actor{}, false
	}

	actor, ok := value.(policy.Actor)
	return actor, ok
}

// CurrentClaims extracts the raw token claims from the request context
func CurrentClaims(c *gin.Context) (*Claims, bool) {
	value, exists := c.Get("claims")
	if !exists {
		return nil, false
	}

	claims, ok := value.(*Claims)
	return claims, ok
}
