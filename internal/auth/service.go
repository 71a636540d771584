package auth

import (
	"fmt"

	"motion-pcs-backend/internal/database/models"
	"motion-pcs-backend/internal/policy"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookieName is the cookie that carries the session token
const SessionCookieName = "token"

// SessionCookieMaxAge bounds the session lifetime. The token itself carries
// no expiry claim; the cookie is the only thing that ends a session.
const SessionCookieMaxAge = 7 * 24 * 60 * 60 // 7 days, in seconds

// bcryptCost is the adaptive hash work factor used for stored credentials
const bcryptCost = 10

// Claims represents the identity recovered from a session token
type Claims struct {
	UserID string       `json:"userId"`
	Role   models.Role  `json:"role"`
	Team   *models.Team `json:"team"`
	jwt.RegisteredClaims
}

// Actor converts the claims into a policy actor
func (c *Claims) Actor() (policy.Actor, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return policy.Actor{}, fmt.Errorf("invalid user id in token: %w", err)
	}
	return policy.Actor{UserID: id, Role: c.Role, Team: c.Team}, nil
}

// TokenService signs and verifies session tokens and checks credentials
type TokenService struct {
	secret []byte
}

// NewTokenService creates a new token service
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// HashPassword hashes a plaintext password for storage
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// SignToken encodes {userId, role, team} as a signed HS256 token. No exp
// claim is set: the transport cookie's MaxAge is the only session bound.
func (s *TokenService) SignToken(userID uuid.UUID, role models.Role, team *models.Team) (string, error) {
	claims := &Claims{
		UserID: userID.String(),
		Role:   role,
		Team:   team,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken validates and parses a session token. Any malformed, unsigned
// or tampered input yields an error, never a panic.
func (s *TokenService) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
