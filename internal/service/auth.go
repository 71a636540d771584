package service

import (
	"errors"
	"fmt"

	"motion-pcs-backend/internal/auth"
	apperrors "motion-pcs-backend/internal/errors"
	"motion-pcs-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AuthService handles credential checks and session issuance
type AuthService struct {
	users     repository.UserRepositoryInterface
	tokens    *auth.TokenService
	validator *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepositoryInterface, tokens *auth.TokenService, validator *validator.Validate) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		validator: validator,
	}
}

// LoginRequest represents the data needed to log in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed session token and the authenticated user
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Login checks the credentials and issues a session token. Unknown username
// and wrong password both return the same invalid-credentials error.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.SignToken(user.ID, user.Role, user.Team)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResponse{
		Token: token,
		User:  NewUserResponse(user),
	}, nil
}
