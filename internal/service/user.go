package service

import (
	"errors"
	"fmt"

	"motion-pcs-backend/internal/database/models"
	apperrors "motion-pcs-backend/internal/errors"
	"motion-pcs-backend/internal/policy"
	"motion-pcs-backend/internal/repository"

	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	users repository.UserRepositoryInterface
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepositoryInterface) *UserService {
	return &UserService{users: users}
}

// Me returns the actor's own account
func (s *UserService) Me(actor policy.Actor) (*UserResponse, error) {
	user, err := s.users.GetByID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	response := NewUserResponse(user)
	return &response, nil
}

// Engineers lists a team's assignable members, its Engineers and its Lead.
// Used to populate assignee pickers.
func (s *UserService) Engineers(team models.Team) ([]UserResponse, error) {
	if !models.ValidTeam(team) {
		return nil, apperrors.NewValidationError("team", fmt.Sprintf("unknown team %q", team))
	}

	users, err := s.users.GetEngineersByTeam(team)
	if err != nil {
		return nil, fmt.Errorf("failed to get engineers: %w", err)
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, NewUserResponse(&users[i]))
	}
	return responses, nil
}
