package service

import (
	"errors"
	"fmt"

	apperrors "motion-pcs-backend/internal/errors"
	"motion-pcs-backend/internal/policy"
	"motion-pcs-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScopeService handles business logic for scopes
type ScopeService struct {
	scopes repository.ScopeRepositoryInterface
}

// NewScopeService creates a new scope service
func NewScopeService(scopes repository.ScopeRepositoryInterface) *ScopeService {
	return &ScopeService{scopes: scopes}
}

// ToggleComments flips a scope's cross-team comment gate and returns the new
// state. Allowed for the owning team's Lead and for Admins.
func (s *ScopeService) ToggleComments(actor policy.Actor, scopeID uuid.UUID) (*ScopeResponse, error) {
	scope, err := s.scopes.GetByID(scopeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScopeNotFound
		}
		return nil, fmt.Errorf("failed to get scope: %w", err)
	}

	if err := policy.CanToggleComments(actor, scope).Err(); err != nil {
		return nil, err
	}

	scope.AllowCrossTeamComments = !scope.AllowCrossTeamComments
	if err := s.scopes.Update(scope); err != nil {
		return nil, fmt.Errorf("failed to update scope: %w", err)
	}

	response := NewScopeResponse(scope)
	return &response, nil
}
