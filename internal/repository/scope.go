package repository

import (
	"motion-pcs-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScopeRepository handles database operations for scopes
type ScopeRepository struct {
	db *gorm.DB
}

// NewScopeRepository creates a new scope repository
func NewScopeRepository(db *gorm.DB) *ScopeRepository {
	return &ScopeRepository{db: db}
}

// Create creates a new scope
func (r *ScopeRepository) Create(scope *models.Scope) error {
	return r.db.Create(scope).Error
}

// GetByID retrieves a scope by ID
func (r *ScopeRepository) GetByID(id uuid.UUID) (*models.Scope, error) {
	var scope models.Scope
	err := r.db.First(&scope, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &scope, nil
}

// GetWithTickets retrieves a scope with all its tickets, each ticket's
// creator and assignees included. Used to compute comment fan-out.
func (r *ScopeRepository) GetWithTickets(id uuid.UUID) (*models.Scope, error) {
	var scope models.Scope
	err := r.db.
		Preload("Tickets").
		Preload("Tickets.Creator").
		Preload("Tickets.Assignees").
		First(&scope, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &scope, nil
}

// Update updates a scope
func (r *ScopeRepository) Update(scope *models.Scope) error {
	return r.db.Save(scope).Error
}
