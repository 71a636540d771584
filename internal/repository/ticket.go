package repository

import (
	"motion-pcs-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketRepository handles database operations for tickets
type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create creates a new ticket
func (r *TicketRepository) Create(ticket *models.Ticket) error {
	return r.db.Create(ticket).Error
}

// GetByID retrieves a ticket by ID
func (r *TicketRepository) GetByID(id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetWithAssignees retrieves a ticket with its creator and assignees
func (r *TicketRepository) GetWithAssignees(id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.
		Preload("Creator").
		Preload("Assignees").
		First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Update updates a ticket
func (r *TicketRepository) Update(ticket *models.Ticket) error {
	return r.db.Save(ticket).Error
}

// UpdateStatusNotifying persists a ticket's status change together with its
// notification fan-out in one transaction. If any notification insert fails
// the status change is rolled back with it.
func (r *TicketRepository) UpdateStatusNotifying(ticket *models.Ticket, notifications []models.Notification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(ticket).Update("status", ticket.Status).Error; err != nil {
			return err
		}
		if len(notifications) > 0 {
			if err := tx.Create(&notifications).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceAssignees replaces a ticket's assignee set. No notifications are
// produced for assignment changes.
func (r *TicketRepository) ReplaceAssignees(ticket *models.Ticket, assignees []models.User) error {
	return r.db.Model(ticket).Association("Assignees").Replace(assignees)
}
