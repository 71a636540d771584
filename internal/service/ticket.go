package service

import (
	"errors"
	"fmt"

	"motion-pcs-backend/internal/database/models"
	apperrors "motion-pcs-backend/internal/errors"
	"motion-pcs-backend/internal/policy"
	"motion-pcs-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketService handles business logic for tickets
type TicketService struct {
	tickets   repository.TicketRepositoryInterface
	scopes    repository.ScopeRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewTicketService creates a new ticket service
func NewTicketService(
	tickets repository.TicketRepositoryInterface,
	scopes repository.ScopeRepositoryInterface,
	users repository.UserRepositoryInterface,
	validator *validator.Validate,
) *TicketService {
	return &TicketService{
		tickets:   tickets,
		scopes:    scopes,
		users:     users,
		validator: validator,
	}
}

// CreateTicketRequest represents the data needed to create a ticket
type CreateTicketRequest struct {
	ScopeID        uuid.UUID              `json:"scope_id" validate:"required"`
	Title          string                 `json:"title" validate:"required,max=200"`
	TechnicalSpecs string                 `json:"technical_specs"`
	Priority       *models.TicketPriority `json:"priority"`
}

// UpdateTicketStatusRequest represents the data needed to change a ticket's status
type UpdateTicketStatusRequest struct {
	Status models.TicketStatus `json:"status" validate:"required"`
}

// AssignTicketRequest replaces a ticket's assignee set with the given users
type AssignTicketRequest struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

// UpdateTicketRequest represents a partial edit of a ticket's fields.
// Concurrent edits are last-writer-wins; there is no version check.
type UpdateTicketRequest struct {
	Title          *string                `json:"title" validate:"omitempty,max=200"`
	TechnicalSpecs *string                `json:"technical_specs"`
	Priority       *models.TicketPriority `json:"priority"`
}

// Create creates a ticket in a scope with the actor as creator. Priority
// defaults to P2 when omitted.
func (s *TicketService) Create(actor policy.Actor, req *CreateTicketRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := policy.CanCreateTicket(actor).Err(); err != nil {
		return nil, err
	}

	priority := models.TicketPriorityP2
	if req.Priority != nil {
		if !models.ValidTicketPriority(*req.Priority) {
			return nil, apperrors.NewValidationError("priority", fmt.Sprintf("unknown priority %q", *req.Priority))
		}
		priority = *req.Priority
	}

	if _, err := s.scopes.GetByID(req.ScopeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScopeNotFound
		}
		return nil, fmt.Errorf("failed to get scope: %w", err)
	}

	ticket := &models.Ticket{
		ScopeID:        req.ScopeID,
		Title:          req.Title,
		TechnicalSpecs: req.TechnicalSpecs,
		Priority:       priority,
		Status:         models.TicketStatusPlanning,
		CreatorID:      actor.UserID,
	}
	if err := s.tickets.Create(ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	created, err := s.tickets.GetWithAssignees(ticket.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload ticket: %w", err)
	}

	response := NewTicketResponse(created)
	return &response, nil
}

// UpdateStatus moves a ticket to a new status and fans out notifications to
// the ticket's assignees and creator, excluding the actor. The status write
// and the notification inserts share one transaction.
func (s *TicketService) UpdateStatus(actor policy.Actor, ticketID uuid.UUID, req *UpdateTicketStatusRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !models.ValidTicketStatus(req.Status) {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
	}
	if err := policy.CanTransitionTicket(actor, req.Status).Err(); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.GetWithAssignees(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	actorUser, err := s.users.GetByID(actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get acting user: %w", err)
	}

	recipients := StatusChangeRecipients(ticket, actor.UserID)
	message := StatusChangeMessage(ticket.Title, req.Status, actorUser.Username)

	ticket.Status = req.Status
	if err := s.tickets.UpdateStatusNotifying(ticket, BuildNotifications(recipients, message)); err != nil {
		return nil, fmt.Errorf("failed to update ticket status: %w", err)
	}

	response := NewTicketResponse(ticket)
	return &response, nil
}

// Assign replaces a ticket's assignee set. Assignment changes deliberately
// produce no notifications.
func (s *TicketService) Assign(actor policy.Actor, ticketID uuid.UUID, req *AssignTicketRequest) (*TicketResponse, error) {
	if err := policy.CanAssignTicket(actor).Err(); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.GetWithAssignees(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	assignees, err := s.users.GetByIDs(req.UserIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	if len(assignees) != len(dedupe(req.UserIDs)) {
		return nil, apperrors.ErrUserNotFound
	}

	if err := s.tickets.ReplaceAssignees(ticket, assignees); err != nil {
		return nil, fmt.Errorf("failed to assign ticket: %w", err)
	}
	ticket.Assignees = assignees

	response := NewTicketResponse(ticket)
	return &response, nil
}

// Update edits a ticket's descriptive fields. The creator may edit their
// own ticket; Leads and Admins may edit any.
func (s *TicketService) Update(actor policy.Actor, ticketID uuid.UUID, req *UpdateTicketRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ticket, err := s.tickets.GetWithAssignees(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if err := policy.CanEditTicket(actor, ticket).Err(); err != nil {
		return nil, err
	}

	if req.Title != nil {
		ticket.Title = *req.Title
	}
	if req.TechnicalSpecs != nil {
		ticket.TechnicalSpecs = *req.TechnicalSpecs
	}
	if req.Priority != nil {
		if !models.ValidTicketPriority(*req.Priority) {
			return nil, apperrors.NewValidationError("priority", fmt.Sprintf("unknown priority %q", *req.Priority))
		}
		ticket.Priority = *req.Priority
	}

	if err := s.tickets.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	response := NewTicketResponse(ticket)
	return &response, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
