package repository

import (
	"motion-pcs-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	GetEngineersByTeam(team models.Team) ([]models.User, error)
	Update(user *models.User) error
}

// ClientRepositoryInterface defines the interface for client repository operations
type ClientRepositoryInterface interface {
	Create(client *models.Client) error
	GetByID(id uuid.UUID) (*models.Client, error)
	GetActiveWithProjects() ([]models.Client, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetAllForTeam(team *models.Team) ([]models.Project, error)
}

// ScopeRepositoryInterface defines the interface for scope repository operations
type ScopeRepositoryInterface interface {
	Create(scope *models.Scope) error
	GetByID(id uuid.UUID) (*models.Scope, error)
	GetWithTickets(id uuid.UUID) (*models.Scope, error)
	Update(scope *models.Scope) error
}

// TicketRepositoryInterface defines the interface for ticket repository operations
type TicketRepositoryInterface interface {
	Create(ticket *models.Ticket) error
	GetByID(id uuid.UUID) (*models.Ticket, error)
	GetWithAssignees(id uuid.UUID) (*models.Ticket, error)
	Update(ticket *models.Ticket) error
	UpdateStatusNotifying(ticket *models.Ticket, notifications []models.Notification) error
	ReplaceAssignees(ticket *models.Ticket, assignees []models.User) error
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Comment, error)
	CreateNotifying(comment *models.Comment, notifications []models.Notification) error
	Update(comment *models.Comment) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Notification, error)
	GetUnreadByRecipient(recipientID uuid.UUID) ([]models.Notification, error)
	MarkRead(notification *models.Notification) error
}
