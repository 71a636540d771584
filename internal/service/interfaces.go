package service

import (
	"motion-pcs-backend/internal/database/models"
	"motion-pcs-backend/internal/policy"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthServiceInterface defines the interface for auth service operations
type AuthServiceInterface interface {
	Login(req *LoginRequest) (*LoginResponse, error)
}

// UserServiceInterface defines the interface for user service operations
type UserServiceInterface interface {
	Me(actor policy.Actor) (*UserResponse, error)
	Engineers(team models.Team) ([]UserResponse, error)
}

// ClientServiceInterface defines the interface for client service operations
type ClientServiceInterface interface {
	List() ([]ClientResponse, error)
}

// ProjectServiceInterface defines the interface for project service operations
type ProjectServiceInterface interface {
	ListForActor(actor policy.Actor) ([]ProjectResponse, error)
}

// TicketServiceInterface defines the interface for ticket service operations
type TicketServiceInterface interface {
	Create(actor policy.Actor, req *CreateTicketRequest) (*TicketResponse, error)
	UpdateStatus(actor policy.Actor, ticketID uuid.UUID, req *UpdateTicketStatusRequest) (*TicketResponse, error)
	Assign(actor policy.Actor, ticketID uuid.UUID, req *AssignTicketRequest) (*TicketResponse, error)
	Update(actor policy.Actor, ticketID uuid.UUID, req *UpdateTicketRequest) (*TicketResponse, error)
}

// CommentServiceInterface defines the interface for comment service operations
type CommentServiceInterface interface {
	Add(actor policy.Actor, scopeID uuid.UUID, req *AddCommentRequest) (*CommentResponse, error)
	Update(actor policy.Actor, commentID uuid.UUID, req *UpdateCommentRequest) (*CommentResponse, error)
}

// ScopeServiceInterface defines the interface for scope service operations
type ScopeServiceInterface interface {
	ToggleComments(actor policy.Actor, scopeID uuid.UUID) (*ScopeResponse, error)
}

// NotificationServiceInterface defines the interface for notification service operations
type NotificationServiceInterface interface {
	Unread(actor policy.Actor) ([]NotificationResponse, error)
	MarkRead(actor policy.Actor, notificationID uuid.UUID) (*NotificationResponse, error)
}
