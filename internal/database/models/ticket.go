package models

import "github.com/google/uuid"

// TicketPriority represents the urgency of a ticket
type TicketPriority string

const (
	TicketPriorityP0 TicketPriority = "P0"
	TicketPriorityP1 TicketPriority = "P1"
	TicketPriorityP2 TicketPriority = "P2"
)

// ValidTicketPriority reports whether p is a known priority
func ValidTicketPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityP0, TicketPriorityP1, TicketPriorityP2:
		return true
	}
	return false
}

// TicketStatus represents the workflow state of a ticket
type TicketStatus string

const (
	TicketStatusPlanning       TicketStatus = "PLANNING"
	TicketStatusInProgress     TicketStatus = "IN_PROGRESS"
	TicketStatusAwaitingReview TicketStatus = "AWAITING_REVIEW"
	TicketStatusRejected       TicketStatus = "REJECTED"
	TicketStatusCompleted      TicketStatus = "COMPLETED"
)

// ValidTicketStatus reports whether s is a known workflow state
func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusPlanning, TicketStatusInProgress, TicketStatusAwaitingReview,
		TicketStatusRejected, TicketStatusCompleted:
		return true
	}
	return false
}

// Ticket represents a unit of work within a scope. Tickets are never deleted
// in-band; they move through statuses and accumulate assignees.
type Ticket struct {
	BaseModel
	ScopeID        uuid.UUID      `json:"scope_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title          string         `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	TechnicalSpecs string         `json:"technical_specs" gorm:"type:text"`
	Priority       TicketPriority `json:"priority" gorm:"type:varchar(5);not null;default:'P2'" validate:"required"`
	Status         TicketStatus   `json:"status" gorm:"type:varchar(20);not null;default:'PLANNING'" validate:"required"`
	CreatorID      uuid.UUID      `json:"creator_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Scope     Scope  `json:"scope,omitempty" gorm:"foreignKey:ScopeID;constraint:OnDelete:CASCADE"`
	Creator   User   `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Assignees []User `json:"assignees,omitempty" gorm:"many2many:ticket_assignees"`
}

// TableName returns the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}
