package models

import "github.com/google/uuid"

// Notification is a denormalized message addressed to a single recipient.
// Rows are immutable once created except for the one-way IsRead flip.
type Notification struct {
	BaseModel
	RecipientID uuid.UUID `json:"recipient_id" gorm:"type:uuid;not null;index" validate:"required"`
	Message     string    `json:"message" gorm:"not null;size:500" validate:"required"`
	IsRead      bool      `json:"is_read" gorm:"not null;default:false"`

	// Relationships
	Recipient User `json:"recipient,omitempty" gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
