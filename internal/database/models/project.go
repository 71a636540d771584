package models

import "github.com/google/uuid"

// Project represents a client engagement. Status is a free-form lifecycle
// label (PLANNING, ON_SITE, DELIVERED, ...), not an enum.
type Project struct {
	BaseModel
	ClientID            uuid.UUID `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	CodeName            string    `json:"code_name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	ClientContactPerson string    `json:"client_contact_person" gorm:"size:200"`
	Status              string    `json:"status" gorm:"size:50;not null;default:'PLANNING'"`

	// Relationships
	Client Client  `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Scopes []Scope `json:"scopes,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
