package models

import "github.com/google/uuid"

// Comment is attached to a scope, not to a ticket: a scope's comment thread
// is shared by everyone working its tickets.
type Comment struct {
	BaseModel
	ScopeID  uuid.UUID `json:"scope_id" gorm:"type:uuid;not null;index" validate:"required"`
	Content  string    `json:"content" gorm:"type:text;not null" validate:"required,min=1"`
	AuthorID uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Scope  Scope `json:"scope,omitempty" gorm:"foreignKey:ScopeID;constraint:OnDelete:CASCADE"`
	Author User  `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
