package models

import "github.com/google/uuid"

// Scope is one team's slice of work within a project. It is the unit of
// visibility: tickets and comments hang off the scope, and the
// AllowCrossTeamComments gate controls whether other teams may comment.
type Scope struct {
	BaseModel
	ProjectID              uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Team                   Team      `json:"team" gorm:"type:varchar(20);not null;index" validate:"required"`
	AllowCrossTeamComments bool      `json:"allow_cross_team_comments" gorm:"not null;default:false"`

	// Relationships
	Project  Project   `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Tickets  []Ticket  `json:"tickets,omitempty" gorm:"foreignKey:ScopeID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ScopeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Scope
func (Scope) TableName() string {
	return "scopes"
}
