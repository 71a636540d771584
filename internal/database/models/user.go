package models

// Role represents what a user is allowed to do across the application
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleLead     Role = "LEAD"
	RoleEngineer Role = "ENGINEER"
)

// Team represents the engineering discipline a user belongs to
type Team string

const (
	TeamSoftware      Team = "SOFTWARE"
	TeamStructural    Team = "STRUCTURAL"
	TeamElectrical    Team = "ELECTRICAL"
	TeamEnvironmental Team = "ENVIRONMENTAL"
)

// ValidTeam reports whether s names a known team
func ValidTeam(s Team) bool {
	switch s {
	case TeamSoftware, TeamStructural, TeamElectrical, TeamEnvironmental:
		return true
	}
	return false
}

// User represents an account in the tracker. Team is nil only for admins;
// every Lead and Engineer belongs to exactly one team.
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"uniqueIndex;not null;size:100" validate:"required,min=3,max=100"`
	FullName     string `json:"full_name" gorm:"size:200" validate:"max=200"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`
	Role         Role   `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	Team         *Team  `json:"team,omitempty" gorm:"type:varchar(20);index"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
