package models

// ClientStatus represents the status of a client account
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "ACTIVE"
	ClientStatusInactive ClientStatus = "INACTIVE"
)

// Client represents a customer of the consultancy; owns zero or more projects
type Client struct {
	BaseModel
	Name    string       `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	LogoURL string       `json:"logo_url" gorm:"size:500"`
	Status  ClientStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE'" validate:"required"`

	// Relationships
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Client
func (Client) TableName() string {
	return "clients"
}
