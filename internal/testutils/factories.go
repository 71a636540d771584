package testutils

import (
	"time"

	"motion-pcs-backend/internal/auth"
	"motion-pcs-backend/internal/database/models"

	"github.com/google/uuid"
)

// DefaultTestPassword is the plaintext behind every factory user's hash
const DefaultTestPassword = "password123"

// precomputed so suites don't pay bcrypt cost per fixture
var defaultPasswordHash string

func init() {
	hash, err := auth.HashPassword(DefaultTestPassword)
	if err != nil {
		panic(err)
	}
	defaultPasswordHash = hash
}

func baseModel() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test Engineer on the SOFTWARE team
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	team := models.TeamSoftware
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "user_" + id.String()[:8],
		FullName:     "Test Engineer",
		PasswordHash: defaultPasswordHash,
		Role:         models.RoleEngineer,
		Team:         &team,
	}
}

// Admin creates a test Admin. Admins carry no team.
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.FullName = "Test Admin"
	user.Role = models.RoleAdmin
	user.Team = nil
	return user
}

// Lead creates a test Lead on the given team
func (f *UserFactory) Lead(team models.Team) *models.User {
	user := f.Create()
	user.FullName = "Test Lead"
	user.Role = models.RoleLead
	user.Team = &team
	return user
}

// Engineer creates a test Engineer on the given team
func (f *UserFactory) Engineer(team models.Team) *models.User {
	user := f.Create()
	user.Team = &team
	return user
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// ClientFactory provides methods to create test Client data
type ClientFactory struct{}

// NewClientFactory creates a new ClientFactory
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// Create creates a test Client with default values
func (f *ClientFactory) Create() *models.Client {
	return &models.Client{
		BaseModel: baseModel(),
		Name:      "Test Client",
		LogoURL:   "https://example.com/logo.png",
		Status:    models.ClientStatusActive,
	}
}

// WithName sets a custom client name
func (f *ClientFactory) WithName(name string) *models.Client {
	client := f.Create()
	client.Name = name
	return client
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project under the given client
func (f *ProjectFactory) Create(clientID uuid.UUID) *models.Project {
	id := uuid.New()
	return &models.Project{
		BaseModel:           baseModel(),
		ClientID:            clientID,
		CodeName:            "MH-" + id.String()[:8],
		ClientContactPerson: "Test Contact",
		Status:              "PLANNING",
	}
}

// ScopeFactory provides methods to create test Scope data
type ScopeFactory struct{}

// NewScopeFactory creates a new ScopeFactory
func NewScopeFactory() *ScopeFactory {
	return &ScopeFactory{}
}

// Create creates a test Scope for the given project and team, with
// cross-team comments closed
func (f *ScopeFactory) Create(projectID uuid.UUID, team models.Team) *models.Scope {
	return &models.Scope{
		BaseModel: baseModel(),
		ProjectID: projectID,
		Team:      team,
	}
}

// CrossTeam creates a scope with the cross-team comment gate open
func (f *ScopeFactory) CrossTeam(projectID uuid.UUID, team models.Team) *models.Scope {
	scope := f.Create(projectID, team)
	scope.AllowCrossTeamComments = true
	return scope
}

// TicketFactory provides methods to create test Ticket data
type TicketFactory struct{}

// NewTicketFactory creates a new TicketFactory
func NewTicketFactory() *TicketFactory {
	return &TicketFactory{}
}

// Create creates a test Ticket in the given scope created by the given user
func (f *TicketFactory) Create(scopeID, creatorID uuid.UUID) *models.Ticket {
	return &models.Ticket{
		BaseModel:      baseModel(),
		ScopeID:        scopeID,
		Title:          "Test Ticket",
		TechnicalSpecs: "Some technical specs",
		Priority:       models.TicketPriorityP2,
		Status:         models.TicketStatusPlanning,
		CreatorID:      creatorID,
	}
}

// WithTitle sets a custom ticket title
func (f *TicketFactory) WithTitle(scopeID, creatorID uuid.UUID, title string) *models.Ticket {
	ticket := f.Create(scopeID, creatorID)
	ticket.Title = title
	return ticket
}

// CommentFactory provides methods to create test Comment data
type CommentFactory struct{}

// NewCommentFactory creates a new CommentFactory
func NewCommentFactory() *CommentFactory {
	return &CommentFactory{}
}

// Create creates a test Comment on the given scope by the given author
func (f *CommentFactory) Create(scopeID, authorID uuid.UUID) *models.Comment {
	return &models.Comment{
		BaseModel: baseModel(),
		ScopeID:   scopeID,
		Content:   "Test comment",
		AuthorID:  authorID,
	}
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates an unread test Notification for the given recipient
func (f *NotificationFactory) Create(recipientID uuid.UUID) *models.Notification {
	return &models.Notification{
		BaseModel:   baseModel(),
		RecipientID: recipientID,
		Message:     "Test notification",
	}
}

// FactorySet bundles all factories for convenient use in suites
type FactorySet struct {
	User         *UserFactory
	Client       *ClientFactory
	Project      *ProjectFactory
	Scope        *ScopeFactory
	Ticket       *TicketFactory
	Comment      *CommentFactory
	Notification *NotificationFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Client:       NewClientFactory(),
		Project:      NewProjectFactory(),
		Scope:        NewScopeFactory(),
		Ticket:       NewTicketFactory(),
		Comment:      NewCommentFactory(),
		Notification: NewNotificationFactory(),
	}
}
