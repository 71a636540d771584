package service

import (
	"time"

	"motion-pcs-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserResponse represents the response data for a user
type UserResponse struct {
	ID       uuid.UUID    `json:"id"`
	Username string       `json:"username"`
	FullName string       `json:"full_name"`
	Role     models.Role  `json:"role"`
	Team     *models.Team `json:"team,omitempty"`
}

// NewUserResponse converts a user model to its response form
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     user.Role,
		Team:     user.Team,
	}
}

// CommentResponse represents the response data for a comment
type CommentResponse struct {
	ID        uuid.UUID    `json:"id"`
	ScopeID   uuid.UUID    `json:"scope_id"`
	Content   string       `json:"content"`
	Author    UserResponse `json:"author"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
}

// NewCommentResponse converts a comment model to its response form
func NewCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		ScopeID:   comment.ScopeID,
		Content:   comment.Content,
		Author:    NewUserResponse(&comment.Author),
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		UpdatedAt: comment.UpdatedAt.Format(time.RFC3339),
	}
}

// TicketResponse represents the response data for a ticket
type TicketResponse struct {
	ID             uuid.UUID             `json:"id"`
	ScopeID        uuid.UUID             `json:"scope_id"`
	Title          string                `json:"title"`
	TechnicalSpecs string                `json:"technical_specs"`
	Priority       models.TicketPriority `json:"priority"`
	Status         models.TicketStatus   `json:"status"`
	Creator        UserResponse          `json:"creator"`
	Assignees      []UserResponse        `json:"assignees"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}

// NewTicketResponse converts a ticket model to its response form
func NewTicketResponse(ticket *models.Ticket) TicketResponse {
	assignees := make([]UserResponse, 0, len(ticket.Assignees))
	for i := range ticket.Assignees {
		assignees = append(assignees, NewUserResponse(&ticket.Assignees[i]))
	}
	return TicketResponse{
		ID:             ticket.ID,
		ScopeID:        ticket.ScopeID,
		Title:          ticket.Title,
		TechnicalSpecs: ticket.TechnicalSpecs,
		Priority:       ticket.Priority,
		Status:         ticket.Status,
		Creator:        NewUserResponse(&ticket.Creator),
		Assignees:      assignees,
		CreatedAt:      ticket.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      ticket.UpdatedAt.Format(time.RFC3339),
	}
}

// ScopeResponse represents the response data for a scope
type ScopeResponse struct {
	ID                     uuid.UUID         `json:"id"`
	ProjectID              uuid.UUID         `json:"project_id"`
	Team                   models.Team       `json:"team"`
	AllowCrossTeamComments bool              `json:"allow_cross_team_comments"`
	Tickets                []TicketResponse  `json:"tickets"`
	Comments               []CommentResponse `json:"comments"`
}

// NewScopeResponse converts a scope model to its response form
func NewScopeResponse(scope *models.Scope) ScopeResponse {
	tickets := make([]TicketResponse, 0, len(scope.Tickets))
	for i := range scope.Tickets {
		tickets = append(tickets, NewTicketResponse(&scope.Tickets[i]))
	}
	comments := make([]CommentResponse, 0, len(scope.Comments))
	for i := range scope.Comments {
		comments = append(comments, NewCommentResponse(&scope.Comments[i]))
	}
	return ScopeResponse{
		ID:                     scope.ID,
		ProjectID:              scope.ProjectID,
		Team:                   scope.Team,
		AllowCrossTeamComments: scope.AllowCrossTeamComments,
		Tickets:                tickets,
		Comments:               comments,
	}
}

// ProjectResponse represents the response data for a project
type ProjectResponse struct {
	ID                  uuid.UUID       `json:"id"`
	ClientID            uuid.UUID       `json:"client_id"`
	CodeName            string          `json:"code_name"`
	ClientContactPerson string          `json:"client_contact_person"`
	Status              string          `json:"status"`
	ClientName          string          `json:"client_name,omitempty"`
	Scopes              []ScopeResponse `json:"scopes"`
}

// NewProjectResponse converts a project model to its response form
func NewProjectResponse(project *models.Project) ProjectResponse {
	scopes := make([]ScopeResponse, 0, len(project.Scopes))
	for i := range project.Scopes {
		scopes = append(scopes, NewScopeResponse(&project.Scopes[i]))
	}
	return ProjectResponse{
		ID:                  project.ID,
		ClientID:            project.ClientID,
		CodeName:            project.CodeName,
		ClientContactPerson: project.ClientContactPerson,
		Status:              project.Status,
		ClientName:          project.Client.Name,
		Scopes:              scopes,
	}
}

// ProjectSummary is the shallow project form nested under a client
type ProjectSummary struct {
	ID       uuid.UUID `json:"id"`
	CodeName string    `json:"code_name"`
	Status   string    `json:"status"`
}

// ClientResponse represents the response data for a client
type ClientResponse struct {
	ID       uuid.UUID           `json:"id"`
	Name     string              `json:"name"`
	LogoURL  string              `json:"logo_url"`
	Status   models.ClientStatus `json:"status"`
	Projects []ProjectSummary    `json:"projects"`
}

// NewClientResponse converts a client model to its response form
func NewClientResponse(client *models.Client) ClientResponse {
	projects := make([]ProjectSummary, 0, len(client.Projects))
	for _, p := range client.Projects {
		projects = append(projects, ProjectSummary{ID: p.ID, CodeName: p.CodeName, Status: p.Status})
	}
	return ClientResponse{
		ID:       client.ID,
		Name:     client.Name,
		LogoURL:  client.LogoURL,
		Status:   client.Status,
		Projects: projects,
	}
}

// NotificationResponse represents the response data for a notification
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt string    `json:"created_at"`
}

// NewNotificationResponse converts a notification model to its response form
func NewNotificationResponse(notification *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
	}
}
