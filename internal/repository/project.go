package repository

import (
	"motion-pcs-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAllForTeam retrieves all projects with their full scope trees. When
// team is non-nil only that team's scopes are loaded; a nil team loads
// every scope. Comments come back newest first.
func (r *ProjectRepository) GetAllForTeam(team *models.Team) ([]models.Project, error) {
	var projects []models.Project

	query := r.db.Preload("Client")
	if team != nil {
		query = query.Preload("Scopes", "team = ?", *team)
	} else {
		query = query.Preload("Scopes")
	}
	query = query.
		Preload("Scopes.Tickets").
		Preload("Scopes.Tickets.Creator").
		Preload("Scopes.Tickets.Assignees").
		Preload("Scopes.Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Scopes.Comments.Author")

	err := query.Order("code_name ASC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}
