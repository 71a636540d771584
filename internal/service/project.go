package service

import (
	"fmt"

	"motion-pcs-backend/internal/policy"
	"motion-pcs-backend/internal/repository"

	"motion-pcs-backend/internal/database/models"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projects repository.ProjectRepositoryInterface
}

// NewProjectService creates a new project service
func NewProjectService(projects repository.ProjectRepositoryInterface) *ProjectService {
	return &ProjectService{projects: projects}
}

// ListForActor returns every project with the scope tree the actor is
// allowed to see: all scopes for Admins, only the actor's team's scopes for
// everyone else. Visibility is scope-granular.
func (s *ProjectService) ListForActor(actor policy.Actor) ([]ProjectResponse, error) {
	var team *models.Team
	if actor.Role != models.RoleAdmin {
		// A non-admin without a team can see no scopes at all
		if actor.Team == nil {
			return []ProjectResponse{}, nil
		}
		team = actor.Team
	}

	projects, err := s.projects.GetAllForTeam(team)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, NewProjectResponse(&projects[i]))
	}
	return responses, nil
}
