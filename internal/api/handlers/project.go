package handlers

import (
	"net/http"

	"motion-pcs-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects lists all projects with the caller's visible scope trees
// @Summary List projects
// @Description Get every project with its scopes filtered to the caller's team. Admins see all scopes.
// @Tags projects
// @Produce json
// @Success 200 {array} service.ProjectResponse "Successfully retrieved projects"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security CookieAuth
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListForActor(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}
