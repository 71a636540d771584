package service_test

import (
	"testing"

	"motion-pcs-backend/internal/database/models"
	"motion-pcs-backend/internal/mocks"
	"motion-pcs-backend/internal/policy"
	"motion-pcs-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockProjectRepositoryInterface
	projectService *service.ProjectService
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.projectService = service.NewProjectService(suite.mockRepo)
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectServiceTestSuite) TestListForAdminLoadsAllScopes() {
	actor := policy.Actor{UserID: uuid.New(), Role: models.RoleAdmin}

	suite.mockRepo.EXPECT().
		GetAllForTeam(gomock.Nil()).
		Return([]models.Project{
			{BaseModel: models.BaseModel{ID: uuid.New()}, CodeName: "MH-2025-01"},
		}, nil).
		Times(1)

	result, err := suite.projectService.ListForActor(actor)

	suite.NoError(err)
	suite.Len(result, 1)
}

func (suite *ProjectServiceTestSuite) TestListForLeadFiltersByTeam() {
	team := models.TeamStructural
	actor := policy.Actor{UserID: uuid.New(), Role: models.RoleLead, Team: &team}

	suite.mockRepo.EXPECT().
		GetAllForTeam(gomock.Any()).
		DoAndReturn(func(t *models.Team) ([]models.Project, error) {
			suite.Require().NotNil(t)
			suite.Equal(models.TeamStructural, *t)
			return []models.Project{}, nil
		}).
		Times(1)

	_, err := suite.projectService.ListForActor(actor)

	suite.NoError(err)
}

// A non-admin without a team sees no scopes, so the listing is empty and the
// unfiltered query is never issued
func (suite *ProjectServiceTestSuite) TestListForTeamlessNonAdminIsEmpty() {
	actor := policy.Actor{UserID: uuid.New(), Role: models.RoleEngineer}

	result, err := suite.projectService.ListForActor(actor)

	suite.NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
