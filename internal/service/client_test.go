package service_test

import (
	"errors"
	"testing"

	"motion-pcs-backend/internal/database/models"
	"motion-pcs-backend/internal/mocks"
	"motion-pcs-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ClientServiceTestSuite defines the test suite for ClientService
type ClientServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockClientRepositoryInterface
	clientService *service.ClientService
}

// SetupTest sets up the test suite
func (suite *ClientServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockClientRepositoryInterface(suite.ctrl)
	suite.clientService = service.NewClientService(suite.mockRepo)
}

// TearDownTest cleans up after each test
func (suite *ClientServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// The listing is served from the active-only query; an inactive client has
// no path into the response
func (suite *ClientServiceTestSuite) TestListServesOnlyActiveClients() {
	projectID := uuid.New()
	clients := []models.Client{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      "Acme Corp",
			Status:    models.ClientStatusActive,
			Projects: []models.Project{
				{BaseModel: models.BaseModel{ID: projectID}, CodeName: "MH-2025-01", Status: "ON_SITE"},
			},
		},
	}

	suite.mockRepo.EXPECT().GetActiveWithProjects().Return(clients, nil).Times(1)

	result, err := suite.clientService.List()

	suite.NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Acme Corp", result[0].Name)
	suite.Equal(models.ClientStatusActive, result[0].Status)
	suite.Require().Len(result[0].Projects, 1)
	suite.Equal(projectID, result[0].Projects[0].ID)
	suite.Equal("MH-2025-01", result[0].Projects[0].CodeName)
}

func (suite *ClientServiceTestSuite) TestListEmpty() {
	suite.mockRepo.EXPECT().GetActiveWithProjects().Return([]models.Client{}, nil).Times(1)

	result, err := suite.clientService.List()

	suite.NoError(err)
	suite.Empty(result)
	suite.NotNil(result)
}

func (suite *ClientServiceTestSuite) TestListRepositoryError() {
	suite.mockRepo.EXPECT().GetActiveWithProjects().Return(nil, errors.New("connection refused")).Times(1)

	result, err := suite.clientService.List()

	suite.Nil(result)
	suite.Error(err)
	suite.Contains(err.Error(), "failed to get clients")
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
