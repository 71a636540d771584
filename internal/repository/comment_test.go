//go:build integration
// +build integration

package repository

import (
	"testing"

	"motion-pcs-backend/internal/database/models"
	"motion-pcs-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CommentRepositoryTestSuite tests the CommentRepository
type CommentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CommentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CommentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCommentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CommentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CommentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CommentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedScope creates a client, project and scope for comments
func (suite *CommentRepositoryTestSuite) seedScope(team models.Team) *models.Scope {
	client := suite.factories.Client.Create()
	err := NewClientRepository(suite.baseTestSuite.DB).Create(client)
	suite.NoError(err)

	project := suite.factories.Project.Create(client.ID)
	err = NewProjectRepository(suite.baseTestSuite.DB).Create(project)
	suite.NoError(err)

	scope := suite.factories.Scope.Create(project.ID, team)
	err = NewScopeRepository(suite.baseTestSuite.DB).Create(scope)
	suite.NoError(err)

	return scope
}

// seedUser creates and persists a user
func (suite *CommentRepositoryTestSuite) seedUser(user *models.User) *models.User {
	err := NewUserRepository(suite.baseTestSuite.DB).Create(user)
	suite.NoError(err)
	return user
}

// TestCreateNotifying tests that the comment and its fan-out land together
func (suite *CommentRepositoryTestSuite) TestCreateNotifying() {
	scope := suite.seedScope(models.TeamStructural)
	author := suite.seedUser(suite.factories.User.Engineer(models.TeamStructural))
	recipient := suite.seedUser(suite.factories.User.Lead(models.TeamStructural))

	comment := suite.factories.Comment.Create(scope.ID, author.ID)
	notifications := []models.Notification{
		{RecipientID: recipient.ID, Message: "new comment"},
	}

	err := suite.repo.CreateNotifying(comment, notifications)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, comment.ID)

	var count int64
	err = suite.baseTestSuite.DB.Model(&models.Notification{}).
		Where("recipient_id = ?", recipient.ID).
		Count(&count).Error
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestCreateNotifyingRollsBack tests that a failed fan-out insert also drops
// the comment
func (suite *CommentRepositoryTestSuite) TestCreateNotifyingRollsBack() {
	scope := suite.seedScope(models.TeamStructural)
	author := suite.seedUser(suite.factories.User.Engineer(models.TeamStructural))

	comment := suite.factories.Comment.Create(scope.ID, author.ID)
	// RecipientID points at no user, so the FK constraint rejects the insert
	notifications := []models.Notification{
		{RecipientID: uuid.New(), Message: "orphan"},
	}

	err := suite.repo.CreateNotifying(comment, notifications)
	suite.Error(err)

	var count int64
	err = suite.baseTestSuite.DB.Model(&models.Comment{}).
		Where("scope_id = ?", scope.ID).
		Count(&count).Error
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestCreateNotifyingEmptyFanOut tests a comment with nobody to notify
func (suite *CommentRepositoryTestSuite) TestCreateNotifyingEmptyFanOut() {
	scope := suite.seedScope(models.TeamStructural)
	author := suite.seedUser(suite.factories.User.Engineer(models.TeamStructural))

	comment := suite.factories.Comment.Create(scope.ID, author.ID)
	err := suite.repo.CreateNotifying(comment, nil)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, comment.ID)
}

// TestUpdate tests editing a comment's content
func (suite *CommentRepositoryTestSuite) TestUpdate() {
	scope := suite.seedScope(models.TeamStructural)
	author := suite.seedUser(suite.factories.User.Engineer(models.TeamStructural))

	comment := suite.factories.Comment.Create(scope.ID, author.ID)
	err := suite.repo.CreateNotifying(comment, nil)
	suite.NoError(err)

	comment.Content = "revised"
	err = suite.repo.Update(comment)
	suite.NoError(err)

	updated, err := suite.repo.GetByID(comment.ID)
	suite.NoError(err)
	suite.Equal("revised", updated.Content)
}

// TestGetByIDNotFound tests retrieving a non-existent comment
func (suite *CommentRepositoryTestSuite) TestGetByIDNotFound() {
	comment, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(comment)
}

// Run the test suite
func TestCommentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CommentRepositoryTestSuite))
}
