//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"motion-pcs-backend/internal/database/models"
	"motion-pcs-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// NotificationRepositoryTestSuite tests the NotificationRepository
type NotificationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NotificationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *NotificationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewNotificationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *NotificationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *NotificationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *NotificationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedUser creates and persists a user
func (suite *NotificationRepositoryTestSuite) seedUser(user *models.User) *models.User {
	err := NewUserRepository(suite.baseTestSuite.DB).Create(user)
	suite.NoError(err)
	return user
}

// TestGetUnreadByRecipient tests that only the recipient's unread rows come back
func (suite *NotificationRepositoryTestSuite) TestGetUnreadByRecipient() {
	recipient := suite.seedUser(suite.factories.User.Create())
	other := suite.seedUser(suite.factories.User.Create())

	unread := suite.factories.Notification.Create(recipient.ID)
	err := suite.baseTestSuite.DB.Create(unread).Error
	suite.NoError(err)

	read := suite.factories.Notification.Create(recipient.ID)
	read.IsRead = true
	err = suite.baseTestSuite.DB.Create(read).Error
	suite.NoError(err)

	foreign := suite.factories.Notification.Create(other.ID)
	err = suite.baseTestSuite.DB.Create(foreign).Error
	suite.NoError(err)

	notifications, err := suite.repo.GetUnreadByRecipient(recipient.ID)

	suite.NoError(err)
	suite.Len(notifications, 1)
	suite.Equal(unread.ID, notifications[0].ID)
}

// TestGetUnreadNewestFirst tests the newest-first ordering
func (suite *NotificationRepositoryTestSuite) TestGetUnreadNewestFirst() {
	recipient := suite.seedUser(suite.factories.User.Create())

	older := suite.factories.Notification.Create(recipient.ID)
	older.Message = "older"
	older.CreatedAt = time.Now().Add(-time.Hour)
	err := suite.baseTestSuite.DB.Create(older).Error
	suite.NoError(err)

	newer := suite.factories.Notification.Create(recipient.ID)
	newer.Message = "newer"
	err = suite.baseTestSuite.DB.Create(newer).Error
	suite.NoError(err)

	notifications, err := suite.repo.GetUnreadByRecipient(recipient.ID)

	suite.NoError(err)
	suite.Len(notifications, 2)
	suite.Equal("newer", notifications[0].Message)
	suite.Equal("older", notifications[1].Message)
}

// TestGetUnreadEmpty tests a recipient with nothing pending
func (suite *NotificationRepositoryTestSuite) TestGetUnreadEmpty() {
	recipient := suite.seedUser(suite.factories.User.Create())

	notifications, err := suite.repo.GetUnreadByRecipient(recipient.ID)

	suite.NoError(err)
	suite.Empty(notifications)
}

// TestMarkRead tests flipping the read flag
func (suite *NotificationRepositoryTestSuite) TestMarkRead() {
	recipient := suite.seedUser(suite.factories.User.Create())

	notification := suite.factories.Notification.Create(recipient.ID)
	err := suite.baseTestSuite.DB.Create(notification).Error
	suite.NoError(err)

	err = suite.repo.MarkRead(notification)
	suite.NoError(err)
	suite.True(notification.IsRead)

	retrieved, err := suite.repo.GetByID(notification.ID)
	suite.NoError(err)
	suite.True(retrieved.IsRead)
}

// TestMarkReadTwice tests that re-marking an already-read notification is a no-op
func (suite *NotificationRepositoryTestSuite) TestMarkReadTwice() {
	recipient := suite.seedUser(suite.factories.User.Create())

	notification := suite.factories.Notification.Create(recipient.ID)
	err := suite.baseTestSuite.DB.Create(notification).Error
	suite.NoError(err)

	err = suite.repo.MarkRead(notification)
	suite.NoError(err)

	err = suite.repo.MarkRead(notification)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(notification.ID)
	suite.NoError(err)
	suite.True(retrieved.IsRead)
}

// TestGetByIDNotFound tests retrieving a non-existent notification
func (suite *NotificationRepositoryTestSuite) TestGetByIDNotFound() {
	notification, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(notification)
}

// Run the test suite
func TestNotificationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryTestSuite))
}
