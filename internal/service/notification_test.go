package service_test

import (
	"testing"

	"motion-pcs-backend/internal/database/models"
	apperrors "motion-pcs-backend/internal/errors"
	"motion-pcs-backend/internal/mocks"
	"motion-pcs-backend/internal/policy"
	"motion-pcs-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// NotificationServiceTestSuite defines the test suite for NotificationService
type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockRepo            *mocks.MockNotificationRepositoryInterface
	notificationService *service.NotificationService
}

// SetupTest sets up the test suite
func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.notificationService = service.NewNotificationService(suite.mockRepo)
}

// TearDownTest cleans up after each test
func (suite *NotificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationServiceTestSuite) TestUnreadReturnsOwnOnly() {
	actor := policy.Actor{UserID: uuid.New(), Role: models.RoleEngineer}

	notifications := []models.Notification{
		{BaseModel: models.BaseModel{ID: uuid.New()}, RecipientID: actor.UserID, Message: "first"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, RecipientID: actor.UserID, Message: "second"},
	}

	suite.mockRepo.EXPECT().GetUnreadByRecipient(actor.UserID).Return(notifications, nil).Times(1)

	result, err := suite.notificationService.Unread(actor)

	suite.NoError(err)
	suite.Len(result, 2)
	suite.Equal("first", result[0].Message)
}

func (suite *NotificationServiceTestSuite) TestMarkRead() {
	actor := policy.Actor{UserID: uuid.New(), Role: models.RoleEngineer}
	notificationID := uuid.New()

	notification := &models.Notification{
		BaseModel:   models.BaseModel{ID: notificationID},
		RecipientID: actor.UserID,
	}

	suite.mockRepo.EXPECT().GetByID(notificationID).Return(notification, nil).Times(1)
	suite.mockRepo.EXPECT().
		MarkRead(notification).
		DoAndReturn(func(n *models.Notification) error {
			n.IsRead = true
			return nil
		}).
		Times(1)

	result, err := suite.notificationService.MarkRead(actor, notificationID)

	suite.NoError(err)
	suite.True(result.IsRead)
}

func (suite *NotificationServiceTestSuite) TestMarkReadDeniedForOtherRecipient() {
	actor := policy.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	notificationID := uuid.New()

	notification := &models.Notification{
		BaseModel:   models.BaseModel{ID: notificationID},
		RecipientID: uuid.New(),
	}

	suite.mockRepo.EXPECT().GetByID(notificationID).Return(notification, nil).Times(1)

	result, err := suite.notificationService.MarkRead(actor, notificationID)

	suite.Nil(result)
	suite.True(apperrors.IsAuthorization(err))
	suite.Equal(policy.ReasonNotificationOwner, err.Error())
}

func (suite *NotificationServiceTestSuite) TestMarkReadNotFound() {
	actor := policy.Actor{UserID: uuid.New(), Role: models.RoleEngineer}
	notificationID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(notificationID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	result, err := suite.notificationService.MarkRead(actor, notificationID)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotificationNotFound)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
