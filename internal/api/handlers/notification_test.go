package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"motion-pcs-backend/internal/api/handlers"
	"motion-pcs-backend/internal/database/models"
	apperrors "motion-pcs-backend/internal/errors"
	"motion-pcs-backend/internal/mocks"
	"motion-pcs-backend/internal/policy"
	"motion-pcs-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNotificationServiceInterface
	handler     *handlers.NotificationHandler
	actor       policy.Actor
	router      *gin.Engine
}

func (suite *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewNotificationHandler(suite.mockService)

	suite.actor = policy.Actor{UserID: uuid.New(), Role: models.RoleEngineer}

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("actor", suite.actor)
		c.Next()
	})
	suite.router.GET("/notifications/unread", suite.handler.GetUnread)
	suite.router.POST("/notifications/:id/read", suite.handler.MarkRead)
}

func (suite *NotificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationHandlerTestSuite) TestGetUnread() {
	suite.mockService.EXPECT().
		Unread(suite.actor).
		Return([]service.NotificationResponse{
			{ID: uuid.New(), Message: "Ticket \"Install PLC cabinet\" status changed to IN_PROGRESS by sw_lead"},
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/notifications/unread", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	suite.Equal(http.StatusOK, recorder.Code)

	var response []service.NotificationResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	suite.NoError(err)
	suite.Len(response, 1)
}

func (suite *NotificationHandlerTestSuite) TestGetUnreadEmpty() {
	suite.mockService.EXPECT().
		Unread(suite.actor).
		Return([]service.NotificationResponse{}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/notifications/unread", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq("[]", recorder.Body.String())
}

func (suite *NotificationHandlerTestSuite) TestMarkRead() {
	notificationID := uuid.New()

	suite.mockService.EXPECT().
		MarkRead(suite.actor, notificationID).
		Return(&service.NotificationResponse{ID: notificationID, IsRead: true}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/notifications/"+notificationID.String()+"/read", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	suite.Equal(http.StatusOK, recorder.Code)

	var response service.NotificationResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	suite.NoError(err)
	suite.True(response.IsRead)
}

func (suite *NotificationHandlerTestSuite) TestMarkReadInvalidID() {
	req := httptest.NewRequest(http.MethodPost, "/notifications/nope/read", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	suite.Equal(http.StatusBadRequest, recorder.Code)

	var response map[string]string
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	suite.NoError(err)
	suite.Equal("Invalid notification ID", response["error"])
}

func (suite *NotificationHandlerTestSuite) TestMarkReadForbidden() {
	notificationID := uuid.New()

	suite.mockService.EXPECT().
		MarkRead(suite.actor, notificationID).
		Return(nil, &apperrors.AuthorizationError{Message: policy.ReasonNotificationOwner}).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/notifications/"+notificationID.String()+"/read", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	suite.Equal(http.StatusForbidden, recorder.Code)

	var response map[string]string
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	suite.NoError(err)
	suite.Equal(policy.ReasonNotificationOwner, response["error"])
}

func TestNotificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}
