package service_test

import (
	"testing"

	"motion-pcs-backend/internal/database/models"
	apperrors "motion-pcs-backend/internal/errors"
	"motion-pcs-backend/internal/mocks"
	"motion-pcs-backend/internal/policy"
	"motion-pcs-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CommentServiceTestSuite defines the test suite for CommentService
type CommentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCommentRepo *mocks.MockCommentRepositoryInterface
	mockScopeRepo   *mocks.MockScopeRepositoryInterface
	mockUserRepo    *mocks.MockUserRepositoryInterface
	commentService  *service.CommentService
}

// SetupTest sets up the test suite
func (suite *CommentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCommentRepo = mocks.NewMockCommentRepositoryInterface(suite.ctrl)
	suite.mockScopeRepo = mocks.NewMockScopeRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	suite.commentService = service.NewCommentService(
		suite.mockCommentRepo,
		suite.mockScopeRepo,
		suite.mockUserRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *CommentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CommentServiceTestSuite) TestAddNotifiesEveryoneInScope() {
	team := models.TeamStructural
	actor := policy.Actor{UserID: uuid.New(), Role: models.RoleEngineer, Team: &team}
	scopeID := uuid.New()
	creatorA := uuid.New()
	creatorB := uuid.New()
	assignee := uuid.New()

	scope := &models.Scope{
		BaseModel: models.BaseModel{ID: scopeID},
		Team:      models.TeamStructural,
		Tickets: []models.Ticket{
			{CreatorID: creatorA, Assignees: []models.User{{BaseModel: models.BaseModel{ID: assignee}}}},
			{CreatorID: creatorB},
		},
	}

	suite.mockScopeRepo.EXPECT().GetWithTickets(scopeID).Return(scope, nil).Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(actor.UserID).
		Return(&models.User{BaseModel: models.BaseModel{ID: actor.UserID}, Username: "struct_eng"}, nil).
		Times(1)

	suite.mockCommentRepo.EXPECT().
		CreateNotifying(gomock.Any(), gomock.Any()).
		DoAndReturn(func(comment *models.Comment, notifications []models.Notification) error {
			suite.Equal(scopeID, comment.ScopeID)
			suite.Equal(actor.UserID, comment.AuthorID)
			suite.Len(notifications, 3)
			var recipients []uuid.UUID
			for _, n := range notifications {
				recipients = append(recipients, n.RecipientID)
				suite.Equal("New comment in scope (Team STRUCTURAL) by struct_eng", n.Message)
			}
			suite.ElementsMatch(recipients, []uuid.UUID{creatorA, creatorB, assignee})
			comment.ID = uuid.New()
			return nil
		}).
		Times(1)

	result, err := suite.commentService.Add(actor, scopeID, &service.AddCommentRequest{Content: "Looks good"})

	suite.NoError(err)
	suite.Equal("Looks good", result.Content)
}

func (suite *CommentServiceTestSuite) TestAddCrossTeamDeniedWhenGateClosed() {
	team := models.TeamSoftware
	actor := policy.Actor{UserID: uuid.New(), Role: models.RoleLead, Team: &team}
	scopeID := uuid.New()

	scope := &models.Scope{
		BaseModel: models.BaseModel{ID: scopeID},
		Team:      models.TeamStructural,
	}

	suite.mockScopeRepo.EXPECT().GetWithTickets(scopeID).Return(scope, nil).Times(1)

	result, err := suite.commentService.Add(actor, scopeID, &service.AddCommentRequest{Content: "hi"})

	suite.Nil(result)
	suite.True(apperrors.IsAuthorization(err))
	suite.Equal(policy.ReasonScopeComment, err.Error())
}

func (suite *CommentServiceTestSuite) TestAddCrossTeamAllowedWhenGateOpen() {
	team := models.TeamSoftware
	actor := policy.Actor{UserID: uuid.New(), Role: models.RoleEngineer, Team: &team}
	scopeID := uuid.New()

	scope := &models.Scope{
		BaseModel:              models.BaseModel{ID: scopeID},
		Team:                   models.TeamStructural,
		AllowCrossTeamComments: true,
	}

	suite.mockScopeRepo.EXPECT().GetWithTickets(scopeID).Return(scope, nil).Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(actor.UserID).
		Return(&models.User{BaseModel: models.BaseModel{ID: actor.UserID}, Username: "sw_eng"}, nil).
		Times(1)
	suite.mockCommentRepo.EXPECT().CreateNotifying(gomock.Any(), gomock.Len(0)).Return(nil).Times(1)

	result, err := suite.commentService.Add(actor, scopeID, &service.AddCommentRequest{Content: "hi"})

	suite.NoError(err)
	suite.NotNil(result)
}

func (suite *CommentServiceTestSuite) TestAddScopeNotFound() {
	actor := policy.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	scopeID := uuid.New()

	suite.mockScopeRepo.EXPECT().GetWithTickets(scopeID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	result, err := suite.commentService.Add(actor, scopeID, &service.AddCommentRequest{Content: "hi"})

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrScopeNotFound)
}

func (suite *CommentServiceTestSuite) TestUpdateByAuthor() {
	actor := policy.Actor{UserID: uuid.New(), Role: models.RoleEngineer}
	commentID := uuid.New()

	comment := &models.Comment{
		BaseModel: models.BaseModel{ID: commentID},
		Content:   "old",
		AuthorID:  actor.UserID,
	}

	suite.mockCommentRepo.EXPECT().GetByID(commentID).Return(comment, nil).Times(1)
	suite.mockCommentRepo.EXPECT().Update(comment).Return(nil).Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(actor.UserID).
		Return(&models.User{BaseModel: models.BaseModel{ID: actor.UserID}, Username: "sw_eng"}, nil).
		Times(1)

	result, err := suite.commentService.Update(actor, commentID, &service.UpdateCommentRequest{Content: "new"})

	suite.NoError(err)
	suite.Equal("new", result.Content)
}

// Admins get no override on comment edits; only the author may edit
func (suite *CommentServiceTestSuite) TestUpdateDeniedForAdmin() {
	actor := policy.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	commentID := uuid.New()

	comment := &models.Comment{
		BaseModel: models.BaseModel{ID: commentID},
		AuthorID:  uuid.New(),
	}

	suite.mockCommentRepo.EXPECT().GetByID(commentID).Return(comment, nil).Times(1)

	result, err := suite.commentService.Update(actor, commentID, &service.UpdateCommentRequest{Content: "new"})

	suite.Nil(result)
	suite.True(apperrors.IsAuthorization(err))
	suite.Equal(policy.ReasonCommentEdit, err.Error())
}

func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
