package service_test

import (
	"testing"

	"motion-pcs-backend/internal/auth"
	"motion-pcs-backend/internal/database/models"
	apperrors "motion-pcs-backend/internal/errors"
	"motion-pcs-backend/internal/mocks"
	"motion-pcs-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	authService  *service.AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	tokens := auth.NewTokenService("test-secret")
	suite.authService = service.NewAuthService(suite.mockUserRepo, tokens, validator.New())
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) testUser(password string) *models.User {
	hash, err := auth.HashPassword(password)
	suite.Require().NoError(err)

	team := models.TeamSoftware
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Username:     "sw_lead",
		FullName:     "Nikos Georgiou",
		PasswordHash: hash,
		Role:         models.RoleLead,
		Team:         &team,
	}
}

func (suite *AuthServiceTestSuite) TestLoginSuccess() {
	user := suite.testUser("password123")
	suite.mockUserRepo.EXPECT().
		GetByUsername("sw_lead").
		Return(user, nil).
		Times(1)

	result, err := suite.authService.Login(&service.LoginRequest{Username: "sw_lead", Password: "password123"})

	suite.NoError(err)
	suite.NotEmpty(result.Token)
	suite.Equal(user.ID, result.User.ID)
	suite.Equal(models.RoleLead, result.User.Role)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownUser() {
	suite.mockUserRepo.EXPECT().
		GetByUsername("ghost").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	result, err := suite.authService.Login(&service.LoginRequest{Username: "ghost", Password: "password123"})

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	user := suite.testUser("password123")
	suite.mockUserRepo.EXPECT().
		GetByUsername("sw_lead").
		Return(user, nil).
		Times(1)

	result, err := suite.authService.Login(&service.LoginRequest{Username: "sw_lead", Password: "wrong"})

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// Unknown username and wrong password must be indistinguishable to the caller
func (suite *AuthServiceTestSuite) TestLoginErrorsDoNotLeakUsernames() {
	user := suite.testUser("password123")

	suite.mockUserRepo.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound).Times(1)
	_, unknownErr := suite.authService.Login(&service.LoginRequest{Username: "ghost", Password: "x"})

	suite.mockUserRepo.EXPECT().GetByUsername("sw_lead").Return(user, nil).Times(1)
	_, wrongErr := suite.authService.Login(&service.LoginRequest{Username: "sw_lead", Password: "x"})

	suite.Equal(unknownErr.Error(), wrongErr.Error())
	suite.Equal("Invalid credentials", unknownErr.Error())
}

func (suite *AuthServiceTestSuite) TestLoginValidation() {
	result, err := suite.authService.Login(&service.LoginRequest{Username: "", Password: ""})

	suite.Nil(result)
	suite.Error(err)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
