package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/docflow/docflow-backend/mocks"
	"github.com/docflow/docflow-backend/models"
)

type AuthUsecaseTestSuite struct {
	suite.Suite
	executorFactory *mocks.ExecutorFactory
	userRepository  *mocks.UserRepository
	jwtEncoder      *mocks.JwtEncoderValidator
}

func (suite *AuthUsecaseTestSuite) SetupTest() {
	suite.executorFactory = &mocks.ExecutorFactory{
		ExecMock: new(mocks.Executor),
		TxMock:   new(mocks.Transaction),
	}
	suite.userRepository = new(mocks.UserRepository)
	suite.jwtEncoder = new(mocks.JwtEncoderValidator)
}

func (suite *AuthUsecaseTestSuite) makeUsecase() AuthUsecase {
	return AuthUsecase{
		executorFactory: suite.executorFactory,
		userRepository:  suite.userRepository,
		jwtEncoder:      suite.jwtEncoder,
		tokenLifetime:   time.Hour,
	}
}

func (suite *AuthUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.executorFactory.AssertExpectations(t)
	suite.userRepository.AssertExpectations(t)
	suite.jwtEncoder.AssertExpectations(t)
}

func (suite *AuthUsecaseTestSuite) TestRegister() {
	ctx := context.Background()

	suite.executorFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.userRepository.On("CreateUser", ctx, suite.executorFactory.TxMock,
		mock.MatchedBy(func(user models.User) bool {
			return user.Email == "ada@example.com" && user.Role == models.RoleAuthor
		})).Return(nil)

	user, err := suite.makeUsecase().Register(ctx, models.CreateUser{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "GoodPass123!@@",
	})

	suite.NoError(err)
	suite.NotEmpty(user.Id)
	suite.Equal(models.RoleAuthor, user.Role)
	suite.NotEqual("GoodPass123!@@", user.PasswordHash)
	suite.AssertExpectations()
}

func (suite *AuthUsecaseTestSuite) TestRegister_WeakPassword() {
	ctx := context.Background()

	_, err := suite.makeUsecase().Register(ctx, models.CreateUser{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "short1!",
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.userRepository.AssertNotCalled(suite.T(), "CreateUser")
}

func (suite *AuthUsecaseTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()

	suite.executorFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.userRepository.On("CreateUser", ctx, suite.executorFactory.TxMock, mock.Anything).
		Return(models.ErrUserAlreadyExists)

	_, err := suite.makeUsecase().Register(ctx, models.CreateUser{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "GoodPass123!@@",
	})

	suite.ErrorIs(err, models.ErrUserAlreadyExists)
	suite.AssertExpectations()
}

func (suite *AuthUsecaseTestSuite) TestLogin() {
	ctx := context.Background()
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("GoodPass123!@@"), bcrypt.MinCost)
	user := models.User{
		Id:           "user-1",
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: string(passwordHash),
		Role:         models.RoleAuthor,
	}

	suite.executorFactory.On("NewExecutor").Return()
	suite.userRepository.On("UserByEmail", ctx, suite.executorFactory.ExecMock, "ada@example.com").
		Return(user, nil)
	suite.jwtEncoder.On("EncodeToken", mock.Anything, models.Credentials{
		UserId: "user-1",
		Role:   models.RoleAuthor,
		Name:   "Ada",
		Email:  "ada@example.com",
	}).Return("signed-token", nil)

	token, loggedIn, err := suite.makeUsecase().Login(ctx, "ada@example.com", "GoodPass123!@@")

	suite.NoError(err)
	suite.Equal("signed-token", token)
	suite.Equal(user, loggedIn)
	suite.AssertExpectations()
}

func (suite *AuthUsecaseTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("GoodPass123!@@"), bcrypt.MinCost)

	suite.executorFactory.On("NewExecutor").Return()
	suite.userRepository.On("UserByEmail", ctx, suite.executorFactory.ExecMock, "ada@example.com").
		Return(models.User{Id: "user-1", PasswordHash: string(passwordHash)}, nil)

	_, _, err := suite.makeUsecase().Login(ctx, "ada@example.com", "WrongPass123!@@")

	suite.ErrorIs(err, models.ErrInvalidCredentials)
	suite.jwtEncoder.AssertNotCalled(suite.T(), "EncodeToken")
}

func (suite *AuthUsecaseTestSuite) TestLogin_UnknownUser() {
	ctx := context.Background()

	suite.executorFactory.On("NewExecutor").Return()
	suite.userRepository.On("UserByEmail", ctx, suite.executorFactory.ExecMock, "ghost@example.com").
		Return(models.User{}, models.ErrUnknownUser)

	_, _, err := suite.makeUsecase().Login(ctx, "ghost@example.com", "GoodPass123!@@")

	// unknown user and wrong password are indistinguishable
	suite.ErrorIs(err, models.ErrInvalidCredentials)
}

func TestAuthUsecase(t *testing.T) {
	suite.Run(t, new(AuthUsecaseTestSuite))
}
