package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/SscSPs/money_tracker/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockUserRepository
	service  *services.UserService
}

func (s *UserServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockRepo)
}

func (s *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	s.mockRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID != "" &&
			u.Username == "ana" &&
			u.Email == "ana@example.com" &&
			u.PasswordHash != "secret-pass" &&
			utils.CheckPasswordHash("secret-pass", u.PasswordHash)
	})).Return(nil).Once()

	user, err := s.service.CreateUser(s.ctx, " ana ", "ana@example.com", "secret-pass")

	s.Require().NoError(err)
	s.Equal("ana", user.Username)
	s.False(user.CreatedAt.IsZero())
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestCreateUser_Duplicate() {
	s.mockRepo.On("SaveUser", s.ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	_, err := s.service.CreateUser(s.ctx, "ana", "ana@example.com", "secret-pass")

	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *UserServiceTestSuite) TestCreateUser_RequiresFields() {
	_, err := s.service.CreateUser(s.ctx, "ana", "", "secret-pass")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("secret-pass")
	s.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Email: "ana@example.com", PasswordHash: hash}
	s.mockRepo.On("FindUserByEmail", s.ctx, "ana@example.com").Return(stored, nil)
	s.mockRepo.On("FindUserByEmail", s.ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound)

	user, err := s.service.AuthenticateUser(s.ctx, "ana@example.com", "secret-pass")
	s.Require().NoError(err)
	s.Equal("u1", user.UserID)

	_, err = s.service.AuthenticateUser(s.ctx, "ana@example.com", "wrong")
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = s.service.AuthenticateUser(s.ctx, "nobody@example.com", "secret-pass")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_RepositoryFailure() {
	s.mockRepo.On("FindUserByEmail", s.ctx, "ana@example.com").Return(nil, assert.AnError).Once()

	_, err := s.service.AuthenticateUser(s.ctx, "ana@example.com", "secret-pass")

	s.ErrorIs(err, assert.AnError)
	s.NotErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
