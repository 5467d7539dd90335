package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/services"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockBudgetRepository
	service  *services.BudgetService
}

func (s *BudgetServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockRepo = new(MockBudgetRepository)
	s.service = services.NewBudgetService(s.mockRepo)
}

func (s *BudgetServiceTestSuite) TestListBudgets_Owner() {
	budgets := []domain.Budget{{ID: "b1", OwnerID: "u1", Category: "Food", Limit: decimal.NewFromInt(300)}}
	s.mockRepo.On("FindBudgetsByOwner", s.ctx, domain.OwnerID("u1")).Return(budgets, nil).Once()

	got, err := s.service.ListBudgets(s.ctx, "u1", "u1")

	s.Require().NoError(err)
	s.Equal(budgets, got)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BudgetServiceTestSuite) TestListBudgets_OtherOwnerForbidden() {
	_, err := s.service.ListBudgets(s.ctx, "u2", "u1")

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "FindBudgetsByOwner", mock.Anything, mock.Anything)
}

func (s *BudgetServiceTestSuite) TestCreateBudget_FillsOwnerAndID() {
	s.mockRepo.On("SaveBudget", s.ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.ID != "" && b.OwnerID == "u1" && b.Category == "Food"
	})).Return(nil).Once()

	created, err := s.service.CreateBudget(s.ctx, domain.Budget{Category: "Food", Limit: decimal.NewFromInt(300)}, "u1")

	s.Require().NoError(err)
	s.NotEmpty(created.ID)
	s.Equal(domain.OwnerID("u1"), created.OwnerID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BudgetServiceTestSuite) TestCreateBudget_Rejected() {
	_, err := s.service.CreateBudget(s.ctx, domain.Budget{OwnerID: "u2", Category: "Food"}, "u1")
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.service.CreateBudget(s.ctx, domain.Budget{Category: "Food", Limit: decimal.NewFromInt(-1)}, "u1")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.CreateBudget(s.ctx, domain.Budget{Category: " ", Limit: decimal.NewFromInt(1)}, "u1")
	s.ErrorIs(err, apperrors.ErrValidation)

	s.mockRepo.AssertNotCalled(s.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (s *BudgetServiceTestSuite) TestUpdateBudget_AppliesPatch() {
	stored := &domain.Budget{ID: "b1", OwnerID: "u1", Category: "Food", Limit: decimal.NewFromInt(300)}
	limit := decimal.NewFromInt(350)
	s.mockRepo.On("FindBudgetByID", s.ctx, domain.RecordID("b1")).Return(stored, nil).Once()
	s.mockRepo.On("UpdateBudget", s.ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.Category == "Food" && b.Limit.Equal(limit)
	})).Return(nil).Once()

	updated, err := s.service.UpdateBudget(s.ctx, "b1", domain.BudgetPatch{Limit: &limit}, "u1")

	s.Require().NoError(err)
	s.True(updated.Limit.Equal(limit))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BudgetServiceTestSuite) TestUpdateBudget_ForeignRecordIsNotFound() {
	stored := &domain.Budget{ID: "b1", OwnerID: "u2", Category: "Food"}
	s.mockRepo.On("FindBudgetByID", s.ctx, domain.RecordID("b1")).Return(stored, nil).Once()

	_, err := s.service.UpdateBudget(s.ctx, "b1", domain.BudgetPatch{}, "u1")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateBudget", mock.Anything, mock.Anything)
}

func (s *BudgetServiceTestSuite) TestUpdateBudget_InvalidPatch() {
	stored := &domain.Budget{ID: "b1", OwnerID: "u1", Category: "Food", Limit: decimal.NewFromInt(300)}
	negative := decimal.NewFromInt(-5)
	s.mockRepo.On("FindBudgetByID", s.ctx, domain.RecordID("b1")).Return(stored, nil).Once()

	_, err := s.service.UpdateBudget(s.ctx, "b1", domain.BudgetPatch{Limit: &negative}, "u1")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *BudgetServiceTestSuite) TestDeleteBudget() {
	stored := &domain.Budget{ID: "b1", OwnerID: "u1", Category: "Food"}
	s.mockRepo.On("FindBudgetByID", s.ctx, domain.RecordID("b1")).Return(stored, nil).Once()
	s.mockRepo.On("DeleteBudget", s.ctx, domain.RecordID("b1")).Return(nil).Once()
	s.mockRepo.On("FindBudgetByID", s.ctx, domain.RecordID("gone")).Return(nil, apperrors.ErrNotFound).Once()

	s.NoError(s.service.DeleteBudget(s.ctx, "b1", "u1"))
	s.ErrorIs(s.service.DeleteBudget(s.ctx, "gone", "u1"), apperrors.ErrNotFound)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BudgetServiceTestSuite) TestDeleteBudget_RepositoryFailure() {
	stored := &domain.Budget{ID: "b1", OwnerID: "u1", Category: "Food"}
	s.mockRepo.On("FindBudgetByID", s.ctx, domain.RecordID("b1")).Return(stored, nil).Once()
	s.mockRepo.On("DeleteBudget", s.ctx, domain.RecordID("b1")).Return(assert.AnError).Once()

	err := s.service.DeleteBudget(s.ctx, "b1", "u1")

	s.ErrorIs(err, assert.AnError)
}

func TestBudgetService(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
