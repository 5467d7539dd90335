package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetsByOwner(ctx context.Context, owner domain.OwnerID) ([]domain.Budget, error) {
	args := m.Called(ctx, owner)
	var budgets []domain.Budget
	if args.Get(0) != nil {
		budgets = args.Get(0).([]domain.Budget)
	}
	return budgets, args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, id domain.RecordID) (*domain.Budget, error) {
	args := m.Called(ctx, id)
	var budget *domain.Budget
	if args.Get(0) != nil {
		budget = args.Get(0).(*domain.Budget)
	}
	return budget, args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, id domain.RecordID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portsrepo.BudgetRepositoryFacade = (*MockBudgetRepository)(nil)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpensesByOwner(ctx context.Context, owner domain.OwnerID) ([]domain.Expense, error) {
	args := m.Called(ctx, owner)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) FindExpensesByOwnerInRange(ctx context.Context, owner domain.OwnerID, from, to domain.Date) ([]domain.Expense, error) {
	args := m.Called(ctx, owner, from, to)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, id domain.RecordID) (*domain.Expense, error) {
	args := m.Called(ctx, id)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, id domain.RecordID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)
