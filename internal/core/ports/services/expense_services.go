package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// ExpenseSvcFacade defines the expense operations exposed to handlers.
type ExpenseSvcFacade interface {
	ListExpenses(ctx context.Context, owner domain.OwnerID, requestingUserID string) ([]domain.Expense, error)
	CreateExpense(ctx context.Context, expense domain.Expense, requestingUserID string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, id domain.RecordID, patch domain.ExpensePatch, requestingUserID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, id domain.RecordID, requestingUserID string) error
}
