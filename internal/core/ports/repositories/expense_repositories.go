package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// ExpenseReader defines read operations for expenses.
type ExpenseReader interface {
	// FindExpensesByOwner returns the owner's expenses in insertion order.
	FindExpensesByOwner(ctx context.Context, owner domain.OwnerID) ([]domain.Expense, error)

	// FindExpensesByOwnerInRange returns expenses dated in [from, to).
	FindExpensesByOwnerInRange(ctx context.Context, owner domain.OwnerID, from, to domain.Date) ([]domain.Expense, error)

	// FindExpenseByID returns apperrors.ErrNotFound when no expense has the id.
	FindExpenseByID(ctx context.Context, id domain.RecordID) (*domain.Expense, error)
}

// ExpenseWriter defines write operations for expenses.
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	// DeleteExpense returns apperrors.ErrNotFound when no expense has the id.
	DeleteExpense(ctx context.Context, id domain.RecordID) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
