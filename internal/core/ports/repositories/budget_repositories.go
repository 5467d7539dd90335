package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// BudgetReader defines read operations for budgets.
type BudgetReader interface {
	// FindBudgetsByOwner returns the owner's budgets in insertion order.
	FindBudgetsByOwner(ctx context.Context, owner domain.OwnerID) ([]domain.Budget, error)

	// FindBudgetByID returns apperrors.ErrNotFound when no budget has the id.
	FindBudgetByID(ctx context.Context, id domain.RecordID) (*domain.Budget, error)
}

// BudgetWriter defines write operations for budgets.
type BudgetWriter interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	UpdateBudget(ctx context.Context, budget domain.Budget) error
	// DeleteBudget returns apperrors.ErrNotFound when no budget has the id.
	DeleteBudget(ctx context.Context, id domain.RecordID) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
