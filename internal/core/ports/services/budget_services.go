package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// BudgetSvcFacade defines the budget operations exposed to handlers.
// requestingUserID is the authenticated caller; services refuse records of other owners.
type BudgetSvcFacade interface {
	ListBudgets(ctx context.Context, owner domain.OwnerID, requestingUserID string) ([]domain.Budget, error)
	CreateBudget(ctx context.Context, budget domain.Budget, requestingUserID string) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, id domain.RecordID, patch domain.BudgetPatch, requestingUserID string) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, id domain.RecordID, requestingUserID string) error
}
