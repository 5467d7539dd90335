package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
)

type BudgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
}

func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo}
}

var _ portssvc.BudgetSvcFacade = (*BudgetService)(nil)

func (s *BudgetService) ListBudgets(ctx context.Context, owner domain.OwnerID, requestingUserID string) ([]domain.Budget, error) {
	if err := s.AuthorizeOwner(ctx, owner, requestingUserID); err != nil {
		return nil, err
	}
	budgets, err := s.budgetRepo.FindBudgetsByOwner(ctx, owner)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// CreateBudget stores a new budget for the requesting user. An empty owner is
// filled in from the caller; any other owner is refused.
func (s *BudgetService) CreateBudget(ctx context.Context, budget domain.Budget, requestingUserID string) (*domain.Budget, error) {
	if budget.OwnerID == "" {
		budget.OwnerID = domain.OwnerID(requestingUserID)
	}
	if err := s.AuthorizeOwner(ctx, budget.OwnerID, requestingUserID); err != nil {
		return nil, err
	}
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	budget.ID = domain.RecordID(uuid.NewString())
	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget")
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	s.LogInfo(ctx, "Budget created", slog.String("budget_id", budget.ID.String()))
	return &budget, nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, id domain.RecordID, patch domain.BudgetPatch, requestingUserID string) (*domain.Budget, error) {
	current, err := s.ownedBudget(ctx, id, requestingUserID)
	if err != nil {
		return nil, err
	}

	updated := current.Apply(patch)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := s.budgetRepo.UpdateBudget(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.String("budget_id", id.String()))
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return &updated, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, id domain.RecordID, requestingUserID string) error {
	if _, err := s.ownedBudget(ctx, id, requestingUserID); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", id.String()))
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	s.LogInfo(ctx, "Budget deleted", slog.String("budget_id", id.String()))
	return nil
}

func (s *BudgetService) ownedBudget(ctx context.Context, id domain.RecordID, requestingUserID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	if err := hideForeign(budget.OwnerID, id, requestingUserID); err != nil {
		return nil, err
	}
	return budget, nil
}
