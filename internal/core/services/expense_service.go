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

type ExpenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*ExpenseService)(nil)

func (s *ExpenseService) ListExpenses(ctx context.Context, owner domain.OwnerID, requestingUserID string) ([]domain.Expense, error) {
	if err := s.AuthorizeOwner(ctx, owner, requestingUserID); err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.FindExpensesByOwner(ctx, owner)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (s *ExpenseService) CreateExpense(ctx context.Context, expense domain.Expense, requestingUserID string) (*domain.Expense, error) {
	if expense.OwnerID == "" {
		expense.OwnerID = domain.OwnerID(requestingUserID)
	}
	if err := s.AuthorizeOwner(ctx, expense.OwnerID, requestingUserID); err != nil {
		return nil, err
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	expense.ID = domain.RecordID(uuid.NewString())
	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense")
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expense.ID.String()),
		slog.String("category", expense.Category))
	return &expense, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, id domain.RecordID, patch domain.ExpensePatch, requestingUserID string) (*domain.Expense, error) {
	current, err := s.ownedExpense(ctx, id, requestingUserID)
	if err != nil {
		return nil, err
	}

	updated := current.Apply(patch)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.UpdateExpense(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", id.String()))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return &updated, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id domain.RecordID, requestingUserID string) error {
	if _, err := s.ownedExpense(ctx, id, requestingUserID); err != nil {
		return err
	}
	if err := s.expenseRepo.DeleteExpense(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", id.String()))
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

func (s *ExpenseService) ownedExpense(ctx context.Context, id domain.RecordID, requestingUserID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	if err := hideForeign(expense.OwnerID, id, requestingUserID); err != nil {
		return nil, err
	}
	return expense, nil
}
