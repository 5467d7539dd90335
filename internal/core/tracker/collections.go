package tracker

import (
	"log/slog"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/ports"
)

// ExpenseStore caches the owner's expenses.
type ExpenseStore = ResourceStore[domain.Expense, domain.ExpenseDraft, domain.ExpensePatch]

// BudgetStore caches the owner's budgets.
type BudgetStore = ResourceStore[domain.Budget, domain.BudgetDraft, domain.BudgetPatch]

var ExpenseMessages = Messages{
	Created:      "Expense successfully created",
	Updated:      "Expense successfully updated",
	Deleted:      "Expense successfully deleted",
	LoadFailed:   "Unable to load expenses",
	CreateFailed: "Unable to add expense",
	UpdateFailed: "Unable to update expense",
	DeleteFailed: "Unable to delete expense",
}

var BudgetMessages = Messages{
	Created:      "Budget successfully created",
	Updated:      "Budget successfully updated",
	Deleted:      "Budget successfully deleted",
	LoadFailed:   "Failed to load budgets",
	CreateFailed: "Failed to create budget",
	UpdateFailed: "Failed to update budget",
	DeleteFailed: "Failed to delete budget",
}

func NewExpenseStore(owner domain.OwnerID, gateway ports.ExpenseGateway, logger *slog.Logger) *ExpenseStore {
	return NewResourceStore("expenses", owner, gateway, ExpenseMessages, logger)
}

func NewBudgetStore(owner domain.OwnerID, gateway ports.BudgetGateway, logger *slog.Logger) *BudgetStore {
	return NewResourceStore("budgets", owner, gateway, BudgetMessages, logger)
}
