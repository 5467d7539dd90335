package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// CreateBudgetRequest defines the data needed to create a budget.
// UserID may be omitted; the authenticated user is assumed.
type CreateBudgetRequest struct {
	UserID   domain.OwnerID  `json:"userId"`
	Category string          `json:"category" binding:"required,max=64"`
	Limit    decimal.Decimal `json:"limit"`
}

// UpdateBudgetRequest carries the budget fields to change. Omitted fields stay as they are.
type UpdateBudgetRequest struct {
	Category *string          `json:"category" binding:"omitempty,min=1,max=64"`
	Limit    *decimal.Decimal `json:"limit"`
}

type BudgetResponse struct {
	ID       domain.RecordID `json:"id"`
	UserID   domain.OwnerID  `json:"userId"`
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
}

func (r CreateBudgetRequest) ToDomain() domain.Budget {
	return domain.NewBudget(r.UserID, domain.BudgetDraft{Category: r.Category, Limit: r.Limit})
}

func (r UpdateBudgetRequest) ToPatch() domain.BudgetPatch {
	return domain.BudgetPatch{Category: r.Category, Limit: r.Limit}
}

func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:       b.ID,
		UserID:   b.OwnerID,
		Category: b.Category,
		Limit:    b.Limit,
	}
}

func ToBudgetResponses(budgets []domain.Budget) []BudgetResponse {
	out := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		out[i] = ToBudgetResponse(&budgets[i])
	}
	return out
}
