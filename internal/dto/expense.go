package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	UserID      domain.OwnerID  `json:"userId"`
	Category    string          `json:"category" binding:"required,max=64"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"max=255"`
	Date        domain.Date     `json:"date"`
}

// UpdateExpenseRequest carries the expense fields to change.
type UpdateExpenseRequest struct {
	Category    *string          `json:"category" binding:"omitempty,min=1,max=64"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" binding:"omitempty,max=255"`
	Date        *domain.Date     `json:"date"`
}

type ExpenseResponse struct {
	ID          domain.RecordID `json:"id"`
	UserID      domain.OwnerID  `json:"userId"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        domain.Date     `json:"date"`
}

func (r CreateExpenseRequest) ToDomain() domain.Expense {
	return domain.NewExpense(r.UserID, domain.ExpenseDraft{
		Category:    r.Category,
		Amount:      r.Amount,
		Description: r.Description,
		Date:        r.Date,
	})
}

func (r UpdateExpenseRequest) ToPatch() domain.ExpensePatch {
	return domain.ExpensePatch{
		Category:    r.Category,
		Amount:      r.Amount,
		Description: r.Description,
		Date:        r.Date,
	}
}

func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		UserID:      e.OwnerID,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
	}
}

func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = ToExpenseResponse(&expenses[i])
	}
	return out
}
