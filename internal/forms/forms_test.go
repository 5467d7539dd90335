package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

func TestExpenseForm_Draft(t *testing.T) {
	draft, err := ExpenseForm{
		Category:    " Food ",
		Amount:      "12.50",
		Description: "lunch",
		Date:        "2024-03-05",
	}.Draft()

	require.NoError(t, err)
	assert.Equal(t, "Food", draft.Category)
	assert.Equal(t, "12.5", draft.Amount.String())
	assert.Equal(t, "lunch", draft.Description)
	assert.True(t, draft.Date.Equal(domain.NewDate(2024, time.March, 5)))
}

func TestExpenseForm_Rejects(t *testing.T) {
	valid := ExpenseForm{Category: "Food", Amount: "10", Date: "2024-03-05"}
	tests := []struct {
		name    string
		mutate  func(f *ExpenseForm)
		message string
	}{
		{"missing category", func(f *ExpenseForm) { f.Category = "  " }, "Category is required"},
		{"text amount", func(f *ExpenseForm) { f.Amount = "ten" }, "Amount must be a number"},
		{"negative amount", func(f *ExpenseForm) { f.Amount = "-3" }, "Amount must not be negative"},
		{"bad date", func(f *ExpenseForm) { f.Date = "05/03/2024" }, "Date must be a date"},
		{"missing date", func(f *ExpenseForm) { f.Date = "" }, "Date is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			_, err := form.Draft()

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestBudgetForm_Draft(t *testing.T) {
	draft, err := BudgetForm{Category: "Food", Limit: "300"}.Draft()
	require.NoError(t, err)
	assert.Equal(t, "300", draft.Limit.String())

	_, err = BudgetForm{Category: "Food", Limit: "-1"}.Draft()
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = BudgetForm{Limit: "1"}.Draft()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFormRoundTrip(t *testing.T) {
	expense := ExpenseForm{Category: "Food", Amount: "7.25", Description: "snack", Date: "2024-01-31"}
	draft, err := expense.Draft()
	require.NoError(t, err)
	assert.Equal(t, expense, ExpenseFormFrom(draft))

	budget := BudgetForm{Category: "Rent", Limit: "900"}
	budgetDraft, err := budget.Draft()
	require.NoError(t, err)
	assert.Equal(t, budget, BudgetFormFrom(budgetDraft))
}

func TestAuthForms(t *testing.T) {
	assert.NoError(t, LoginForm{Email: "ana@example.com", Password: "x"}.Validate())
	assert.ErrorIs(t, LoginForm{Email: "not-an-email", Password: "x"}.Validate(), apperrors.ErrValidation)
	assert.NoError(t, RegisterForm{Username: "ana", Email: "ana@example.com", Password: "longenough"}.Validate())

	err := RegisterForm{Username: "an", Email: "ana@example.com", Password: "short"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Username must be at least 3 characters")
	assert.Contains(t, err.Error(), "Password must be at least 8 characters")
}
