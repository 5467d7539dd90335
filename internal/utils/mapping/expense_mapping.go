package mapping

import (
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ID.String(),
		UserID:      d.OwnerID.String(),
		Category:    d.Category,
		Amount:      d.Amount,
		Description: d.Description,
		SpentOn:     d.Date.Time(),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense.
// The DATE column comes back as midnight UTC and is truncated to its date.
func ToDomainExpense(m models.Expense) domain.Expense {
	var date domain.Date
	if !m.SpentOn.IsZero() {
		date = domain.DateOf(m.SpentOn)
	}
	return domain.Expense{
		ID:          domain.RecordID(m.ExpenseID),
		OwnerID:     domain.OwnerID(m.UserID),
		Category:    m.Category,
		Amount:      m.Amount,
		Description: m.Description,
		Date:        date,
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
