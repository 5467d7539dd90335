package mapping

import (
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.ID.String(),
		UserID:      d.OwnerID.String(),
		Category:    d.Category,
		LimitAmount: d.Limit,
	}
}

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		ID:       domain.RecordID(m.BudgetID),
		OwnerID:  domain.OwnerID(m.UserID),
		Category: m.Category,
		Limit:    m.LimitAmount,
	}
}

// ToDomainBudgetSlice converts a slice of model Budgets to a slice of domain Budgets
func ToDomainBudgetSlice(ms []models.Budget) []domain.Budget {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudget(m)
	}
	return ds
}
