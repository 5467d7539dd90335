package tracker

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// Aggregate derives the dashboard summary from two record snapshots.
//
// TotalSpent counts every expense, including those whose category has no
// budget. Each budget gets its own entry in input order; budgets sharing a
// category are reported separately against the same expenses. Category
// matching is exact and case-sensitive. Remaining values are not clamped.
//
// Aggregate keeps no state and is safe to call on every change.
func Aggregate(budgets []domain.Budget, expenses []domain.Expense) domain.AggregateView {
	view := domain.AggregateView{
		TotalSpent:  decimal.Zero,
		TotalBudget: decimal.Zero,
		Categories:  make([]domain.CategorySummary, 0, len(budgets)),
	}

	for _, e := range expenses {
		view.TotalSpent = view.TotalSpent.Add(e.Amount)
	}
	for _, b := range budgets {
		view.TotalBudget = view.TotalBudget.Add(b.Limit)
	}
	view.RemainingBudget = view.TotalBudget.Sub(view.TotalSpent)

	for _, b := range budgets {
		spent := SpentInCategory(expenses, b.Category)
		view.Categories = append(view.Categories, domain.CategorySummary{
			BudgetID:  b.ID,
			Category:  b.Category,
			Limit:     b.Limit,
			Spent:     spent,
			Remaining: b.Limit.Sub(spent),
		})
	}
	return view
}

// SpentInCategory sums the amounts of expenses filed under category.
func SpentInCategory(expenses []domain.Expense, category string) decimal.Decimal {
	spent := decimal.Zero
	for _, e := range expenses {
		if e.Category == category {
			spent = spent.Add(e.Amount)
		}
	}
	return spent
}

// ChartSlices turns the category entries into proportional chart wedges,
// colouring them from domain.ChartPalette in order.
func ChartSlices(view domain.AggregateView) []domain.ChartSlice {
	total := decimal.Zero
	for _, c := range view.Categories {
		total = total.Add(c.Spent)
	}

	slices := make([]domain.ChartSlice, 0, len(view.Categories))
	for i, c := range view.Categories {
		share := decimal.Zero
		if total.IsPositive() {
			share = c.Spent.Div(total)
		}
		slices = append(slices, domain.ChartSlice{
			Name:  c.Category,
			Value: c.Spent,
			Share: share,
			Color: domain.ChartPalette[i%len(domain.ChartPalette)],
		})
	}
	return slices
}
