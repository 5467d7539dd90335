package domain

import "github.com/shopspring/decimal"

// CategorySummary is the spend against a single budget.
type CategorySummary struct {
	BudgetID  RecordID        `json:"budgetId"`
	Category  string          `json:"category"`
	Limit     decimal.Decimal `json:"limit"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"` // Negative when overspent
}

// AggregateView is the derived dashboard summary. It is never stored.
type AggregateView struct {
	TotalSpent      decimal.Decimal   `json:"totalSpent"`
	TotalBudget     decimal.Decimal   `json:"totalBudget"`
	RemainingBudget decimal.Decimal   `json:"remainingBudget"`
	Categories      []CategorySummary `json:"categories"`
}

// ChartSlice is one wedge of the category breakdown chart.
type ChartSlice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Share decimal.Decimal `json:"share"` // Fraction of the summed slice values, 0..1
	Color string          `json:"color"`
}

// ChartPalette is cycled over the slices in order.
var ChartPalette = []string{"#3498db", "#e74c3c", "#2ecc71", "#f1c40f"}
