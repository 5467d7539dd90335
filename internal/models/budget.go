package models

import (
	"github.com/shopspring/decimal"
)

// Budget is a row of the budgets table. Seq keeps insertion order.
type Budget struct {
	Seq         int64           `db:"seq"`
	BudgetID    string          `db:"budget_id"`
	UserID      string          `db:"user_id"`
	Category    string          `db:"category"`
	LimitAmount decimal.Decimal `db:"limit_amount"`
	AuditFields
}
