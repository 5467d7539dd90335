package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row of the expenses table. SpentOn is a DATE column.
type Expense struct {
	Seq         int64           `db:"seq"`
	ExpenseID   string          `db:"expense_id"`
	UserID      string          `db:"user_id"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	SpentOn     time.Time       `db:"spent_on"`
	AuditFields
}
