package remote

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// Request bodies sent to the remote store. Money travels as a JSON number
// and numeric owner ids as numbers, the way the web client posts them.

type wireOwner domain.OwnerID

func (o wireOwner) MarshalJSON() ([]byte, error) {
	s := string(o)
	if n, err := strconv.ParseUint(s, 10, 64); err == nil && strconv.FormatUint(n, 10) == s {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

func money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func optionalMoney(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := money(*d)
	return &n
}

type budgetPayload struct {
	UserID   wireOwner   `json:"userId"`
	Category string      `json:"category"`
	Limit    json.Number `json:"limit"`
}

type budgetPatchPayload struct {
	Category *string      `json:"category,omitempty"`
	Limit    *json.Number `json:"limit,omitempty"`
}

type expensePayload struct {
	UserID      wireOwner   `json:"userId"`
	Category    string      `json:"category"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description,omitempty"`
	Date        domain.Date `json:"date"`
}

type expensePatchPayload struct {
	Category    *string      `json:"category,omitempty"`
	Amount      *json.Number `json:"amount,omitempty"`
	Description *string      `json:"description,omitempty"`
	Date        *domain.Date `json:"date,omitempty"`
}

func newBudgetPayload(owner domain.OwnerID, d domain.BudgetDraft) any {
	return budgetPayload{UserID: wireOwner(owner), Category: d.Category, Limit: money(d.Limit)}
}

func newBudgetPatchPayload(p domain.BudgetPatch) any {
	return budgetPatchPayload{Category: p.Category, Limit: optionalMoney(p.Limit)}
}

func newExpensePayload(owner domain.OwnerID, d domain.ExpenseDraft) any {
	return expensePayload{
		UserID:      wireOwner(owner),
		Category:    d.Category,
		Amount:      money(d.Amount),
		Description: d.Description,
		Date:        d.Date,
	}
}

func newExpensePatchPayload(p domain.ExpensePatch) any {
	return expensePatchPayload{
		Category:    p.Category,
		Amount:      optionalMoney(p.Amount),
		Description: p.Description,
		Date:        p.Date,
	}
}
