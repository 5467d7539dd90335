package domain

import (
	"github.com/shopspring/decimal"
)

// Expense represents a single recorded spend of the owner.
type Expense struct {
	ID          RecordID        `json:"id,omitempty"`
	OwnerID     OwnerID         `json:"userId"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        Date            `json:"date"`
}

// ExpenseDraft holds the user-editable fields of an expense.
type ExpenseDraft struct {
	Category    string
	Amount      decimal.Decimal
	Description string
	Date        Date
}

// ExpensePatch carries only the expense fields that changed.
type ExpensePatch struct {
	Category    *string          `json:"category,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *Date            `json:"date,omitempty"`
}

// NewExpense builds an unsaved expense for owner from a draft.
func NewExpense(owner OwnerID, d ExpenseDraft) Expense {
	return Expense{
		OwnerID:     owner,
		Category:    d.Category,
		Amount:      d.Amount,
		Description: d.Description,
		Date:        d.Date,
	}
}

func (e Expense) RecordID() RecordID { return e.ID }

// Draft snapshots the editable fields.
func (e Expense) Draft() ExpenseDraft {
	return ExpenseDraft{
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
	}
}

// Apply returns a copy of e with the patched fields replaced.
func (e Expense) Apply(p ExpensePatch) Expense {
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	return e
}

// Validate checks the invariants the remote store enforces.
func (e Expense) Validate() error {
	return validateMoneyRecord(e.Category, e.Amount, "amount")
}

// Diff returns the patch turning base into d.
func (d ExpenseDraft) Diff(base ExpenseDraft) ExpensePatch {
	var p ExpensePatch
	if d.Category != base.Category {
		category := d.Category
		p.Category = &category
	}
	if !d.Amount.Equal(base.Amount) {
		amount := d.Amount
		p.Amount = &amount
	}
	if d.Description != base.Description {
		description := d.Description
		p.Description = &description
	}
	if !d.Date.Equal(base.Date) {
		date := d.Date
		p.Date = &date
	}
	return p
}

func (p ExpensePatch) IsEmpty() bool {
	return p.Category == nil && p.Amount == nil && p.Description == nil && p.Date == nil
}
