package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/money_tracker/internal/apperrors"
)

// Budget is a spending limit for one category.
// Several budgets may share a category; nothing enforces uniqueness.
type Budget struct {
	ID       RecordID        `json:"id,omitempty"`
	OwnerID  OwnerID         `json:"userId"`
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
}

// BudgetDraft holds the user-editable fields of a budget.
type BudgetDraft struct {
	Category string
	Limit    decimal.Decimal
}

// BudgetPatch carries only the budget fields that changed.
type BudgetPatch struct {
	Category *string          `json:"category,omitempty"`
	Limit    *decimal.Decimal `json:"limit,omitempty"`
}

// NewBudget builds an unsaved budget for owner from a draft.
func NewBudget(owner OwnerID, d BudgetDraft) Budget {
	return Budget{OwnerID: owner, Category: d.Category, Limit: d.Limit}
}

func (b Budget) RecordID() RecordID { return b.ID }

func (b Budget) Draft() BudgetDraft {
	return BudgetDraft{Category: b.Category, Limit: b.Limit}
}

func (b Budget) Apply(p BudgetPatch) Budget {
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Limit != nil {
		b.Limit = *p.Limit
	}
	return b
}

func (b Budget) Validate() error {
	return validateMoneyRecord(b.Category, b.Limit, "limit")
}

func (d BudgetDraft) Diff(base BudgetDraft) BudgetPatch {
	var p BudgetPatch
	if d.Category != base.Category {
		category := d.Category
		p.Category = &category
	}
	if !d.Limit.Equal(base.Limit) {
		limit := d.Limit
		p.Limit = &limit
	}
	return p
}

func (p BudgetPatch) IsEmpty() bool {
	return p.Category == nil && p.Limit == nil
}

func validateMoneyRecord(category string, value decimal.Decimal, field string) error {
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if value.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, field)
	}
	return nil
}
