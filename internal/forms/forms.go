// Package forms turns raw user input into the typed drafts the tracker core
// works with. Malformed input is rejected here and never reaches a store.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ExpenseForm is the expense form as typed by the user.
type ExpenseForm struct {
	Category    string `validate:"required,max=64"`
	Amount      string `validate:"required,numeric"`
	Description string `validate:"max=255"`
	Date        string `validate:"required,datetime=2006-01-02"`
}

// BudgetForm is the budget form as typed by the user.
type BudgetForm struct {
	Category string `validate:"required,max=64"`
	Limit    string `validate:"required,numeric"`
}

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type RegisterForm struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// Draft validates the form and converts it to an ExpenseDraft.
func (f ExpenseForm) Draft() (domain.ExpenseDraft, error) {
	f.Category = strings.TrimSpace(f.Category)
	f.Amount = strings.TrimSpace(f.Amount)
	f.Date = strings.TrimSpace(f.Date)
	if err := check(f); err != nil {
		return domain.ExpenseDraft{}, err
	}
	amount, err := parseMoney("Amount", f.Amount)
	if err != nil {
		return domain.ExpenseDraft{}, err
	}
	date, err := domain.ParseDate(f.Date)
	if err != nil {
		return domain.ExpenseDraft{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return domain.ExpenseDraft{
		Category:    f.Category,
		Amount:      amount,
		Description: strings.TrimSpace(f.Description),
		Date:        date,
	}, nil
}

// Draft validates the form and converts it to a BudgetDraft.
func (f BudgetForm) Draft() (domain.BudgetDraft, error) {
	f.Category = strings.TrimSpace(f.Category)
	f.Limit = strings.TrimSpace(f.Limit)
	if err := check(f); err != nil {
		return domain.BudgetDraft{}, err
	}
	limit, err := parseMoney("Limit", f.Limit)
	if err != nil {
		return domain.BudgetDraft{}, err
	}
	return domain.BudgetDraft{Category: f.Category, Limit: limit}, nil
}

func (f LoginForm) Validate() error {
	return check(f)
}

func (f RegisterForm) Validate() error {
	return check(f)
}

// ExpenseFormFrom prefills the form with a draft, e.g. when editing starts.
func ExpenseFormFrom(d domain.ExpenseDraft) ExpenseForm {
	return ExpenseForm{
		Category:    d.Category,
		Amount:      d.Amount.String(),
		Description: d.Description,
		Date:        d.Date.String(),
	}
}

func BudgetFormFrom(d domain.BudgetDraft) BudgetForm {
	return BudgetForm{Category: d.Category, Limit: d.Limit.String()}
}

func parseMoney(field, raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is not a number", apperrors.ErrValidation, field)
	}
	if value.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, field)
	}
	return value, nil
}

// check runs the struct tags and folds the field errors into one
// ErrValidation-wrapped error.
func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "numeric":
		return fmt.Sprintf("%s must be a number", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
