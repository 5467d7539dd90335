// Package memory holds process-local repositories. They back the reference
// server when no database is configured and double as test fixtures.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/ports/repositories"
)

var (
	_ repositories.UserRepositoryFacade    = (*UserRepository)(nil)
	_ repositories.BudgetRepositoryFacade  = (*BudgetRepository)(nil)
	_ repositories.ExpenseRepositoryFacade = (*ExpenseRepository)(nil)
)

// NewRepositoryProvider wires fresh in-memory repositories.
func NewRepositoryProvider() repositories.RepositoryProvider {
	return repositories.RepositoryProvider{
		UserRepo:    NewUserRepository(),
		BudgetRepo:  NewBudgetRepository(),
		ExpenseRepo: NewExpenseRepository(),
	}
}

type UserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.UserID == userID {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, apperrors.ErrNotFound)
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) || u.Username == user.Username || u.UserID == user.UserID {
			return fmt.Errorf("user %s: %w", user.Username, apperrors.ErrDuplicate)
		}
	}
	r.users = append(r.users, user)
	return nil
}

// collection is an insertion-ordered, mutex-guarded list of records.
type collection[R any] struct {
	mu    sync.RWMutex
	items []R
	id    func(R) domain.RecordID
	owner func(R) domain.OwnerID
}

func (c *collection[R]) byOwner(owner domain.OwnerID, keep func(R) bool) []R {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]R, 0)
	for _, item := range c.items {
		if c.owner(item) == owner && (keep == nil || keep(item)) {
			out = append(out, item)
		}
	}
	return out
}

func (c *collection[R]) find(id domain.RecordID) (*R, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.index(id)
	if i < 0 {
		return nil, fmt.Errorf("record %s: %w", id, apperrors.ErrNotFound)
	}
	item := c.items[i]
	return &item, nil
}

func (c *collection[R]) save(item R) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index(c.id(item)) >= 0 {
		return fmt.Errorf("record %s: %w", c.id(item), apperrors.ErrDuplicate)
	}
	c.items = append(c.items, item)
	return nil
}

func (c *collection[R]) update(item R) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(c.id(item))
	if i < 0 {
		return fmt.Errorf("record %s: %w", c.id(item), apperrors.ErrNotFound)
	}
	c.items[i] = item
	return nil
}

func (c *collection[R]) delete(id domain.RecordID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("record %s: %w", id, apperrors.ErrNotFound)
	}
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

func (c *collection[R]) index(id domain.RecordID) int {
	return slices.IndexFunc(c.items, func(item R) bool { return c.id(item) == id })
}

type BudgetRepository struct {
	budgets collection[domain.Budget]
}

func NewBudgetRepository() *BudgetRepository {
	return &BudgetRepository{budgets: collection[domain.Budget]{
		id:    func(b domain.Budget) domain.RecordID { return b.ID },
		owner: func(b domain.Budget) domain.OwnerID { return b.OwnerID },
	}}
}

func (r *BudgetRepository) FindBudgetsByOwner(ctx context.Context, owner domain.OwnerID) ([]domain.Budget, error) {
	return r.budgets.byOwner(owner, nil), nil
}

func (r *BudgetRepository) FindBudgetByID(ctx context.Context, id domain.RecordID) (*domain.Budget, error) {
	return r.budgets.find(id)
}

func (r *BudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	return r.budgets.save(budget)
}

func (r *BudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	return r.budgets.update(budget)
}

func (r *BudgetRepository) DeleteBudget(ctx context.Context, id domain.RecordID) error {
	return r.budgets.delete(id)
}

type ExpenseRepository struct {
	expenses collection[domain.Expense]
}

func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{expenses: collection[domain.Expense]{
		id:    func(e domain.Expense) domain.RecordID { return e.ID },
		owner: func(e domain.Expense) domain.OwnerID { return e.OwnerID },
	}}
}

func (r *ExpenseRepository) FindExpensesByOwner(ctx context.Context, owner domain.OwnerID) ([]domain.Expense, error) {
	return r.expenses.byOwner(owner, nil), nil
}

func (r *ExpenseRepository) FindExpensesByOwnerInRange(ctx context.Context, owner domain.OwnerID, from, to domain.Date) ([]domain.Expense, error) {
	return r.expenses.byOwner(owner, func(e domain.Expense) bool {
		t := e.Date.Time()
		return !t.Before(from.Time()) && t.Before(to.Time())
	}), nil
}

func (r *ExpenseRepository) FindExpenseByID(ctx context.Context, id domain.RecordID) (*domain.Expense, error) {
	return r.expenses.find(id)
}

func (r *ExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return r.expenses.save(expense)
}

func (r *ExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	return r.expenses.update(expense)
}

func (r *ExpenseRepository) DeleteExpense(ctx context.Context, id domain.RecordID) error {
	return r.expenses.delete(id)
}
