package tracker

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// Dashboard reconciles the budget and expense stores.
// It only reads the stores; each one stays owned by its caller.
type Dashboard struct {
	budgets  *BudgetStore
	expenses *ExpenseStore
}

func NewDashboard(budgets *BudgetStore, expenses *ExpenseStore) *Dashboard {
	return &Dashboard{budgets: budgets, expenses: expenses}
}

// Refresh reloads both collections concurrently. A failure in one does not
// cancel the other; each store reports its own LoadFailure.
func (d *Dashboard) Refresh(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return d.budgets.Load(ctx) })
	g.Go(func() error { return d.expenses.Load(ctx) })
	return g.Wait()
}

// View recomputes the summary from the current snapshots.
func (d *Dashboard) View() domain.AggregateView {
	return Aggregate(d.budgets.Records(), d.expenses.Records())
}

func (d *Dashboard) Slices() []domain.ChartSlice {
	return ChartSlices(d.View())
}
