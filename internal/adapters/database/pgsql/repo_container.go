package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the PostgreSQL repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    NewUserRepository(dbPool),
		BudgetRepo:  NewBudgetRepository(dbPool),
		ExpenseRepo: NewExpenseRepository(dbPool),
	}
}
