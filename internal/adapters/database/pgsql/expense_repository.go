package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker/internal/models"
	"github.com/SscSPs/money_tracker/internal/utils/mapping"
)

type ExpenseRepository struct {
	db *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

var _ repositories.ExpenseRepositoryFacade = (*ExpenseRepository)(nil)

const expenseColumns = `seq, expense_id, user_id, category, amount, description, spent_on, created_at, created_by, last_updated_at, last_updated_by`

func (r *ExpenseRepository) FindExpensesByOwner(ctx context.Context, owner domain.OwnerID) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1 ORDER BY seq;`
	return r.query(ctx, query, owner.String())
}

func (r *ExpenseRepository) FindExpensesByOwnerInRange(ctx context.Context, owner domain.OwnerID, from, to domain.Date) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + `
        FROM expenses
        WHERE user_id = $1 AND spent_on >= $2 AND spent_on < $3
        ORDER BY seq;`
	return r.query(ctx, query, owner.String(), from.Time(), to.Time())
}

func (r *ExpenseRepository) FindExpenseByID(ctx context.Context, id domain.RecordID) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	m, err := scanExpense(r.db.QueryRow(ctx, query, id.String()))
	if err != nil {
		return nil, translate(err, "failed to find expense")
	}
	expense := mapping.ToDomainExpense(m)
	return &expense, nil
}

func (r *ExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	now := time.Now().UTC()
	query := `
        INSERT INTO expenses (expense_id, user_id, category, amount, description, spent_on, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		m.ExpenseID,
		m.UserID,
		m.Category,
		m.Amount,
		m.Description,
		nullableDate(m.SpentOn),
		now,
		m.UserID,
	)
	if err != nil {
		return translate(err, "failed to save expense")
	}
	return nil
}

func (r *ExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
        UPDATE expenses
        SET category = $1, amount = $2, description = $3, spent_on = $4, last_updated_at = $5, last_updated_by = $6
        WHERE expense_id = $7;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Category,
		m.Amount,
		m.Description,
		nullableDate(m.SpentOn),
		time.Now().UTC(),
		m.UserID,
		m.ExpenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update expense query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", m.ExpenseID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *ExpenseRepository) DeleteExpense(ctx context.Context, id domain.RecordID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *ExpenseRepository) query(ctx context.Context, query string, args ...any) ([]domain.Expense, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}
	return mapping.ToDomainExpenseSlice(expenses), nil
}

func scanExpense(row pgx.Row) (models.Expense, error) {
	var (
		m       models.Expense
		spentOn *time.Time
	)
	err := row.Scan(
		&m.Seq,
		&m.ExpenseID,
		&m.UserID,
		&m.Category,
		&m.Amount,
		&m.Description,
		&spentOn,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if spentOn != nil {
		m.SpentOn = *spentOn
	}
	return m, err
}
