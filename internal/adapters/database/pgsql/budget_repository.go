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

type BudgetRepository struct {
	db *pgxpool.Pool
}

func NewBudgetRepository(db *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{db: db}
}

var _ repositories.BudgetRepositoryFacade = (*BudgetRepository)(nil)

const budgetColumns = `seq, budget_id, user_id, category, limit_amount, created_at, created_by, last_updated_at, last_updated_by`

func (r *BudgetRepository) FindBudgetsByOwner(ctx context.Context, owner domain.OwnerID) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 ORDER BY seq;`
	rows, err := r.db.Query(ctx, query, owner.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", rows.Err())
	}
	return mapping.ToDomainBudgetSlice(budgets), nil
}

func (r *BudgetRepository) FindBudgetByID(ctx context.Context, id domain.RecordID) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`
	m, err := scanBudget(r.db.QueryRow(ctx, query, id.String()))
	if err != nil {
		return nil, translate(err, "failed to find budget")
	}
	budget := mapping.ToDomainBudget(m)
	return &budget, nil
}

func (r *BudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	now := time.Now().UTC()
	query := `
        INSERT INTO budgets (budget_id, user_id, category, limit_amount, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $5, $6);
    `
	if _, err := r.db.Exec(ctx, query, m.BudgetID, m.UserID, m.Category, m.LimitAmount, now, m.UserID); err != nil {
		return translate(err, "failed to save budget")
	}
	return nil
}

func (r *BudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
        UPDATE budgets
        SET category = $1, limit_amount = $2, last_updated_at = $3, last_updated_by = $4
        WHERE budget_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query, m.Category, m.LimitAmount, time.Now().UTC(), m.UserID, m.BudgetID)
	if err != nil {
		return fmt.Errorf("failed to execute update budget query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget %s: %w", m.BudgetID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *BudgetRepository) DeleteBudget(ctx context.Context, id domain.RecordID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1;`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.Seq,
		&m.BudgetID,
		&m.UserID,
		&m.Category,
		&m.LimitAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
