package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker/internal/models"
	"github.com/SscSPs/money_tracker/internal/utils/mapping"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure UserRepository implements repositories.UserRepositoryFacade
var _ repositories.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (user_id, username, email, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query, m.UserID, m.Username, m.Email, m.PasswordHash, m.CreatedAt)
	if err != nil {
		return translate(err, "failed to save user")
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
        SELECT user_id, username, email, password_hash, created_at
        FROM users
        WHERE user_id = $1;
    `
	return r.findOne(ctx, query, userID)
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT user_id, username, email, password_hash, created_at
        FROM users
        WHERE LOWER(email) = LOWER($1);
    `
	return r.findOne(ctx, query, email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var m models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.PasswordHash,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, translate(err, "failed to find user")
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}
