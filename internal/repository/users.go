package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type UsersR struct {
	db QueryI
}

func NewUsersRepository(db QueryI) *UsersR {
	return &UsersR{db: db}
}

func (u *UsersR) CreateUser(ctx context.Context, user models.User) error {
	query := `INSERT INTO users (id, email, password_hash, created_at, confirmed_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := u.db.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.ConfirmedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("create user %s: %w", user.Email, models.ErrEmailTaken)
		}
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (u *UsersR) UserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `SELECT id, email, password_hash, created_at, confirmed_at
		FROM users
		WHERE email = $1`

	var user models.User
	err := u.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
		}
		return models.User{}, fmt.Errorf("database error: %w", err)
	}
	return user, nil
}

func (u *UsersR) UserByID(ctx context.Context, id string) (models.User, error) {
	query := `SELECT id, email, password_hash, created_at, confirmed_at
		FROM users
		WHERE id = $1`

	var user models.User
	err := u.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("user %s: %w", id, models.ErrNotFound)
		}
		return models.User{}, fmt.Errorf("database error: %w", err)
	}
	return user, nil
}

func (u *UsersR) ConfirmUser(ctx context.Context, email string, at time.Time) error {
	query := `UPDATE users SET confirmed_at = COALESCE(confirmed_at, $2) WHERE email = $1`

	res, err := u.db.ExecContext(ctx, query, email, at)
	if err != nil {
		return fmt.Errorf("confirm user %s: %w", email, err)
	}
	return expectAffected(res, fmt.Sprintf("user %s", email))
}

func expectAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, models.ErrNotFound)
	}
	return nil
}
