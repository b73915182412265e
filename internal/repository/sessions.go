package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
)

type SessionsR struct {
	db QueryI
}

func NewSessionsRepository(db QueryI) *SessionsR {
	return &SessionsR{db: db}
}

func (s *SessionsR) CreateSession(ctx context.Context, session models.AuthSession) error {
	query := `INSERT INTO auth_sessions (id, user_id, refresh_token, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query, session.ID, session.UserID, session.RefreshToken, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("create session for user %s: %w", session.UserID, err)
	}
	return nil
}

func (s *SessionsR) SessionByID(ctx context.Context, id string) (models.AuthSession, error) {
	return s.sessionBy(ctx, "id", id)
}

func (s *SessionsR) SessionByRefreshToken(ctx context.Context, token string) (models.AuthSession, error) {
	return s.sessionBy(ctx, "refresh_token", token)
}

func (s *SessionsR) sessionBy(ctx context.Context, column, value string) (models.AuthSession, error) {
	query := `SELECT id, user_id, refresh_token, created_at, expires_at
		FROM auth_sessions
		WHERE ` + column + ` = $1`

	var session models.AuthSession
	err := s.db.GetContext(ctx, &session, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuthSession{}, fmt.Errorf("session: %w", models.ErrNotFound)
		}
		return models.AuthSession{}, fmt.Errorf("database error: %w", err)
	}
	return session, nil
}

// RotateRefreshToken swaps the refresh token of a session, failing when oldToken was
// already used.
func (s *SessionsR) RotateRefreshToken(ctx context.Context, id, oldToken, newToken string, expiresAt time.Time) error {
	query := `UPDATE auth_sessions
		SET refresh_token = $3, expires_at = $4
		WHERE id = $1 AND refresh_token = $2`

	res, err := s.db.ExecContext(ctx, query, id, oldToken, newToken, expiresAt)
	if err != nil {
		return fmt.Errorf("rotate refresh token: %w", err)
	}
	return expectAffected(res, "session "+id)
}

func (s *SessionsR) DeleteSession(ctx context.Context, id string) error {
	query := `DELETE FROM auth_sessions WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return expectAffected(res, "session "+id)
}
