package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
)

type ChatSessionsR struct {
	db QueryI
}

func NewChatSessionsRepository(db QueryI) *ChatSessionsR {
	return &ChatSessionsR{db: db}
}

func (c *ChatSessionsR) SaveChatSession(ctx context.Context, session models.ChatSession) error {
	query := `INSERT INTO chat_sessions (chat_id, user_id, email, access_token, refresh_token, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (chat_id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			email = EXCLUDED.email,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at`

	_, err := c.db.ExecContext(ctx, query, session.ChatID, session.UserID, session.Email,
		session.AccessToken, session.RefreshToken, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("save session of chat %d: %w", session.ChatID, err)
	}
	return nil
}

func (c *ChatSessionsR) ChatSession(ctx context.Context, chatID int64) (models.ChatSession, error) {
	query := `SELECT chat_id, user_id, email, access_token, refresh_token, expires_at
		FROM chat_sessions
		WHERE chat_id = $1`

	var session models.ChatSession
	err := c.db.GetContext(ctx, &session, query, chatID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ChatSession{}, fmt.Errorf("chat session: %w", models.ErrNotFound)
		}
		return models.ChatSession{}, fmt.Errorf("database error: %w", err)
	}
	return session, nil
}

// DeleteChatSession succeeds when the chat has no session.
func (c *ChatSessionsR) DeleteChatSession(ctx context.Context, chatID int64) error {
	query := `DELETE FROM chat_sessions WHERE chat_id = $1`

	if _, err := c.db.ExecContext(ctx, query, chatID); err != nil {
		return fmt.Errorf("delete session of chat %d: %w", chatID, err)
	}
	return nil
}
