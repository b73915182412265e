package local

import (
	"context"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
)

type UserStore interface {
	CreateUser(ctx context.Context, user models.User) error
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, id string) (models.User, error)
	ConfirmUser(ctx context.Context, email string, at time.Time) error
}

type SessionStore interface {
	CreateSession(ctx context.Context, session models.AuthSession) error
	SessionByID(ctx context.Context, id string) (models.AuthSession, error)
	SessionByRefreshToken(ctx context.Context, token string) (models.AuthSession, error)
	RotateRefreshToken(ctx context.Context, id, oldToken, newToken string, expiresAt time.Time) error
	DeleteSession(ctx context.Context, id string) error
}

type CardStore interface {
	InsertCard(ctx context.Context, card models.Card) (models.Card, error)
	SelectCards(ctx context.Context, ownerID string, q models.CardQuery) ([]models.Card, error)
	CountCards(ctx context.Context, ownerID string, q models.CardQuery) (int, error)
	IncrementReview(ctx context.Context, ownerID, id string, at time.Time) (models.Card, error)
	DeleteCard(ctx context.Context, ownerID, id string) error
}

// Store is satisfied by both repository.Repository and memory.Store.
type Store interface {
	UserStore
	SessionStore
	CardStore
}
