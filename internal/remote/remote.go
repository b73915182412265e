// Package remote describes the Remote Data Service: hosted authentication plus the
// "flashcards" record collection, scoped by the caller's access token.
package remote

import (
	"context"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
)

type AuthAPI interface {
	// SignUp registers a user. The session is nil when the service requires the
	// address to be confirmed before the first sign-in.
	SignUp(ctx context.Context, email, password string) (models.User, *models.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (models.Session, error)
	RefreshSession(ctx context.Context, refreshToken string) (models.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	User(ctx context.Context, accessToken string) (models.User, error)
}

type RecordsAPI interface {
	Select(ctx context.Context, accessToken string, q models.CardQuery) ([]models.Card, error)
	Count(ctx context.Context, accessToken string, q models.CardQuery) (int, error)
	Insert(ctx context.Context, accessToken string, card models.NewCard) (models.Card, error)
	// RecordReview atomically increments review_count and stamps last_reviewed.
	RecordReview(ctx context.Context, accessToken, id string) (models.Card, error)
	Delete(ctx context.Context, accessToken, id string) error
}

type Service interface {
	AuthAPI
	RecordsAPI
}
