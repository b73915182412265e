// Package view keeps the per-user display state: which cards are shown, whether a
// fetch is running, and the flip state of each card.
package view

import (
	"context"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/service"
)

//go:generate mockgen -source=view.go -destination=mock/mock.go

type SessionsI interface {
	Subscribe(fn service.Listener) (unsubscribe func())
	CurrentSession() *models.Session
}

type ReviewerI interface {
	RecordReview(ctx context.Context, id string) (models.Card, error)
}

type CardsI interface {
	ReviewerI
	ListCards(ctx context.Context) ([]models.Card, error)
	CreateCard(ctx context.Context, word, meaning, example string) (models.Card, error)
	DeleteCard(ctx context.Context, id string) error
	CountCards(ctx context.Context) (int, error)
}
