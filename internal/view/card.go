package view

import (
	"context"
	"sync"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"go.uber.org/zap"
)

const reviewTimeout = 10 * time.Second

// CardView is the flip state of one card. Only Toggle changes it.
type CardView struct {
	reviewer ReviewerI
	log      *zap.Logger

	mu       sync.Mutex
	card     models.Card
	revealed bool
}

func NewCardView(card models.Card, reviewer ReviewerI, log *zap.Logger) *CardView {
	return &CardView{
		reviewer: reviewer,
		log:      log,
		card:     card,
	}
}

// Toggle flips the card and reports whether it is now revealed. Every reveal records
// one review in the background; the flip itself never waits for it, and a failed
// review is only logged.
func (v *CardView) Toggle(ctx context.Context) bool {
	v.mu.Lock()
	v.revealed = !v.revealed
	revealed := v.revealed
	id := v.card.ID
	v.mu.Unlock()

	if revealed {
		go v.recordReview(context.WithoutCancel(ctx), id)
	}
	return revealed
}

func (v *CardView) recordReview(ctx context.Context, id string) {
	ctx, cancel := context.WithTimeout(ctx, reviewTimeout)
	defer cancel()

	updated, err := v.reviewer.RecordReview(ctx, id)
	if err != nil {
		v.log.Warn("failed to record review", zap.String("card_id", id), zap.Error(err))
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	// reviews of one card may finish out of order
	if updated.ID == v.card.ID && updated.ReviewCount >= v.card.ReviewCount {
		v.card = updated
	}
}

func (v *CardView) Revealed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.revealed
}

func (v *CardView) Card() models.Card {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.card
}
