package local

import (
	"context"
	"fmt"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/19smabtahinoor/Vocab-FlashCard/pkg/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (string, error)
}

// Records is the "flashcards" collection. Every operation is confined to the rows of
// the user the access token belongs to.
type Records struct {
	auth  Authenticator
	cards CardStore
	now   func() time.Time
	log   *zap.Logger
}

func NewRecords(auth Authenticator, cards CardStore, log *zap.Logger) *Records {
	return &Records{
		auth:  auth,
		cards: cards,
		now:   time.Now,
		log:   log,
	}
}

func (r *Records) Select(ctx context.Context, accessToken string, q models.CardQuery) ([]models.Card, error) {
	userID, err := r.auth.Authenticate(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if !idFiltersValid(q) {
		return []models.Card{}, nil
	}
	return r.cards.SelectCards(ctx, userID, q)
}

func (r *Records) Count(ctx context.Context, accessToken string, q models.CardQuery) (int, error) {
	userID, err := r.auth.Authenticate(ctx, accessToken)
	if err != nil {
		return 0, err
	}
	if err := q.Validate(); err != nil {
		return 0, err
	}
	if !idFiltersValid(q) {
		return 0, nil
	}
	return r.cards.CountCards(ctx, userID, q)
}

func (r *Records) Insert(ctx context.Context, accessToken string, card models.NewCard) (models.Card, error) {
	userID, err := r.auth.Authenticate(ctx, accessToken)
	if err != nil {
		return models.Card{}, err
	}
	if card.OwnerID != "" && card.OwnerID != userID {
		return models.Card{}, fmt.Errorf("insert card for user %s: %w", card.OwnerID, models.ErrPermissionDenied)
	}
	if err := validator.ValidateStruct(card); err != nil {
		return models.Card{}, toValidationError(err)
	}

	inserted, err := r.cards.InsertCard(ctx, models.Card{
		ID:        uuid.NewString(),
		OwnerID:   userID,
		Word:      card.Word,
		Meaning:   card.Meaning,
		Example:   card.Example,
		CreatedAt: r.now().UTC(),
	})
	if err != nil {
		return models.Card{}, err
	}
	r.log.Debug("card inserted", zap.String("user_id", userID), zap.String("card_id", inserted.ID))
	return inserted, nil
}

func (r *Records) RecordReview(ctx context.Context, accessToken, id string) (models.Card, error) {
	userID, err := r.auth.Authenticate(ctx, accessToken)
	if err != nil {
		return models.Card{}, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return models.Card{}, fmt.Errorf("card %s: %w", id, models.ErrNotFound)
	}
	return r.cards.IncrementReview(ctx, userID, id, r.now().UTC())
}

func (r *Records) Delete(ctx context.Context, accessToken, id string) error {
	userID, err := r.auth.Authenticate(ctx, accessToken)
	if err != nil {
		return err
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("card %s: %w", id, models.ErrNotFound)
	}
	return r.cards.DeleteCard(ctx, userID, id)
}

// ids are UUIDs; anything else cannot match a row
func idFiltersValid(q models.CardQuery) bool {
	for _, f := range q.Eq {
		if f.Column != models.ColumnID && f.Column != models.ColumnOwnerID {
			continue
		}
		if _, err := uuid.Parse(f.Value); err != nil {
			return false
		}
	}
	return true
}

func toValidationError(err error) error {
	errs, ok := err.(validator.Errors)
	if !ok || len(errs) == 0 {
		return err
	}
	return &models.ValidationError{Field: errs[0].Field, Kind: models.EmptyRequiredField}
}
