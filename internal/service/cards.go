package service

import (
	"context"
	"fmt"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"go.uber.org/zap"
)

// CardS is the card repository of the signed-in user. Every call needs a session and
// fails with models.ErrUnauthenticated, without reaching the remote, when there is none.
type CardS struct {
	sessions SessionProviderI
	records  RecordsAPII
	log      *zap.Logger
}

func NewCardService(sessions SessionProviderI, records RecordsAPII, log *zap.Logger) *CardS {
	return &CardS{
		sessions: sessions,
		records:  records,
		log:      log,
	}
}

// ListCards returns every card of the user, newest first.
func (c *CardS) ListCards(ctx context.Context) ([]models.Card, error) {
	session, err := c.sessions.Session(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := c.records.Select(ctx, session.AccessToken, models.NewestFirst())
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	if cards == nil {
		cards = []models.Card{}
	}
	return cards, nil
}

func (c *CardS) CreateCard(ctx context.Context, word, meaning, example string) (models.Card, error) {
	session, err := c.sessions.Session(ctx)
	if err != nil {
		return models.Card{}, err
	}

	card := models.NormalizeNewCard(word, meaning, example)
	if card.Word == "" {
		return models.Card{}, &models.ValidationError{Field: models.ColumnWord, Kind: models.EmptyRequiredField}
	}
	if card.Meaning == "" {
		return models.Card{}, &models.ValidationError{Field: models.ColumnMeaning, Kind: models.EmptyRequiredField}
	}
	card.OwnerID = session.User.ID

	created, err := c.records.Insert(ctx, session.AccessToken, card)
	if err != nil {
		return models.Card{}, fmt.Errorf("create card: %w", err)
	}
	c.log.Debug("card created", zap.String("user_id", session.User.ID), zap.String("card_id", created.ID))
	return created, nil
}

// RecordReview bumps review_count by one and stamps last_reviewed, in a single remote
// call.
func (c *CardS) RecordReview(ctx context.Context, id string) (models.Card, error) {
	session, err := c.sessions.Session(ctx)
	if err != nil {
		return models.Card{}, err
	}

	card, err := c.records.RecordReview(ctx, session.AccessToken, id)
	if err != nil {
		return models.Card{}, fmt.Errorf("record review of %s: %w", id, err)
	}
	return card, nil
}

// DeleteCard removes the card for good. Callers confirm with the user first.
func (c *CardS) DeleteCard(ctx context.Context, id string) error {
	session, err := c.sessions.Session(ctx)
	if err != nil {
		return err
	}

	if err := c.records.Delete(ctx, session.AccessToken, id); err != nil {
		return fmt.Errorf("delete card %s: %w", id, err)
	}
	c.log.Info("card deleted", zap.String("user_id", session.User.ID), zap.String("card_id", id))
	return nil
}

func (c *CardS) CountCards(ctx context.Context) (int, error) {
	session, err := c.sessions.Session(ctx)
	if err != nil {
		return 0, err
	}

	total, err := c.records.Count(ctx, session.AccessToken, models.CardQuery{})
	if err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return total, nil
}
