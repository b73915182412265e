package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
)

const cardColumns = `id, user_id, word, meaning, example_sentence, created_at, last_reviewed, review_count`

type CardsR struct {
	db QueryI
}

func NewCardsRepository(db QueryI) *CardsR {
	return &CardsR{db: db}
}

func (c *CardsR) InsertCard(ctx context.Context, card models.Card) (models.Card, error) {
	query := `INSERT INTO flashcards (id, user_id, word, meaning, example_sentence, created_at, review_count)
		VALUES ($1, $2, $3, $4, $5, $6, 0)
		RETURNING ` + cardColumns

	var inserted models.Card
	err := c.db.GetContext(ctx, &inserted, query, card.ID, card.OwnerID, card.Word, card.Meaning, card.Example, card.CreatedAt)
	if err != nil {
		return models.Card{}, fmt.Errorf("insert card for user %s: %w", card.OwnerID, err)
	}
	return inserted, nil
}

func (c *CardsR) SelectCards(ctx context.Context, ownerID string, q models.CardQuery) ([]models.Card, error) {
	where, args := whereClause(ownerID, q)
	query := `SELECT ` + cardColumns + ` FROM flashcards` + where + orderClause(q)
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	cards := make([]models.Card, 0)
	if err := c.db.SelectContext(ctx, &cards, query, args...); err != nil {
		return nil, fmt.Errorf("select cards for user %s: %w", ownerID, err)
	}
	return cards, nil
}

func (c *CardsR) CountCards(ctx context.Context, ownerID string, q models.CardQuery) (int, error) {
	where, args := whereClause(ownerID, q)
	query := `SELECT COUNT(*) FROM flashcards` + where

	var total int
	if err := c.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count cards for user %s: %w", ownerID, err)
	}
	return total, nil
}

func (c *CardsR) IncrementReview(ctx context.Context, ownerID, id string, at time.Time) (models.Card, error) {
	query := `UPDATE flashcards
		SET review_count = review_count + 1, last_reviewed = $3
		WHERE id = $1 AND user_id = $2
		RETURNING ` + cardColumns

	var card models.Card
	err := c.db.GetContext(ctx, &card, query, id, ownerID, at)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Card{}, fmt.Errorf("card %s: %w", id, models.ErrNotFound)
		}
		return models.Card{}, fmt.Errorf("record review of card %s: %w", id, err)
	}
	return card, nil
}

func (c *CardsR) DeleteCard(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM flashcards WHERE id = $1 AND user_id = $2`

	res, err := c.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete card %s: %w", id, err)
	}
	return expectAffected(res, "card "+id)
}

// Column names come from models.CardQuery's whitelist, values are always bound.
func whereClause(ownerID string, q models.CardQuery) (string, []interface{}) {
	conds := []string{"user_id = $1"}
	args := []interface{}{ownerID}
	for _, f := range q.Eq {
		args = append(args, f.Value)
		conds = append(conds, fmt.Sprintf("%s = $%d", f.Column, len(args)))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderClause(q models.CardQuery) string {
	if q.OrderBy == "" {
		return " ORDER BY id DESC"
	}
	dir, nulls := "DESC", "NULLS LAST"
	if q.Ascending {
		dir, nulls = "ASC", "NULLS FIRST"
	}
	return fmt.Sprintf(" ORDER BY %s %s %s, id %s", q.OrderBy, dir, nulls, dir)
}
