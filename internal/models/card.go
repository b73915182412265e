package models

import (
	"fmt"
	"strings"
	"time"
)

type Card struct {
	ID           string     `db:"id" json:"id"`
	OwnerID      string     `db:"user_id" json:"user_id"`
	Word         string     `db:"word" json:"word"`
	Meaning      string     `db:"meaning" json:"meaning"`
	Example      *string    `db:"example_sentence" json:"example_sentence"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	LastReviewed *time.Time `db:"last_reviewed" json:"last_reviewed"`
	ReviewCount  int        `db:"review_count" json:"review_count"`
}

func (c Card) HasExample() bool {
	return c.Example != nil
}

type NewCard struct {
	OwnerID string  `json:"user_id,omitempty"`
	Word    string  `json:"word" validate:"required,notblank"`
	Meaning string  `json:"meaning" validate:"required,notblank"`
	Example *string `json:"example_sentence"`
}

// NormalizeNewCard trims every field and turns a blank example into an absent one.
func NormalizeNewCard(word, meaning, example string) NewCard {
	card := NewCard{
		Word:    strings.TrimSpace(word),
		Meaning: strings.TrimSpace(meaning),
	}
	if ex := strings.TrimSpace(example); ex != "" {
		card.Example = &ex
	}
	return card
}

const (
	ColumnID          = "id"
	ColumnOwnerID     = "user_id"
	ColumnWord        = "word"
	ColumnMeaning     = "meaning"
	ColumnCreatedAt   = "created_at"
	ColumnLastReview  = "last_reviewed"
	ColumnReviewCount = "review_count"
)

var (
	filterColumns = map[string]bool{
		ColumnID:      true,
		ColumnOwnerID: true,
		ColumnWord:    true,
		ColumnMeaning: true,
	}
	orderColumns = map[string]bool{
		ColumnCreatedAt:   true,
		ColumnLastReview:  true,
		ColumnReviewCount: true,
		ColumnWord:        true,
	}
)

type CardFilter struct {
	Column string
	Value  string
}

// CardQuery is the subset of a collection select the flashcards collection supports:
// equality filters, a single ordering column and an optional limit.
type CardQuery struct {
	Eq        []CardFilter
	OrderBy   string
	Ascending bool
	Limit     int
}

// NewestFirst is the ordering the card list is always displayed in.
func NewestFirst() CardQuery {
	return CardQuery{OrderBy: ColumnCreatedAt}
}

func (q CardQuery) Where(column, value string) CardQuery {
	q.Eq = append(append([]CardFilter(nil), q.Eq...), CardFilter{Column: column, Value: value})
	return q
}

func (q CardQuery) Validate() error {
	for _, f := range q.Eq {
		if !filterColumns[f.Column] {
			return fmt.Errorf("unsupported filter column %q: %w", f.Column, ErrInvalidQuery)
		}
	}
	if q.OrderBy != "" && !orderColumns[q.OrderBy] {
		return fmt.Errorf("unsupported order column %q: %w", q.OrderBy, ErrInvalidQuery)
	}
	if q.Limit < 0 {
		return fmt.Errorf("negative limit %d: %w", q.Limit, ErrInvalidQuery)
	}
	return nil
}

func (q CardQuery) Match(c Card) bool {
	for _, f := range q.Eq {
		var v string
		switch f.Column {
		case ColumnID:
			v = c.ID
		case ColumnOwnerID:
			v = c.OwnerID
		case ColumnWord:
			v = c.Word
		case ColumnMeaning:
			v = c.Meaning
		}
		if v != f.Value {
			return false
		}
	}
	return true
}

// Less reports whether a sorts before b. Ties fall back to the id so the order is total.
func (q CardQuery) Less(a, b Card) bool {
	cmp := 0
	switch q.OrderBy {
	case ColumnCreatedAt:
		cmp = a.CreatedAt.Compare(b.CreatedAt)
	case ColumnLastReview:
		cmp = compareReviewed(a.LastReviewed, b.LastReviewed)
	case ColumnReviewCount:
		cmp = a.ReviewCount - b.ReviewCount
	case ColumnWord:
		cmp = strings.Compare(a.Word, b.Word)
	}
	if cmp == 0 {
		cmp = strings.Compare(a.ID, b.ID)
	}
	if q.Ascending {
		return cmp < 0
	}
	return cmp > 0
}

// never-reviewed cards sort as the oldest
func compareReviewed(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}
