package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
)

const (
	preferRepresentation = "return=representation"
	preferCount          = "count=exact"
)

// EncodeQuery renders a CardQuery as PostgREST query parameters.
func EncodeQuery(q models.CardQuery) url.Values {
	values := url.Values{"select": {"*"}}
	for _, f := range q.Eq {
		values.Add(f.Column, "eq."+f.Value)
	}
	if q.OrderBy != "" {
		dir := "desc"
		if q.Ascending {
			dir = "asc"
		}
		values.Set("order", q.OrderBy+"."+dir)
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	return values
}

func (c *Client) Select(ctx context.Context, accessToken string, q models.CardQuery) ([]models.Card, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	cards := make([]models.Card, 0)
	_, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   restPath + "/" + cardTable,
		query:  EncodeQuery(q),
		token:  accessToken,
	}, &cards)
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) Count(ctx context.Context, accessToken string, q models.CardQuery) (int, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}

	query := EncodeQuery(q)
	query.Del("order")
	resp, err := c.do(ctx, request{
		method: http.MethodHead,
		path:   restPath + "/" + cardTable,
		query:  query,
		token:  accessToken,
		prefer: preferCount,
	}, nil)
	if err != nil {
		return 0, err
	}
	return ParseContentRange(resp.Header.Get("Content-Range"))
}

// ParseContentRange extracts the total from "0-24/3573" or "*/0".
func ParseContentRange(header string) (int, error) {
	idx := strings.LastIndex(header, "/")
	if idx < 0 {
		return 0, fmt.Errorf("malformed Content-Range %q", header)
	}
	total, err := strconv.Atoi(header[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("malformed Content-Range %q: %w", header, err)
	}
	return total, nil
}

func (c *Client) Insert(ctx context.Context, accessToken string, card models.NewCard) (models.Card, error) {
	var rows []models.Card
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   restPath + "/" + cardTable,
		token:  accessToken,
		prefer: preferRepresentation,
		body:   []models.NewCard{card},
	}, &rows)
	if err != nil {
		return models.Card{}, err
	}
	if len(rows) != 1 {
		return models.Card{}, fmt.Errorf("insert returned %d rows", len(rows))
	}
	return rows[0], nil
}

func (c *Client) RecordReview(ctx context.Context, accessToken, id string) (models.Card, error) {
	var rows []models.Card
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   restPath + "/rpc/record_review",
		token:  accessToken,
		body:   map[string]string{"card_id": id},
	}, &rows)
	if err != nil {
		return models.Card{}, err
	}
	if len(rows) == 0 {
		return models.Card{}, fmt.Errorf("card %s: %w", id, models.ErrNotFound)
	}
	return rows[0], nil
}

func (c *Client) Delete(ctx context.Context, accessToken, id string) error {
	var rows []models.Card
	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   restPath + "/" + cardTable,
		query:  url.Values{models.ColumnID: {"eq." + id}},
		token:  accessToken,
		prefer: preferRepresentation,
	}, &rows)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("card %s: %w", id, models.ErrNotFound)
	}
	return nil
}
