package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
)

// ParseQuery reads the PostgREST parameters the flashcards collection understands:
// col=eq.value filters, order=col.asc|desc and limit=n.
func ParseQuery(values url.Values) (models.CardQuery, error) {
	var q models.CardQuery

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if len(values[key]) != 1 {
			return models.CardQuery{}, fmt.Errorf("parameter %s given %d times: %w", key, len(values[key]), models.ErrInvalidQuery)
		}
		value := values[key][0]
		switch key {
		case "select":
		case "order":
			parts := strings.Split(value, ".")
			q.OrderBy = parts[0]
			for _, modifier := range parts[1:] {
				switch modifier {
				case "asc":
					q.Ascending = true
				case "desc":
					q.Ascending = false
				case "nullsfirst", "nullslast":
				default:
					return models.CardQuery{}, fmt.Errorf("order modifier %q: %w", modifier, models.ErrInvalidQuery)
				}
			}
		case "limit":
			limit, err := strconv.Atoi(value)
			if err != nil {
				return models.CardQuery{}, fmt.Errorf("limit %q: %w", value, models.ErrInvalidQuery)
			}
			q.Limit = limit
		default:
			eq, ok := strings.CutPrefix(value, "eq.")
			if !ok {
				return models.CardQuery{}, fmt.Errorf("filter %s=%s: %w", key, value, models.ErrInvalidQuery)
			}
			q = q.Where(key, eq)
		}
	}

	return q, q.Validate()
}

func (s *Server) SelectCards(w http.ResponseWriter, r *http.Request) {
	q, err := ParseQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cards, err := s.backend.Select(r.Context(), bearer(r), q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if prefers(r, "count=exact") {
		total, err := s.backend.Count(r.Context(), bearer(r), models.CardQuery{Eq: q.Eq})
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Range", contentRange(len(cards), total))
	}
	s.writeJSON(w, http.StatusOK, cards)
}

func (s *Server) CountCards(w http.ResponseWriter, r *http.Request) {
	q, err := ParseQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	total, err := s.backend.Count(r.Context(), bearer(r), models.CardQuery{Eq: q.Eq})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Range", contentRange(0, total))
	w.WriteHeader(http.StatusOK)
}

func contentRange(returned, total int) string {
	if returned == 0 {
		return fmt.Sprintf("*/%d", total)
	}
	return fmt.Sprintf("0-%d/%d", returned-1, total)
}

func (s *Server) InsertCards(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if !s.decode(w, r, &raw) {
		return
	}

	// a single object or an array of them
	var batch []models.NewCard
	if err := json.Unmarshal(raw, &batch); err != nil {
		var one models.NewCard
		if err := json.Unmarshal(raw, &one); err != nil {
			s.writeJSON(w, http.StatusBadRequest, errorJSON{Code: "bad_json", Msg: "invalid request body"})
			return
		}
		batch = []models.NewCard{one}
	}

	inserted := make([]models.Card, 0, len(batch))
	for _, card := range batch {
		c, err := s.backend.Insert(r.Context(), bearer(r), card)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		inserted = append(inserted, c)
	}

	if !prefers(r, "return=representation") {
		w.WriteHeader(http.StatusCreated)
		return
	}
	s.writeJSON(w, http.StatusCreated, inserted)
}

// DeleteCards removes the card named by an id=eq filter. Like PostgREST, a filter that
// matches nothing is not an error: the representation is just empty.
func (s *Server) DeleteCards(w http.ResponseWriter, r *http.Request) {
	q, err := ParseQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	id, ok := onlyIDFilter(q)
	if !ok {
		s.writeError(w, r, fmt.Errorf("delete needs exactly one id filter: %w", models.ErrInvalidQuery))
		return
	}

	ctx, token := r.Context(), bearer(r)
	removed, err := s.backend.Select(ctx, token, q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.backend.Delete(ctx, token, id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.writeError(w, r, err)
			return
		}
		removed = []models.Card{}
	}

	if !prefers(r, "return=representation") {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.writeJSON(w, http.StatusOK, removed)
}

func onlyIDFilter(q models.CardQuery) (string, bool) {
	if len(q.Eq) != 1 || q.Eq[0].Column != models.ColumnID {
		return "", false
	}
	return q.Eq[0].Value, true
}

func (s *Server) RecordReview(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CardID string `json:"card_id"`
	}
	if !s.decode(w, r, &payload) {
		return
	}

	card, err := s.backend.RecordReview(r.Context(), bearer(r), payload.CardID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.writeJSON(w, http.StatusOK, []models.Card{})
			return
		}
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, []models.Card{card})
}
