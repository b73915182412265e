// Package memory keeps users, auth sessions, flashcards and chat sessions in process
// memory with the same semantics as the Postgres repository. It backs the "memory"
// remote mode and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
)

type Store struct {
	mu       sync.Mutex
	users    map[string]models.User
	byEmail  map[string]string
	sessions map[string]models.AuthSession
	refresh  map[string]string
	cards    map[string]models.Card
	chats    map[int64]models.ChatSession
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]models.User),
		byEmail:  make(map[string]string),
		sessions: make(map[string]models.AuthSession),
		refresh:  make(map[string]string),
		cards:    make(map[string]models.Card),
		chats:    make(map[int64]models.ChatSession),
	}
}

func (s *Store) CreateUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, exists := s.byEmail[key]; exists {
		return fmt.Errorf("create user %s: %w", user.Email, models.ErrEmailTaken)
	}
	s.users[user.ID] = user
	s.byEmail[key] = user.ID
	return nil
}

func (s *Store) UserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.byEmail[strings.ToLower(email)]
	if !exists {
		return models.User{}, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
	}
	return s.users[id], nil
}

func (s *Store) UserByID(_ context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[id]
	if !exists {
		return models.User{}, fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	return user, nil
}

func (s *Store) ConfirmUser(_ context.Context, email string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.byEmail[strings.ToLower(email)]
	if !exists {
		return fmt.Errorf("user %s: %w", email, models.ErrNotFound)
	}
	user := s.users[id]
	if user.ConfirmedAt == nil {
		user.ConfirmedAt = &at
		s.users[id] = user
	}
	return nil
}

func (s *Store) CreateSession(_ context.Context, session models.AuthSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	s.refresh[session.RefreshToken] = session.ID
	return nil
}

func (s *Store) SessionByID(_ context.Context, id string) (models.AuthSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[id]
	if !exists {
		return models.AuthSession{}, fmt.Errorf("session: %w", models.ErrNotFound)
	}
	return session, nil
}

func (s *Store) SessionByRefreshToken(_ context.Context, token string) (models.AuthSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.refresh[token]
	if !exists {
		return models.AuthSession{}, fmt.Errorf("session: %w", models.ErrNotFound)
	}
	return s.sessions[id], nil
}

func (s *Store) RotateRefreshToken(_ context.Context, id, oldToken, newToken string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[id]
	if !exists || session.RefreshToken != oldToken {
		return fmt.Errorf("session %s: %w", id, models.ErrNotFound)
	}
	delete(s.refresh, oldToken)
	session.RefreshToken = newToken
	session.ExpiresAt = expiresAt
	s.sessions[id] = session
	s.refresh[newToken] = id
	return nil
}

func (s *Store) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[id]
	if !exists {
		return fmt.Errorf("session %s: %w", id, models.ErrNotFound)
	}
	delete(s.refresh, session.RefreshToken)
	delete(s.sessions, id)
	return nil
}

func (s *Store) SaveChatSession(_ context.Context, session models.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chats[session.ChatID] = session
	return nil
}

func (s *Store) ChatSession(_ context.Context, chatID int64) (models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.chats[chatID]
	if !exists {
		return models.ChatSession{}, fmt.Errorf("chat session: %w", models.ErrNotFound)
	}
	return session, nil
}

func (s *Store) DeleteChatSession(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.chats, chatID)
	return nil
}

func (s *Store) InsertCard(_ context.Context, card models.Card) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cards[card.ID]; exists {
		return models.Card{}, fmt.Errorf("insert card %s: duplicate id", card.ID)
	}
	card.ReviewCount = 0
	card.LastReviewed = nil
	s.cards[card.ID] = card
	return card, nil
}

func (s *Store) SelectCards(_ context.Context, ownerID string, q models.CardQuery) ([]models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := s.match(ownerID, q)
	sort.Slice(cards, func(i, j int) bool { return q.Less(cards[i], cards[j]) })
	if q.Limit > 0 && len(cards) > q.Limit {
		cards = cards[:q.Limit]
	}
	return cards, nil
}

func (s *Store) CountCards(_ context.Context, ownerID string, q models.CardQuery) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.match(ownerID, q)), nil
}

func (s *Store) IncrementReview(_ context.Context, ownerID, id string, at time.Time) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, exists := s.cards[id]
	if !exists || card.OwnerID != ownerID {
		return models.Card{}, fmt.Errorf("card %s: %w", id, models.ErrNotFound)
	}
	card.ReviewCount++
	card.LastReviewed = &at
	s.cards[id] = card
	return card, nil
}

func (s *Store) DeleteCard(_ context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, exists := s.cards[id]
	if !exists || card.OwnerID != ownerID {
		return fmt.Errorf("card %s: %w", id, models.ErrNotFound)
	}
	delete(s.cards, id)
	return nil
}

func (s *Store) match(ownerID string, q models.CardQuery) []models.Card {
	cards := make([]models.Card, 0)
	for _, card := range s.cards {
		if card.OwnerID == ownerID && q.Match(card) {
			cards = append(cards, card)
		}
	}
	return cards
}
