package view

import (
	"context"
	"errors"
	"sync"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"go.uber.org/zap"
)

var ErrBusy = errors.New("another submission is still in progress")

type State int

const (
	Unauthenticated State = iota
	Loading
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "Loading"
	case Ready:
		return "Ready"
	default:
		return "Unauthenticated"
	}
}

// Snapshot is a copy of the controller state at one point in time.
type Snapshot struct {
	State   State
	Cards   []models.Card
	Loading bool
	Total   int
}

// Controller derives the card list from the session: it loads the list when a session
// appears, clears it when the session goes away and re-reads it after every mutation.
type Controller struct {
	sessions SessionsI
	cards    CardsI
	log      *zap.Logger

	mu          sync.Mutex
	state       State
	list        []models.Card
	total       int
	loading     bool
	submitting  bool
	generation  int
	unsubscribe func()
}

func NewController(sessions SessionsI, cards CardsI, log *zap.Logger) *Controller {
	return &Controller{
		sessions: sessions,
		cards:    cards,
		log:      log,
		list:     []models.Card{},
	}
}

// Start subscribes to session changes and loads the list if already signed in.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.unsubscribe != nil {
		c.mu.Unlock()
		return
	}
	c.unsubscribe = c.sessions.Subscribe(c.onSession)
	c.mu.Unlock()

	if c.sessions.CurrentSession() != nil {
		c.Reload(ctx)
	}
}

func (c *Controller) Close() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (c *Controller) onSession(ctx context.Context, event models.AuthEvent, session *models.Session) {
	if session == nil {
		c.mu.Lock()
		c.generation++
		c.state = Unauthenticated
		c.list = []models.Card{}
		c.total = 0
		c.loading = false
		c.mu.Unlock()
		return
	}

	if event == models.EventTokenRefreshed && c.Snapshot().State != Unauthenticated {
		return
	}
	c.Reload(ctx)
}

// Reload re-reads the list and the running total. A failed read keeps the previous
// list.
func (c *Controller) Reload(ctx context.Context) {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.state = Loading
	c.loading = true
	c.mu.Unlock()

	cards, listErr := c.cards.ListCards(ctx)
	if listErr != nil {
		c.log.Warn("failed to load cards", zap.Error(listErr))
	}
	total, countErr := c.cards.CountCards(ctx)
	if countErr != nil {
		c.log.Warn("failed to count cards", zap.Error(countErr))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// a newer reload or a sign-out owns the state now
	if gen != c.generation {
		return
	}
	if errors.Is(listErr, models.ErrUnauthenticated) {
		c.state = Unauthenticated
		c.list = []models.Card{}
		c.total = 0
		c.loading = false
		return
	}

	if listErr == nil {
		c.list = cards
	}
	if countErr == nil {
		c.total = total
	}
	c.state = Ready
	c.loading = false
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		State:   c.state,
		Cards:   append([]models.Card(nil), c.list...),
		Loading: c.loading,
		Total:   c.total,
	}
}

func (c *Controller) Create(ctx context.Context, word, meaning, example string) (models.Card, error) {
	if err := c.beginSubmit(); err != nil {
		return models.Card{}, err
	}
	defer c.endSubmit()

	card, err := c.cards.CreateCard(ctx, word, meaning, example)
	if err != nil {
		return models.Card{}, err
	}
	c.Reload(ctx)
	return card, nil
}

func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.beginSubmit(); err != nil {
		return err
	}
	defer c.endSubmit()

	if err := c.cards.DeleteCard(ctx, id); err != nil {
		return err
	}
	c.Reload(ctx)
	return nil
}

// NewCardView wraps one of the listed cards for flipping.
func (c *Controller) NewCardView(card models.Card) *CardView {
	return NewCardView(card, c.cards, c.log)
}

func (c *Controller) beginSubmit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return ErrBusy
	}
	c.submitting = true
	return nil
}

func (c *Controller) endSubmit() {
	c.mu.Lock()
	c.submitting = false
	c.mu.Unlock()
}
