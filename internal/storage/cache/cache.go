package cache

import (
	"sync"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/view"
)

type cardKey struct {
	chatID int64
	cardID string
}

// Cache keeps the per-chat presentation state the bot needs between updates.
type Cache struct {
	mu      sync.Mutex
	views   map[cardKey]*view.CardView
	pending map[int64]string
}

func NewCache() *Cache {
	return &Cache{
		views:   make(map[cardKey]*view.CardView),
		pending: make(map[int64]string),
	}
}

func (c *Cache) SetCardView(chatID int64, v *view.CardView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views[cardKey{chatID: chatID, cardID: v.Card().ID}] = v
}

func (c *Cache) GetCardView(chatID int64, cardID string) (*view.CardView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, exists := c.views[cardKey{chatID: chatID, cardID: cardID}]
	return v, exists
}

func (c *Cache) DeleteCardView(chatID int64, cardID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.views, cardKey{chatID: chatID, cardID: cardID})
}

// ClearChat forgets everything held for a chat, e.g. after sign-out.
func (c *Cache) ClearChat(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.views {
		if key.chatID == chatID {
			delete(c.views, key)
		}
	}
	delete(c.pending, chatID)
}

func (c *Cache) SetPendingDelete(chatID int64, cardID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[chatID] = cardID
}

// TakePendingDelete returns and clears the card awaiting confirmation in a chat.
func (c *Cache) TakePendingDelete(chatID int64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cardID, exists := c.pending[chatID]
	delete(c.pending, chatID)
	return cardID, exists
}
