// Package storage opens the store the configured mode runs on.
package storage

import (
	"context"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/config"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/remote/local"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/repository"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/storage/db"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/storage/memory"
	"go.uber.org/zap"
)

type ChatSessions interface {
	SaveChatSession(ctx context.Context, session models.ChatSession) error
	ChatSession(ctx context.Context, chatID int64) (models.ChatSession, error)
	DeleteChatSession(ctx context.Context, chatID int64) error
}

// Store backs the self-hosted service and keeps the bot's chat sessions.
type Store interface {
	local.Store
	ChatSessions
}

var (
	_ Store = repository.Repository{}
	_ Store = (*memory.Store)(nil)
)

// Open connects to postgres when a db section is configured, except in memory mode,
// and falls back to process memory otherwise. The returned close func releases the
// store.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (Store, func() error, error) {
	if cfg.DB == nil || cfg.Remote.Mode == config.RemoteMemory {
		log.Warn("using in-memory store, data is lost on exit", zap.String("mode", cfg.Remote.Mode))
		return memory.NewStore(), func() error { return nil }, nil
	}

	conn, err := db.InitDB(*cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return repository.NewRepository(conn), conn.Close, nil
}
