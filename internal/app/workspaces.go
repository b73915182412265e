package app

import (
	"context"
	"errors"
	"sync"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/service"
	"go.uber.org/zap"
)

type ChatSessionsI interface {
	SaveChatSession(ctx context.Context, session models.ChatSession) error
	ChatSession(ctx context.Context, chatID int64) (models.ChatSession, error)
	DeleteChatSession(ctx context.Context, chatID int64) error
}

type workspace struct {
	app         *App
	unsubscribe func()
}

// Workspaces creates one App per chat on first contact and keeps it until Close. A
// chat's session is stored on every change, so a new Workspaces over the same store
// resumes where the old one stopped.
type Workspaces struct {
	remote service.RemoteI
	chats  ChatSessionsI
	opts   service.SessionOptions
	log    *zap.Logger

	mu   sync.Mutex
	apps map[int64]workspace
}

func NewWorkspaces(remote service.RemoteI, chats ChatSessionsI, opts service.SessionOptions, log *zap.Logger) *Workspaces {
	return &Workspaces{
		remote: remote,
		chats:  chats,
		opts:   opts,
		log:    log,
		apps:   make(map[int64]workspace),
	}
}

func (w *Workspaces) Workspace(ctx context.Context, chatID int64) *App {
	w.mu.Lock()
	defer w.mu.Unlock()

	if ws, ok := w.apps[chatID]; ok {
		return ws.app
	}

	log := w.log.With(zap.Int64("chat_id", chatID))
	a := New(w.remote, w.opts, log)

	stored := w.storedSession(ctx, chatID, log)
	unsubscribe := a.Subscribe(w.persist(chatID, stored != nil, log))
	a.Start(ctx, stored)

	w.apps[chatID] = workspace{app: a, unsubscribe: unsubscribe}
	return a
}

func (w *Workspaces) storedSession(ctx context.Context, chatID int64, log *zap.Logger) *models.Session {
	stored, err := w.chats.ChatSession(ctx, chatID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			log.Warn("failed to load chat session", zap.Error(err))
		}
		return nil
	}
	session := stored.Session()
	return &session
}

func (w *Workspaces) persist(chatID int64, hadStored bool, log *zap.Logger) service.Listener {
	return func(ctx context.Context, event models.AuthEvent, session *models.Session) {
		if session == nil {
			if event == models.EventInitialSession && !hadStored {
				return
			}
			if err := w.chats.DeleteChatSession(ctx, chatID); err != nil {
				log.Warn("failed to delete chat session", zap.String("event", string(event)), zap.Error(err))
			}
			return
		}

		if err := w.chats.SaveChatSession(ctx, models.NewChatSession(chatID, *session)); err != nil {
			log.Warn("failed to save chat session", zap.String("event", string(event)), zap.Error(err))
		}
	}
}

func (w *Workspaces) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for chatID, ws := range w.apps {
		ws.unsubscribe()
		ws.app.Close()
		delete(w.apps, chatID)
	}
}
