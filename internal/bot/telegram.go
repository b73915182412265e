package bot

import (
	"context"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/storage/cache"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/view"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=telegram.go -destination=mock/mock.go -exclude_interfaces=BotSender,WorkspacesI

// AppI is one chat's workspace.
type AppI interface {
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string) (models.User, error)
	SignOut(ctx context.Context)
	CurrentSession() *models.Session
	Snapshot() view.Snapshot
	Reload(ctx context.Context)
	CreateCard(ctx context.Context, word, meaning, example string) (models.Card, error)
	DeleteCard(ctx context.Context, id string) error
	NewCardView(card models.Card) *view.CardView
}

type WorkspacesI interface {
	Workspace(ctx context.Context, chatID int64) AppI
}

// WorkspacesFunc adapts a plain function to WorkspacesI.
type WorkspacesFunc func(ctx context.Context, chatID int64) AppI

func (f WorkspacesFunc) Workspace(ctx context.Context, chatID int64) AppI {
	return f(ctx, chatID)
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	api   *tgbotapi.BotAPI
	bot   BotSender
	apps  WorkspacesI
	auth  *AuthT
	cards *CardT
	log   *zap.Logger
}

func NewTelegramAPI(botToken, env string, apps WorkspacesI, cache *cache.Cache, timeout time.Duration, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	api.Debug = env == "development"
	log.Info("authorized on telegram", zap.String("account", api.Self.UserName))

	t := newTelegramAPI(api, apps, cache, timeout, log)
	t.api = api
	return t, nil
}

func newTelegramAPI(bot BotSender, apps WorkspacesI, cache *cache.Cache, timeout time.Duration, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:   bot,
		apps:  apps,
		auth:  NewAuthTAPI(bot, apps, cache, timeout, log),
		cards: NewCardTAPI(bot, apps, cache, timeout, log),
		log:   log,
	}
}

// Start handles updates one at a time until ctx is done.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(ctx, update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(ctx, update.Message)
		} else {
			t.handleMessage(ctx, update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(ctx, update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable, log *zap.Logger) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}

func request(bot BotSender, c tgbotapi.Chattable, log *zap.Logger) {
	if _, err := bot.Request(c); err != nil {
		log.Warn("telegram request failed", zap.Error(err))
	}
}
