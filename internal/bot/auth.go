package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// AuthT is the login form.
type AuthT struct {
	bot     BotSender
	apps    WorkspacesI
	cache   *cache.Cache
	timeout time.Duration
	log     *zap.Logger
}

func NewAuthTAPI(bot BotSender, apps WorkspacesI, cache *cache.Cache, timeout time.Duration, log *zap.Logger) *AuthT {
	return &AuthT{
		bot:     bot,
		apps:    apps,
		cache:   cache,
		timeout: timeout,
		log:     log,
	}
}

func (t *AuthT) signIn(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	email, password, ok := t.credentials(message, textSignInUsage)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	app := t.apps.Workspace(ctx, chatID)
	if err := app.SignIn(ctx, email, password); err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ "+authErrorText(err, textSignInUsage)), t.log)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "👋 Welcome Back!\n\n"+cardsTotal(app.Snapshot().Total))
	msg.ReplyMarkup = menuKeyboard(true)
	sendMessage(t.bot, msg, t.log)
}

func (t *AuthT) signUp(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	email, password, ok := t.credentials(message, textSignUpUsage)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	app := t.apps.Workspace(ctx, chatID)
	user, err := app.SignUp(ctx, email, password)
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ "+authErrorText(err, textSignUpUsage)), t.log)
		return
	}

	if app.CurrentSession() != nil {
		msg := tgbotapi.NewMessage(chatID, "✅ Account created. You are signed in as "+user.Email+".")
		msg.ReplyMarkup = menuKeyboard(true)
		sendMessage(t.bot, msg, t.log)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "✅ Account created for "+user.Email+
		".\n\nCheck your email to confirm the address, then sign in with /signin <email> <password>")
	msg.ReplyMarkup = menuKeyboard(false)
	sendMessage(t.bot, msg, t.log)
}

func (t *AuthT) signOut(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	t.apps.Workspace(ctx, chatID).SignOut(ctx)
	t.cache.ClearChat(chatID)

	msg := tgbotapi.NewMessage(chatID, "🚪 Signed out.")
	msg.ReplyMarkup = menuKeyboard(false)
	sendMessage(t.bot, msg, t.log)
}

// credentials reads "<email> <password>" from a command and removes the message, so
// the password does not stay in the chat history.
func (t *AuthT) credentials(message *tgbotapi.Message, usage string) (string, string, bool) {
	args := strings.Fields(message.CommandArguments())
	if len(args) == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, usage), t.log)
		return "", "", false
	}

	request(t.bot, tgbotapi.NewDeleteMessage(message.Chat.ID, message.MessageID), t.log)

	if len(args) != 2 {
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, usage), t.log)
		return "", "", false
	}
	return args[0], args[1], true
}

func authErrorText(err error, usage string) string {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		switch validationErr.Kind {
		case models.InvalidEmail:
			return "Please enter a valid email address"
		case models.PasswordTooShort:
			return "Password must be at least 6 characters long"
		default:
			return usage
		}
	}

	var authErr *models.AuthError
	if errors.As(err, &authErr) {
		switch authErr.Kind {
		case models.AuthRateLimited:
			return "Please wait before trying again"
		case models.AuthInvalidCredentials:
			return "Invalid login credentials"
		}
	}

	switch {
	case errors.Is(err, models.ErrEmailNotConfirmed):
		return "Please confirm your email address before signing in"
	case errors.Is(err, models.ErrEmailTaken):
		return "User already registered"
	}
	return "An error occurred"
}
