package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/storage/cache"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/view"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	prefixReveal    = "rev_"
	prefixHide      = "hide_"
	prefixDelete    = "del_"
	prefixDeleteYes = "delyes_"
	prefixDeleteNo  = "delno_"
)

const (
	textNoCards     = "No flashcards yet. Add your first one!"
	textLoading     = "Loading flashcards..."
	textCardMissing = "This flashcard no longer exists."
	textConfirm     = "Are you sure you want to delete this flashcard?"
	textError       = "An error occurred"
)

// CardT is the creation form and the card list.
type CardT struct {
	bot     BotSender
	apps    WorkspacesI
	cache   *cache.Cache
	timeout time.Duration
	log     *zap.Logger
}

func NewCardTAPI(bot BotSender, apps WorkspacesI, cache *cache.Cache, timeout time.Duration, log *zap.Logger) *CardT {
	return &CardT{
		bot:     bot,
		apps:    apps,
		cache:   cache,
		timeout: timeout,
		log:     log,
	}
}

// workspace returns the chat's app, or nil after telling the user to sign in.
func (t *CardT) workspace(ctx context.Context, chatID int64) AppI {
	app := t.apps.Workspace(ctx, chatID)
	if app.CurrentSession() == nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, textSignInFirst), t.log)
		return nil
	}
	return app
}

// addCard takes "word | meaning | example", the example being optional.
func (t *CardT) addCard(ctx context.Context, message *tgbotapi.Message, input string) {
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	app := t.workspace(ctx, chatID)
	if app == nil {
		return
	}

	parts := strings.SplitN(input, "|", 3)
	if len(parts) < 2 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, textAddUsage), t.log)
		return
	}
	var example string
	if len(parts) == 3 {
		example = parts[2]
	}

	card, err := app.CreateCard(ctx, parts[0], parts[1], example)
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ "+t.cardErrorText(err)), t.log)
		return
	}
	t.log.Debug("card added", zap.Int64("chat_id", chatID), zap.String("card_id", card.ID))

	text := fmt.Sprintf("✅ Added \"%s\".\n\n%s", card.Word, cardsTotal(app.Snapshot().Total))
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text), t.log)
}

func (t *CardT) showCards(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	app := t.workspace(ctx, chatID)
	if app == nil {
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, textLoading), t.log)
	app.Reload(ctx)

	snap := app.Snapshot()
	if snap.State == view.Unauthenticated {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, textSignInFirst), t.log)
		return
	}
	if len(snap.Cards) == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, textNoCards), t.log)
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, cardsTotal(snap.Total)), t.log)
	for _, card := range snap.Cards {
		v := app.NewCardView(card)
		t.cache.SetCardView(chatID, v)

		msg := tgbotapi.NewMessage(chatID, renderCard(v.Card(), false))
		msg.ReplyMarkup = cardKeyboard(card.ID, false)
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *CardT) sendCount(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	app := t.workspace(ctx, chatID)
	if app == nil {
		return
	}

	app.Reload(ctx)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, cardsTotal(app.Snapshot().Total)), t.log)
}

func (t *CardT) handleFlip(ctx context.Context, query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	reveal := strings.HasPrefix(query.Data, prefixReveal)
	cardID := strings.TrimPrefix(strings.TrimPrefix(query.Data, prefixReveal), prefixHide)

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	app := t.workspace(ctx, chatID)
	if app == nil {
		return
	}

	v, ok := t.cardView(app, chatID, cardID)
	if !ok {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, textCardMissing), t.log)
		return
	}

	// a button from an older rendering may ask for the state the card is already in
	if v.Revealed() != reveal {
		v.Toggle(ctx)
	}

	revealed := v.Revealed()
	edit := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, renderCard(v.Card(), revealed))
	keyboard := cardKeyboard(cardID, revealed)
	edit.ReplyMarkup = &keyboard
	sendMessage(t.bot, edit, t.log)
}

func (t *CardT) cardView(app AppI, chatID int64, cardID string) (*view.CardView, bool) {
	if v, ok := t.cache.GetCardView(chatID, cardID); ok {
		return v, true
	}
	for _, card := range app.Snapshot().Cards {
		if card.ID == cardID {
			v := app.NewCardView(card)
			t.cache.SetCardView(chatID, v)
			return v, true
		}
	}
	return nil, false
}

// handleDelete never deletes on the first tap: 🗑 only asks, and the card goes away
// once the matching Yes is tapped.
func (t *CardT) handleDelete(ctx context.Context, query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	switch data := query.Data; {
	case strings.HasPrefix(data, prefixDelete):
		cardID := strings.TrimPrefix(data, prefixDelete)
		t.cache.SetPendingDelete(chatID, cardID)

		msg := tgbotapi.NewMessage(chatID, textConfirm)
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("✅ Yes", prefixDeleteYes+cardID),
				tgbotapi.NewInlineKeyboardButtonData("❌ No", prefixDeleteNo+cardID),
			),
		)
		sendMessage(t.bot, msg, t.log)

	case strings.HasPrefix(data, prefixDeleteNo):
		t.cache.TakePendingDelete(chatID)
		sendMessage(t.bot, tgbotapi.NewEditMessageText(chatID, messageID, "Deletion cancelled."), t.log)

	case strings.HasPrefix(data, prefixDeleteYes):
		cardID := strings.TrimPrefix(data, prefixDeleteYes)
		pending, ok := t.cache.TakePendingDelete(chatID)
		if !ok || pending != cardID {
			sendMessage(t.bot, tgbotapi.NewEditMessageText(chatID, messageID, "This confirmation has expired."), t.log)
			return
		}

		ctx, cancel := context.WithTimeout(ctx, t.timeout)
		defer cancel()

		app := t.workspace(ctx, chatID)
		if app == nil {
			return
		}

		if err := app.DeleteCard(ctx, cardID); err != nil {
			t.log.Warn("failed to delete card", zap.Int64("chat_id", chatID), zap.String("card_id", cardID), zap.Error(err))
			sendMessage(t.bot, tgbotapi.NewEditMessageText(chatID, messageID, "❌ "+t.cardErrorText(err)), t.log)
			return
		}
		t.cache.DeleteCardView(chatID, cardID)

		text := "🗑 Flashcard deleted.\n\n" + cardsTotal(app.Snapshot().Total)
		sendMessage(t.bot, tgbotapi.NewEditMessageText(chatID, messageID, text), t.log)
	}
}

func (t *CardT) cardErrorText(err error) string {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return fmt.Sprintf("The %s can't be empty.\n\n%s", validationErr.Field, textAddUsage)
	case errors.Is(err, view.ErrBusy):
		return "Please wait, the previous change is still being saved."
	case errors.Is(err, models.ErrNotFound):
		return textCardMissing
	case errors.Is(err, models.ErrUnauthenticated):
		return textSignInFirst
	}
	return textError
}

func renderCard(card models.Card, revealed bool) string {
	var b strings.Builder
	b.WriteString("📖 " + card.Word + "\n\n")

	if revealed {
		b.WriteString("Meaning:\n" + card.Meaning + "\n")
		if card.HasExample() {
			b.WriteString("\nExample:\n" + *card.Example + "\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Reviewed %d times", card.ReviewCount)
	if !revealed {
		b.WriteString("\nClick to reveal meaning")
	}
	return b.String()
}

func cardKeyboard(cardID string, revealed bool) tgbotapi.InlineKeyboardMarkup {
	flip := tgbotapi.NewInlineKeyboardButtonData("👁 Reveal", prefixReveal+cardID)
	if revealed {
		flip = tgbotapi.NewInlineKeyboardButtonData("🙈 Hide", prefixHide+cardID)
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			flip,
			tgbotapi.NewInlineKeyboardButtonData("🗑", prefixDelete+cardID),
		),
	)
}

func cardsTotal(total int) string {
	return fmt.Sprintf("%d Cards", total)
}
