package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonMyCards  = "📚 My flashcards"
	ButtonAddCard  = "➕ New flashcard"
	ButtonCount    = "📊 Total"
	ButtonSignOut  = "🚪 Sign out"
	ButtonSignIn   = "🔐 Sign in"
	ButtonSignUp   = "📝 Create account"
	ButtonHelp     = "ℹ️ Help"
	ButtonMainMenu = "🏠 Main menu"
)

const (
	textSignInUsage = "To sign in send:\n/signin <email> <password>"
	textSignUpUsage = "To create an account send:\n/signup <email> <password>\n\nPassword must be at least 6 characters long"
	textAddUsage    = "To add a flashcard send:\n/add word | meaning | example\n\nThe example sentence is optional."
	textSignInFirst = "Please sign in first.\n\n" + textSignInUsage
)

func (t *TelegramAPI) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(ctx, message)
	case "help":
		t.handleHelpCommand(message)
	case "signin":
		t.auth.signIn(ctx, message)
	case "signup":
		t.auth.signUp(ctx, message)
	case "signout":
		t.auth.signOut(ctx, message)
	case "add":
		t.cards.addCard(ctx, message, message.CommandArguments())
	case "cards":
		t.cards.showCards(ctx, message)
	case "count":
		t.cards.sendCount(ctx, message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /help")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleStartCommand(ctx context.Context, message *tgbotapi.Message) {
	welcomeText := "🤖 Hi! I'm VocabFlashcards.\n\n" +
		"✨ What I can do:\n" +
		"• ➕ Keep your words with their meaning and an example\n" +
		"• 🃏 Show them as flashcards you can flip\n" +
		"• 🔁 Count how often you reviewed each one\n\n" +
		"Memorize the Flashcards!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = menuKeyboard(t.signedIn(ctx, message.Chat.ID))
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) showMainMenu(ctx context.Context, chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🏠 Main menu:")
	msg.ReplyMarkup = menuKeyboard(t.signedIn(ctx, chatID))
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) signedIn(ctx context.Context, chatID int64) bool {
	return t.apps.Workspace(ctx, chatID).CurrentSession() != nil
}

func menuKeyboard(signedIn bool) tgbotapi.ReplyKeyboardMarkup {
	var keyboard tgbotapi.ReplyKeyboardMarkup
	if signedIn {
		keyboard = tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(ButtonMyCards),
				tgbotapi.NewKeyboardButton(ButtonAddCard),
			),
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(ButtonCount),
				tgbotapi.NewKeyboardButton(ButtonSignOut),
			),
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(ButtonHelp),
			),
		)
	} else {
		keyboard = tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(ButtonSignIn),
				tgbotapi.NewKeyboardButton(ButtonSignUp),
			),
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(ButtonHelp),
			),
		)
	}

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Commands:
/start — start the bot
/signin <email> <password> — sign in
/signup <email> <password> — create an account
/signout — sign out
/add word | meaning | example — add a flashcard
/cards — show your flashcards
/count — how many flashcards you have
/help — this message

🃏 Tap 👁 on a card to reveal its meaning. Every reveal counts as a review.
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	text := message.Text

	switch {
	case text == ButtonMyCards:
		t.cards.showCards(ctx, message)
	case text == ButtonAddCard:
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, textAddUsage), t.log)
	case text == ButtonCount:
		t.cards.sendCount(ctx, message)
	case text == ButtonSignOut:
		t.auth.signOut(ctx, message)
	case text == ButtonSignIn:
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, textSignInUsage), t.log)
	case text == ButtonSignUp:
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, textSignUpUsage), t.log)
	case text == ButtonMainMenu:
		t.showMainMenu(ctx, chatID)
	case text == ButtonHelp:
		t.handleHelpCommand(message)
	case strings.Contains(text, "|"):
		t.cards.addCard(ctx, message, text)

	default:
		msg := tgbotapi.NewMessage(chatID, "I didn't get that. Use the buttons below.")
		msg.ReplyMarkup = menuKeyboard(t.signedIn(ctx, chatID))
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	request(t.bot, callback, t.log)

	if query.Message == nil {
		t.log.Warn("callback query without message", zap.String("query_id", query.ID))
		return
	}

	data := query.Data
	switch {
	case strings.HasPrefix(data, prefixReveal), strings.HasPrefix(data, prefixHide):
		t.cards.handleFlip(ctx, query)
	case strings.HasPrefix(data, prefixDelete),
		strings.HasPrefix(data, prefixDeleteYes),
		strings.HasPrefix(data, prefixDeleteNo):
		t.cards.handleDelete(ctx, query)
	case data == "main_menu":
		t.showMainMenu(ctx, query.Message.Chat.ID)

	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("chat_id", query.Message.Chat.ID))
	}
}
