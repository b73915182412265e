package bot

import (
	"context"
	"testing"
	"time"

	mock_bot "github.com/19smabtahinoor/Vocab-FlashCard/internal/bot/mock"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTelegramMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockAppI)) (*TelegramAPI, *mock_bot.MockBot) {
	mockApp := mock_bot.NewMockAppI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockApp)
	}

	return newTelegramAPI(mockBot, workspacesOf(mockApp), cache.NewCache(), time.Second, zap.NewNop()), mockBot
}

func TestTelegramAPI_handleUpdate(t *testing.T) {
	t.Parallel()

	type args struct {
		update tgbotapi.Update
	}
	tests := []struct {
		name       string
		args       args
		f          func(*mock_bot.MockAppI)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "start: signed out menu",
			args: args{update: tgbotapi.Update{Message: commandMessage("/start")}},
			f: func(ma *mock_bot.MockAppI) {
				ma.EXPECT().CurrentSession().Return(nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "VocabFlashcards")
				kb := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
				assert.Equal(t, ButtonSignIn, kb.Keyboard[0][0].Text)
				assert.Equal(t, ButtonSignUp, kb.Keyboard[0][1].Text)
			},
		},
		{
			name: "help",
			args: args{update: tgbotapi.Update{Message: commandMessage("/help")}},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				assert.Contains(t, mb.SentMessages[0].(tgbotapi.MessageConfig).Text, "/add word | meaning | example")
			},
		},
		{
			name: "unknown command",
			args: args{update: tgbotapi.Update{Message: commandMessage("/quiz")}},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, "Unknown command. Use /help", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name: "add button shows usage",
			args: args{update: tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}, Text: ButtonAddCard}}},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, textAddUsage, mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name: "plain text with separator adds a card",
			args: args{update: tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}, Text: "word | meaning"}}},
			f: func(ma *mock_bot.MockAppI) {
				ma.EXPECT().CurrentSession().Return(signedIn)
				ma.EXPECT().CreateCard(gomock.Any(), "word ", " meaning", "").Return(testCard("c1", "word"), nil)
				ma.EXPECT().Snapshot().Return(viewSnapshot(1))
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				assert.Contains(t, mb.SentMessages[0].(tgbotapi.MessageConfig).Text, "1 Cards")
			},
		},
		{
			name: "unrecognised text",
			args: args{update: tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}, Text: "hello"}}},
			f: func(ma *mock_bot.MockAppI) {
				ma.EXPECT().CurrentSession().Return(signedIn)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				kb := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
				assert.Equal(t, ButtonMyCards, kb.Keyboard[0][0].Text)
			},
		},
		{
			name: "callback is answered",
			args: args{update: tgbotapi.Update{CallbackQuery: callback(prefixDelete + "c1")}},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.Requests, 1)
				answer, ok := mb.Requests[0].(tgbotapi.CallbackConfig)
				require.True(t, ok)
				assert.Equal(t, "q1", answer.CallbackQueryID)

				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, textConfirm, mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name: "unknown callback",
			args: args{update: tgbotapi.Update{CallbackQuery: callback("know")}},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Len(t, mb.Requests, 1)
				assert.Empty(t, mb.SentMessages)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mb := newTelegramMock(t, ctrl, tt.f)
			api.handleUpdate(context.Background(), tt.args.update)

			tt.assertFunc(t, mb)
		})
	}
}
