package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/remote/local"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/service"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/storage/memory"
	mock_view "github.com/19smabtahinoor/Vocab-FlashCard/internal/view/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var session = &models.Session{AccessToken: "a1", User: models.User{ID: "user-1"}}

type harness struct {
	ctrl     *Controller
	sessions *mock_view.MockSessionsI
	cards    *mock_view.MockCardsI
	listener service.Listener
	unsubbed bool
}

func newControllerMock(t *testing.T, gc *gomock.Controller, current *models.Session) *harness {
	h := &harness{
		sessions: mock_view.NewMockSessionsI(gc),
		cards:    mock_view.NewMockCardsI(gc),
	}
	h.sessions.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(fn service.Listener) func() {
		h.listener = fn
		return func() { h.unsubbed = true }
	})
	h.sessions.EXPECT().CurrentSession().Return(current)
	h.ctrl = NewController(h.sessions, h.cards, zap.NewNop())
	return h
}

func (h *harness) publish(event models.AuthEvent, s *models.Session) {
	h.listener(context.Background(), event, s)
}

func TestController_Lifecycle(t *testing.T) {
	t.Parallel()

	gc := gomock.NewController(t)
	defer gc.Finish()

	h := newControllerMock(t, gc, nil)
	ctx := context.Background()

	h.ctrl.Start(ctx)
	h.ctrl.Start(ctx)
	assert.Equal(t, Snapshot{State: Unauthenticated, Cards: nil}, withoutCards(h.ctrl.Snapshot()))

	first := []models.Card{{ID: "2", Word: "pear"}, {ID: "1", Word: "apple"}}
	gomock.InOrder(
		h.cards.EXPECT().ListCards(gomock.Any()).Return(first, nil),
		h.cards.EXPECT().CountCards(gomock.Any()).Return(2, nil),
	)
	h.publish(models.EventSignedIn, session)

	snap := h.ctrl.Snapshot()
	assert.Equal(t, Ready, snap.State)
	assert.False(t, snap.Loading)
	assert.Equal(t, first, snap.Cards)
	assert.Equal(t, 2, snap.Total)

	// refreshed tokens do not re-read the list
	h.publish(models.EventTokenRefreshed, session)

	// a failed read keeps what is displayed
	h.cards.EXPECT().ListCards(gomock.Any()).Return(nil, errors.New("timeout"))
	h.cards.EXPECT().CountCards(gomock.Any()).Return(0, errors.New("timeout"))
	h.ctrl.Reload(ctx)
	snap = h.ctrl.Snapshot()
	assert.Equal(t, Ready, snap.State)
	assert.Equal(t, first, snap.Cards)
	assert.Equal(t, 2, snap.Total)

	h.publish(models.EventSignedOut, nil)
	snap = h.ctrl.Snapshot()
	assert.Equal(t, Unauthenticated, snap.State)
	assert.Empty(t, snap.Cards)
	assert.Zero(t, snap.Total)

	h.ctrl.Close()
	h.ctrl.Close()
	assert.True(t, h.unsubbed)
}

func TestController_StartSignedIn(t *testing.T) {
	t.Parallel()

	gc := gomock.NewController(t)
	defer gc.Finish()

	h := newControllerMock(t, gc, session)
	h.cards.EXPECT().ListCards(gomock.Any()).Return([]models.Card{}, nil)
	h.cards.EXPECT().CountCards(gomock.Any()).Return(0, nil)

	h.ctrl.Start(context.Background())
	snap := h.ctrl.Snapshot()
	assert.Equal(t, Ready, snap.State)
	assert.Empty(t, snap.Cards)
}

func TestController_ReloadUnauthenticated(t *testing.T) {
	t.Parallel()

	gc := gomock.NewController(t)
	defer gc.Finish()

	h := newControllerMock(t, gc, nil)
	h.cards.EXPECT().ListCards(gomock.Any()).Return(nil, models.ErrUnauthenticated)
	h.cards.EXPECT().CountCards(gomock.Any()).Return(0, models.ErrUnauthenticated)

	h.ctrl.Start(context.Background())
	h.ctrl.Reload(context.Background())
	assert.Equal(t, Unauthenticated, h.ctrl.Snapshot().State)
}

func TestController_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_view.MockCardsI)
		wantErr bool
	}{
		{
			name: "success re-reads the list",
			f: func(mc *mock_view.MockCardsI) {
				gomock.InOrder(
					mc.EXPECT().CreateCard(gomock.Any(), "w", "m", "e").Return(models.Card{ID: "c1"}, nil),
					mc.EXPECT().ListCards(gomock.Any()).Return([]models.Card{{ID: "c1"}}, nil),
					mc.EXPECT().CountCards(gomock.Any()).Return(1, nil),
				)
			},
		},
		{
			name: "failure leaves the list alone",
			f: func(mc *mock_view.MockCardsI) {
				mc.EXPECT().CreateCard(gomock.Any(), "w", "m", "e").
					Return(models.Card{}, &models.ValidationError{Field: "word", Kind: models.EmptyRequiredField})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gc := gomock.NewController(t)
			defer gc.Finish()

			h := newControllerMock(t, gc, nil)
			h.ctrl.Start(context.Background())
			tt.f(h.cards)

			card, err := h.ctrl.Create(context.Background(), "w", "m", "e")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, Unauthenticated, h.ctrl.Snapshot().State)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "c1", card.ID)
			assert.Equal(t, 1, h.ctrl.Snapshot().Total)
		})
	}
}

func TestController_SubmissionGuard(t *testing.T) {
	t.Parallel()

	gc := gomock.NewController(t)
	defer gc.Finish()

	h := newControllerMock(t, gc, nil)
	h.ctrl.Start(context.Background())

	started := make(chan struct{})
	release := make(chan struct{})
	h.cards.EXPECT().DeleteCard(gomock.Any(), "c1").DoAndReturn(func(context.Context, string) error {
		close(started)
		<-release
		return models.ErrNotFound
	})

	done := make(chan error, 1)
	go func() {
		done <- h.ctrl.Delete(context.Background(), "c1")
	}()

	<-started
	_, err := h.ctrl.Create(context.Background(), "w", "m", "")
	require.ErrorIs(t, err, ErrBusy)
	require.ErrorIs(t, h.ctrl.Delete(context.Background(), "c1"), ErrBusy)

	close(release)
	select {
	case err := <-done:
		require.ErrorIs(t, err, models.ErrNotFound)
	case <-time.After(5 * time.Second):
		t.Fatal("delete did not finish")
	}
}

func TestController_Scenario(t *testing.T) {
	t.Parallel()

	remote, err := local.New(memory.NewStore(), local.Options{
		JWTSecret:   "0123456789abcdef0123456789abcdef",
		AutoConfirm: true,
		BcryptCost:  bcrypt.MinCost,
	}, zap.NewNop())
	require.NoError(t, err)

	svc := service.InitServices(remote, service.SessionOptions{}, zap.NewNop())
	ctrl := NewController(svc.SessionS, svc.CardS, zap.NewNop())
	ctx := context.Background()

	ctrl.Start(ctx)
	defer ctrl.Close()
	svc.Init(ctx, nil)
	assert.Equal(t, Unauthenticated, ctrl.Snapshot().State)

	_, err = svc.SignUp(ctx, "user@example.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, svc.SignIn(ctx, "user@example.com", "secret1"))
	assert.Equal(t, Ready, ctrl.Snapshot().State)
	assert.Empty(t, ctrl.Snapshot().Cards)

	_, err = ctrl.Create(ctx, "ephemeral", "short-lived", "The connection was ephemeral.")
	require.NoError(t, err)

	snap := ctrl.Snapshot()
	require.Len(t, snap.Cards, 1)
	assert.Equal(t, 1, snap.Total)
	card := snap.Cards[0]
	assert.Equal(t, "ephemeral", card.Word)
	assert.Equal(t, 0, card.ReviewCount)

	flip := ctrl.NewCardView(card)
	assert.True(t, flip.Toggle(ctx))
	require.Eventually(t, func() bool {
		return flip.Card().ReviewCount == 1
	}, time.Second, time.Millisecond)
	assert.False(t, flip.Toggle(ctx))
	assert.Equal(t, 1, flip.Card().ReviewCount)

	require.NoError(t, ctrl.Delete(ctx, card.ID))
	snap = ctrl.Snapshot()
	assert.Empty(t, snap.Cards)
	assert.Zero(t, snap.Total)

	svc.SignOut(ctx)
	assert.Equal(t, Unauthenticated, ctrl.Snapshot().State)
}

func withoutCards(s Snapshot) Snapshot {
	if len(s.Cards) == 0 {
		s.Cards = nil
	}
	return s
}
