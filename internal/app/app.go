// Package app holds the state of one user workspace: its session, its cards and
// what is on display, created and torn down explicitly.
package app

import (
	"context"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/service"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/view"
	"go.uber.org/zap"
)

type App struct {
	sessions *service.SessionS
	cards    *service.CardS
	view     *view.Controller
	log      *zap.Logger
}

func New(remote service.RemoteI, opts service.SessionOptions, log *zap.Logger) *App {
	services := service.InitServices(remote, opts, log)
	return &App{
		sessions: services.SessionS,
		cards:    services.CardS,
		view:     view.NewController(services.SessionS, services.CardS, log),
		log:      log,
	}
}

// Start wires the view to the session and resolves a session kept from an earlier
// run, if any.
func (a *App) Start(ctx context.Context, stored *models.Session) {
	a.view.Start(ctx)
	a.sessions.Init(ctx, stored)
}

// Close detaches the view. The session is left as is.
func (a *App) Close() {
	a.view.Close()
}

// Subscribe registers fn for the workspace's session changes.
func (a *App) Subscribe(fn service.Listener) (unsubscribe func()) {
	return a.sessions.Subscribe(fn)
}

func (a *App) SignIn(ctx context.Context, email, password string) error {
	return a.sessions.SignIn(ctx, email, password)
}

func (a *App) SignUp(ctx context.Context, email, password string) (models.User, error) {
	return a.sessions.SignUp(ctx, email, password)
}

func (a *App) SignOut(ctx context.Context) {
	a.sessions.SignOut(ctx)
}

func (a *App) CurrentSession() *models.Session {
	return a.sessions.CurrentSession()
}

func (a *App) Snapshot() view.Snapshot {
	return a.view.Snapshot()
}

func (a *App) Reload(ctx context.Context) {
	a.view.Reload(ctx)
}

func (a *App) CreateCard(ctx context.Context, word, meaning, example string) (models.Card, error) {
	return a.view.Create(ctx, word, meaning, example)
}

func (a *App) DeleteCard(ctx context.Context, id string) error {
	return a.view.Delete(ctx, id)
}

func (a *App) NewCardView(card models.Card) *view.CardView {
	return a.view.NewCardView(card)
}
