package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/19smabtahinoor/Vocab-FlashCard/pkg/validator"
	"go.uber.org/zap"
)

// access tokens this close to expiry are refreshed before use
const refreshLeeway = 30 * time.Second

type SessionOptions struct {
	// SignInAfterSignUp keeps the session a backend hands out on sign-up. Off, a new
	// account always has to sign in explicitly.
	SignInAfterSignUp bool
}

// Listener receives every session change. session is nil once signed out.
type Listener func(ctx context.Context, event models.AuthEvent, session *models.Session)

type subscription struct {
	id int
	fn Listener
}

type SessionS struct {
	auth AuthAPII
	opts SessionOptions
	log  *zap.Logger
	now  func() time.Time

	mu        sync.Mutex
	current   *models.Session
	listeners []subscription
	nextID    int

	refreshMu sync.Mutex
}

func NewSessionService(auth AuthAPII, opts SessionOptions, log *zap.Logger) *SessionS {
	return &SessionS{
		auth: auth,
		opts: opts,
		log:  log,
		now:  time.Now,
	}
}

// Subscribe registers fn for session changes. Listeners run synchronously in
// subscription order, after the change is visible through CurrentSession.
func (s *SessionS) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.listeners {
				if sub.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Init resolves a session persisted by a previous run: an expiring one is refreshed,
// any other is checked with the service. Whatever survives is published as
// INITIAL_SESSION.
func (s *SessionS) Init(ctx context.Context, stored *models.Session) *models.Session {
	var session *models.Session

	switch {
	case stored == nil:
	case stored.ExpiresWithin(s.now(), refreshLeeway):
		refreshed, err := s.auth.RefreshSession(ctx, stored.RefreshToken)
		if err != nil {
			s.log.Warn("stored session could not be refreshed", zap.String("user_id", stored.User.ID), zap.Error(err))
			break
		}
		session = &refreshed
	default:
		user, err := s.auth.User(ctx, stored.AccessToken)
		if err != nil {
			s.log.Warn("stored session rejected", zap.String("user_id", stored.User.ID), zap.Error(err))
			break
		}
		restored := *stored
		restored.User = user
		session = &restored
	}

	s.set(ctx, models.EventInitialSession, session)
	return s.CurrentSession()
}

func (s *SessionS) CurrentSession() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	session := *s.current
	return &session
}

func (s *SessionS) SignIn(ctx context.Context, email, password string) error {
	if err := ValidateCredentials(email, password); err != nil {
		return err
	}

	session, err := s.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		s.log.Info("sign-in failed", zap.String("email", email), zap.Error(err))
		return models.ClassifyAuthError(err)
	}

	s.log.Info("signed in", zap.String("user_id", session.User.ID))
	s.set(ctx, models.EventSignedIn, &session)
	return nil
}

func (s *SessionS) SignUp(ctx context.Context, email, password string) (models.User, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return models.User{}, err
	}

	user, session, err := s.auth.SignUp(ctx, email, password)
	if err != nil {
		s.log.Info("sign-up failed", zap.String("email", email), zap.Error(err))
		return models.User{}, models.ClassifyAuthError(err)
	}
	s.log.Info("signed up", zap.String("user_id", user.ID), zap.Bool("session", session != nil))

	if session == nil {
		return user, nil
	}
	if !s.opts.SignInAfterSignUp {
		if err := s.auth.SignOut(ctx, session.AccessToken); err != nil {
			s.log.Warn("failed to discard sign-up session", zap.String("user_id", user.ID), zap.Error(err))
		}
		return user, nil
	}

	s.set(ctx, models.EventSignedIn, session)
	return user, nil
}

// SignOut always ends the local session. A failure to revoke it remotely is logged.
func (s *SessionS) SignOut(ctx context.Context) {
	current := s.CurrentSession()
	if current == nil {
		return
	}

	if err := s.auth.SignOut(ctx, current.AccessToken); err != nil {
		s.log.Warn("remote sign-out failed", zap.String("user_id", current.User.ID), zap.Error(err))
	}
	s.log.Info("signed out", zap.String("user_id", current.User.ID))
	s.set(ctx, models.EventSignedOut, nil)
}

// Session returns a session whose access token is good for at least refreshLeeway,
// refreshing it when needed. A session that cannot be refreshed is signed out.
func (s *SessionS) Session(ctx context.Context) (models.Session, error) {
	current := s.CurrentSession()
	if current == nil {
		return models.Session{}, models.ErrUnauthenticated
	}
	if !current.ExpiresWithin(s.now(), refreshLeeway) {
		return *current, nil
	}

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	// another caller may have refreshed or signed out meanwhile
	current = s.CurrentSession()
	if current == nil {
		return models.Session{}, models.ErrUnauthenticated
	}
	if !current.ExpiresWithin(s.now(), refreshLeeway) {
		return *current, nil
	}

	refreshed, err := s.auth.RefreshSession(ctx, current.RefreshToken)
	if err != nil {
		s.log.Warn("session refresh failed", zap.String("user_id", current.User.ID), zap.Error(err))
		s.set(ctx, models.EventSignedOut, nil)
		return models.Session{}, fmt.Errorf("refresh session: %w", models.ErrUnauthenticated)
	}

	s.set(ctx, models.EventTokenRefreshed, &refreshed)
	return refreshed, nil
}

func (s *SessionS) set(ctx context.Context, event models.AuthEvent, session *models.Session) {
	s.mu.Lock()
	if session == nil {
		s.current = nil
	} else {
		stored := *session
		s.current = &stored
	}
	listeners := append([]subscription(nil), s.listeners...)
	s.mu.Unlock()

	for _, sub := range listeners {
		var published *models.Session
		if session != nil {
			cp := *session
			published = &cp
		}
		sub.fn(ctx, event, published)
	}
}

// ValidateCredentials applies the sign-in form rules without touching the network.
func ValidateCredentials(email, password string) error {
	err := validator.ValidateStruct(models.Credentials{Email: email, Password: password})
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.Errors)
	if !ok || len(errs) == 0 {
		return err
	}

	first := errs[0]
	kind := models.EmptyRequiredField
	switch first.Tag {
	case "emailshape":
		kind = models.InvalidEmail
	case "min":
		kind = models.PasswordTooShort
	}
	return &models.ValidationError{Field: first.Field, Kind: kind}
}
