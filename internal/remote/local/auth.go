package local

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minSecretLen = 32

type Options struct {
	JWTSecret         string
	AccessTTL         time.Duration
	RefreshTTL        time.Duration
	AutoConfirm       bool
	BcryptCost        int
	RateLimitBurst    int
	RateLimitInterval time.Duration
}

// Claims carried by every access token.
type Claims struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

type Auth struct {
	users    UserStore
	sessions SessionStore
	secret   []byte
	opts     Options
	limiter  *limiter
	now      func() time.Time
	log      *zap.Logger
}

func NewAuth(users UserStore, sessions SessionStore, opts Options, log *zap.Logger) (*Auth, error) {
	if len(opts.JWTSecret) < minSecretLen {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes", minSecretLen)
	}
	if opts.AccessTTL <= 0 {
		opts.AccessTTL = time.Hour
	}
	if opts.RefreshTTL <= 0 {
		opts.RefreshTTL = 30 * 24 * time.Hour
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}

	return &Auth{
		users:    users,
		sessions: sessions,
		secret:   []byte(opts.JWTSecret),
		opts:     opts,
		limiter:  newLimiter(opts.RateLimitBurst, opts.RateLimitInterval),
		now:      time.Now,
		log:      log,
	}, nil
}

func (a *Auth) SignUp(ctx context.Context, email, password string) (models.User, *models.Session, error) {
	email = normalizeEmail(email)
	if !a.limiter.allow("signup:"+email, a.now()) {
		return models.User{}, nil, models.ErrRateLimited
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.opts.BcryptCost)
	if err != nil {
		return models.User{}, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now().UTC()
	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if a.opts.AutoConfirm {
		user.ConfirmedAt = &now
	}

	if err := a.users.CreateUser(ctx, user); err != nil {
		return models.User{}, nil, err
	}
	a.log.Info("user signed up", zap.String("user_id", user.ID), zap.Bool("confirmed", user.Confirmed()))

	if !user.Confirmed() {
		return user, nil, nil
	}

	session, err := a.issueSession(ctx, user)
	if err != nil {
		return models.User{}, nil, err
	}
	return user, &session, nil
}

func (a *Auth) SignInWithPassword(ctx context.Context, email, password string) (models.Session, error) {
	email = normalizeEmail(email)
	if !a.limiter.allow("signin:"+email, a.now()) {
		return models.Session{}, models.ErrRateLimited
	}

	user, err := a.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Session{}, models.ErrInvalidCredentials
		}
		return models.Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.Session{}, models.ErrInvalidCredentials
	}
	if !user.Confirmed() {
		return models.Session{}, models.ErrEmailNotConfirmed
	}

	return a.issueSession(ctx, user)
}

func (a *Auth) RefreshSession(ctx context.Context, refreshToken string) (models.Session, error) {
	stored, err := a.sessions.SessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Session{}, models.ErrInvalidCredentials
		}
		return models.Session{}, err
	}

	now := a.now()
	if !now.Before(stored.ExpiresAt) {
		if err := a.sessions.DeleteSession(ctx, stored.ID); err != nil && !errors.Is(err, models.ErrNotFound) {
			a.log.Warn("failed to drop expired session", zap.String("session_id", stored.ID), zap.Error(err))
		}
		return models.Session{}, models.ErrInvalidCredentials
	}

	user, err := a.users.UserByID(ctx, stored.UserID)
	if err != nil {
		return models.Session{}, err
	}

	next := uuid.NewString()
	if err := a.sessions.RotateRefreshToken(ctx, stored.ID, refreshToken, next, now.Add(a.opts.RefreshTTL).UTC()); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Session{}, models.ErrInvalidCredentials
		}
		return models.Session{}, err
	}

	access, expiresAt, err := a.accessToken(user, stored.ID)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{AccessToken: access, RefreshToken: next, ExpiresAt: expiresAt, User: user}, nil
}

func (a *Auth) SignOut(ctx context.Context, accessToken string) error {
	claims, err := a.parse(accessToken)
	if err != nil {
		return err
	}
	if err := a.sessions.DeleteSession(ctx, claims.SessionID); err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}
	a.log.Info("user signed out", zap.String("user_id", claims.Subject))
	return nil
}

func (a *Auth) User(ctx context.Context, accessToken string) (models.User, error) {
	userID, err := a.Authenticate(ctx, accessToken)
	if err != nil {
		return models.User{}, err
	}
	user, err := a.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.User{}, models.ErrUnauthenticated
		}
		return models.User{}, err
	}
	return user, nil
}

// Authenticate resolves an access token to its user id. Tokens of signed-out sessions
// are rejected even before they expire.
func (a *Auth) Authenticate(ctx context.Context, accessToken string) (string, error) {
	claims, err := a.parse(accessToken)
	if err != nil {
		return "", err
	}

	stored, err := a.sessions.SessionByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", models.ErrUnauthenticated
		}
		return "", err
	}
	if stored.UserID != claims.Subject {
		return "", models.ErrUnauthenticated
	}
	return claims.Subject, nil
}

// Confirm marks an address as confirmed so its owner can sign in.
func (a *Auth) Confirm(ctx context.Context, email string) error {
	return a.users.ConfirmUser(ctx, normalizeEmail(email), a.now().UTC())
}

func (a *Auth) issueSession(ctx context.Context, user models.User) (models.Session, error) {
	now := a.now().UTC()
	stored := models.AuthSession{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		RefreshToken: uuid.NewString(),
		CreatedAt:    now,
		ExpiresAt:    now.Add(a.opts.RefreshTTL),
	}
	if err := a.sessions.CreateSession(ctx, stored); err != nil {
		return models.Session{}, err
	}

	access, expiresAt, err := a.accessToken(user, stored.ID)
	if err != nil {
		return models.Session{}, err
	}

	return models.Session{
		AccessToken:  access,
		RefreshToken: stored.RefreshToken,
		ExpiresAt:    expiresAt,
		User:         user,
	}, nil
}

func (a *Auth) accessToken(user models.User, sessionID string) (string, time.Time, error) {
	now := a.now().UTC()
	expiresAt := now.Add(a.opts.AccessTTL)
	claims := &Claims{
		SessionID: sessionID,
		Email:     user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	// NumericDate has second precision
	return token, claims.ExpiresAt.Time, nil
}

func (a *Auth) parse(accessToken string) (*Claims, error) {
	if accessToken == "" {
		return nil, models.ErrUnauthenticated
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.now))
	if err != nil || !token.Valid {
		return nil, models.ErrUnauthenticated
	}
	if claims.Subject == "" || claims.SessionID == "" {
		return nil, models.ErrUnauthenticated
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
