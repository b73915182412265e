package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userJSON struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	CreatedAt        time.Time  `json:"created_at"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
}

func (u userJSON) model() models.User {
	return models.User{
		ID:          u.ID,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
		ConfirmedAt: u.EmailConfirmedAt,
	}
}

// TokenResponse is the body of a successful token grant.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"`
	ExpiresAt    int64     `json:"expires_at"`
	RefreshToken string    `json:"refresh_token"`
	User         *userJSON `json:"user"`
}

func (c *Client) session(tok TokenResponse) models.Session {
	expiresAt := time.Unix(tok.ExpiresAt, 0).UTC()
	if tok.ExpiresAt == 0 {
		expiresAt = c.now().Add(time.Duration(tok.ExpiresIn) * time.Second).UTC()
	}
	session := models.Session{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    expiresAt,
	}
	if tok.User != nil {
		session.User = tok.User.model()
	}
	return session
}

// signUpResponse is either a session (auto-confirm) or a bare user.
type signUpResponse struct {
	TokenResponse
	userJSON
}

func (c *Client) SignUp(ctx context.Context, email, password string) (models.User, *models.Session, error) {
	var resp signUpResponse
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   authPath + "/signup",
		body:   credentials{Email: email, Password: password},
		auth:   true,
	}, &resp)
	if err != nil {
		return models.User{}, nil, err
	}

	if resp.AccessToken == "" {
		return resp.userJSON.model(), nil, nil
	}
	session := c.session(resp.TokenResponse)
	return session.User, &session, nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (models.Session, error) {
	return c.token(ctx, "password", credentials{Email: email, Password: password})
}

func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (models.Session, error) {
	return c.token(ctx, "refresh_token", map[string]string{"refresh_token": refreshToken})
}

func (c *Client) token(ctx context.Context, grant string, body interface{}) (models.Session, error) {
	var tok TokenResponse
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   authPath + "/token",
		query:  url.Values{"grant_type": {grant}},
		body:   body,
		auth:   true,
	}, &tok)
	if err != nil {
		return models.Session{}, err
	}
	return c.session(tok), nil
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   authPath + "/logout",
		token:  accessToken,
		auth:   true,
	}, nil)
	return err
}

func (c *Client) User(ctx context.Context, accessToken string) (models.User, error) {
	var user userJSON
	_, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   authPath + "/user",
		token:  accessToken,
		auth:   true,
	}, &user)
	if err != nil {
		return models.User{}, err
	}
	return user.model(), nil
}
