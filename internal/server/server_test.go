package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/config"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/remote/local"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "0123456789abcdef0123456789abcdef"
	testServiceKey = "service-key"
)

var _ Backend = (*local.Service)(nil)

func newTestRouter(t *testing.T, autoConfirm bool) http.Handler {
	t.Helper()

	svc, err := local.New(memory.NewStore(), local.Options{
		JWTSecret:   testSecret,
		AutoConfirm: autoConfirm,
		BcryptCost:  bcrypt.MinCost,
	}, zap.NewNop())
	require.NoError(t, err)

	return NewRouter(svc, config.ServerConfig{
		Addr:           ":0",
		AllowedOrigins: []string{"http://localhost:5173"},
		ServiceKey:     testServiceKey,
	}, zap.NewNop())
}

func call(t *testing.T, h http.Handler, method, target, token string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func signUp(t *testing.T, h http.Handler, email string) tokenJSON {
	t.Helper()

	rec := call(t, h, http.MethodPost, "/auth/v1/signup", "", credentialsJSON{Email: email, Password: "secret1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tok tokenJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	require.NotEmpty(t, tok.AccessToken)
	return tok
}

func TestParseQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		want    models.CardQuery
		wantErr bool
	}{
		{
			name:  "order and limit",
			query: "select=*&order=created_at.desc&limit=5",
			want:  models.CardQuery{OrderBy: models.ColumnCreatedAt, Limit: 5},
		},
		{
			name:  "ascending with nulls modifier",
			query: "order=last_reviewed.asc.nullsfirst",
			want:  models.CardQuery{OrderBy: models.ColumnLastReview, Ascending: true},
		},
		{
			name:  "equality filters",
			query: "word=eq.apple&id=eq.42",
			want: models.CardQuery{Eq: []models.CardFilter{
				{Column: models.ColumnID, Value: "42"},
				{Column: models.ColumnWord, Value: "apple"},
			}},
		},
		{
			name:    "unsupported operator",
			query:   "word=like.app*",
			wantErr: true,
		},
		{
			name:    "unknown column",
			query:   "password=eq.x",
			wantErr: true,
		},
		{
			name:    "bad limit",
			query:   "limit=many",
			wantErr: true,
		},
		{
			name:    "bad order modifier",
			query:   "order=word.sideways",
			wantErr: true,
		},
		{
			name:    "repeated filter",
			query:   "id=eq.a&id=eq.b",
			wantErr: true,
		},
		{
			name:    "repeated order",
			query:   "order=word.asc&order=created_at.desc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := ParseQuery(values)
			if tt.wantErr {
				require.ErrorIs(t, err, models.ErrInvalidQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{models.ErrRateLimited, http.StatusTooManyRequests, "over_request_rate_limit"},
		{models.ErrInvalidCredentials, http.StatusBadRequest, "invalid_credentials"},
		{models.ErrEmailNotConfirmed, http.StatusBadRequest, "email_not_confirmed"},
		{models.ErrEmailTaken, http.StatusUnprocessableEntity, "user_already_exists"},
		{fmt.Errorf("wrapped: %w", models.ErrUnauthenticated), http.StatusUnauthorized, "bad_jwt"},
		{models.ErrPermissionDenied, http.StatusForbidden, "permission_denied"},
		{models.ErrNotFound, http.StatusNotFound, "not_found"},
		{&models.ValidationError{Field: "word", Kind: models.EmptyRequiredField}, http.StatusUnprocessableEntity, "validation_failed"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "unexpected_failure"},
	}

	for _, tt := range tests {
		status, code := statusOf(tt.err)
		assert.Equal(t, tt.wantStatus, status, tt.err.Error())
		assert.Equal(t, tt.wantCode, code, tt.err.Error())
	}
}

func TestRouter_Auth(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, false)

	rec := call(t, h, http.MethodPost, "/auth/v1/signup", "", credentialsJSON{Email: "new@example.com", Password: "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "new@example.com", user.Email)
	assert.Nil(t, user.ConfirmedAt)

	rec = call(t, h, http.MethodPost, "/auth/v1/token?grant_type=password", "", credentialsJSON{Email: "new@example.com", Password: "secret1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email_not_confirmed")

	rec = call(t, h, http.MethodPost, "/auth/v1/admin/confirm", "", map[string]string{"email": "new@example.com"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = call(t, h, http.MethodPost, "/auth/v1/admin/confirm", testServiceKey, map[string]string{"email": "new@example.com"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(t, h, http.MethodPost, "/auth/v1/token?grant_type=password", "", credentialsJSON{Email: "new@example.com", Password: "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var tok tokenJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	assert.Equal(t, "bearer", tok.TokenType)
	assert.Positive(t, tok.ExpiresIn)

	rec = call(t, h, http.MethodGet, "/auth/v1/user", tok.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, h, http.MethodPost, "/auth/v1/token?grant_type=refresh_token", "", map[string]string{"refresh_token": tok.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, h, http.MethodPost, "/auth/v1/token?grant_type=refresh_token", "", map[string]string{"refresh_token": tok.RefreshToken})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_credentials")

	rec = call(t, h, http.MethodPost, "/auth/v1/token?grant_type=magic", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(t, h, http.MethodPost, "/auth/v1/logout", tok.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(t, h, http.MethodGet, "/auth/v1/user", tok.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Records(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, true)
	tok := signUp(t, h, "cards@example.com")
	repr := []string{"Prefer", "return=representation"}

	rec := call(t, h, http.MethodGet, "/rest/v1/flashcards?select=*", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, h, http.MethodPost, "/rest/v1/flashcards", tok.AccessToken,
		models.NormalizeNewCard("apple", "a fruit", ""), repr...)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var inserted []models.Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inserted))
	require.Len(t, inserted, 1)
	assert.Equal(t, tok.User.ID, inserted[0].OwnerID)
	assert.Nil(t, inserted[0].Example)

	rec = call(t, h, http.MethodPost, "/rest/v1/flashcards", tok.AccessToken,
		[]models.NewCard{{Word: " ", Meaning: "blank"}}, repr...)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = call(t, h, http.MethodHead, "/rest/v1/flashcards?select=*", tok.AccessToken, nil, "Prefer", "count=exact")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*/1", rec.Header().Get("Content-Range"))

	rec = call(t, h, http.MethodPost, "/rest/v1/rpc/record_review", tok.AccessToken, map[string]string{"card_id": inserted[0].ID})
	require.Equal(t, http.StatusOK, rec.Code)
	var reviewed []models.Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviewed))
	require.Len(t, reviewed, 1)
	assert.Equal(t, 1, reviewed[0].ReviewCount)
	assert.NotNil(t, reviewed[0].LastReviewed)

	rec = call(t, h, http.MethodGet, "/rest/v1/flashcards?select=*&order=created_at.desc", tok.AccessToken, nil, "Prefer", "count=exact")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0-0/1", rec.Header().Get("Content-Range"))

	rec = call(t, h, http.MethodDelete, "/rest/v1/flashcards?word=eq.apple", tok.AccessToken, nil, repr...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(t, h, http.MethodDelete, "/rest/v1/flashcards?id=eq."+inserted[0].ID, tok.AccessToken, nil, repr...)
	require.Equal(t, http.StatusOK, rec.Code)
	var removed []models.Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &removed))
	assert.Len(t, removed, 1)

	rec = call(t, h, http.MethodDelete, "/rest/v1/flashcards?id=eq."+inserted[0].ID, tok.AccessToken, nil, repr...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = call(t, h, http.MethodPost, "/rest/v1/rpc/record_review", tok.AccessToken, map[string]string{"card_id": inserted[0].ID})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, true)
	rec := call(t, h, http.MethodOptions, "/rest/v1/flashcards", "", nil,
		"Origin", "http://localhost:5173",
		"Access-Control-Request-Method", "POST",
	)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
