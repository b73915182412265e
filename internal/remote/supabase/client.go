// Package supabase talks to a Supabase project (GoTrue auth + PostgREST) over HTTP.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/remote"
)

const (
	authPath  = "/auth/v1"
	restPath  = "/rest/v1"
	cardTable = "flashcards"
)

type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
	now     func() time.Time
}

func NewClient(baseURL, anonKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    httpClient,
		now:     time.Now,
	}
}

type request struct {
	method string
	path   string
	query  url.Values
	token  string
	prefer string
	body   interface{}
	auth   bool
}

func (c *Client) do(ctx context.Context, r request, out interface{}) (*http.Response, error) {
	var body io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, err
	}

	token := r.token
	if token == "" {
		token = c.anonKey
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.prefer != "" {
		req.Header.Set("Prefer", r.prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, decodeError(resp, r.auth)
	}

	if out != nil && r.method != http.MethodHead && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp, fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
		}
	}
	return resp, nil
}

// APIError is a non-2xx answer. It unwraps to the matching models sentinel, if any.
type APIError struct {
	Status  int
	Code    string
	Message string
	kind    error
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase: %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

type errorBody struct {
	Error            string `json:"error"`
	ErrorCode        string `json:"error_code"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func decodeError(resp *http.Response, auth bool) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var body errorBody
	_ = json.Unmarshal(raw, &body)

	apiErr := &APIError{Status: resp.StatusCode}
	apiErr.Code = firstNonEmpty(body.ErrorCode, body.Error)
	apiErr.Message = firstNonEmpty(body.Msg, body.Message, body.ErrorDescription, strings.TrimSpace(string(raw)), resp.Status)
	apiErr.kind = classify(resp.StatusCode, apiErr.Code, apiErr.Message, auth)
	return apiErr
}

func classify(status int, code, msg string, auth bool) error {
	lower := strings.ToLower(msg)
	switch {
	case status == http.StatusTooManyRequests || code == "over_request_rate_limit" || strings.Contains(code, "rate_limit"):
		return models.ErrRateLimited
	case code == "email_not_confirmed" || strings.Contains(lower, "email not confirmed"):
		return models.ErrEmailNotConfirmed
	case code == "user_already_exists" || code == "email_exists" || strings.Contains(lower, "already registered"):
		return models.ErrEmailTaken
	case auth && (code == "invalid_grant" || code == "invalid_credentials" || strings.Contains(lower, "invalid login credentials")):
		return models.ErrInvalidCredentials
	case code == "invalid_query":
		return models.ErrInvalidQuery
	case status == http.StatusUnauthorized:
		return models.ErrUnauthenticated
	case status == http.StatusForbidden:
		return models.ErrPermissionDenied
	case status == http.StatusNotFound:
		return models.ErrNotFound
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var _ remote.Service = (*Client)(nil)
