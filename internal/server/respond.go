package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"go.uber.org/zap"
)

type errorJSON struct {
	Code string `json:"error_code"`
	Msg  string `json:"msg"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		s.writeJSON(w, status, errorJSON{Code: code, Msg: "internal error"})
		return
	}
	s.writeJSON(w, status, errorJSON{Code: code, Msg: err.Error()})
}

func statusOf(err error) (int, string) {
	var validationErr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrRateLimited):
		return http.StatusTooManyRequests, "over_request_rate_limit"
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusBadRequest, "invalid_credentials"
	case errors.Is(err, models.ErrEmailNotConfirmed):
		return http.StatusBadRequest, "email_not_confirmed"
	case errors.Is(err, models.ErrEmailTaken):
		return http.StatusUnprocessableEntity, "user_already_exists"
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized, "bad_jwt"
	case errors.Is(err, models.ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied"
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, models.ErrInvalidQuery):
		return http.StatusBadRequest, "invalid_query"
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, "validation_failed"
	}
	return http.StatusInternalServerError, "unexpected_failure"
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorJSON{Code: "bad_json", Msg: "invalid request body"})
		return false
	}
	return true
}

// bearer returns the token of an "Authorization: Bearer" header.
func bearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func prefers(r *http.Request, option string) bool {
	for _, part := range strings.Split(r.Header.Get("Prefer"), ",") {
		if strings.TrimSpace(part) == option {
			return true
		}
	}
	return false
}
