package server

import (
	"net/http"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"go.uber.org/zap"
)

type credentialsJSON struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenJSON struct {
	AccessToken  string      `json:"access_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int64       `json:"expires_in"`
	ExpiresAt    int64       `json:"expires_at"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

func newTokenJSON(session models.Session, now time.Time) tokenJSON {
	return tokenJSON{
		AccessToken:  session.AccessToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(session.ExpiresAt.Sub(now).Seconds()),
		ExpiresAt:    session.ExpiresAt.Unix(),
		RefreshToken: session.RefreshToken,
		User:         session.User,
	}
}

func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	var payload credentialsJSON
	if !s.decode(w, r, &payload) {
		return
	}

	user, session, err := s.backend.SignUp(r.Context(), payload.Email, payload.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if session == nil {
		s.writeJSON(w, http.StatusOK, user)
		return
	}
	s.writeJSON(w, http.StatusOK, newTokenJSON(*session, time.Now()))
}

func (s *Server) Token(w http.ResponseWriter, r *http.Request) {
	var (
		session models.Session
		err     error
	)

	switch grant := r.URL.Query().Get("grant_type"); grant {
	case "password":
		var payload credentialsJSON
		if !s.decode(w, r, &payload) {
			return
		}
		session, err = s.backend.SignInWithPassword(r.Context(), payload.Email, payload.Password)
	case "refresh_token":
		var payload struct {
			RefreshToken string `json:"refresh_token"`
		}
		if !s.decode(w, r, &payload) {
			return
		}
		session, err = s.backend.RefreshSession(r.Context(), payload.RefreshToken)
	default:
		s.writeJSON(w, http.StatusBadRequest, errorJSON{Code: "unsupported_grant_type", Msg: "unsupported grant_type " + grant})
		return
	}

	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newTokenJSON(session, time.Now()))
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.SignOut(r.Context(), bearer(r)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) User(w http.ResponseWriter, r *http.Request) {
	user, err := s.backend.User(r.Context(), bearer(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}

func (s *Server) Confirm(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if !s.decode(w, r, &payload) {
		return
	}

	if err := s.backend.Confirm(r.Context(), payload.Email); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.log.Info("user confirmed", zap.String("email", payload.Email))
	w.WriteHeader(http.StatusNoContent)
}

// requireServiceKey admits only callers presenting the configured service key.
// With no key configured the admin routes are closed.
func (s *Server) requireServiceKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.serviceKey == "" || bearer(r) != s.serviceKey {
			s.writeJSON(w, http.StatusForbidden, errorJSON{Code: "not_admin", Msg: "service key required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
