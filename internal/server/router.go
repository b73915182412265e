// Package server exposes the self-hosted Remote Data Service over HTTP in the wire
// shape of a Supabase project, so the supabase client can talk to either.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/config"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/remote"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Backend is the self-hosted service plus the admin operations only the server exposes.
type Backend interface {
	remote.Service
	Confirm(ctx context.Context, email string) error
}

type Server struct {
	backend    Backend
	serviceKey string
	log        *zap.Logger
}

func New(backend Backend, serviceKey string, log *zap.Logger) *Server {
	return &Server{
		backend:    backend,
		serviceKey: serviceKey,
		log:        log,
	}
}

func NewRouter(backend Backend, cfg config.ServerConfig, log *zap.Logger) *chi.Mux {
	s := New(backend, cfg.ServiceKey, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "apikey", "Prefer"},
		ExposedHeaders:   []string{"Content-Range"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/auth/v1", func(r chi.Router) {
		r.Post("/signup", s.SignUp)
		r.Post("/token", s.Token)
		r.Post("/logout", s.Logout)
		r.Get("/user", s.User)
		r.With(s.requireServiceKey).Post("/admin/confirm", s.Confirm)
	})

	r.Route("/rest/v1", func(r chi.Router) {
		r.Route("/flashcards", func(r chi.Router) {
			r.Get("/", s.SelectCards)
			r.Head("/", s.CountCards)
			r.Post("/", s.InsertCards)
			r.Delete("/", s.DeleteCards)
		})
		r.Post("/rpc/record_review", s.RecordReview)
	})

	return r
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info("request",
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("elapsed", time.Since(start)),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
