package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/config"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/remote/local"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/server"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/storage"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	var logger *zap.Logger
	if cfg.Env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	if cfg.Remote.Mode == config.RemoteSupabase {
		logger.Fatal("the server runs in local or memory mode", zap.String("mode", cfg.Remote.Mode))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed init store", zap.String("mode", cfg.Remote.Mode), zap.Error(err))
	}
	defer closeStore()

	backend, err := local.New(store, local.OptionsFrom(cfg.Auth), logger)
	if err != nil {
		logger.Fatal("failed init backend", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.NewRouter(backend, cfg.Server, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
