package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/app"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/bot"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/config"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/remote/local"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/remote/supabase"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/service"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/storage"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/storage/cache"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed init store", zap.String("mode", cfg.Remote.Mode), zap.Error(err))
	}
	defer closeStore()

	var remote service.RemoteI
	if cfg.Remote.Mode == config.RemoteSupabase {
		remote = supabase.NewClient(cfg.Remote.URL, cfg.Remote.AnonKey, nil)
	} else {
		svc, err := local.New(store, local.OptionsFrom(cfg.Auth), logger)
		if err != nil {
			logger.Fatal("failed init remote", zap.String("mode", cfg.Remote.Mode), zap.Error(err))
		}
		remote = svc
	}

	workspaces := app.NewWorkspaces(remote, store, service.SessionOptions{SignInAfterSignUp: cfg.App.SignInAfterSignUp}, logger)
	defer workspaces.Close()

	apps := bot.WorkspacesFunc(func(ctx context.Context, chatID int64) bot.AppI {
		return workspaces.Workspace(ctx, chatID)
	})

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, apps, cache.NewCache(), cfg.App.Timeout, logger)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start(ctx)
	logger.Info("bot stopped")
}
