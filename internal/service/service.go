package service

import (
	"context"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/remote"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go

type AuthAPII interface {
	remote.AuthAPI
}

type RecordsAPII interface {
	remote.RecordsAPI
}

type RemoteI interface {
	remote.Service
}

// SessionProviderI hands out a usable session or models.ErrUnauthenticated.
type SessionProviderI interface {
	Session(ctx context.Context) (models.Session, error)
}

type Service struct {
	*SessionS
	*CardS
}

func InitServices(remote RemoteI, opts SessionOptions, log *zap.Logger) *Service {
	sessions := NewSessionService(remote, opts, log)
	return &Service{
		SessionS: sessions,
		CardS:    NewCardService(sessions, remote, log),
	}
}
