// Package local is a self-hosted Remote Data Service: bcrypt password hashing, HS256
// access tokens bound to revocable server-side sessions, and per-owner record access.
package local

import "go.uber.org/zap"

// Service bundles Auth and Records over one store.
type Service struct {
	*Auth
	*Records
}

func New(store Store, opts Options, log *zap.Logger) (*Service, error) {
	auth, err := NewAuth(store, store, opts, log)
	if err != nil {
		return nil, err
	}
	return &Service{
		Auth:    auth,
		Records: NewRecords(auth, store, log),
	}, nil
}
