package session

import (
	"context"
)

// Store хранилище сессий формы (Redis или память процесса)
type Store interface {
	Save(ctx context.Context, session *FormSession) error
	Get(ctx context.Context, sessionID string) (*FormSession, error)
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
	Close() error
}
