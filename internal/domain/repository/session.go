package repository

import (
	"context"
	"time"

	"github.com/polkiloo/mywallet/internal/domain/model"
)

// SessionRepository stores token-to-user bindings.
type SessionRepository interface {
	Create(ctx context.Context, token string, userID int64, expiresAt time.Time) (*model.Session, error)
	// GetByToken returns only sessions that have not yet expired.
	GetByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteExpired(ctx context.Context) (int64, error)
}
