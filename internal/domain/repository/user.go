package repository

import (
	"context"

	"github.com/polkiloo/mywallet/internal/domain/model"
)

// UserRepository describes persistence operations for wallet accounts.
// Create must enforce email uniqueness atomically.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
