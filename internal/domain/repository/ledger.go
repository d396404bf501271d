package repository

import (
	"context"

	"github.com/polkiloo/mywallet/internal/domain/model"
)

// LedgerRepository provides append-only access to a user's ledger.
// Append assigns the next per-user sequence number atomically.
type LedgerRepository interface {
	Append(ctx context.Context, userID int64, amount model.Cents, title string, kind model.EntryKind) (*model.Entry, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Entry, error)
}
