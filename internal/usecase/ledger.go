package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/mywallet/internal/domain/errors"
	"github.com/polkiloo/mywallet/internal/domain/model"
	"github.com/polkiloo/mywallet/internal/domain/repository"
)

// LedgerUseCase records and lists a user's ledger entries.
type LedgerUseCase struct {
	ledger repository.LedgerRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(ledger repository.LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{ledger: ledger}
}

// Append validates and records a new entry. The per-user sequence number
// is assigned by the repository inside a transaction.
func (u *LedgerUseCase) Append(ctx context.Context, userID int64, value float64, title, kind string) (*model.Entry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domainErrors.ErrEmptyTitle
	}

	entryKind := model.EntryKind(kind)
	if !entryKind.Valid() {
		return nil, domainErrors.ErrInvalidEntryKind
	}

	amount, err := model.ParseAmount(value)
	if err != nil {
		return nil, err
	}

	return u.ledger.Append(ctx, userID, amount, title, entryKind)
}

// Entries returns the user's full ledger in insertion order.
func (u *LedgerUseCase) Entries(ctx context.Context, userID int64) ([]model.Entry, error) {
	return u.ledger.ListByUser(ctx, userID)
}
