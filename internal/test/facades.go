package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/mywallet/internal/domain/errors"
	"github.com/polkiloo/mywallet/internal/domain/model"
)

// AuthFacadeStub provides controllable behaviour for the auth endpoints.
type AuthFacadeStub struct {
	SignUpFn func(ctx context.Context, name, email, password, passwordConfirm string) error
	SignInFn func(ctx context.Context, email, password string) (string, string, error)
}

// SignUp delegates to the provided function or succeeds.
func (s AuthFacadeStub) SignUp(ctx context.Context, name, email, password, passwordConfirm string) error {
	if s.SignUpFn != nil {
		return s.SignUpFn(ctx, name, email, password, passwordConfirm)
	}
	return nil
}

// SignIn delegates to the provided function or returns fixed values.
func (s AuthFacadeStub) SignIn(ctx context.Context, email, password string) (string, string, error) {
	if s.SignInFn != nil {
		return s.SignInFn(ctx, email, password)
	}
	return "Ann", "session-token", nil
}

// SessionResolverStub resolves bearer tokens for tests.
type SessionResolverStub struct {
	ResolveFn func(ctx context.Context, token string) (int64, error)
	ID        int64
	Err       error
}

// ResolveToken returns the configured identity or error.
func (s SessionResolverStub) ResolveToken(ctx context.Context, token string) (int64, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	if s.ID == 0 {
		return 0, domainErrors.ErrInvalidSession
	}
	return s.ID, nil
}

// LedgerFacadeStub simulates ledger operations.
type LedgerFacadeStub struct {
	AddEntryFn func(ctx context.Context, userID int64, value float64, title, kind string) (*model.Entry, error)
	EntriesFn  func(ctx context.Context, userID int64) ([]model.Entry, error)
}

// AddEntry delegates or returns a minimal entry.
func (s LedgerFacadeStub) AddEntry(ctx context.Context, userID int64, value float64, title, kind string) (*model.Entry, error) {
	if s.AddEntryFn != nil {
		return s.AddEntryFn(ctx, userID, value, title, kind)
	}
	amount, err := model.ParseAmount(value)
	if err != nil {
		return nil, err
	}
	return &model.Entry{UserID: userID, Seq: 1, Amount: amount, Title: title, Kind: model.EntryKind(kind), RecordedAt: time.Unix(0, 0)}, nil
}

// Entries delegates or returns a single fixed entry.
func (s LedgerFacadeStub) Entries(ctx context.Context, userID int64) ([]model.Entry, error) {
	if s.EntriesFn != nil {
		return s.EntriesFn(ctx, userID)
	}
	return []model.Entry{{UserID: userID, Seq: 1, Amount: 5000, Title: "salary", Kind: model.EntryKindDeposit, RecordedAt: time.Unix(0, 0)}}, nil
}

// WalletFacadeStub aggregates all facade stubs.
type WalletFacadeStub struct {
	AuthFacadeStub
	SessionResolverStub
	LedgerFacadeStub
}

// SessionPurgerStub counts purge invocations for sweeper tests.
type SessionPurgerStub struct {
	PurgeFn func(ctx context.Context) (int64, error)
	Calls   chan struct{}
}

// PurgeExpiredSessions notifies the test and returns the configured result.
func (s *SessionPurgerStub) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	if s.Calls != nil {
		select {
		case s.Calls <- struct{}{}:
		default:
		}
	}
	if s.PurgeFn != nil {
		return s.PurgeFn(ctx)
	}
	return 0, nil
}
