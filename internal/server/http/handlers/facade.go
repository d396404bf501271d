package handlers

import (
	"context"

	"github.com/polkiloo/mywallet/internal/domain/model"
	"github.com/polkiloo/mywallet/internal/server/http/middleware"
)

// AuthFacade describes registration and sign-in capabilities required by handlers.
type AuthFacade interface {
	SignUp(ctx context.Context, name, email, password, passwordConfirm string) error
	SignIn(ctx context.Context, email, password string) (string, string, error)
}

// LedgerFacade provides ledger operations exposed via HTTP.
type LedgerFacade interface {
	AddEntry(ctx context.Context, userID int64, value float64, title, kind string) (*model.Entry, error)
	Entries(ctx context.Context, userID int64) ([]model.Entry, error)
}

// WalletFacade aggregates the full set of operations used across handlers.
type WalletFacade interface {
	AuthFacade
	LedgerFacade
	middleware.SessionResolver
}
