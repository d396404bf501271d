package app

import (
	"context"

	"github.com/polkiloo/mywallet/internal/domain/model"
	"github.com/polkiloo/mywallet/internal/usecase"
)

// WalletFacade aggregates the use cases behind the HTTP surface and the
// session sweeper.
type WalletFacade struct {
	auth     *usecase.AuthUseCase
	sessions *usecase.SessionUseCase
	ledger   *usecase.LedgerUseCase
}

// NewWalletFacade constructs WalletFacade.
func NewWalletFacade(auth *usecase.AuthUseCase, sessions *usecase.SessionUseCase, ledger *usecase.LedgerUseCase) *WalletFacade {
	return &WalletFacade{auth: auth, sessions: sessions, ledger: ledger}
}

// SignUp registers a new wallet account.
func (f *WalletFacade) SignUp(ctx context.Context, name, email, password, passwordConfirm string) error {
	_, err := f.auth.Register(ctx, name, email, password, passwordConfirm)
	return err
}

// SignIn verifies credentials and issues a session token. Returns the
// account display name alongside the token.
func (f *WalletFacade) SignIn(ctx context.Context, email, password string) (string, string, error) {
	usr, err := f.auth.Authenticate(ctx, email, password)
	if err != nil {
		return "", "", err
	}
	token, err := f.sessions.Issue(ctx, usr.ID)
	if err != nil {
		return "", "", err
	}
	return usr.Name, token, nil
}

// ResolveToken maps a bearer token back to a user identity.
func (f *WalletFacade) ResolveToken(ctx context.Context, token string) (int64, error) {
	return f.sessions.Resolve(ctx, token)
}

// AddEntry appends a deposit or withdrawal to the user's ledger.
func (f *WalletFacade) AddEntry(ctx context.Context, userID int64, value float64, title, kind string) (*model.Entry, error) {
	return f.ledger.Append(ctx, userID, value, title, kind)
}

// Entries returns the user's ledger in insertion order.
func (f *WalletFacade) Entries(ctx context.Context, userID int64) ([]model.Entry, error) {
	return f.ledger.Entries(ctx, userID)
}

// PurgeExpiredSessions drops sessions past their expiry.
func (f *WalletFacade) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return f.sessions.PurgeExpired(ctx)
}
