package app

import (
	"context"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/mywallet/internal/domain/errors"
	testhelpers "github.com/polkiloo/mywallet/internal/test"
	"github.com/polkiloo/mywallet/internal/usecase"
)

func newFacade() (*WalletFacade, *testhelpers.UserRepositoryStub, *testhelpers.SessionRepositoryStub, *testhelpers.LedgerRepositoryStub) {
	users := testhelpers.NewUserRepositoryStub()
	sessions := testhelpers.NewSessionRepositoryStub()
	ledger := testhelpers.NewLedgerRepositoryStub()

	facade := NewWalletFacade(
		usecase.NewAuthUseCase(users, testhelpers.HasherStub{}),
		usecase.NewSessionUseCase(sessions, &testhelpers.TokenSourceStub{}, time.Hour),
		usecase.NewLedgerUseCase(ledger),
	)
	return facade, users, sessions, ledger
}

func TestWalletFacadeEndToEnd(t *testing.T) {
	facade, _, _, _ := newFacade()
	ctx := context.Background()

	if err := facade.SignUp(ctx, "Ann", "ann@x.com", "abc123", "abc123"); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}

	name, token, err := facade.SignIn(ctx, "ann@x.com", "abc123")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if name != "Ann" {
		t.Fatalf("expected name Ann, got %q", name)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	userID, err := facade.ResolveToken(ctx, token)
	if err != nil {
		t.Fatalf("token did not resolve: %v", err)
	}

	entry, err := facade.AddEntry(ctx, userID, 50, "salary", "deposit")
	if err != nil {
		t.Fatalf("add entry failed: %v", err)
	}
	if entry.Seq != 1 {
		t.Fatalf("expected seq 1, got %d", entry.Seq)
	}

	entries, err := facade.Entries(ctx, userID)
	if err != nil {
		t.Fatalf("entries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	got := entries[0]
	if got.Seq != 1 || got.Title != "salary" || string(got.Kind) != "deposit" || got.Amount.String() != "50.00" {
		t.Fatalf("unexpected entry %+v", got)
	}
}

func TestWalletFacadeSignUpDuplicate(t *testing.T) {
	facade, _, _, _ := newFacade()
	ctx := context.Background()

	if err := facade.SignUp(ctx, "Ann", "ann@x.com", "abc123", "abc123"); err != nil {
		t.Fatalf("first sign-up failed: %v", err)
	}
	if err := facade.SignUp(ctx, "Ann Again", "ann@x.com", "abc123", "abc123"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestWalletFacadeSignInWrongPassword(t *testing.T) {
	facade, _, _, _ := newFacade()
	ctx := context.Background()

	if err := facade.SignUp(ctx, "Ann", "ann@x.com", "abc123", "abc123"); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	if _, _, err := facade.SignIn(ctx, "ann@x.com", "wrong"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, err := facade.SignIn(ctx, "ghost@x.com", "abc123"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
}

func TestWalletFacadeResolveUnissuedToken(t *testing.T) {
	facade, _, _, _ := newFacade()
	if _, err := facade.ResolveToken(context.Background(), "forged"); err != domainErrors.ErrInvalidSession {
		t.Fatalf("expected invalid session, got %v", err)
	}
}

func TestWalletFacadePurgeExpiredSessions(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	sessions := testhelpers.NewSessionRepositoryStub()
	now := time.Now()
	sessions.Now = func() time.Time { return now }

	facade := NewWalletFacade(
		usecase.NewAuthUseCase(users, testhelpers.HasherStub{}),
		usecase.NewSessionUseCase(sessions, &testhelpers.TokenSourceStub{}, time.Minute),
		usecase.NewLedgerUseCase(testhelpers.NewLedgerRepositoryStub()),
	)

	ctx := context.Background()
	if err := facade.SignUp(ctx, "Ann", "ann@x.com", "abc123", "abc123"); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	if _, _, err := facade.SignIn(ctx, "ann@x.com", "abc123"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	now = now.Add(2 * time.Minute)
	removed, err := facade.PurgeExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 purged session, got %d", removed)
	}
}
