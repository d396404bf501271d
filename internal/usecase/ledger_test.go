package usecase

import (
	"context"
	"fmt"
	"testing"

	domainErrors "github.com/polkiloo/mywallet/internal/domain/errors"
	testhelpers "github.com/polkiloo/mywallet/internal/test"
)

func TestLedgerUseCaseAppendAssignsSequence(t *testing.T) {
	repo := testhelpers.NewLedgerRepositoryStub()
	uc := NewLedgerUseCase(repo)

	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		entry, err := uc.Append(ctx, 1, float64(i*10), fmt.Sprintf("entry %d", i), "deposit")
		if err != nil {
			t.Fatalf("append %d returned error: %v", i, err)
		}
		if entry.Seq != int64(i) {
			t.Fatalf("expected seq %d, got %d", i, entry.Seq)
		}
	}

	entries, err := uc.Entries(ctx, 1)
	if err != nil {
		t.Fatalf("entries returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Seq != int64(i+1) {
			t.Fatalf("entries out of order: position %d has seq %d", i, e.Seq)
		}
	}
}

func TestLedgerUseCaseSequencesAreUserScoped(t *testing.T) {
	repo := testhelpers.NewLedgerRepositoryStub()
	uc := NewLedgerUseCase(repo)

	ctx := context.Background()
	if _, err := uc.Append(ctx, 1, 10, "a", "deposit"); err != nil {
		t.Fatalf("append returned error: %v", err)
	}
	entry, err := uc.Append(ctx, 2, 20, "b", "withdraw")
	if err != nil {
		t.Fatalf("append returned error: %v", err)
	}
	if entry.Seq != 1 {
		t.Fatalf("expected first entry of another user to get seq 1, got %d", entry.Seq)
	}
}

func TestLedgerUseCaseAmountFormatting(t *testing.T) {
	repo := testhelpers.NewLedgerRepositoryStub()
	uc := NewLedgerUseCase(repo)

	ctx := context.Background()
	entry, err := uc.Append(ctx, 1, 10, "round", "deposit")
	if err != nil {
		t.Fatalf("append returned error: %v", err)
	}
	if got := entry.Amount.String(); got != "10.00" {
		t.Fatalf("expected amount 10.00, got %q", got)
	}

	entry, err = uc.Append(ctx, 1, 3.456, "rounded", "withdraw")
	if err != nil {
		t.Fatalf("append returned error: %v", err)
	}
	if got := entry.Amount.String(); got != "3.46" {
		t.Fatalf("expected amount 3.46, got %q", got)
	}
}

func TestLedgerUseCaseAppendValidation(t *testing.T) {
	uc := NewLedgerUseCase(testhelpers.NewLedgerRepositoryStub())
	ctx := context.Background()

	cases := []struct {
		name  string
		value float64
		title string
		kind  string
		want  error
	}{
		{"empty title", 10, "", "deposit", domainErrors.ErrEmptyTitle},
		{"blank title", 10, "   ", "deposit", domainErrors.ErrEmptyTitle},
		{"bad kind", 10, "salary", "transfer", domainErrors.ErrInvalidEntryKind},
		{"empty kind", 10, "salary", "", domainErrors.ErrInvalidEntryKind},
		{"negative amount", -5, "salary", "deposit", domainErrors.ErrInvalidAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Append(ctx, 1, tc.value, tc.title, tc.kind); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLedgerUseCaseAppendRepositoryError(t *testing.T) {
	repo := testhelpers.NewLedgerRepositoryStub()
	repo.Err = fmt.Errorf("db down")
	uc := NewLedgerUseCase(repo)
	if _, err := uc.Append(context.Background(), 1, 10, "salary", "deposit"); err == nil {
		t.Fatal("expected repository error")
	}
}

func TestLedgerUseCaseEntriesEmpty(t *testing.T) {
	uc := NewLedgerUseCase(testhelpers.NewLedgerRepositoryStub())
	entries, err := uc.Entries(context.Background(), 99)
	if err != nil {
		t.Fatalf("entries returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(entries))
	}
}
