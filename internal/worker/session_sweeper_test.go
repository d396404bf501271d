package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	testhelpers "github.com/polkiloo/mywallet/internal/test"
)

func TestNewSessionSweeperDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	sweeper := NewSessionSweeper(&testhelpers.SessionPurgerStub{}, 0, logger)
	if sweeper.interval != time.Minute {
		t.Fatalf("expected interval default to 1m, got %v", sweeper.interval)
	}
}

func TestSessionSweeperPurges(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	purger := &testhelpers.SessionPurgerStub{
		Calls: make(chan struct{}, 1),
		PurgeFn: func(context.Context) (int64, error) {
			return 2, nil
		},
	}
	sweeper := NewSessionSweeper(purger, 10*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	select {
	case <-purger.Calls:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for session sweep")
	}

	sweeper.Stop()
}

func TestSessionSweeperContinuesAfterError(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	var attempts int32
	purger := &testhelpers.SessionPurgerStub{
		Calls: make(chan struct{}, 2),
		PurgeFn: func(context.Context) (int64, error) {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return 0, errors.New("db down")
			}
			return 1, nil
		},
	}
	sweeper := NewSessionSweeper(purger, 5*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	deadline := time.After(time.Second)
	for atomic.LoadInt32(&attempts) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for retry after error")
		case <-time.After(10 * time.Millisecond):
		}
	}

	sweeper.Stop()
}

func TestSessionSweeperStopWithoutStart(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	sweeper := NewSessionSweeper(&testhelpers.SessionPurgerStub{}, time.Minute, logger)
	sweeper.Stop()
}

func TestSessionSweeperStopTerminatesLoop(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	purger := &testhelpers.SessionPurgerStub{Calls: make(chan struct{}, 16)}
	sweeper := NewSessionSweeper(purger, 5*time.Millisecond, logger)

	sweeper.Start(context.Background())

	select {
	case <-purger.Calls:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for first sweep")
	}

	sweeper.Stop()

	// Drain anything already queued, then verify no further sweeps arrive.
	for {
		select {
		case <-purger.Calls:
			continue
		default:
		}
		break
	}
	select {
	case <-purger.Calls:
		t.Fatal("sweep fired after Stop")
	case <-time.After(50 * time.Millisecond):
	}
}
