package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/polkiloo/mywallet/internal/domain/errors"
	"github.com/polkiloo/mywallet/internal/domain/repository"
	pkgAuth "github.com/polkiloo/mywallet/internal/pkg/auth"
)

// SessionUseCase issues and resolves opaque bearer tokens.
type SessionUseCase struct {
	sessions repository.SessionRepository
	tokens   pkgAuth.TokenSource
	ttl      time.Duration
}

// NewSessionUseCase constructs SessionUseCase.
func NewSessionUseCase(sessions repository.SessionRepository, tokens pkgAuth.TokenSource, ttl time.Duration) *SessionUseCase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionUseCase{sessions: sessions, tokens: tokens, ttl: ttl}
}

// Issue mints a fresh token bound to the user and persists the binding.
func (u *SessionUseCase) Issue(ctx context.Context, userID int64) (string, error) {
	token, err := u.tokens.NewToken()
	if err != nil {
		return "", err
	}
	if _, err := u.sessions.Create(ctx, token, userID, time.Now().Add(u.ttl)); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve looks up the user behind a token. Absent and expired tokens
// both yield ErrInvalidSession. The referenced user is not re-checked.
func (u *SessionUseCase) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, domainErrors.ErrInvalidSession
	}
	session, err := u.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return 0, domainErrors.ErrInvalidSession
		}
		return 0, err
	}
	return session.UserID, nil
}

// PurgeExpired removes expired sessions and reports how many were deleted.
func (u *SessionUseCase) PurgeExpired(ctx context.Context) (int64, error) {
	return u.sessions.DeleteExpired(ctx)
}
