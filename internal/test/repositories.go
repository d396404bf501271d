package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/mywallet/internal/domain/errors"
	"github.com/polkiloo/mywallet/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless the email is taken or the stub has an explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// SessionRepositoryStub keeps token bindings in-memory. Expiry is honored
// the same way the real repository does.
type SessionRepositoryStub struct {
	Sessions map[string]*model.Session
	Err      error
	Now      func() time.Time
}

// NewSessionRepositoryStub constructs stub with an initialized map.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{Sessions: make(map[string]*model.Session)}
}

func (s *SessionRepositoryStub) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create stores the token binding.
func (s *SessionRepositoryStub) Create(ctx context.Context, token string, userID int64, expiresAt time.Time) (*model.Session, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Sessions == nil {
		s.Sessions = make(map[string]*model.Session)
	}
	session := &model.Session{Token: token, UserID: userID, CreatedAt: s.now(), ExpiresAt: expiresAt}
	s.Sessions[token] = session
	return session, nil
}

// GetByToken returns the binding if present and unexpired.
func (s *SessionRepositoryStub) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	session, ok := s.Sessions[token]
	if !ok || session.Expired(s.now()) {
		return nil, domainErrors.ErrNotFound
	}
	return session, nil
}

// DeleteExpired removes stale sessions and reports the count.
func (s *SessionRepositoryStub) DeleteExpired(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var removed int64
	for token, session := range s.Sessions {
		if session.Expired(s.now()) {
			delete(s.Sessions, token)
			removed++
		}
	}
	return removed, nil
}

// LedgerRepositoryStub keeps per-user ledgers in-memory, assigning dense
// sequence numbers like the real repository.
type LedgerRepositoryStub struct {
	Ledgers map[int64][]model.Entry
	NextID  int64
	Err     error
}

// NewLedgerRepositoryStub constructs stub with an initialized map.
func NewLedgerRepositoryStub() *LedgerRepositoryStub {
	return &LedgerRepositoryStub{Ledgers: make(map[int64][]model.Entry), NextID: 1}
}

// Append records the entry with the next per-user sequence number.
func (s *LedgerRepositoryStub) Append(ctx context.Context, userID int64, amount model.Cents, title string, kind model.EntryKind) (*model.Entry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Ledgers == nil {
		s.Ledgers = make(map[int64][]model.Entry)
	}
	if s.NextID == 0 {
		s.NextID = 1
	}
	entry := model.Entry{
		ID:         s.NextID,
		UserID:     userID,
		Seq:        int64(len(s.Ledgers[userID])) + 1,
		Amount:     amount,
		Title:      title,
		Kind:       kind,
		RecordedAt: time.Now(),
	}
	s.NextID++
	s.Ledgers[userID] = append(s.Ledgers[userID], entry)
	return &entry, nil
}

// ListByUser returns the stored ledger in insertion order.
func (s *LedgerRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Entry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Ledgers[userID], nil
}
