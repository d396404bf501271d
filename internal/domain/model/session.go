package model

import "time"

// Session binds an opaque bearer token to a user identity. A user may hold
// any number of live sessions at once.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at the given moment.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
