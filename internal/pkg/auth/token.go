package auth

import "github.com/google/uuid"

// TokenSource mints opaque session tokens. Tokens carry no decodable
// structure and are looked up by exact match.
type TokenSource interface {
	NewToken() (string, error)
}

// UUIDTokenSource produces random version-4 UUID tokens (128 bits of
// entropy from crypto/rand).
type UUIDTokenSource struct{}

// NewToken returns a fresh unguessable token.
func (UUIDTokenSource) NewToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
