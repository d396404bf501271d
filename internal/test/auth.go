package test

import "fmt"

// HasherStub is a deterministic stand-in for the bcrypt hasher.
type HasherStub struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hash, password string) error
}

// Hash returns a recognizable fake hash.
func (s HasherStub) Hash(password string) (string, error) {
	if s.HashFn != nil {
		return s.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare verifies the fake hash shape.
func (s HasherStub) Compare(hash, password string) error {
	if s.CompareFn != nil {
		return s.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

// TokenSourceStub mints predictable sequential tokens.
type TokenSourceStub struct {
	NewTokenFn func() (string, error)
	counter    int
}

// NewToken returns the configured token or "token-N".
func (s *TokenSourceStub) NewToken() (string, error) {
	if s.NewTokenFn != nil {
		return s.NewTokenFn()
	}
	s.counter++
	return fmt.Sprintf("token-%d", s.counter), nil
}
