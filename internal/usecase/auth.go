package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/mywallet/internal/domain/errors"
	"github.com/polkiloo/mywallet/internal/domain/model"
	"github.com/polkiloo/mywallet/internal/domain/repository"
	pkgAuth "github.com/polkiloo/mywallet/internal/pkg/auth"
)

// AuthUseCase owns account registration and credential verification.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher}
}

// Register creates a new wallet account. The plaintext password is hashed
// and never stored; duplicate emails surface as ErrAlreadyExists.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password, passwordConfirm string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, domainErrors.ErrEmptyName
	}
	if !ValidEmail(email) {
		return nil, domainErrors.ErrInvalidEmail
	}
	if !ValidPassword(password) {
		return nil, domainErrors.ErrInvalidPassword
	}
	if password != passwordConfirm {
		return nil, domainErrors.ErrPasswordMismatch
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}

	return usr, nil
}

// Authenticate validates credentials and returns the matching user.
// An unknown email and a wrong password both yield ErrInvalidCredentials,
// and the hash comparison is only attempted against an existing record.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, domainErrors.ErrInvalidCredentials
	}

	return usr, nil
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
