package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/mywallet/internal/config"
	"github.com/polkiloo/mywallet/internal/domain/repository"
	pkgAuth "github.com/polkiloo/mywallet/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewLedgerUseCase,
	newSessionUseCase,
)

type sessionParams struct {
	fx.In

	Sessions repository.SessionRepository
	Tokens   pkgAuth.TokenSource
	Config   *config.Config
}

func newSessionUseCase(p sessionParams) *SessionUseCase {
	return NewSessionUseCase(p.Sessions, p.Tokens, p.Config.SessionTTL)
}
