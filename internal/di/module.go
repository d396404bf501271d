package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/mywallet/internal/app"
	"github.com/polkiloo/mywallet/internal/config"
	"github.com/polkiloo/mywallet/internal/logger"
	"github.com/polkiloo/mywallet/internal/pkg/auth"
	"github.com/polkiloo/mywallet/internal/server/http/handlers"
	"github.com/polkiloo/mywallet/internal/server/http/router"
	"github.com/polkiloo/mywallet/internal/storage/postgres"
	"github.com/polkiloo/mywallet/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.WalletFacade) handlers.WalletFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
