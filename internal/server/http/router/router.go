package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mywallet/internal/server/http/handlers"
	"github.com/polkiloo/mywallet/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.WalletFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	ledgerHandler := handlers.NewLedgerHandler(facade)

	engine.POST("/signup", authHandler.SignUp)
	engine.POST("/signin", authHandler.SignIn)

	authorized := engine.Group("")
	authorized.Use(middleware.AuthRequired(facade))
	authorized.POST("/balance", ledgerHandler.Append)
	authorized.GET("/balance", ledgerHandler.List)

	return engine
}
