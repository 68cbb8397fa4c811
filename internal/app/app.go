package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blogicum/config"
	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/db"
	"github.com/daniilsolovey/blogicum/internal/rpc"
	"github.com/daniilsolovey/blogicum/internal/web"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

func New(ctx context.Context, cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	if cfg.App.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger))
	}

	repo := db.New(dbConnect)
	if err := repo.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	manager := blog.NewManager(repo, cfg.App.SessionTTL)

	handler, err := web.NewHandler(manager, logger, web.Options{
		MediaDir:   cfg.App.MediaDir,
		CookieName: cfg.App.CookieName,
		Secure:     cfg.App.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("init web handler: %w", err)
	}

	e := handler.RegisterRoutes()

	rpcServer := rpc.New(logger, manager, time.Now)
	e.Any("/v1/rpc", echo.WrapHandler(rpcServer))
	e.GET("/v1/rpc/doc", echo.WrapHandler(http.HandlerFunc(zenrpc.SMDBoxHandler)))

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	addr := a.Config.App.Addr()
	a.Logger.InfoContext(ctx, "service started", "addr", addr)

	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return a.DB.Close()
}
