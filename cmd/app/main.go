package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/blogicum/config"
	"github.com/daniilsolovey/blogicum/internal/app"
	"github.com/daniilsolovey/blogicum/internal/db"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	cfg      config.Config
	lg       *slog.Logger
)

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	if cfg.App.Migrate {
		exitOnError(migrate(context.Background()))
	}

	ctx := context.Background()
	dbc := pg.Connect(&cfg.Database)
	service, err := app.New(ctx, cfg, dbc, lg)
	if err != nil {
		dbc.Close()
		exitOnError(err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func migrate(ctx context.Context) error {
	sqldb, err := db.OpenSQL(&cfg.Database)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.Migrate(ctx, sqldb); err != nil {
		return err
	}

	lg.Info("migrations applied")
	return nil
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
