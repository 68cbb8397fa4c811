package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-pg/pg/v10"
	"github.com/spf13/cobra"

	"github.com/daniilsolovey/blogicum/config"
	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/db"
)

// runtime carries what the subcommands share: configuration, logger and the
// way to reach the store.
type runtime struct {
	configPath string
	debug      bool

	cfg    config.Config
	logger *slog.Logger

	// store replaces the Postgres repository when set.
	store blog.Store
}

// NewRootCmd creates the blogadmin command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&runtime{})
}

func newRootCmd(rt *runtime) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "blogadmin",
		Short:         "Administration tasks for the blog",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&rt.configPath, "config", "c", "config.toml", "path to TOML configuration file")
	rootCmd.PersistentFlags().BoolVar(&rt.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newMigrateCommand(rt),
		newCategoryCommand(rt),
		newLocationCommand(rt),
	)

	return rootCmd
}

func (rt *runtime) init() error {
	level := slog.LevelInfo
	if rt.debug {
		level = slog.LevelDebug
	}
	rt.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if rt.store != nil {
		rt.cfg = config.Default()
		return nil
	}

	cfg, err := config.Load(rt.configPath)
	if err != nil {
		return err
	}
	rt.cfg = cfg

	return nil
}

// manager opens a blog manager; the returned func releases its connection.
func (rt *runtime) manager(ctx context.Context) (*blog.Manager, func(), error) {
	if rt.store != nil {
		return blog.NewManager(rt.store, rt.cfg.App.SessionTTL), func() {}, nil
	}

	dbc := pg.Connect(&rt.cfg.Database)
	if rt.cfg.App.LogQueries {
		dbc.AddQueryHook(db.NewQueryHook(rt.logger))
	}

	repo := db.New(dbc)
	if err := repo.Ping(ctx); err != nil {
		dbc.Close()
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	closeFn := func() {
		if err := dbc.Close(); err != nil {
			rt.logger.Error("failed to close database", "error", err)
		}
	}

	return blog.NewManager(repo, rt.cfg.App.SessionTTL), closeFn, nil
}
