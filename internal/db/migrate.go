package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"net"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// OpenSQL opens a database/sql handle for the same server as opt. goose works
// on database/sql, go-pg does not expose one.
func OpenSQL(opt *pg.Options) (*sql.DB, error) {
	config := pgx.ConnConfig{
		Host:      "localhost",
		Port:      5432,
		Database:  opt.Database,
		User:      opt.User,
		Password:  opt.Password,
		TLSConfig: opt.TLSConfig,
	}

	if opt.Addr != "" {
		host, port, err := net.SplitHostPort(opt.Addr)
		if err != nil {
			return nil, fmt.Errorf("parse database addr %q: %w", opt.Addr, err)
		}

		p, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("parse database port %q: %w", port, err)
		}

		config.Host, config.Port = host, uint16(p)
	}

	return stdlib.OpenDB(config), nil
}

// Migrate applies all pending embedded migrations.
func Migrate(ctx context.Context, sqldb *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// MigrationStatus logs the state of every embedded migration through goose's logger.
func MigrationStatus(ctx context.Context, sqldb *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}

	if err := goose.StatusContext(ctx, sqldb, migrationsDir); err != nil {
		return fmt.Errorf("goose status: %w", err)
	}

	return nil
}

func setupGoose() error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return nil
}
