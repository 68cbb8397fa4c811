package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const pgUniqueViolation = "23505"

// ErrDuplicate is returned when a unique constraint rejects a write.
var ErrDuplicate = errors.New("duplicate key")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func wrapWriteErr(err error, msg string) error {
	var pgErr pg.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation {
		return fmt.Errorf("%s: %w", msg, ErrDuplicate)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
