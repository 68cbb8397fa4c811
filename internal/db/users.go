package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) UserByID(ctx context.Context, userID int) (*User, error) {
	return r.oneUser(ctx, `"t"."userId" = ?`, userID)
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (*User, error) {
	return r.oneUser(ctx, `"t"."username" = ?`, username)
}

func (r *Repository) oneUser(ctx context.Context, where string, param interface{}) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).Where(where, param).Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// CreateUser inserts the user. A taken username yields ErrDuplicate.
func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		return wrapWriteErr(err, "failed to insert user")
	}

	return nil
}

// UpdateUser writes profile fields and the password hash. A taken username
// yields ErrDuplicate.
func (r *Repository) UpdateUser(ctx context.Context, user *User) error {
	_, err := r.db.ModelContext(ctx, user).
		Column(
			Columns.User.Username,
			Columns.User.FirstName,
			Columns.User.LastName,
			Columns.User.Email,
			Columns.User.PasswordHash,
		).
		WherePK().
		Update()
	if err != nil {
		return wrapWriteErr(err, "failed to update user")
	}

	return nil
}

func (r *Repository) CreateSession(ctx context.Context, session *Session) error {
	if _, err := r.db.ModelContext(ctx, session).Insert(); err != nil {
		return wrapWriteErr(err, "failed to insert session")
	}

	return nil
}

// SessionByID returns the session with its user, or nil when there is none.
func (r *Repository) SessionByID(ctx context.Context, sessionID string) (*Session, error) {
	session := &Session{}
	err := r.db.ModelContext(ctx, session).
		Relation(Columns.Session.User).
		Where(`"t"."sessionId" = ?`, sessionID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (r *Repository) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := r.db.ModelContext(ctx, (*Session)(nil)).
		Where(`"sessionId" = ?`, sessionID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
