package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/daniilsolovey/blogicum/internal/db"
)

// ErrBadCredentials is returned by Login for an unknown user or a wrong password.
var ErrBadCredentials = errors.New("invalid username or password")

const usernameTaken = "A user with that username already exists."

// Register creates a user account.
func (m *Manager) Register(ctx context.Context, now time.Time, form RegisterForm) (*User, error) {
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)
	if err := validateForm(form); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &db.User{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: string(hash),
		JoinedAt:     now,
	}
	if err := m.db.CreateUser(ctx, user); errors.Is(err, db.ErrDuplicate) {
		return nil, newValidationError("username", usernameTaken)
	} else if err != nil {
		return nil, fmt.Errorf("db create user: %w", err)
	}

	result := NewUser(*user)
	return &result, nil
}

// Login checks the credentials and opens a session.
func (m *Manager) Login(ctx context.Context, now time.Time, username, password string) (*Session, error) {
	dbUser, err := m.db.UserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil {
		return nil, ErrBadCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(dbUser.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}

	session := &db.Session{
		ID:        uuid.NewString(),
		UserID:    dbUser.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.sessionTTL),
		User:      dbUser,
	}
	if err := m.db.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("db create session: %w", err)
	}

	return &Session{Session: *session}, nil
}

// Logout closes the session. Unknown sessions are ignored.
func (m *Manager) Logout(ctx context.Context, sessionID string) error {
	if err := m.db.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("db delete session: %w", err)
	}

	return nil
}

// Viewer resolves a session id into its user. Unknown and expired sessions
// resolve to the anonymous viewer (nil).
func (m *Manager) Viewer(ctx context.Context, now time.Time, sessionID string) (*User, error) {
	if sessionID == "" {
		return nil, nil
	}

	session, err := m.db.SessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("db get session: %w", err)
	} else if session == nil || session.User == nil {
		return nil, nil
	}

	if !session.ExpiresAt.After(now) {
		if err := m.db.DeleteSession(ctx, session.ID); err != nil {
			return nil, fmt.Errorf("db delete expired session: %w", err)
		}
		return nil, nil
	}

	viewer := NewUser(*session.User)
	return &viewer, nil
}

// UpdateProfile changes the viewer's own profile fields.
func (m *Manager) UpdateProfile(ctx context.Context, viewer *User, form ProfileForm) (*User, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}

	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)
	if err := validateForm(form); err != nil {
		return nil, err
	}

	user, err := m.freshUser(ctx, viewer)
	if err != nil {
		return nil, err
	}

	user.Username = form.Username
	user.FirstName = form.FirstName
	user.LastName = form.LastName
	user.Email = form.Email

	if err := m.db.UpdateUser(ctx, &user.User); errors.Is(err, db.ErrDuplicate) {
		return nil, newValidationError("username", usernameTaken)
	} else if err != nil {
		return nil, fmt.Errorf("db update user: %w", err)
	}

	return user, nil
}

// ChangePassword replaces the viewer's password after checking the old one.
func (m *Manager) ChangePassword(ctx context.Context, viewer *User, form PasswordChangeForm) error {
	if err := requireViewer(viewer); err != nil {
		return err
	}

	if err := validateForm(form); err != nil {
		return err
	}

	user, err := m.freshUser(ctx, viewer)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.OldPassword)) != nil {
		return newValidationError("old_password", "Your old password was entered incorrectly. Please enter it again.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	if err := m.db.UpdateUser(ctx, &user.User); err != nil {
		return fmt.Errorf("db update user: %w", err)
	}

	return nil
}

// freshUser reloads the viewer so updates never write stale columns.
func (m *Manager) freshUser(ctx context.Context, viewer *User) (*User, error) {
	dbUser, err := m.db.UserByID(ctx, viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil {
		return nil, ErrUnauthenticated
	}

	user := NewUser(*dbUser)
	return &user, nil
}
