package blog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/daniilsolovey/blogicum/internal/db"
)

// AddComment attaches a comment by viewer to an existing post.
func (m *Manager) AddComment(ctx context.Context, viewer *User, now time.Time, postID int, form CommentForm) (*Comment, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}

	post, err := m.postByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	form.Text = strings.TrimSpace(form.Text)
	if err := validateForm(form); err != nil {
		return nil, err
	}

	comment := &db.Comment{
		Text:      form.Text,
		PostID:    post.ID,
		AuthorID:  viewer.ID,
		CreatedAt: now,
		Author:    &viewer.User,
	}
	if err := m.db.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("db create comment: %w", err)
	}

	result := NewComment(*comment)
	return &result, nil
}

// EditableComment returns a comment of the given post that viewer is allowed
// to change. A comment of another post counts as missing.
func (m *Manager) EditableComment(ctx context.Context, viewer *User, postID, commentID int) (*Comment, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}

	dbComment, err := m.db.CommentByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("db get comment by id: %w", err)
	} else if dbComment == nil || dbComment.PostID != postID {
		return nil, ErrNotFound
	}

	if err := requireAuthor(viewer, dbComment.AuthorID); err != nil {
		return nil, err
	}

	comment := NewComment(*dbComment)
	return &comment, nil
}

func (m *Manager) UpdateComment(ctx context.Context, viewer *User, postID, commentID int, form CommentForm) (*Comment, error) {
	comment, err := m.EditableComment(ctx, viewer, postID, commentID)
	if err != nil {
		return nil, err
	}

	form.Text = strings.TrimSpace(form.Text)
	if err := validateForm(form); err != nil {
		return nil, err
	}

	comment.Text = form.Text
	if err := m.db.UpdateComment(ctx, &comment.Comment); err != nil {
		return nil, fmt.Errorf("db update comment: %w", err)
	}

	return comment, nil
}

func (m *Manager) DeleteComment(ctx context.Context, viewer *User, postID, commentID int) error {
	comment, err := m.EditableComment(ctx, viewer, postID, commentID)
	if err != nil {
		return err
	}

	if err := m.db.DeleteComment(ctx, comment.ID); err != nil {
		return fmt.Errorf("db delete comment: %w", err)
	}

	return nil
}
