package blog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/daniilsolovey/blogicum/internal/db"
)

// CreatePost publishes a new post authored by viewer.
func (m *Manager) CreatePost(ctx context.Context, viewer *User, now time.Time, form PostForm) (*Post, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}

	post := &db.Post{
		AuthorID:  viewer.ID,
		CreatedAt: now,
	}
	if err := m.applyPostForm(ctx, post, form); err != nil {
		return nil, err
	}

	if err := m.db.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("db create post: %w", err)
	}

	result := NewPost(*post)
	return &result, nil
}

// EditablePost returns a post that viewer is allowed to change.
func (m *Manager) EditablePost(ctx context.Context, viewer *User, postID int) (*Post, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}

	post, err := m.postByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := requireAuthor(viewer, post.AuthorID); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost applies form to a post owned by viewer.
func (m *Manager) UpdatePost(ctx context.Context, viewer *User, postID int, form PostForm) (*Post, error) {
	post, err := m.EditablePost(ctx, viewer, postID)
	if err != nil {
		return nil, err
	}

	if err := m.applyPostForm(ctx, &post.Post, form); err != nil {
		return nil, err
	}

	if err := m.db.UpdatePost(ctx, &post.Post); err != nil {
		return nil, fmt.Errorf("db update post: %w", err)
	}

	return post, nil
}

// DeletePost removes a post owned by viewer together with its comments.
func (m *Manager) DeletePost(ctx context.Context, viewer *User, postID int) error {
	post, err := m.EditablePost(ctx, viewer, postID)
	if err != nil {
		return err
	}

	if err := m.db.DeletePost(ctx, post.ID); err != nil {
		return fmt.Errorf("db delete post: %w", err)
	}

	return nil
}

func (m *Manager) applyPostForm(ctx context.Context, post *db.Post, form PostForm) error {
	form.Title = strings.TrimSpace(form.Title)
	form.Text = strings.TrimSpace(form.Text)
	if err := validateForm(form); err != nil {
		return err
	}

	pubDate, err := parsePubDate(form.PubDate, m.location)
	if err != nil {
		return err
	}

	var category *db.Category
	if form.CategoryID != nil {
		category, err = m.db.CategoryByID(ctx, *form.CategoryID)
		if err != nil {
			return fmt.Errorf("db get category: %w", err)
		} else if category == nil {
			return newValidationError("category", "Select a valid choice.")
		}
	}

	var location *db.Location
	if form.LocationID != nil {
		location, err = m.db.LocationByID(ctx, *form.LocationID)
		if err != nil {
			return fmt.Errorf("db get location: %w", err)
		} else if location == nil {
			return newValidationError("location", "Select a valid choice.")
		}
	}

	post.Title = form.Title
	post.Text = form.Text
	post.PubDate = pubDate
	post.IsPublished = form.IsPublished
	post.CategoryID, post.Category = form.CategoryID, category
	post.LocationID, post.Location = form.LocationID, location

	switch {
	case form.Image != nil:
		post.Image = form.Image
	case form.ClearImage:
		post.Image = nil
	}

	return nil
}
