package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/daniilsolovey/blogicum/internal/db"
)

const maxSlugLength = 64

// CreateCategory adds a category. An empty slug is derived from the title.
func (m *Manager) CreateCategory(ctx context.Context, now time.Time, title, description, slugValue string, published bool) (*Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, newValidationError("title", errorMessages["required"])
	}

	if slugValue == "" {
		slugValue = slug.Make(title)
	}
	if len(slugValue) > maxSlugLength || !slug.IsSlug(slugValue) {
		return nil, newValidationError("slug", "Enter a valid slug consisting of lowercase letters, numbers or hyphens.")
	}

	category := &db.Category{
		Title:       title,
		Description: strings.TrimSpace(description),
		Slug:        slugValue,
		IsPublished: published,
		CreatedAt:   now,
	}
	if err := m.db.CreateCategory(ctx, category); errors.Is(err, db.ErrDuplicate) {
		return nil, newValidationError("slug", fmt.Sprintf("Category with slug %q already exists.", slugValue))
	} else if err != nil {
		return nil, fmt.Errorf("db create category: %w", err)
	}

	result := NewCategory(*category)
	return &result, nil
}

// SetCategoryPublished hides or shows a category and, with it, its posts.
func (m *Manager) SetCategoryPublished(ctx context.Context, slugValue string, published bool) error {
	ok, err := m.db.SetCategoryPublished(ctx, slugValue, published)
	if err != nil {
		return fmt.Errorf("db set category published: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	return nil
}

func (m *Manager) CreateLocation(ctx context.Context, now time.Time, name string, published bool) (*Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("name", errorMessages["required"])
	}

	location := &db.Location{
		Name:        name,
		IsPublished: published,
		CreatedAt:   now,
	}
	if err := m.db.CreateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("db create location: %w", err)
	}

	result := NewLocation(*location)
	return &result, nil
}
