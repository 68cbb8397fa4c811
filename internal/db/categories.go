package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// CategoryBySlug returns the category with the given slug, or nil. With
// publishedOnly set, unpublished categories are treated as missing.
func (r *Repository) CategoryBySlug(ctx context.Context, slug string, publishedOnly bool) (*Category, error) {
	category := &Category{}
	query := r.db.ModelContext(ctx, category).
		Where(`"t"."slug" = ?`, slug)
	if publishedOnly {
		query = query.Where(`"t"."isPublished" = TRUE`)
	}

	err := query.Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}

func (r *Repository) Categories(ctx context.Context, publishedOnly bool) ([]Category, error) {
	var categories []Category
	query := r.db.ModelContext(ctx, &categories)
	if publishedOnly {
		query = query.Where(`"isPublished" = TRUE`)
	}

	err := query.OrderExpr(`"title" ASC`).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// CreateCategory inserts the category. A taken slug yields ErrDuplicate.
func (r *Repository) CreateCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return wrapWriteErr(err, "failed to insert category")
	}

	return nil
}

func (r *Repository) SetCategoryPublished(ctx context.Context, slug string, published bool) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Set(`"isPublished" = ?`, published).
		Where(`"slug" = ?`, slug).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) Locations(ctx context.Context, publishedOnly bool) ([]Location, error) {
	var locations []Location
	query := r.db.ModelContext(ctx, &locations)
	if publishedOnly {
		query = query.Where(`"isPublished" = TRUE`)
	}

	err := query.OrderExpr(`"name" ASC`).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}

	return locations, nil
}

func (r *Repository) CreateLocation(ctx context.Context, location *Location) error {
	if _, err := r.db.ModelContext(ctx, location).Insert(); err != nil {
		return wrapWriteErr(err, "failed to insert location")
	}

	return nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."categoryId" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) LocationByID(ctx context.Context, locationID int) (*Location, error) {
	location := &Location{}
	err := r.db.ModelContext(ctx, location).
		Where(`"t"."locationId" = ?`, locationID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get location by id: %w", err)
	}

	return location, nil
}
