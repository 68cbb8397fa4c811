package db

import (
	"time"

	"github.com/go-pg/pg/v10/orm"
)

// PostFilter describes a set of posts. It holds no cursor state, so the same
// value can be used for counting and for fetching any page.
type PostFilter struct {
	// Now is the moment pubDate is compared against.
	Now time.Time
	// Unrestricted disables the visibility filter entirely.
	Unrestricted bool
	// ViewerID, when set, lets the viewer's own posts through the visibility filter.
	ViewerID *int

	AuthorID   *int
	CategoryID *int
}

// apply adds the filter to a query that has the Category relation joined.
func (f PostFilter) apply(q *orm.Query) *orm.Query {
	if !f.Unrestricted {
		q = q.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			q = q.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
				return q.
					Where(`"t"."isPublished" = TRUE`).
					Where(`"t"."pubDate" <= ?`, f.Now).
					Where(`"category"."isPublished" = TRUE`), nil
			})
			if f.ViewerID != nil {
				q = q.WhereOr(`"t"."authorId" = ?`, *f.ViewerID)
			}
			return q, nil
		})
	}

	if f.AuthorID != nil {
		q = q.Where(`"t"."authorId" = ?`, *f.AuthorID)
	}

	if f.CategoryID != nil {
		q = q.Where(`"t"."categoryId" = ?`, *f.CategoryID)
	}

	return q
}

// Match reports whether p belongs to the set. p.Category must be loaded when
// the post has a category.
func (f PostFilter) Match(p *Post) bool {
	if f.AuthorID != nil && p.AuthorID != *f.AuthorID {
		return false
	}

	if f.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *f.CategoryID) {
		return false
	}

	if f.Unrestricted {
		return true
	}

	if f.ViewerID != nil && p.AuthorID == *f.ViewerID {
		return true
	}

	return p.IsPublished &&
		!p.PubDate.After(f.Now) &&
		p.Category != nil &&
		p.Category.IsPublished
}
