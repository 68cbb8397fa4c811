package blog

import (
	"time"

	"github.com/daniilsolovey/blogicum/internal/db"
)

// Extra narrows a listing on top of the visibility rules.
type Extra struct {
	CategoryID *int
	AuthorID   *int
}

// PostsFilter describes the posts viewer may list: the public ones plus,
// for a logged in viewer, their own. It selects exactly the posts for which
// IsVisible holds, intersected with extra.
func PostsFilter(viewer *User, now time.Time, extra Extra) db.PostFilter {
	filter := db.PostFilter{
		Now:        now,
		CategoryID: extra.CategoryID,
		AuthorID:   extra.AuthorID,
	}

	if viewer != nil {
		id := viewer.ID
		filter.ViewerID = &id
	}

	return filter
}

// ProfileFilter describes the posts listed on owner's profile page. The owner
// sees every post of theirs; others see the publicly visible ones.
func ProfileFilter(owner User, viewer *User, now time.Time) db.PostFilter {
	authorID := owner.ID
	if isAuthor(viewer, owner.ID) {
		return db.PostFilter{
			Now:          now,
			Unrestricted: true,
			AuthorID:     &authorID,
		}
	}

	return db.PostFilter{
		Now:      now,
		AuthorID: &authorID,
	}
}
