package blog

import (
	"time"
)

// IsVisible reports whether viewer may see post at the given moment. A nil
// viewer is anonymous. Authors always see their own posts; everybody else
// sees a post only when it is published, its pub date has come and it sits
// in a published category.
func IsVisible(post *Post, viewer *User, now time.Time) bool {
	if isAuthor(viewer, post.AuthorID) {
		return true
	}

	return post.IsPublished &&
		!post.PubDate.After(now) &&
		post.Category != nil &&
		post.Category.IsPublished
}

func isAuthor(viewer *User, authorID int) bool {
	return viewer != nil && viewer.ID == authorID
}

// requireViewer guards operations that need a logged in user.
func requireViewer(viewer *User) error {
	if viewer == nil {
		return ErrUnauthenticated
	}

	return nil
}

// requireAuthor guards mutations of an existing post or comment.
func requireAuthor(viewer *User, authorID int) error {
	if err := requireViewer(viewer); err != nil {
		return err
	}

	if !isAuthor(viewer, authorID) {
		return ErrForbidden
	}

	return nil
}
