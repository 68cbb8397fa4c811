package blog

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/blogicum/internal/db"
)

const defaultSessionTTL = 14 * 24 * time.Hour

type Manager struct {
	db         Store
	sessionTTL time.Duration
	location   *time.Location
}

func NewManager(store Store, sessionTTL time.Duration) *Manager {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}

	return &Manager{
		db:         store,
		sessionTTL: sessionTTL,
		location:   time.UTC,
	}
}

// Index lists the posts viewer may see, newest first.
func (m *Manager) Index(ctx context.Context, viewer *User, now time.Time, page int) (Page[Post], error) {
	return m.postsPage(ctx, PostsFilter(viewer, now, Extra{}), page)
}

// CategoryPosts lists the visible posts of a published category. Unknown and
// unpublished slugs give ErrNotFound.
func (m *Manager) CategoryPosts(ctx context.Context, viewer *User, now time.Time, slug string, page int) (*Category, Page[Post], error) {
	dbCategory, err := m.db.CategoryBySlug(ctx, slug, true)
	if err != nil {
		return nil, Page[Post]{}, fmt.Errorf("db get category: %w", err)
	} else if dbCategory == nil {
		return nil, Page[Post]{}, ErrNotFound
	}

	category := NewCategory(*dbCategory)
	categoryID := category.ID

	posts, err := m.postsPage(ctx, PostsFilter(viewer, now, Extra{CategoryID: &categoryID}), page)
	if err != nil {
		return nil, Page[Post]{}, err
	}

	return &category, posts, nil
}

// Profile returns the user with the given username and the page of their
// posts viewer may see.
func (m *Manager) Profile(ctx context.Context, viewer *User, now time.Time, username string, page int) (*User, Page[Post], error) {
	dbUser, err := m.db.UserByUsername(ctx, username)
	if err != nil {
		return nil, Page[Post]{}, fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil {
		return nil, Page[Post]{}, ErrNotFound
	}

	owner := NewUser(*dbUser)

	posts, err := m.postsPage(ctx, ProfileFilter(owner, viewer, now), page)
	if err != nil {
		return nil, Page[Post]{}, err
	}

	return &owner, posts, nil
}

func (m *Manager) postsPage(ctx context.Context, filter db.PostFilter, page int) (Page[Post], error) {
	total, err := m.db.PostsCount(ctx, filter)
	if err != nil {
		return Page[Post]{}, fmt.Errorf("db get posts count: %w", err)
	}

	pager := NewPager(total, page, PageSize)
	if total == 0 {
		return NewPage[Post](pager, nil), nil
	}

	dbPosts, err := m.db.Posts(ctx, filter, pager.Limit(), pager.Offset())
	if err != nil {
		return Page[Post]{}, fmt.Errorf("db get posts: %w", err)
	}

	return NewPage(pager, NewPosts(dbPosts)), nil
}

// Post returns a post with its comments when viewer may see it, and
// ErrNotFound otherwise.
func (m *Manager) Post(ctx context.Context, viewer *User, now time.Time, postID int) (*Post, []Comment, error) {
	post, err := m.postByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	if !IsVisible(post, viewer, now) {
		return nil, nil, ErrNotFound
	}

	comments, err := m.db.Comments(ctx, post.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("db get comments: %w", err)
	}

	return post, NewComments(comments), nil
}

func (m *Manager) postByID(ctx context.Context, postID int) (*Post, error) {
	dbPost, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	post := NewPost(*dbPost)
	return &post, nil
}

// Categories returns the published categories.
func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// Locations returns the published locations.
func (m *Manager) Locations(ctx context.Context) ([]Location, error) {
	list, err := m.db.Locations(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("db get locations: %w", err)
	}

	return NewLocations(list), nil
}
