package blog

import (
	"context"

	"github.com/daniilsolovey/blogicum/internal/db"
)

// Store is the persistence the Manager works on. *db.Repository implements it.
type Store interface {
	Posts(ctx context.Context, filter db.PostFilter, limit, offset int) ([]db.Post, error)
	PostsCount(ctx context.Context, filter db.PostFilter) (int, error)
	PostByID(ctx context.Context, postID int) (*db.Post, error)
	CreatePost(ctx context.Context, post *db.Post) error
	UpdatePost(ctx context.Context, post *db.Post) error
	DeletePost(ctx context.Context, postID int) error

	Comments(ctx context.Context, postID int) ([]db.Comment, error)
	CommentByID(ctx context.Context, commentID int) (*db.Comment, error)
	CreateComment(ctx context.Context, comment *db.Comment) error
	UpdateComment(ctx context.Context, comment *db.Comment) error
	DeleteComment(ctx context.Context, commentID int) error

	UserByID(ctx context.Context, userID int) (*db.User, error)
	UserByUsername(ctx context.Context, username string) (*db.User, error)
	CreateUser(ctx context.Context, user *db.User) error
	UpdateUser(ctx context.Context, user *db.User) error

	CreateSession(ctx context.Context, session *db.Session) error
	SessionByID(ctx context.Context, sessionID string) (*db.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error

	CategoryByID(ctx context.Context, categoryID int) (*db.Category, error)
	CategoryBySlug(ctx context.Context, slug string, publishedOnly bool) (*db.Category, error)
	Categories(ctx context.Context, publishedOnly bool) ([]db.Category, error)
	CreateCategory(ctx context.Context, category *db.Category) error
	SetCategoryPublished(ctx context.Context, slug string, published bool) (bool, error)

	LocationByID(ctx context.Context, locationID int) (*db.Location, error)
	Locations(ctx context.Context, publishedOnly bool) ([]db.Location, error)
	CreateLocation(ctx context.Context, location *db.Location) error
}

var _ Store = (*db.Repository)(nil)
