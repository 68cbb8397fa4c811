package rpc

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

//go:generate zenrpc

// BlogService exposes the public part of the blog. Every call is made as the
// anonymous viewer.
type BlogService struct {
	zenrpc.Service
	manager *blog.Manager
	now     func() time.Time
}

func NewBlogService(manager *blog.Manager, now func() time.Time) *BlogService {
	if now == nil {
		now = time.Now
	}

	return &BlogService{manager: manager, now: now}
}

// List returns a page of publicly visible posts, newest first.
//
//zenrpc:page=1 page number, out of range pages give the last page
//zenrpc:return page of post summaries
//zenrpc:500 internal server error
func (s BlogService) List(ctx context.Context, page int) (PostPage, error) {
	posts, err := s.manager.Index(ctx, nil, s.now(), page)
	if err != nil {
		return PostPage{}, err
	}

	return NewPostPage(posts), nil
}

// Category returns a page of publicly visible posts of a published category.
//
//zenrpc:slug category slug
//zenrpc:page=1 page number
//zenrpc:return category with a page of its posts
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s BlogService) Category(ctx context.Context, slug string, page int) (*CategoryPosts, error) {
	category, posts, err := s.manager.CategoryPosts(ctx, nil, s.now(), slug, page)
	if errors.Is(err, blog.ErrNotFound) {
		return nil, zenrpc.NewStringError(http.StatusNotFound, "category not found")
	} else if err != nil {
		return nil, err
	}

	return &CategoryPosts{
		Category: NewCategory(*category),
		PostPage: NewPostPage(posts),
	}, nil
}

// ByID returns a publicly visible post with its comments.
//
//zenrpc:id post id
//zenrpc:return post with comments
//zenrpc:400 id must be positive
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s BlogService) ByID(ctx context.Context, id int) (*Post, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(http.StatusBadRequest, "id must be positive")
	}

	post, comments, err := s.manager.Post(ctx, nil, s.now(), id)
	if errors.Is(err, blog.ErrNotFound) {
		return nil, zenrpc.NewStringError(http.StatusNotFound, "post not found")
	} else if err != nil {
		return nil, err
	}

	result := NewPost(*post, comments)
	return &result, nil
}

// Categories returns the published categories.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s BlogService) Categories(ctx context.Context) (Categories, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return NewCategories(categories), nil
}
