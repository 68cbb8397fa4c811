package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// Posts returns a window of the posts matched by filter, newest first, with
// author, category and location loaded and comment counts attached.
func (r *Repository) Posts(ctx context.Context, filter PostFilter, limit, offset int) ([]Post, error) {
	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf(
			"limit must be greater than 0 and offset not negative: limit=%d, offset=%d",
			limit, offset,
		)
	}

	var posts []Post
	query := r.db.ModelContext(ctx, &posts).
		Relation(Columns.Post.Category).
		Relation(Columns.Post.Author).
		Relation(Columns.Post.Location)

	err := filter.apply(query).
		OrderExpr(`"t"."pubDate" DESC`).
		OrderExpr(`"t"."postId" ASC`).
		Limit(limit).
		Offset(offset).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	if err := r.attachCommentCounts(ctx, posts); err != nil {
		return nil, fmt.Errorf("failed to attach comment counts: %w", err)
	}

	return posts, nil
}

func (r *Repository) PostsCount(ctx context.Context, filter PostFilter) (int, error) {
	query := r.db.ModelContext(ctx, (*Post)(nil)).
		Relation(Columns.Post.Category)

	count, err := filter.apply(query).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get posts count: %w", err)
	}

	return count, nil
}

// PostByID returns the post with its relations, or nil when there is none.
func (r *Repository) PostByID(ctx context.Context, postID int) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation(Columns.Post.Category).
		Relation(Columns.Post.Author).
		Relation(Columns.Post.Location).
		Where(`"t"."postId" = ?`, postID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	posts := []Post{*post}
	if err := r.attachCommentCounts(ctx, posts); err != nil {
		return nil, fmt.Errorf("failed to attach comment counts: %w", err)
	}

	return &posts[0], nil
}

func (r *Repository) CreatePost(ctx context.Context, post *Post) error {
	if _, err := r.db.ModelContext(ctx, post).Insert(); err != nil {
		return wrapWriteErr(err, "failed to insert post")
	}

	return nil
}

func (r *Repository) UpdatePost(ctx context.Context, post *Post) error {
	_, err := r.db.ModelContext(ctx, post).
		Column(
			Columns.Post.Title,
			Columns.Post.Text,
			Columns.Post.PubDate,
			Columns.Post.LocationID,
			Columns.Post.CategoryID,
			Columns.Post.IsPublished,
			Columns.Post.Image,
		).
		WherePK().
		Update()
	if err != nil {
		return wrapWriteErr(err, "failed to update post")
	}

	return nil
}

// DeletePost removes the post; its comments go with it through the foreign key.
func (r *Repository) DeletePost(ctx context.Context, postID int) error {
	_, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"postId" = ?`, postID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

type commentCount struct {
	PostID int `pg:"postId"`
	Count  int `pg:"count"`
}

func (r *Repository) attachCommentCounts(ctx context.Context, posts []Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]int, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}

	var counts []commentCount
	_, err := r.db.QueryContext(ctx, &counts, `
		SELECT "postId", count(*) AS "count"
		FROM "comments"
		WHERE "postId" IN (?)
		GROUP BY "postId"`, pg.In(ids))
	if err != nil {
		return fmt.Errorf("count comments: %w", err)
	}

	byPost := make(map[int]int, len(counts))
	for _, c := range counts {
		byPost[c.PostID] = c.Count
	}

	for i := range posts {
		posts[i].CommentCount = byPost[posts[i].ID]
	}

	return nil
}
