package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// Comments returns the comments of a post, oldest first, with authors loaded.
func (r *Repository) Comments(ctx context.Context, postID int) ([]Comment, error) {
	var comments []Comment
	err := r.db.ModelContext(ctx, &comments).
		Relation(Columns.Comment.Author).
		Where(`"t"."postId" = ?`, postID).
		OrderExpr(`"t"."createdAt" ASC`).
		OrderExpr(`"t"."commentId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

func (r *Repository) CommentByID(ctx context.Context, commentID int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Relation(Columns.Comment.Author).
		Where(`"t"."commentId" = ?`, commentID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment *Comment) error {
	if _, err := r.db.ModelContext(ctx, comment).Insert(); err != nil {
		return wrapWriteErr(err, "failed to insert comment")
	}

	return nil
}

func (r *Repository) UpdateComment(ctx context.Context, comment *Comment) error {
	_, err := r.db.ModelContext(ctx, comment).
		Column(Columns.Comment.Text).
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	return nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID int) error {
	_, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"commentId" = ?`, commentID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}
