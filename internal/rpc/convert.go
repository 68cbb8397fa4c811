package rpc

import (
	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/db"
)

func NewAuthor(u *db.User) Author {
	if u == nil {
		return Author{}
	}

	user := blog.NewUser(*u)
	return Author{
		Username: user.Username,
		FullName: user.FullName(),
	}
}

func NewCategory(c blog.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Title:       c.Title,
		Description: c.Description,
		Slug:        c.Slug,
	}
}

func newPostCategory(c *db.Category) *Category {
	if c == nil || !c.IsPublished {
		return nil
	}

	category := NewCategory(blog.NewCategory(*c))
	return &category
}

func newPostLocation(l *db.Location) *string {
	if l == nil || !l.IsPublished {
		return nil
	}

	return &l.Name
}

func NewPost(p blog.Post, comments []blog.Comment) Post {
	return Post{
		PostID:       p.ID,
		Title:        p.Title,
		Text:         p.Text,
		PubDate:      p.PubDate,
		Author:       NewAuthor(p.Author),
		Category:     newPostCategory(p.Category),
		Location:     newPostLocation(p.Location),
		Image:        p.Image,
		CommentCount: len(comments),
		Comments:     NewComments(comments),
	}
}

func NewPostSummary(p blog.Post) PostSummary {
	return PostSummary{
		PostID:       p.ID,
		Title:        p.Title,
		PubDate:      p.PubDate,
		Author:       NewAuthor(p.Author),
		Category:     newPostCategory(p.Category),
		Location:     newPostLocation(p.Location),
		CommentCount: p.CommentCount,
	}
}

func NewComment(c blog.Comment) Comment {
	return Comment{
		CommentID: c.ID,
		Text:      c.Text,
		Author:    NewAuthor(c.Author),
		CreatedAt: c.CreatedAt,
	}
}

func NewPostPage(p blog.Page[blog.Post]) PostPage {
	return PostPage{
		Posts:      NewPostSummaries(p.Items),
		Page:       p.Number,
		TotalPages: p.TotalPages,
		Total:      p.Total,
	}
}
