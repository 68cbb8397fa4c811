package rpc

import (
	"time"
)

type Author struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

type Category struct {
	CategoryID  int    `json:"categoryId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

type Post struct {
	PostID       int       `json:"postId"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	PubDate      time.Time `json:"pubDate"`
	Author       Author    `json:"author"`
	Category     *Category `json:"category,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Image        *string   `json:"image,omitempty"`
	CommentCount int       `json:"commentCount"`
	Comments     Comments  `json:"comments"`
}

type PostSummary struct {
	PostID       int       `json:"postId"`
	Title        string    `json:"title"`
	PubDate      time.Time `json:"pubDate"`
	Author       Author    `json:"author"`
	Category     *Category `json:"category,omitempty"`
	Location     *string   `json:"location,omitempty"`
	CommentCount int       `json:"commentCount"`
}

type Comment struct {
	CommentID int       `json:"commentId"`
	Text      string    `json:"text"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostPage is one page of a post listing.
type PostPage struct {
	Posts      PostSummaries `json:"posts"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	Total      int           `json:"total"`
}

type CategoryPosts struct {
	Category Category `json:"category"`
	PostPage
}
