package rpc

import "github.com/daniilsolovey/blogicum/internal/blog"

type PostSummaries []PostSummary

type Comments []Comment

type Categories []Category

func NewPostSummaries(in []blog.Post) PostSummaries {
	return blog.Map(in, NewPostSummary)
}

func NewComments(in []blog.Comment) Comments {
	return blog.Map(in, NewComment)
}

func NewCategories(in []blog.Category) Categories {
	return blog.Map(in, NewCategory)
}

// IDs returns the post ids in listing order.
func (ll PostSummaries) IDs() []int {
	ids := make([]int, len(ll))
	for i := range ll {
		ids[i] = ll[i].PostID
	}
	return ids
}
