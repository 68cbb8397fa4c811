package blog

import "github.com/daniilsolovey/blogicum/internal/db"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewUser(u db.User) User {
	return User{User: u}
}

func NewCategory(c db.Category) Category {
	return Category{Category: c}
}

func NewLocation(l db.Location) Location {
	return Location{Location: l}
}

func NewPost(p db.Post) Post {
	return Post{Post: p}
}

func NewComment(c db.Comment) Comment {
	return Comment{Comment: c}
}

func NewPosts(list []db.Post) []Post {
	return Map(list, NewPost)
}

func NewComments(list []db.Comment) []Comment {
	return Map(list, NewComment)
}

func NewCategories(list []db.Category) []Category {
	return Map(list, NewCategory)
}

func NewLocations(list []db.Location) []Location {
	return Map(list, NewLocation)
}
