package blog

import (
	"github.com/daniilsolovey/blogicum/internal/db"
)

type User struct {
	db.User
}

type Category struct {
	db.Category
}

type Location struct {
	db.Location
}

type Post struct {
	db.Post
}

type Comment struct {
	db.Comment
}

// FullName joins first and last name, falling back to the username.
func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}

	return u.Username
}

// Session is an authenticated browser session.
type Session struct {
	db.Session
}
