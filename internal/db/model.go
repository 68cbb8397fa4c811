// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	User struct {
		ID, Username, FirstName, LastName, Email, PasswordHash, JoinedAt string
	}
	Session struct {
		ID, UserID, CreatedAt, ExpiresAt string

		User string
	}
	Category struct {
		ID, Title, Description, Slug, IsPublished, CreatedAt string
	}
	Location struct {
		ID, Name, IsPublished, CreatedAt string
	}
	Post struct {
		ID, Title, Text, PubDate, AuthorID, LocationID, CategoryID, IsPublished, Image, CreatedAt string

		Author, Location, Category string
	}
	Comment struct {
		ID, Text, PostID, AuthorID, CreatedAt string

		Post, Author string
	}
}{
	User: struct {
		ID, Username, FirstName, LastName, Email, PasswordHash, JoinedAt string
	}{
		ID:           "userId",
		Username:     "username",
		FirstName:    "firstName",
		LastName:     "lastName",
		Email:        "email",
		PasswordHash: "passwordHash",
		JoinedAt:     "joinedAt",
	},
	Session: struct {
		ID, UserID, CreatedAt, ExpiresAt string

		User string
	}{
		ID:        "sessionId",
		UserID:    "userId",
		CreatedAt: "createdAt",
		ExpiresAt: "expiresAt",

		User: "User",
	},
	Category: struct {
		ID, Title, Description, Slug, IsPublished, CreatedAt string
	}{
		ID:          "categoryId",
		Title:       "title",
		Description: "description",
		Slug:        "slug",
		IsPublished: "isPublished",
		CreatedAt:   "createdAt",
	},
	Location: struct {
		ID, Name, IsPublished, CreatedAt string
	}{
		ID:          "locationId",
		Name:        "name",
		IsPublished: "isPublished",
		CreatedAt:   "createdAt",
	},
	Post: struct {
		ID, Title, Text, PubDate, AuthorID, LocationID, CategoryID, IsPublished, Image, CreatedAt string

		Author, Location, Category string
	}{
		ID:          "postId",
		Title:       "title",
		Text:        "text",
		PubDate:     "pubDate",
		AuthorID:    "authorId",
		LocationID:  "locationId",
		CategoryID:  "categoryId",
		IsPublished: "isPublished",
		Image:       "image",
		CreatedAt:   "createdAt",

		Author:   "Author",
		Location: "Location",
		Category: "Category",
	},
	Comment: struct {
		ID, Text, PostID, AuthorID, CreatedAt string

		Post, Author string
	}{
		ID:        "commentId",
		Text:      "text",
		PostID:    "postId",
		AuthorID:  "authorId",
		CreatedAt: "createdAt",

		Post:   "Post",
		Author: "Author",
	},
}

var Tables = struct {
	User struct {
		Name, Alias string
	}
	Session struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	Location struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
}{
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
	Session: struct {
		Name, Alias string
	}{
		Name:  "sessions",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Location: struct {
		Name, Alias string
	}{
		Name:  "locations",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int       `pg:"userId,pk"`
	Username     string    `pg:"username,use_zero"`
	FirstName    string    `pg:"firstName,use_zero"`
	LastName     string    `pg:"lastName,use_zero"`
	Email        string    `pg:"email,use_zero"`
	PasswordHash string    `pg:"passwordHash,use_zero"`
	JoinedAt     time.Time `pg:"joinedAt,use_zero"`
}

type Session struct {
	tableName struct{} `pg:"sessions,alias:t,discard_unknown_columns"`

	ID        string    `pg:"sessionId,pk"`
	UserID    int       `pg:"userId,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
	ExpiresAt time.Time `pg:"expiresAt,use_zero"`

	User *User `pg:"fk:userId,rel:has-one"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int       `pg:"categoryId,pk"`
	Title       string    `pg:"title,use_zero"`
	Description string    `pg:"description,use_zero"`
	Slug        string    `pg:"slug,use_zero"`
	IsPublished bool      `pg:"isPublished,use_zero"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
}

type Location struct {
	tableName struct{} `pg:"locations,alias:t,discard_unknown_columns"`

	ID          int       `pg:"locationId,pk"`
	Name        string    `pg:"name,use_zero"`
	IsPublished bool      `pg:"isPublished,use_zero"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID          int       `pg:"postId,pk"`
	Title       string    `pg:"title,use_zero"`
	Text        string    `pg:"text,use_zero"`
	PubDate     time.Time `pg:"pubDate,use_zero"`
	AuthorID    int       `pg:"authorId,use_zero"`
	LocationID  *int      `pg:"locationId"`
	CategoryID  *int      `pg:"categoryId"`
	IsPublished bool      `pg:"isPublished,use_zero"`
	Image       *string   `pg:"image"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`

	Author   *User     `pg:"fk:authorId,rel:has-one"`
	Location *Location `pg:"fk:locationId,rel:has-one"`
	Category *Category `pg:"fk:categoryId,rel:has-one"`

	CommentCount int `pg:"-"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int       `pg:"commentId,pk"`
	Text      string    `pg:"text,use_zero"`
	PostID    int       `pg:"postId,use_zero"`
	AuthorID  int       `pg:"authorId,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`

	Post   *Post `pg:"fk:postId,rel:has-one"`
	Author *User `pg:"fk:authorId,rel:has-one"`
}
