// Package blogtest provides an in-memory store with the semantics of the
// Postgres repository, for tests of the layers above it.
package blogtest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/daniilsolovey/blogicum/internal/db"
)

type Store struct {
	mu sync.Mutex

	seq        int
	users      map[int]db.User
	sessions   map[string]db.Session
	categories map[int]db.Category
	locations  map[int]db.Location
	posts      map[int]db.Post
	comments   map[int]db.Comment
}

func NewStore() *Store {
	return &Store{
		users:      make(map[int]db.User),
		sessions:   make(map[string]db.Session),
		categories: make(map[int]db.Category),
		locations:  make(map[int]db.Location),
		posts:      make(map[int]db.Post),
		comments:   make(map[int]db.Comment),
	}
}

func (s *Store) nextID() int {
	s.seq++
	return s.seq
}

// AddUser stores a user whose password is password, hashed at minimal cost.
func (s *Store) AddUser(username, password string) db.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	user := db.User{Username: username, PasswordHash: string(hash)}
	if err := s.CreateUser(context.Background(), &user); err != nil {
		panic(err)
	}

	return user
}

func (s *Store) AddCategory(slug string, published bool) db.Category {
	category := db.Category{Title: slug, Slug: slug, IsPublished: published}
	if err := s.CreateCategory(context.Background(), &category); err != nil {
		panic(err)
	}

	return category
}

// AddPost stores post as is and returns it with its id set.
func (s *Store) AddPost(post db.Post) db.Post {
	if err := s.CreatePost(context.Background(), &post); err != nil {
		panic(err)
	}

	return post
}

func (s *Store) AddComment(postID, authorID int, text string) db.Comment {
	comment := db.Comment{PostID: postID, AuthorID: authorID, Text: text}
	if err := s.CreateComment(context.Background(), &comment); err != nil {
		panic(err)
	}

	return comment
}

// loadPost fills relations the way the repository joins them. Callers hold mu.
func (s *Store) loadPost(p db.Post) db.Post {
	if u, ok := s.users[p.AuthorID]; ok {
		p.Author = &u
	}

	p.Category = nil
	if p.CategoryID != nil {
		if c, ok := s.categories[*p.CategoryID]; ok {
			p.Category = &c
		}
	}

	p.Location = nil
	if p.LocationID != nil {
		if l, ok := s.locations[*p.LocationID]; ok {
			p.Location = &l
		}
	}

	p.CommentCount = 0
	for _, c := range s.comments {
		if c.PostID == p.ID {
			p.CommentCount++
		}
	}

	return p
}

func (s *Store) matching(filter db.PostFilter) []db.Post {
	var posts []db.Post
	for _, p := range s.posts {
		p = s.loadPost(p)
		if filter.Match(&p) {
			posts = append(posts, p)
		}
	}

	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].PubDate.Equal(posts[j].PubDate) {
			return posts[i].PubDate.After(posts[j].PubDate)
		}
		return posts[i].ID < posts[j].ID
	})

	return posts
}

func (s *Store) Posts(_ context.Context, filter db.PostFilter, limit, offset int) ([]db.Post, error) {
	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf("limit must be greater than 0 and offset not negative: limit=%d, offset=%d", limit, offset)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.matching(filter)
	start := min(offset, len(posts))
	end := min(start+limit, len(posts))

	return posts[start:end], nil
}

func (s *Store) PostsCount(_ context.Context, filter db.PostFilter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.matching(filter)), nil
}

func (s *Store) PostByID(_ context.Context, postID int) (*db.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return nil, nil
	}

	p = s.loadPost(p)
	return &p, nil
}

func (s *Store) CreatePost(_ context.Context, post *db.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[post.AuthorID]; !ok {
		return fmt.Errorf("failed to insert post: unknown author %d", post.AuthorID)
	}

	post.ID = s.nextID()
	s.posts[post.ID] = stripPost(*post)

	return nil
}

func (s *Store) UpdatePost(_ context.Context, post *db.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.posts[post.ID]
	if !ok {
		return nil
	}

	updated := stripPost(*post)
	updated.AuthorID, updated.CreatedAt = old.AuthorID, old.CreatedAt
	s.posts[post.ID] = updated

	return nil
}

func (s *Store) DeletePost(_ context.Context, postID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.posts, postID)
	for id, c := range s.comments {
		if c.PostID == postID {
			delete(s.comments, id)
		}
	}

	return nil
}

func stripPost(p db.Post) db.Post {
	p.Author, p.Category, p.Location = nil, nil, nil
	p.CommentCount = 0
	return p
}

func (s *Store) Comments(_ context.Context, postID int) ([]db.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var comments []db.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			comments = append(comments, s.loadComment(c))
		}
	}

	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})

	return comments, nil
}

func (s *Store) loadComment(c db.Comment) db.Comment {
	if u, ok := s.users[c.AuthorID]; ok {
		c.Author = &u
	}
	c.Post = nil
	return c
}

func (s *Store) CommentByID(_ context.Context, commentID int) (*db.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentID]
	if !ok {
		return nil, nil
	}

	c = s.loadComment(c)
	return &c, nil
}

func (s *Store) CreateComment(_ context.Context, comment *db.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[comment.PostID]; !ok {
		return fmt.Errorf("failed to insert comment: unknown post %d", comment.PostID)
	}

	comment.ID = s.nextID()
	stored := *comment
	stored.Author, stored.Post = nil, nil
	s.comments[comment.ID] = stored

	return nil
}

func (s *Store) UpdateComment(_ context.Context, comment *db.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.comments[comment.ID]; ok {
		c.Text = comment.Text
		s.comments[comment.ID] = c
	}

	return nil
}

func (s *Store) DeleteComment(_ context.Context, commentID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.comments, commentID)
	return nil
}

func (s *Store) UserByID(_ context.Context, userID int) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[userID]; ok {
		return &u, nil
	}

	return nil, nil
}

func (s *Store) UserByUsername(_ context.Context, username string) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}

	return nil, nil
}

func (s *Store) usernameTaken(username string, exceptID int) bool {
	for _, u := range s.users {
		if u.Username == username && u.ID != exceptID {
			return true
		}
	}
	return false
}

func (s *Store) CreateUser(_ context.Context, user *db.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usernameTaken(user.Username, 0) {
		return fmt.Errorf("failed to insert user: %w", db.ErrDuplicate)
	}

	user.ID = s.nextID()
	s.users[user.ID] = *user

	return nil
}

func (s *Store) UpdateUser(_ context.Context, user *db.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.users[user.ID]
	if !ok {
		return nil
	}

	if s.usernameTaken(user.Username, user.ID) {
		return fmt.Errorf("failed to update user: %w", db.ErrDuplicate)
	}

	updated := *user
	updated.JoinedAt = old.JoinedAt
	s.users[user.ID] = updated

	return nil
}

func (s *Store) CreateSession(_ context.Context, session *db.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return fmt.Errorf("failed to insert session: %w", db.ErrDuplicate)
	}

	stored := *session
	stored.User = nil
	s.sessions[session.ID] = stored

	return nil
}

func (s *Store) SessionByID(_ context.Context, sessionID string) (*db.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}

	if u, ok := s.users[session.UserID]; ok {
		session.User = &u
	}

	return &session, nil
}

func (s *Store) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

// ExpireSessions moves every session's expiry to at.
func (s *Store) ExpireSessions(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		session.ExpiresAt = at
		s.sessions[id] = session
	}
}

func (s *Store) CategoryByID(_ context.Context, categoryID int) (*db.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.categories[categoryID]; ok {
		return &c, nil
	}

	return nil, nil
}

func (s *Store) CategoryBySlug(_ context.Context, slug string, publishedOnly bool) (*db.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Slug == slug && (c.IsPublished || !publishedOnly) {
			return &c, nil
		}
	}

	return nil, nil
}

func (s *Store) Categories(_ context.Context, publishedOnly bool) ([]db.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []db.Category
	for _, c := range s.categories {
		if c.IsPublished || !publishedOnly {
			list = append(list, c)
		}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Title < list[j].Title })
	return list, nil
}

func (s *Store) CreateCategory(_ context.Context, category *db.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Slug == category.Slug {
			return fmt.Errorf("failed to insert category: %w", db.ErrDuplicate)
		}
	}

	category.ID = s.nextID()
	s.categories[category.ID] = *category

	return nil
}

func (s *Store) SetCategoryPublished(_ context.Context, slug string, published bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, c := range s.categories {
		if c.Slug == slug {
			c.IsPublished = published
			s.categories[id] = c
			return true, nil
		}
	}

	return false, nil
}

func (s *Store) LocationByID(_ context.Context, locationID int) (*db.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.locations[locationID]; ok {
		return &l, nil
	}

	return nil, nil
}

func (s *Store) Locations(_ context.Context, publishedOnly bool) ([]db.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []db.Location
	for _, l := range s.locations {
		if l.IsPublished || !publishedOnly {
			list = append(list, l)
		}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *Store) CreateLocation(_ context.Context, location *db.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	location.ID = s.nextID()
	s.locations[location.ID] = *location

	return nil
}
