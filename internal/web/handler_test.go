package web

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/blogtest"
	"github.com/daniilsolovey/blogicum/internal/db"
)

type testEnv struct {
	t        *testing.T
	store    *blogtest.Store
	bm       *blog.Manager
	handler  *Handler
	e        *echo.Echo
	mediaDir string
	now      time.Time

	alice, bob     db.User
	travel, drafts db.Category
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := blogtest.NewStore()
	bm := blog.NewManager(store, time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	env := &testEnv{
		t:        t,
		store:    store,
		bm:       bm,
		mediaDir: t.TempDir(),
		now:      time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC),
		alice:    store.AddUser("alice", "alice-password"),
		bob:      store.AddUser("bob", "bob-password"),
		travel:   store.AddCategory("travel", true),
		drafts:   store.AddCategory("drafts", false),
	}

	handler, err := NewHandler(bm, logger, Options{MediaDir: env.mediaDir})
	require.NoError(t, err)
	handler.now = func() time.Time { return env.now }

	env.handler = handler
	env.e = handler.RegisterRoutes()

	return env
}

func (env *testEnv) addPost(title string, author db.User, category *db.Category, published bool, pubDate time.Time) db.Post {
	post := db.Post{
		Title:       title,
		Text:        "Text of " + title,
		AuthorID:    author.ID,
		IsPublished: published,
		PubDate:     pubDate,
	}
	if category != nil {
		post.CategoryID = &category.ID
	}
	return env.store.AddPost(post)
}

func (env *testEnv) login(username, password string) *http.Cookie {
	env.t.Helper()

	session, err := env.bm.Login(context.Background(), env.now, username, password)
	require.NoError(env.t, err)

	return &http.Cookie{Name: defaultCookieName, Value: session.ID}
}

func (env *testEnv) do(method, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	return rec
}

func (env *testEnv) get(target string, cookie *http.Cookie) *httptest.ResponseRecorder {
	return env.do(http.MethodGet, target, nil, cookie)
}

func (env *testEnv) post(target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return env.do(http.MethodPost, target, form, cookie)
}

func TestHandler_Health(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandler_Index(t *testing.T) {
	env := newTestEnv(t)
	env.addPost("Public post", env.alice, &env.travel, true, env.now.Add(-time.Hour))
	env.addPost("Draft post", env.alice, &env.travel, false, env.now.Add(-time.Hour))
	env.addPost("Future post", env.alice, &env.travel, true, env.now.Add(time.Hour))
	env.addPost("Hidden category post", env.alice, &env.drafts, true, env.now.Add(-time.Hour))

	t.Run("Anonymous", func(t *testing.T) {
		rec := env.get("/", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "Public post")
		assert.NotContains(t, body, "Draft post")
		assert.NotContains(t, body, "Future post")
		assert.NotContains(t, body, "Hidden category post")
		assert.Contains(t, body, "Log in")
	})

	t.Run("Author", func(t *testing.T) {
		rec := env.get("/", env.login("alice", "alice-password"))
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "Draft post")
		assert.Contains(t, body, "Future post")
		assert.Contains(t, body, "Hidden category post")
		assert.Contains(t, body, "Log out")
	})

	t.Run("OtherUser", func(t *testing.T) {
		rec := env.get("/", env.login("bob", "bob-password"))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Draft post")
	})
}

func TestHandler_Index_Pagination(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 25; i++ {
		env.addPost("Post", env.alice, &env.travel, true, env.now.Add(-time.Duration(i+1)*time.Minute))
	}

	tests := []struct {
		name  string
		query string
		page  string
		cards int
	}{
		{name: "NoPage", query: "", page: "Page 1 of 3", cards: 10},
		{name: "Second", query: "?page=2", page: "Page 2 of 3", cards: 10},
		{name: "Last", query: "?page=last", page: "Page 3 of 3", cards: 5},
		{name: "OutOfRange", query: "?page=99", page: "Page 3 of 3", cards: 5},
		{name: "Invalid", query: "?page=abc", page: "Page 1 of 3", cards: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.get("/"+tt.query, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			body := rec.Body.String()
			assert.Contains(t, body, tt.page)
			assert.Equal(t, tt.cards, strings.Count(body, `class="post-card"`))
		})
	}
}

func TestHandler_CategoryPosts(t *testing.T) {
	env := newTestEnv(t)
	food := env.store.AddCategory("food", true)
	env.addPost("Travel post", env.alice, &env.travel, true, env.now.Add(-time.Hour))
	env.addPost("Food post", env.alice, &food, true, env.now.Add(-time.Hour))

	rec := env.get("/category/travel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Travel post")
	assert.NotContains(t, rec.Body.String(), "Food post")

	rec = env.get("/category/drafts", env.login("alice", "alice-password"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.get("/category/missing/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_PostDetail(t *testing.T) {
	env := newTestEnv(t)
	public := env.addPost("Public post", env.alice, &env.travel, true, env.now.Add(-time.Hour))
	future := env.addPost("Future post", env.alice, &env.travel, true, env.now.Add(24*time.Hour))
	env.store.AddComment(public.ID, env.bob.ID, "Nice **trip**")

	rec := env.get(postURL(public.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<strong>trip</strong>")
	assert.Contains(t, rec.Body.String(), "Comments (1)")

	rec = env.get(postURL(future.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.get(postURL(future.ID), env.login("alice", "alice-password"))
	assert.Equal(t, http.StatusOK, rec.Code)

	env.now = env.now.Add(48 * time.Hour)
	rec = env.get(postURL(future.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, target := range []string{"/posts/9999", "/posts/abc", "/posts/-1"} {
		rec = env.get(target, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}
}

func TestHandler_MarkdownIsSanitized(t *testing.T) {
	env := newTestEnv(t)
	post := env.store.AddPost(db.Post{
		Title:       "XSS",
		Text:        "*hello*\n\n<script>alert(1)</script>",
		AuthorID:    env.alice.ID,
		CategoryID:  &env.travel.ID,
		IsPublished: true,
		PubDate:     env.now.Add(-time.Hour),
	})

	rec := env.get(postURL(post.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, rec.Body.String(), "<em>hello</em>")
}

func TestHandler_RequireLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/create", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login?next=%2Fcreate", rec.Header().Get(echo.HeaderLocation))

	rec = env.post("/posts/1/comment", url.Values{"text": {"hi"}}, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))

	rec = env.get("/profile/edit", &http.Cookie{Name: defaultCookieName, Value: "stale"})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestHandler_CreatePost(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login("alice", "alice-password")

	rec := env.get("/create", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="2024-01-14T12:00"`)
	assert.Contains(t, rec.Body.String(), ">travel</option>")
	assert.NotContains(t, rec.Body.String(), ">drafts</option>")

	t.Run("Invalid", func(t *testing.T) {
		rec := env.post("/create", url.Values{"title": {""}, "text": {"body"}, "pub_date": {"never"}}, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "This field is required.")
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		rec := env.post("/create", url.Values{
			"title": {"T"}, "text": {"body"}, "pub_date": {"2024-01-10T10:00"}, "category": {"abc"},
		}, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Select a valid choice.")
	})

	rec = env.post("/create", url.Values{
		"title":        {"Brand new"},
		"text":         {"Body"},
		"pub_date":     {"2024-01-10T10:00"},
		"category":     {strconv.Itoa(env.travel.ID)},
		"is_published": {"on"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile/alice", rec.Header().Get(echo.HeaderLocation))

	posts, err := env.store.Posts(context.Background(), db.PostFilter{Unrestricted: true}, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Brand new", posts[0].Title)
	assert.Equal(t, env.alice.ID, posts[0].AuthorID)
	assert.True(t, posts[0].IsPublished)
}

// pngHeader is enough for content sniffing to report image/png.
const pngHeader = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"

func (env *testEnv) upload(cookie *http.Cookie, filename, content string) *httptest.ResponseRecorder {
	env.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{"title": "Pictured", "text": "Body", "pub_date": "2024-01-10T10:00"} {
		require.NoError(env.t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("image", filename)
	require.NoError(env.t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(env.t, err)
	require.NoError(env.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/create", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreatePost_WithImage(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login("alice", "alice-password")

	rec := env.upload(cookie, "cover.PNG", pngHeader+"rest of the image")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	posts, err := env.store.Posts(context.Background(), db.PostFilter{Unrestricted: true}, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.NotNil(t, posts[0].Image)
	assert.True(t, strings.HasPrefix(*posts[0].Image, "posts/"))
	assert.True(t, strings.HasSuffix(*posts[0].Image, ".png"))

	stored, err := os.ReadFile(filepath.Join(env.mediaDir, filepath.FromSlash(*posts[0].Image)))
	require.NoError(t, err)
	assert.Equal(t, pngHeader+"rest of the image", string(stored))

	rec = env.get("/media/"+*posts[0].Image, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_CreatePost_RejectsNonImage(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{name: "RenamedTextFile", filename: "cover.png", content: "just some text"},
		{name: "RenamedHTML", filename: "cover.jpg", content: "<html><script>alert(1)</script></html>"},
		{name: "EmptyFile", filename: "cover.gif", content: ""},
		{name: "WrongExtension", filename: "cover.txt", content: pngHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			cookie := env.login("alice", "alice-password")

			rec := env.upload(cookie, tt.filename, tt.content)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "Upload a valid image.")

			posts, err := env.store.Posts(context.Background(), db.PostFilter{Unrestricted: true}, 10, 0)
			require.NoError(t, err)
			assert.Empty(t, posts)

			entries, err := os.ReadDir(filepath.Join(env.mediaDir, "posts"))
			if err == nil {
				assert.Empty(t, entries)
			} else {
				assert.ErrorIs(t, err, os.ErrNotExist)
			}
		})
	}
}

func TestHandler_EditAndDeletePost(t *testing.T) {
	env := newTestEnv(t)
	post := env.addPost("Original", env.alice, &env.travel, true, env.now.Add(-time.Hour))
	alice := env.login("alice", "alice-password")
	bob := env.login("bob", "bob-password")
	target := postURL(post.ID)

	form := url.Values{
		"title":        {"Edited"},
		"text":         {"New body"},
		"pub_date":     {"2024-01-10T10:00"},
		"category":     {strconv.Itoa(env.travel.ID)},
		"is_published": {"on"},
	}

	assert.Equal(t, http.StatusForbidden, env.get(target+"/edit", bob).Code)
	assert.Equal(t, http.StatusForbidden, env.post(target+"/edit", form, bob).Code)
	assert.Equal(t, http.StatusForbidden, env.get(target+"/delete", bob).Code)
	assert.Equal(t, http.StatusForbidden, env.post(target+"/delete", nil, bob).Code)
	assert.Equal(t, http.StatusNotFound, env.get("/posts/9999/edit", alice).Code)

	rec := env.get(target+"/edit", alice)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Original"`)

	rec = env.post(target+"/edit", form, alice)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, target, rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, env.get(target, nil).Body.String(), "Edited")

	rec = env.get(target+"/delete", alice)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Edited")

	rec = env.post(target+"/delete", nil, alice)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile/alice", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, http.StatusNotFound, env.get(target, alice).Code)
}

func TestHandler_Comments(t *testing.T) {
	env := newTestEnv(t)
	post := env.addPost("Commented", env.alice, &env.travel, true, env.now.Add(-time.Hour))
	alice := env.login("alice", "alice-password")
	bob := env.login("bob", "bob-password")
	target := postURL(post.ID)

	rec := env.post(target+"/comment", url.Values{"text": {""}}, bob)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "This field is required.")

	rec = env.post("/posts/9999/comment", url.Values{"text": {"hi"}}, bob)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.post(target+"/comment", url.Values{"text": {"Bob was here"}}, bob)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, target, rec.Header().Get(echo.HeaderLocation))

	comments, err := env.store.Comments(context.Background(), post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	commentURL := target + "/comments/" + strconv.Itoa(comments[0].ID)

	assert.Equal(t, http.StatusForbidden, env.get(commentURL+"/edit", alice).Code)
	assert.Equal(t, http.StatusForbidden, env.post(commentURL+"/delete", nil, alice).Code)
	assert.Equal(t, http.StatusNotFound, env.get("/posts/9999/comments/"+strconv.Itoa(comments[0].ID)+"/edit", bob).Code)

	rec = env.post(commentURL+"/edit", url.Values{"text": {"Bob edited"}}, bob)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, env.get(target, nil).Body.String(), "Bob edited")

	rec = env.get(commentURL+"/delete", bob)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.post(commentURL+"/delete", nil, bob)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, env.get(target, nil).Body.String(), "Comments (0)")
}

func TestHandler_Profile(t *testing.T) {
	env := newTestEnv(t)
	env.addPost("Public post", env.alice, &env.travel, true, env.now.Add(-time.Hour))
	env.addPost("Draft post", env.alice, &env.travel, false, env.now.Add(-time.Hour))
	alice := env.login("alice", "alice-password")

	rec := env.get("/profile/alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Public post")
	assert.NotContains(t, rec.Body.String(), "Draft post")

	rec = env.get("/profile/alice", alice)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Draft post")
	assert.Contains(t, rec.Body.String(), "Edit profile")

	assert.Equal(t, http.StatusNotFound, env.get("/profile/nobody", nil).Code)

	t.Run("Edit", func(t *testing.T) {
		rec := env.post("/profile/edit", url.Values{"username": {"bob"}}, alice)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "already exists")

		rec = env.post("/profile/edit", url.Values{
			"username":   {"alice2"},
			"first_name": {"Alice"},
			"last_name":  {"Liddell"},
		}, alice)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/profile/alice2", rec.Header().Get(echo.HeaderLocation))

		rec = env.get("/profile/alice2", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Alice Liddell")
		assert.Equal(t, http.StatusNotFound, env.get("/profile/alice", nil).Code)
	})
}

func TestHandler_Accounts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post("/auth/registration", url.Values{
		"username":  {"carol"},
		"email":     {"carol@example.com"},
		"password1": {"carol-password"},
		"password2": {"different"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "didn&#39;t match")

	rec = env.post("/auth/registration", url.Values{
		"username":  {"carol"},
		"email":     {"carol@example.com"},
		"password1": {"carol-password"},
		"password2": {"carol-password"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))

	rec = env.post("/auth/login", url.Values{"username": {"carol"}, "password": {"wrong"}}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter a correct username and password.")

	rec = env.post("/auth/login", url.Values{
		"username": {"carol"},
		"password": {"carol-password"},
		"next":     {"//evil.example.com"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	rec = env.post("/auth/login", url.Values{
		"username": {"carol"},
		"password": {"carol-password"},
		"next":     {"/create"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/create", rec.Header().Get(echo.HeaderLocation))

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == defaultCookieName {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	assert.Equal(t, http.StatusOK, env.get("/create", session).Code)

	t.Run("PasswordChange", func(t *testing.T) {
		rec := env.post("/profile/password_change", url.Values{
			"old_password":  {"nope"},
			"new_password1": {"brand-new-password"},
			"new_password2": {"brand-new-password"},
		}, session)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = env.post("/profile/password_change", url.Values{
			"old_password":  {"carol-password"},
			"new_password1": {"brand-new-password"},
			"new_password2": {"brand-new-password"},
		}, session)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("SessionExpires", func(t *testing.T) {
		saved := env.now
		env.now = env.now.Add(2 * time.Hour)
		defer func() { env.now = saved }()

		rec := env.get("/create", session)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	rec = env.post("/auth/logout", nil, session)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, http.StatusSeeOther, env.get("/create", session).Code)
}

func TestHandler_UnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/no/such/page", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not Found")
}

func TestSafeNext(t *testing.T) {
	tests := map[string]string{
		"":                    "/",
		"/posts/1":            "/posts/1",
		"//evil.example.com":  "/",
		"/\\evil.example.com": "/",
		"https://example.com": "/",
	}

	for in, want := range tests {
		assert.Equal(t, want, safeNext(in), in)
	}
}
