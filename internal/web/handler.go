package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

const (
	viewerKey = "viewer"

	defaultCookieName = "session_id"
	defaultMediaDir   = "media"
)

type Options struct {
	MediaDir   string
	CookieName string
	// Secure marks the session cookie as HTTPS only.
	Secure bool
}

type Handler struct {
	bm       *blog.Manager
	log      *slog.Logger
	renderer *Renderer
	opts     Options
	now      func() time.Time
}

func NewHandler(bm *blog.Manager, log *slog.Logger, opts Options) (*Handler, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	if opts.CookieName == "" {
		opts.CookieName = defaultCookieName
	}
	if opts.MediaDir == "" {
		opts.MediaDir = defaultMediaDir
	}

	return &Handler{
		bm:       bm,
		log:      log,
		renderer: renderer,
		opts:     opts,
		now:      time.Now,
	}, nil
}

// viewData is the single template context shared by all pages.
type viewData struct {
	Viewer *blog.User

	Posts    blog.Page[blog.Post]
	Post     *blog.Post
	Comments []blog.Comment
	Comment  *blog.Comment
	Category *blog.Category
	Profile  *blog.User

	Categories []blog.Category
	Locations  []blog.Location

	PostForm     blog.PostForm
	CommentForm  blog.CommentForm
	ProfileForm  blog.ProfileForm
	RegisterForm blog.RegisterForm
	Username     string
	Next         string
	Errors       map[string]string

	Status  int
	Message string
}

func (h *Handler) render(c echo.Context, status int, name string, data viewData) error {
	data.Viewer = viewerFrom(c)
	return c.Render(status, name, data)
}

func (h *Handler) renderError(c echo.Context, status int, message string) error {
	return h.render(c, status, "error", viewData{Status: status, Message: message})
}

// handleError maps manager errors to responses. Validation errors are handled
// by the form handlers themselves.
func (h *Handler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, blog.ErrNotFound):
		return h.renderError(c, http.StatusNotFound, "Page not found.")
	case errors.Is(err, blog.ErrForbidden):
		return h.renderError(c, http.StatusForbidden, "You are not allowed to do this.")
	case errors.Is(err, blog.ErrUnauthenticated):
		return redirectToLogin(c)
	}

	h.log.Error("handleError", "error", err, "method", c.Request().Method, "path", c.Request().URL.Path)
	return h.renderError(c, http.StatusInternalServerError, "Internal server error.")
}

// httpErrorHandler renders errors raised by echo itself, such as unknown routes.
func (h *Handler) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
	} else {
		h.log.Error("unhandled error", "error", err, "path", c.Request().URL.Path)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = h.renderError(c, status, http.StatusText(status))
	}
	if err != nil {
		h.log.Error("failed to render error page", "error", err)
	}
}

func validationError(err error) (*blog.ValidationError, bool) {
	var vErr *blog.ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

func viewerFrom(c echo.Context) *blog.User {
	viewer, _ := c.Get(viewerKey).(*blog.User)
	return viewer
}

func redirectToLogin(c echo.Context) error {
	target := "/auth/login"
	if req := c.Request(); req.Method == http.MethodGet {
		target += "?next=" + url.QueryEscape(req.URL.RequestURI())
	}

	return c.Redirect(http.StatusSeeOther, target)
}

// safeNext keeps redirects after login on this site.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

type listQuery struct {
	Page string
}

func (h *Handler) pageParam(c echo.Context) int {
	var q listQuery
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &q); err != nil {
		return 1
	}

	return blog.ParsePage(q.Page)
}

// idParam reads a positive integer path parameter. Malformed ids never match
// a row, so they are reported as missing.
func idParam(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, blog.ErrNotFound
	}

	return id, nil
}

func profileURL(username string) string {
	return "/profile/" + url.PathEscape(username)
}

func postURL(id int) string {
	return "/posts/" + strconv.Itoa(id)
}
