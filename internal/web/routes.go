package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes builds the site router.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = h.renderer
	e.HTTPErrorHandler = h.httpErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(h.loggingMiddleware)
	e.Use(middleware.Recover())
	e.Use(h.viewerMiddleware)

	e.GET("/health", h.Health)
	e.StaticFS("/static", echo.MustSubFS(staticFS, "static"))
	e.Static("/media", h.opts.MediaDir)

	e.GET("/", h.Index)
	e.GET("/category/:slug", h.CategoryPosts)

	e.GET("/create", h.CreatePostForm, h.requireLogin)
	e.POST("/create", h.CreatePost, h.requireLogin)

	e.GET("/posts/:id", h.PostDetail)
	e.GET("/posts/:id/edit", h.EditPostForm, h.requireLogin)
	e.POST("/posts/:id/edit", h.EditPost, h.requireLogin)
	e.GET("/posts/:id/delete", h.DeletePostForm, h.requireLogin)
	e.POST("/posts/:id/delete", h.DeletePost, h.requireLogin)

	e.POST("/posts/:id/comment", h.AddComment, h.requireLogin)
	e.GET("/posts/:id/comments/:cid/edit", h.EditCommentForm, h.requireLogin)
	e.POST("/posts/:id/comments/:cid/edit", h.EditComment, h.requireLogin)
	e.GET("/posts/:id/comments/:cid/delete", h.DeleteCommentForm, h.requireLogin)
	e.POST("/posts/:id/comments/:cid/delete", h.DeleteComment, h.requireLogin)

	e.GET("/profile/edit", h.EditProfileForm, h.requireLogin)
	e.POST("/profile/edit", h.EditProfile, h.requireLogin)
	e.GET("/profile/password_change", h.PasswordChangeForm, h.requireLogin)
	e.POST("/profile/password_change", h.PasswordChange, h.requireLogin)
	e.GET("/profile/:username", h.Profile)

	e.GET("/auth/registration", h.RegistrationForm)
	e.POST("/auth/registration", h.Register)
	e.GET("/auth/login", h.LoginForm)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout)

	return e
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
