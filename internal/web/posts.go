package web

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

const pubDateInputLayout = "2006-01-02T15:04"

// Index handles GET /
func (h *Handler) Index(c echo.Context) error {
	page, err := h.bm.Index(c.Request().Context(), viewerFrom(c), h.now(), h.pageParam(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, "index", viewData{Posts: page})
}

// CategoryPosts handles GET /category/:slug
func (h *Handler) CategoryPosts(c echo.Context) error {
	category, page, err := h.bm.CategoryPosts(c.Request().Context(), viewerFrom(c), h.now(), c.Param("slug"), h.pageParam(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, "category", viewData{Category: category, Posts: page})
}

// PostDetail handles GET /posts/:id
func (h *Handler) PostDetail(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	return h.renderDetail(c, http.StatusOK, id, blog.CommentForm{}, nil)
}

func (h *Handler) renderDetail(c echo.Context, status, id int, form blog.CommentForm, errs map[string]string) error {
	post, comments, err := h.bm.Post(c.Request().Context(), viewerFrom(c), h.now(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, status, "detail", viewData{
		Post:        post,
		Comments:    comments,
		CommentForm: form,
		Errors:      errs,
	})
}

// CreatePostForm handles GET /create
func (h *Handler) CreatePostForm(c echo.Context) error {
	form := blog.PostForm{
		PubDate:     h.now().UTC().Format(pubDateInputLayout),
		IsPublished: true,
	}

	return h.renderPostForm(c, http.StatusOK, nil, form, nil)
}

// CreatePost handles POST /create
func (h *Handler) CreatePost(c echo.Context) error {
	viewer := viewerFrom(c)
	form, err := h.postForm(c)
	if err != nil {
		return h.postFormFailed(c, nil, form, err)
	}

	if _, err := h.bm.CreatePost(c.Request().Context(), viewer, h.now(), form); err != nil {
		h.discardImage(form.Image)
		return h.postFormFailed(c, nil, form, err)
	}

	return c.Redirect(http.StatusSeeOther, profileURL(viewer.Username))
}

// EditPostForm handles GET /posts/:id/edit
func (h *Handler) EditPostForm(c echo.Context) error {
	post, err := h.editablePost(c)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.renderPostForm(c, http.StatusOK, post, blog.PostFormFrom(*post), nil)
}

// EditPost handles POST /posts/:id/edit
func (h *Handler) EditPost(c echo.Context) error {
	post, err := h.editablePost(c)
	if err != nil {
		return h.handleError(c, err)
	}

	form, err := h.postForm(c)
	if err != nil {
		return h.postFormFailed(c, post, form, err)
	}

	previous := post.Image
	if _, err := h.bm.UpdatePost(c.Request().Context(), viewerFrom(c), post.ID, form); err != nil {
		h.discardImage(form.Image)
		return h.postFormFailed(c, post, form, err)
	}
	if form.Image != nil || form.ClearImage {
		h.discardImage(previous)
	}

	return c.Redirect(http.StatusSeeOther, postURL(post.ID))
}

// DeletePostForm handles GET /posts/:id/delete
func (h *Handler) DeletePostForm(c echo.Context) error {
	post, err := h.editablePost(c)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, "delete", viewData{Post: post})
}

// DeletePost handles POST /posts/:id/delete
func (h *Handler) DeletePost(c echo.Context) error {
	viewer := viewerFrom(c)
	post, err := h.editablePost(c)
	if err != nil {
		return h.handleError(c, err)
	}

	if err := h.bm.DeletePost(c.Request().Context(), viewer, post.ID); err != nil {
		return h.handleError(c, err)
	}
	h.discardImage(post.Image)

	return c.Redirect(http.StatusSeeOther, profileURL(viewer.Username))
}

func (h *Handler) editablePost(c echo.Context) (*blog.Post, error) {
	id, err := idParam(c, "id")
	if err != nil {
		return nil, err
	}

	return h.bm.EditablePost(c.Request().Context(), viewerFrom(c), id)
}

func (h *Handler) postFormFailed(c echo.Context, post *blog.Post, form blog.PostForm, err error) error {
	vErr, ok := validationError(err)
	if !ok {
		return h.handleError(c, err)
	}

	return h.renderPostForm(c, http.StatusBadRequest, post, form, vErr.Fields)
}

// renderPostForm shows the create form, or the edit form when post is set.
func (h *Handler) renderPostForm(c echo.Context, status int, post *blog.Post, form blog.PostForm, errs map[string]string) error {
	categories, locations, err := h.choices(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, status, "create", viewData{
		Post:       post,
		PostForm:   form,
		Categories: categories,
		Locations:  locations,
		Errors:     errs,
	})
}

func (h *Handler) choices(ctx context.Context) ([]blog.Category, []blog.Location, error) {
	categories, err := h.bm.Categories(ctx)
	if err != nil {
		return nil, nil, err
	}

	locations, err := h.bm.Locations(ctx)
	if err != nil {
		return nil, nil, err
	}

	return categories, locations, nil
}
