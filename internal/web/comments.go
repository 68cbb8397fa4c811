package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

// AddComment handles POST /posts/:id/comment
func (h *Handler) AddComment(c echo.Context) error {
	postID, err := idParam(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	var form blog.CommentForm
	if err := c.Bind(&form); err != nil {
		return h.renderError(c, http.StatusBadRequest, "Invalid form.")
	}

	_, err = h.bm.AddComment(c.Request().Context(), viewerFrom(c), h.now(), postID, form)
	if vErr, ok := validationError(err); ok {
		return h.renderDetail(c, http.StatusBadRequest, postID, form, vErr.Fields)
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, postURL(postID))
}

// EditCommentForm handles GET /posts/:id/comments/:cid/edit
func (h *Handler) EditCommentForm(c echo.Context) error {
	comment, err := h.editableComment(c)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, "comment", viewData{
		Comment:     comment,
		CommentForm: blog.CommentForm{Text: comment.Text},
	})
}

// EditComment handles POST /posts/:id/comments/:cid/edit
func (h *Handler) EditComment(c echo.Context) error {
	comment, err := h.editableComment(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var form blog.CommentForm
	if err := c.Bind(&form); err != nil {
		return h.renderError(c, http.StatusBadRequest, "Invalid form.")
	}

	_, err = h.bm.UpdateComment(c.Request().Context(), viewerFrom(c), comment.PostID, comment.ID, form)
	if vErr, ok := validationError(err); ok {
		return h.render(c, http.StatusBadRequest, "comment", viewData{
			Comment:     comment,
			CommentForm: form,
			Errors:      vErr.Fields,
		})
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, postURL(comment.PostID))
}

// DeleteCommentForm handles GET /posts/:id/comments/:cid/delete
func (h *Handler) DeleteCommentForm(c echo.Context) error {
	comment, err := h.editableComment(c)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, "comment_delete", viewData{Comment: comment})
}

// DeleteComment handles POST /posts/:id/comments/:cid/delete
func (h *Handler) DeleteComment(c echo.Context) error {
	comment, err := h.editableComment(c)
	if err != nil {
		return h.handleError(c, err)
	}

	if err := h.bm.DeleteComment(c.Request().Context(), viewerFrom(c), comment.PostID, comment.ID); err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, postURL(comment.PostID))
}

func (h *Handler) editableComment(c echo.Context) (*blog.Comment, error) {
	postID, err := idParam(c, "id")
	if err != nil {
		return nil, err
	}

	commentID, err := idParam(c, "cid")
	if err != nil {
		return nil, err
	}

	return h.bm.EditableComment(c.Request().Context(), viewerFrom(c), postID, commentID)
}
