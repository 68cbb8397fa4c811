package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

// Profile handles GET /profile/:username
func (h *Handler) Profile(c echo.Context) error {
	profile, page, err := h.bm.Profile(c.Request().Context(), viewerFrom(c), h.now(), c.Param("username"), h.pageParam(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, "profile", viewData{Profile: profile, Posts: page})
}

// EditProfileForm handles GET /profile/edit
func (h *Handler) EditProfileForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "user", viewData{ProfileForm: blog.ProfileFormFrom(*viewerFrom(c))})
}

// EditProfile handles POST /profile/edit
func (h *Handler) EditProfile(c echo.Context) error {
	var form blog.ProfileForm
	if err := c.Bind(&form); err != nil {
		return h.renderError(c, http.StatusBadRequest, "Invalid form.")
	}

	user, err := h.bm.UpdateProfile(c.Request().Context(), viewerFrom(c), form)
	if vErr, ok := validationError(err); ok {
		return h.render(c, http.StatusBadRequest, "user", viewData{ProfileForm: form, Errors: vErr.Fields})
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, profileURL(user.Username))
}

// PasswordChangeForm handles GET /profile/password_change
func (h *Handler) PasswordChangeForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "password_change", viewData{})
}

// PasswordChange handles POST /profile/password_change
func (h *Handler) PasswordChange(c echo.Context) error {
	var form blog.PasswordChangeForm
	if err := c.Bind(&form); err != nil {
		return h.renderError(c, http.StatusBadRequest, "Invalid form.")
	}

	err := h.bm.ChangePassword(c.Request().Context(), viewerFrom(c), form)
	if vErr, ok := validationError(err); ok {
		return h.render(c, http.StatusBadRequest, "password_change", viewData{Errors: vErr.Fields})
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}
