package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

// RegistrationForm handles GET /auth/registration
func (h *Handler) RegistrationForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "registration", viewData{})
}

// Register handles POST /auth/registration
func (h *Handler) Register(c echo.Context) error {
	var form blog.RegisterForm
	if err := c.Bind(&form); err != nil {
		return h.renderError(c, http.StatusBadRequest, "Invalid form.")
	}

	_, err := h.bm.Register(c.Request().Context(), h.now(), form)
	if vErr, ok := validationError(err); ok {
		form.Password, form.PasswordConfirm = "", ""
		return h.render(c, http.StatusBadRequest, "registration", viewData{RegisterForm: form, Errors: vErr.Fields})
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/auth/login")
}

// LoginForm handles GET /auth/login
func (h *Handler) LoginForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "login", viewData{Next: safeNext(c.QueryParam("next"))})
}

// Login handles POST /auth/login
func (h *Handler) Login(c echo.Context) error {
	username := c.FormValue("username")
	next := safeNext(c.FormValue("next"))

	session, err := h.bm.Login(c.Request().Context(), h.now(), username, c.FormValue("password"))
	if errors.Is(err, blog.ErrBadCredentials) {
		return h.render(c, http.StatusBadRequest, "login", viewData{
			Username: username,
			Next:     next,
			Errors: map[string]string{
				blog.NonFieldErrors: "Please enter a correct username and password.",
			},
		})
	} else if err != nil {
		return h.handleError(c, err)
	}

	h.setSessionCookie(c, session.ID, session.ExpiresAt)
	return c.Redirect(http.StatusSeeOther, next)
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.opts.CookieName); err == nil && cookie.Value != "" {
		if err := h.bm.Logout(c.Request().Context(), cookie.Value); err != nil {
			return h.handleError(c, err)
		}
	}

	h.clearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
