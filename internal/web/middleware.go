package web

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		req := c.Request()
		h.log.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}

// viewerMiddleware resolves the session cookie into the request viewer.
// Stale cookies are cleared and the request continues anonymously.
func (h *Handler) viewerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(h.opts.CookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		viewer, err := h.bm.Viewer(c.Request().Context(), h.now(), cookie.Value)
		if err != nil {
			return h.handleError(c, err)
		}

		if viewer == nil {
			h.clearSessionCookie(c)
		} else {
			c.Set(viewerKey, viewer)
		}

		return next(c)
	}
}

// requireLogin sends anonymous viewers to the login page.
func (h *Handler) requireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if viewerFrom(c) == nil {
			return redirectToLogin(c)
		}

		return next(c)
	}
}

func (h *Handler) setSessionCookie(c echo.Context, id string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     h.opts.CookieName,
		Value:    id,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.opts.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
