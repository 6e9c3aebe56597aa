package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware
// and performs a fast-fail check before any service call: a zero
// identity id means the middleware never ran or the token was minted
// without a subject, and no owner-scoped query can be answered.
func ctxIdentity(c echo.Context) (id uint, role string, err error) {
	id, _ = c.Get("identity_id").(uint)
	role, _ = c.Get("role").(string)
	if id == 0 || role == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, role, nil
}

// ctxEmail returns the caller's email claim; the client portal keys all
// of its reads off it.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
