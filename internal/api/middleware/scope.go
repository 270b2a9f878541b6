package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// EmailScope cross-checks the authenticated email claim against the email
// named in the route parameter, closing the "any caller who knows an email
// can operate on it" hole. Tokens carrying the admin role bypass the check.
// When auth is disabled (no claims present) the middleware passes through.
func EmailScope(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claimEmail, ok := c.Get("email").(string)
			if !ok {
				return next(c)
			}

			if role, _ := c.Get("role").(string); role == "admin" {
				return next(c)
			}

			if claimEmail != c.Param(param) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
