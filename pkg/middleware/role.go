package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityapratama/gymflow/pkg/constant"
	"github.com/adityapratama/gymflow/pkg/response"
)

// RequireRole rejects any request whose authenticated role differs from the
// required one. Must run after the JWT middleware.
func RequireRole(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := c.Get(string(constant.CtxKeyUserRole))

			if role == nil {
				return response.ErrorDetails(c, http.StatusUnauthorized, "Unauthorized access.", "missing role information")
			}

			userRole, ok := role.(string)
			if !ok || userRole != required {
				return response.ErrorDetails(c, http.StatusForbidden, "Unauthorized access.",
					"You must be a(n) "+required+" to perform this action.")
			}

			return next(c)
		}
	}
}
