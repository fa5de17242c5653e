package http

import (
	"strings"

	"fooddelivery/internal/core/domain/model/identity"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const identityKey = "identity"

// BearerAuth resolves "Authorization: Bearer <token>" through auth and
// stores the identity on the echo context. Requests that skipper accepts
// pass through unauthenticated.
func BearerAuth(auth ports.AuthContext, skipper middleware.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return errs.NewUnauthenticatedError()
			}

			caller, err := auth.Resolve(c.Request().Context(), strings.TrimSpace(token))
			if err != nil {
				return err
			}

			c.Set(identityKey, caller)
			return next(c)
		}
	}
}

// PublicPaths skips authentication for health, metrics and API docs.
func PublicPaths(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == "/health" ||
		path == "/metrics" ||
		path == "/openapi.json" ||
		strings.HasPrefix(path, "/swagger/")
}

func callerIdentity(c echo.Context) (identity.Identity, error) {
	caller, ok := c.Get(identityKey).(identity.Identity)
	if !ok {
		return identity.Identity{}, errs.NewUnauthenticatedError()
	}
	return caller, nil
}
