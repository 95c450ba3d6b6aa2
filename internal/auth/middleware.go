package auth

import (
	"github.com/labstack/echo/v4"

	apperrors "garage/internal/errors"
	"garage/internal/model"
	"garage/internal/repository"
)

// userContextKey is where CurrentUser stashes the resolved principal.
const userContextKey = "current_user"

// CurrentUser resolves the claims already verified by the echo-jwt middleware
// (wired with JWTService.ValidateToken as its ParseTokenFunc) into a stored
// user. It fails with 401 when the subject claim is absent or no user with
// that username exists.
func CurrentUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok || claims.Subject == "" {
				return unauthorized()
			}

			user, err := users.FindByUsername(c.Request().Context(), claims.Subject)
			if err != nil {
				return unauthorized()
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the principal stashed by CurrentUser.
func UserFromContext(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(userContextKey).(*model.User)
	return user, ok
}

// RequireRoles rejects requests whose principal's role is outside the
// allowed set.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := UserFromContext(c)
			if !ok {
				return unauthorized()
			}
			if _, ok := allowed[user.Role]; !ok {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// RequireAdmin restricts a route to ADMIN users.
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRoles(model.RoleAdmin)
}

// RequireStaff restricts a route to ADMIN or EMPLOYEE users. Today that is
// every stored role; the gate exists so future roles stay locked out.
func RequireStaff() echo.MiddlewareFunc {
	return RequireRoles(model.RoleAdmin, model.RoleEmployee)
}

func unauthorized() *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
