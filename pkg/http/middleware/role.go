package httpmiddleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/profile"
)

// RequireRole rejects authenticated requests whose role is outside the
// allowed set. An empty set means any authenticated profile passes. The
// identity question was already settled by the profile provider, so the only
// failure here is 403.
func RequireRole(roles ...profile.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			userProfile, err := profile.UseProfile(ctx)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"code": "UNAUTHORIZED", "error": err.Error()})
			}

			if len(roles) == 0 {
				return next(c)
			}

			for _, role := range roles {
				if userProfile.Role == role {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, echo.Map{"code": "FORBIDDEN", "error": model.ErrForbidden.Error()})
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(profile.Admin)
}

func RequireGuideOrAdmin() echo.MiddlewareFunc {
	return RequireRole(profile.Guide, profile.Admin)
}
