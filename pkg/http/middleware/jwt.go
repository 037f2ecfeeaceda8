package httpmiddleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/profile"
	"github.com/virtualpalace/palace-tour-service/pkg/session"
)

// AccessTokenDecoder verifies an access token string and returns its claims.
type AccessTokenDecoder interface {
	DecodeAccessToken(ctx context.Context, token string) (profile.AccessToken, error)
}

// NewProfileProvider reads the access token cookie, verifies it and injects
// the authenticated profile into the request context. Routes listed in
// skipMethodURLs (as "METHOD /path") bypass the guard; a skip entry also
// covers its sub-paths, so "GET /tours" skips "GET /tours/:id" while
// "POST /tours" still authenticates.
func NewProfileProvider(decoder AccessTokenDecoder, sessionStore *session.Store, skipMethodURLs ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()

			for _, skipMethodURL := range skipMethodURLs {
				if matchMethodURL(skipMethodURL, req.Method, req.URL.Path) {
					// Public route: authenticate opportunistically so an
					// admin browsing a public listing still carries a
					// profile, but never reject.
					if tokenString, err := sessionStore.ReadAccessToken(req); err == nil {
						if accessToken, err := decoder.DecodeAccessToken(ctx, tokenString); err == nil {
							ctx = context.WithValue(ctx, profile.ProfileKey, toProfile(accessToken))
							*req = *req.WithContext(ctx)
						}
					}
					return next(c)
				}
			}

			tokenString, err := sessionStore.ReadAccessToken(req)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"code": "UNAUTHORIZED", "error": err.Error()})
			}

			accessToken, err := decoder.DecodeAccessToken(ctx, tokenString)
			if errors.Is(err, model.ErrTokenExpired) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"code": "TOKEN_EXPIRED", "error": err.Error()})
			} else if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"code": "UNAUTHORIZED", "error": err.Error()})
			}

			ctx = context.WithValue(ctx, profile.ProfileKey, toProfile(accessToken))
			*req = *req.WithContext(ctx)

			return next(c)
		}
	}
}

func toProfile(accessToken profile.AccessToken) profile.Profile {
	return profile.Profile{
		UserID: accessToken.UserID,
		Email:  accessToken.Email,
		Role:   accessToken.Role,
	}
}

func matchMethodURL(skipMethodURL, method, path string) bool {
	parts := strings.SplitN(skipMethodURL, " ", 2)
	if len(parts) != 2 || parts[0] != method {
		return false
	}
	route := parts[1]
	return path == route || strings.HasPrefix(path, route+"/")
}
