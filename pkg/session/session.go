// Package session bridges the token pair and the HTTP cookie headers.
// The browser session has no server-side record: it exists only as the two
// cookies written here.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/virtualpalace/palace-tour-service/model"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

type Store struct {
	secure     bool
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewStore binds cookie TTLs to the token TTLs. Cookies are marked Secure
// everywhere except the local environment so the contract holds in
// production while plain-http development keeps working.
func NewStore(environment string, accessTTL, refreshTTL time.Duration) *Store {
	return &Store{
		secure:     environment != "local",
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *Store) WriteTokens(c echo.Context, jwt model.JWT) {
	c.SetCookie(s.cookie(AccessTokenCookie, jwt.AccessToken, int(s.accessTTL.Seconds())))
	c.SetCookie(s.cookie(RefreshTokenCookie, jwt.RefreshToken, int(s.refreshTTL.Seconds())))
}

func (s *Store) WriteAccessToken(c echo.Context, accessToken string) {
	c.SetCookie(s.cookie(AccessTokenCookie, accessToken, int(s.accessTTL.Seconds())))
}

func (s *Store) ReadAccessToken(req *http.Request) (string, error) {
	return read(req, AccessTokenCookie)
}

func (s *Store) ReadRefreshToken(req *http.Request) (string, error) {
	return read(req, RefreshTokenCookie)
}

// ClearTokens expires both cookies immediately. Clearing cookies that were
// never set is a no-op, so logout is idempotent.
func (s *Store) ClearTokens(c echo.Context) {
	c.SetCookie(s.cookie(AccessTokenCookie, "", -1))
	c.SetCookie(s.cookie(RefreshTokenCookie, "", -1))
}

func (s *Store) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func read(req *http.Request, name string) (string, error) {
	cookie, err := req.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", model.ErrNoToken
	}
	return cookie.Value, nil
}
