package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/virtualpalace/palace-tour-service/model"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestWriteTokensCookieAttributes(t *testing.T) {
	store := NewStore("prod", 30*time.Minute, 168*time.Hour)
	c, rec := newTestContext()

	store.WriteTokens(c, model.JWT{AccessToken: "access-value", RefreshToken: "refresh-value"})

	access := findCookie(t, rec, AccessTokenCookie)
	if access.Value != "access-value" {
		t.Errorf("access value = %q", access.Value)
	}
	if access.MaxAge != 1800 {
		t.Errorf("access MaxAge = %d, want 1800", access.MaxAge)
	}

	refresh := findCookie(t, rec, RefreshTokenCookie)
	if refresh.Value != "refresh-value" {
		t.Errorf("refresh value = %q", refresh.Value)
	}
	if refresh.MaxAge != 604800 {
		t.Errorf("refresh MaxAge = %d, want 604800", refresh.MaxAge)
	}

	for _, cookie := range []*http.Cookie{access, refresh} {
		if !cookie.HttpOnly {
			t.Errorf("%s: HttpOnly not set", cookie.Name)
		}
		if !cookie.Secure {
			t.Errorf("%s: Secure not set", cookie.Name)
		}
		if cookie.SameSite != http.SameSiteStrictMode {
			t.Errorf("%s: SameSite = %v, want Strict", cookie.Name, cookie.SameSite)
		}
		if cookie.Path != "/" {
			t.Errorf("%s: Path = %q, want /", cookie.Name, cookie.Path)
		}
	}
}

func TestLocalEnvironmentSkipsSecure(t *testing.T) {
	store := NewStore("local", 30*time.Minute, 168*time.Hour)
	c, rec := newTestContext()

	store.WriteTokens(c, model.JWT{AccessToken: "a", RefreshToken: "r"})

	if findCookie(t, rec, AccessTokenCookie).Secure {
		t.Error("Secure set in local environment")
	}
}

func TestReadTokens(t *testing.T) {
	store := NewStore("prod", 30*time.Minute, 168*time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "access-value"})
	req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "refresh-value"})

	if got, err := store.ReadAccessToken(req); err != nil || got != "access-value" {
		t.Errorf("ReadAccessToken = (%q, %v)", got, err)
	}
	if got, err := store.ReadRefreshToken(req); err != nil || got != "refresh-value" {
		t.Errorf("ReadRefreshToken = (%q, %v)", got, err)
	}
}

func TestReadMissingToken(t *testing.T) {
	store := NewStore("prod", 30*time.Minute, 168*time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := store.ReadAccessToken(req); !errors.Is(err, model.ErrNoToken) {
		t.Errorf("missing cookie: err = %v, want %v", err, model.ErrNoToken)
	}

	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: ""})
	if _, err := store.ReadAccessToken(req); !errors.Is(err, model.ErrNoToken) {
		t.Errorf("empty cookie: err = %v, want %v", err, model.ErrNoToken)
	}
}

func TestClearTokensIsIdempotent(t *testing.T) {
	store := NewStore("prod", 30*time.Minute, 168*time.Hour)

	// Clearing a session that was never written behaves the same as
	// clearing one that was.
	for i := 0; i < 2; i++ {
		c, rec := newTestContext()
		store.ClearTokens(c)

		access := findCookie(t, rec, AccessTokenCookie)
		if access.Value != "" || access.MaxAge != -1 {
			t.Errorf("access cookie = (%q, %d), want cleared", access.Value, access.MaxAge)
		}
		refresh := findCookie(t, rec, RefreshTokenCookie)
		if refresh.Value != "" || refresh.MaxAge != -1 {
			t.Errorf("refresh cookie = (%q, %d), want cleared", refresh.Value, refresh.MaxAge)
		}
	}
}
