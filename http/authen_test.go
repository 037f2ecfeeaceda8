package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/virtualpalace/palace-tour-service/model"
	httpmiddleware "github.com/virtualpalace/palace-tour-service/pkg/http/middleware"
	"github.com/virtualpalace/palace-tour-service/pkg/session"
)

type fakeAuthenService struct {
	refreshToken string
	refreshErr   error
}

func (s *fakeAuthenService) Register(ctx context.Context, req model.RegisterRequest) (model.Session, error) {
	return model.Session{}, nil
}

func (s *fakeAuthenService) Login(ctx context.Context, req model.LoginRequest) (model.Session, error) {
	return model.Session{}, nil
}

func (s *fakeAuthenService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	return s.refreshToken, s.refreshErr
}

func (s *fakeAuthenService) RevokeToken(ctx context.Context, refreshToken string) error {
	return nil
}

func newAuthenEcho(authenService *fakeAuthenService) *echo.Echo {
	e := echo.New()
	sessionStore := session.NewStore("local", 30*time.Minute, 168*time.Hour)
	NewAuthenHandler(e, validator.New(), authenService, sessionStore, httpmiddleware.RateLimit(100))
	return e
}

func doRefresh(e *echo.Echo, withCookie bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: session.RefreshTokenCookie, Value: "refresh-value"})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func refreshCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	code, _ := body["code"].(string)
	return code
}

func TestRefreshRewritesOnlyAccessCookie(t *testing.T) {
	e := newAuthenEcho(&fakeAuthenService{refreshToken: "new-access-token"})

	rec := doRefresh(e, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("set %d cookies, want only the access token", len(cookies))
	}
	if cookies[0].Name != session.AccessTokenCookie || cookies[0].Value != "new-access-token" {
		t.Errorf("cookie = (%q, %q), want refreshed access token", cookies[0].Name, cookies[0].Value)
	}
}

func TestRefreshMissingCookie(t *testing.T) {
	e := newAuthenEcho(&fakeAuthenService{})

	rec := doRefresh(e, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if code := refreshCode(t, rec); code != "NO_REFRESH_TOKEN" {
		t.Errorf("code = %q, want NO_REFRESH_TOKEN", code)
	}
}

// A deleted principal terminates the refresh with 401, but the handler must
// not rewrite or clear the session cookies: the valid refresh token stays in
// the browser and the client decides what to do with it.
func TestRefreshDeletedPrincipalLeavesCookiesUntouched(t *testing.T) {
	e := newAuthenEcho(&fakeAuthenService{refreshErr: model.ErrPrincipalNotFound})

	rec := doRefresh(e, true)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if code := refreshCode(t, rec); code != "PRINCIPAL_NOT_FOUND" {
		t.Errorf("code = %q, want PRINCIPAL_NOT_FOUND", code)
	}
	if setCookies := rec.Result().Header.Values("Set-Cookie"); len(setCookies) != 0 {
		t.Errorf("handler emitted %d Set-Cookie headers, want none: %v", len(setCookies), setCookies)
	}
}

func TestRefreshInvalidTokenLeavesCookiesUntouched(t *testing.T) {
	for _, refreshErr := range []error{
		model.ErrTokenExpired,
		model.ErrTokenMalformed,
		model.ErrTokenSignature,
		model.ErrTokenRevoked,
	} {
		e := newAuthenEcho(&fakeAuthenService{refreshErr: refreshErr})

		rec := doRefresh(e, true)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%v: status = %d, want 401", refreshErr, rec.Code)
		}
		if code := refreshCode(t, rec); code != "INVALID_REFRESH" {
			t.Errorf("%v: code = %q, want INVALID_REFRESH", refreshErr, code)
		}
		if setCookies := rec.Result().Header.Values("Set-Cookie"); len(setCookies) != 0 {
			t.Errorf("%v: handler emitted %d Set-Cookie headers, want none", refreshErr, len(setCookies))
		}
	}
}
