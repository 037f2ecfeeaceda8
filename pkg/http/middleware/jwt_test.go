package httpmiddleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/profile"
	"github.com/virtualpalace/palace-tour-service/pkg/session"
)

// fakeDecoder maps token strings straight to claims or errors, so the guard
// tests exercise only the middleware's own decisions.
type fakeDecoder struct {
	tokens map[string]profile.AccessToken
	errs   map[string]error
}

func (d *fakeDecoder) DecodeAccessToken(ctx context.Context, token string) (profile.AccessToken, error) {
	if err, ok := d.errs[token]; ok {
		return profile.AccessToken{}, err
	}
	if claims, ok := d.tokens[token]; ok {
		return claims, nil
	}
	return profile.AccessToken{}, model.ErrTokenMalformed
}

func newGuardedEcho(decoder AccessTokenDecoder, roles []profile.Role, skipMethodURLs ...string) *echo.Echo {
	e := echo.New()
	sessionStore := session.NewStore("local", 30*time.Minute, 168*time.Hour)
	e.Use(NewProfileProvider(decoder, sessionStore, skipMethodURLs...))

	handler := func(c echo.Context) error {
		userProfile, err := profile.UseProfile(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusOK, echo.Map{"role": ""})
		}
		return c.JSON(http.StatusOK, echo.Map{"role": string(userProfile.Role)})
	}

	if roles == nil {
		e.GET("/resource", handler)
	} else {
		e.GET("/resource", handler, RequireRole(roles...))
	}
	e.GET("/public", handler)
	return e
}

func doRequest(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func responseCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	code, _ := body["code"].(string)
	return code
}

func guideToken() (string, *fakeDecoder) {
	decoder := &fakeDecoder{
		tokens: map[string]profile.AccessToken{
			"guide-token": {UserID: "u-1", Email: "guide@example.com", Role: profile.Guide},
		},
		errs: map[string]error{
			"expired-token": model.ErrTokenExpired,
		},
	}
	return "guide-token", decoder
}

func TestProfileProviderNoCookie(t *testing.T) {
	_, decoder := guideToken()
	e := newGuardedEcho(decoder, nil)

	rec := doRequest(e, "/resource", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if code := responseCode(t, rec); code != "UNAUTHORIZED" {
		t.Errorf("code = %q, want UNAUTHORIZED", code)
	}
}

func TestProfileProviderExpiredToken(t *testing.T) {
	_, decoder := guideToken()
	e := newGuardedEcho(decoder, nil)

	rec := doRequest(e, "/resource", "expired-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if code := responseCode(t, rec); code != "TOKEN_EXPIRED" {
		t.Errorf("code = %q, want TOKEN_EXPIRED", code)
	}
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	token, decoder := guideToken()
	e := newGuardedEcho(decoder, []profile.Role{profile.Guide, profile.Admin})

	rec := doRequest(e, "/resource", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestRequireRoleRejectsInsufficientRole(t *testing.T) {
	token, decoder := guideToken()
	e := newGuardedEcho(decoder, []profile.Role{profile.Admin})

	rec := doRequest(e, "/resource", token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if code := responseCode(t, rec); code != "FORBIDDEN" {
		t.Errorf("code = %q, want FORBIDDEN", code)
	}
}

func TestRequireRoleEmptySetMeansAuthenticated(t *testing.T) {
	token, decoder := guideToken()
	e := newGuardedEcho(decoder, []profile.Role{})

	rec := doRequest(e, "/resource", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSkipRoutesBypassAuthentication(t *testing.T) {
	_, decoder := guideToken()
	e := newGuardedEcho(decoder, nil, "GET /public")

	rec := doRequest(e, "/public", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSkipRoutesStillAttachProfile(t *testing.T) {
	token, decoder := guideToken()
	e := newGuardedEcho(decoder, nil, "GET /public")

	rec := doRequest(e, "/public", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if role, _ := body["role"].(string); role != "guide" {
		t.Errorf("role = %q, want guide", role)
	}
}

func TestMatchMethodURL(t *testing.T) {
	tests := []struct {
		skip   string
		method string
		path   string
		want   bool
	}{
		{"GET /tours", http.MethodGet, "/tours", true},
		{"GET /tours", http.MethodGet, "/tours/abc", true},
		{"GET /tours", http.MethodPost, "/tours", false},
		{"GET /tours", http.MethodGet, "/toursextra", false},
		{"POST /auth/login", http.MethodPost, "/auth/login", true},
		{"POST /auth/login", http.MethodPost, "/auth/logout", false},
	}
	for _, tt := range tests {
		if got := matchMethodURL(tt.skip, tt.method, tt.path); got != tt.want {
			t.Errorf("matchMethodURL(%q, %s, %s) = %v, want %v", tt.skip, tt.method, tt.path, got, tt.want)
		}
	}
}
