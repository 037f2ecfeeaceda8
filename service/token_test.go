package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/generator"
	"github.com/virtualpalace/palace-tour-service/pkg/profile"
)

const (
	testAccessSecret  = "access-secret-for-tests"
	testRefreshSecret = "refresh-secret-for-tests"
)

func newTestTokenService() Token {
	return NewTokenService(testAccessSecret, testRefreshSecret, 30*time.Minute, 168*time.Hour)
}

func testUser() model.User {
	return model.User{
		UserID:    "018f4f3a-0000-7000-8000-000000000001",
		Email:     "visitor@example.com",
		FirstName: "Ada",
		LastName:  "Visitor",
		Role:      profile.User,
	}
}

func TestIssueAndDecodeAccessToken(t *testing.T) {
	svc := newTestTokenService()
	user := testUser()

	token, err := svc.IssueAccessToken(context.Background(), user)
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	claims, err := svc.DecodeAccessToken(context.Background(), token)
	if err != nil {
		t.Fatalf("decode access token: %v", err)
	}

	if claims.UserID != user.UserID {
		t.Errorf("userID = %q, want %q", claims.UserID, user.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Role != user.Role {
		t.Errorf("role = %q, want %q", claims.Role, user.Role)
	}
	if claims.Type != profile.Access {
		t.Errorf("type = %q, want %q", claims.Type, profile.Access)
	}
	if claims.Id == "" {
		t.Error("jti is empty")
	}
	if got, want := claims.ExpiresAt-claims.IssuedAt, int64((30 * time.Minute).Seconds()); got != want {
		t.Errorf("exp-iat = %d, want %d", got, want)
	}
}

func TestIssueTokenPairIsIndependentlySigned(t *testing.T) {
	svc := newTestTokenService()
	user := testUser()

	pair, err := svc.IssueTokenPair(context.Background(), user)
	if err != nil {
		t.Fatalf("issue token pair: %v", err)
	}

	if _, err = svc.DecodeAccessToken(context.Background(), pair.AccessToken); err != nil {
		t.Errorf("decode access token: %v", err)
	}
	if _, err = svc.DecodeRefreshToken(context.Background(), pair.RefreshToken); err != nil {
		t.Errorf("decode refresh token: %v", err)
	}

	// Each token verifies only against its own secret.
	if _, err = svc.DecodeAccessToken(context.Background(), pair.RefreshToken); !errors.Is(err, model.ErrTokenSignature) {
		t.Errorf("decode refresh token as access = %v, want %v", err, model.ErrTokenSignature)
	}
	if _, err = svc.DecodeRefreshToken(context.Background(), pair.AccessToken); !errors.Is(err, model.ErrTokenSignature) {
		t.Errorf("decode access token as refresh = %v, want %v", err, model.ErrTokenSignature)
	}
}

func TestDecodeAccessTokenWrongSecret(t *testing.T) {
	svc := newTestTokenService()
	other := NewTokenService("another-secret", testRefreshSecret, 30*time.Minute, 168*time.Hour)

	token, err := other.IssueAccessToken(context.Background(), testUser())
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	if _, err = svc.DecodeAccessToken(context.Background(), token); !errors.Is(err, model.ErrTokenSignature) {
		t.Errorf("err = %v, want %v", err, model.ErrTokenSignature)
	}
}

func TestDecodeAccessTokenMalformed(t *testing.T) {
	svc := newTestTokenService()

	for _, token := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		if _, err := svc.DecodeAccessToken(context.Background(), token); !errors.Is(err, model.ErrTokenMalformed) {
			t.Errorf("decode %q = %v, want %v", token, err, model.ErrTokenMalformed)
		}
	}
}

func TestDecodeAccessTokenTamperedSignature(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.IssueAccessToken(context.Background(), testUser())
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	if _, err = svc.DecodeAccessToken(context.Background(), tampered); !errors.Is(err, model.ErrTokenSignature) {
		t.Errorf("err = %v, want %v", err, model.ErrTokenSignature)
	}
}

func TestDecodeAccessTokenExpired(t *testing.T) {
	svc := NewTokenService(testAccessSecret, testRefreshSecret, -time.Minute, 168*time.Hour)

	token, err := svc.IssueAccessToken(context.Background(), testUser())
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	if _, err = svc.DecodeAccessToken(context.Background(), token); !errors.Is(err, model.ErrTokenExpired) {
		t.Errorf("err = %v, want %v", err, model.ErrTokenExpired)
	}
}

// A token presented exactly at its expiry instant is already expired: the
// validity interval is open at the right edge.
func TestDecodeAccessTokenExpiryBoundary(t *testing.T) {
	now := time.Now()
	claims := profile.AccessToken{
		StandardClaims: jwt.StandardClaims{
			Id:        generator.UUID(),
			IssuedAt:  now.Add(-time.Minute).Unix(),
			ExpiresAt: now.Unix(),
		},
		UserID: testUser().UserID,
		Email:  testUser().Email,
		Role:   profile.User,
		Type:   profile.Access,
	}
	token, err := signJWT(claims, testAccessSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	svc := newTestTokenService()
	if _, err = svc.DecodeAccessToken(context.Background(), token); !errors.Is(err, model.ErrTokenExpired) {
		t.Errorf("err = %v, want %v", err, model.ErrTokenExpired)
	}
}

// A refresh-typed payload signed with the access secret must still be
// rejected: the type claim is part of the contract, not just the key.
func TestDecodeAccessTokenTypeMismatch(t *testing.T) {
	now := time.Now()
	claims := profile.AccessToken{
		StandardClaims: jwt.StandardClaims{
			Id:        generator.UUID(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Hour).Unix(),
		},
		UserID: testUser().UserID,
		Email:  testUser().Email,
		Role:   profile.User,
		Type:   profile.Refresh,
	}
	token, err := signJWT(claims, testAccessSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	svc := newTestTokenService()
	if _, err = svc.DecodeAccessToken(context.Background(), token); !errors.Is(err, model.ErrTokenMalformed) {
		t.Errorf("err = %v, want %v", err, model.ErrTokenMalformed)
	}
}

func TestDecodeAccessTokenUnknownShape(t *testing.T) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "not-the-expected-shape",
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
	token, err := signJWT(claims, testAccessSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	svc := newTestTokenService()
	if _, err = svc.DecodeAccessToken(context.Background(), token); !errors.Is(err, model.ErrTokenMalformed) {
		t.Errorf("err = %v, want %v", err, model.ErrTokenMalformed)
	}
}

func TestDecodeAccessTokenInvalidRole(t *testing.T) {
	now := time.Now()
	claims := profile.AccessToken{
		StandardClaims: jwt.StandardClaims{
			Id:        generator.UUID(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Hour).Unix(),
		},
		UserID: testUser().UserID,
		Email:  testUser().Email,
		Role:   profile.Role("superuser"),
		Type:   profile.Access,
	}
	token, err := signJWT(claims, testAccessSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	svc := newTestTokenService()
	if _, err = svc.DecodeAccessToken(context.Background(), token); !errors.Is(err, model.ErrTokenMalformed) {
		t.Errorf("err = %v, want %v", err, model.ErrTokenMalformed)
	}
}
