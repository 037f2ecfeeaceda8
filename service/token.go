package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/mitchellh/mapstructure"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/generator"
	"github.com/virtualpalace/palace-tour-service/pkg/profile"
)

// Token mints and verifies the access/refresh token pair. Access and refresh
// tokens are signed with independent secrets, so leaking one secret never
// compromises the other token class. Verification is a pure function of
// (token, secret, current time); the service holds no mutable state.
type Token interface {
	IssueTokenPair(ctx context.Context, user model.User) (model.JWT, error)
	IssueAccessToken(ctx context.Context, user model.User) (string, error)
	DecodeAccessToken(ctx context.Context, token string) (profile.AccessToken, error)
	DecodeRefreshToken(ctx context.Context, token string) (profile.RefreshToken, error)
}

type tokenService struct {
	accessSecret  string
	refreshSecret string
	accessExpire  time.Duration
	refreshExpire time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessExpire, refreshExpire time.Duration) Token {
	return &tokenService{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessExpire:  accessExpire,
		refreshExpire: refreshExpire,
	}
}

func (s *tokenService) IssueTokenPair(ctx context.Context, user model.User) (model.JWT, error) {
	accessToken, err := s.IssueAccessToken(ctx, user)
	if err != nil {
		return model.JWT{}, err
	}

	refreshToken, err := s.issueRefreshToken(user)
	if err != nil {
		return model.JWT{}, err
	}

	return model.JWT{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *tokenService) IssueAccessToken(ctx context.Context, user model.User) (string, error) {
	now := time.Now()
	claims := profile.AccessToken{
		StandardClaims: jwt.StandardClaims{
			Id:        generator.UUID(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.accessExpire).Unix(),
		},
		UserID: user.UserID,
		Email:  user.Email,
		Role:   user.Role,
		Type:   profile.Access,
	}
	return signJWT(claims, s.accessSecret)
}

func (s *tokenService) issueRefreshToken(user model.User) (string, error) {
	now := time.Now()
	claims := profile.RefreshToken{
		StandardClaims: jwt.StandardClaims{
			Id:        generator.UUID(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.refreshExpire).Unix(),
		},
		UserID: user.UserID,
		Email:  user.Email,
		// Embedded role is advisory: refresh re-reads the store before
		// minting a new access token.
		Role: user.Role,
		Type: profile.Refresh,
	}
	return signJWT(claims, s.refreshSecret)
}

func (s *tokenService) DecodeAccessToken(ctx context.Context, jwtToken string) (profile.AccessToken, error) {
	jwtClaims, err := decodeJWT(jwtToken, s.accessSecret)
	if err != nil {
		return profile.AccessToken{}, err
	}

	var accessToken profile.AccessToken
	if err = mapstructure.Decode(jwtClaims, &accessToken); err != nil {
		return profile.AccessToken{}, model.ErrTokenMalformed
	}
	accessToken.StandardClaims = standardClaims(jwtClaims)

	if err = validateClaims(accessToken.UserID, accessToken.Email, accessToken.Role, accessToken.Type, profile.Access, accessToken.StandardClaims); err != nil {
		return profile.AccessToken{}, err
	}
	return accessToken, nil
}

func (s *tokenService) DecodeRefreshToken(ctx context.Context, jwtToken string) (profile.RefreshToken, error) {
	jwtClaims, err := decodeJWT(jwtToken, s.refreshSecret)
	if err != nil {
		return profile.RefreshToken{}, err
	}

	var refreshToken profile.RefreshToken
	if err = mapstructure.Decode(jwtClaims, &refreshToken); err != nil {
		return profile.RefreshToken{}, model.ErrTokenMalformed
	}
	refreshToken.StandardClaims = standardClaims(jwtClaims)

	if err = validateClaims(refreshToken.UserID, refreshToken.Email, refreshToken.Role, refreshToken.Type, profile.Refresh, refreshToken.StandardClaims); err != nil {
		return profile.RefreshToken{}, err
	}
	return refreshToken, nil
}

func signJWT(jwtClaim jwt.Claims, secret string) (string, error) {
	unsignedToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaim)
	return unsignedToken.SignedString([]byte(secret))
}

func decodeJWT(jwtToken, secret string) (jwt.MapClaims, error) {
	jwtClaims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(jwtToken, jwtClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) {
			switch {
			case validationErr.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, model.ErrTokenMalformed
			case validationErr.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
				return nil, model.ErrTokenSignature
			case validationErr.Errors&jwt.ValidationErrorExpired != 0:
				return nil, model.ErrTokenExpired
			}
		}
		return nil, model.ErrTokenMalformed
	}

	if !token.Valid {
		return nil, model.ErrTokenSignature
	}

	return jwtClaims, nil
}

// standardClaims pulls the registered timing fields out of the raw map.
// encoding/json decodes JWT numeric dates as float64.
func standardClaims(jwtClaims jwt.MapClaims) jwt.StandardClaims {
	var claims jwt.StandardClaims
	if exp, ok := jwtClaims["exp"].(float64); ok {
		claims.ExpiresAt = int64(exp)
	}
	if iat, ok := jwtClaims["iat"].(float64); ok {
		claims.IssuedAt = int64(iat)
	}
	if jti, ok := jwtClaims["jti"].(string); ok {
		claims.Id = jti
	}
	return claims
}

// validateClaims rejects any token whose payload does not match the fixed
// claims shape, and enforces the open validity interval: a token presented
// exactly at its expiry instant is already expired.
func validateClaims(userID, email string, role profile.Role, tokenType, wantType profile.TokenType, claims jwt.StandardClaims) error {
	if userID == "" || email == "" || !role.IsValid() || tokenType != wantType {
		return model.ErrTokenMalformed
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		return model.ErrTokenMalformed
	}
	if time.Now().Unix() >= claims.ExpiresAt {
		return model.ErrTokenExpired
	}
	return nil
}
