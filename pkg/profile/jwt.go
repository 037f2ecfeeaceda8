package profile

import (
	"github.com/golang-jwt/jwt"
)

type TokenType string

const (
	Access  TokenType = "access"
	Refresh TokenType = "refresh"
)

// AccessToken is the claims payload carried inside a signed access token.
// The identity fields are a self-contained assertion: they are not checked
// against the user store at verification time.
type AccessToken struct {
	jwt.StandardClaims
	UserID string    `json:"userId" mapstructure:"userId"`
	Email  string    `json:"email" mapstructure:"email"`
	Role   Role      `json:"role" mapstructure:"role"`
	Type   TokenType `json:"type" mapstructure:"type"`
}

type RefreshToken struct {
	jwt.StandardClaims
	UserID string    `json:"userId" mapstructure:"userId"`
	Email  string    `json:"email" mapstructure:"email"`
	Role   Role      `json:"role" mapstructure:"role"`
	Type   TokenType `json:"type" mapstructure:"type"`
}
