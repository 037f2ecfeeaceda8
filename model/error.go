package model

import (
	"errors"
	"strings"
)

// Token and authorization failures are sentinel errors so callers can
// separate the recoverable case (an expired access token, which the client
// fixes with a refresh call) from the terminal ones.
var (
	ErrTokenMalformed     = errors.New("token is malformed")
	ErrTokenSignature     = errors.New("token signature is invalid")
	ErrTokenExpired       = errors.New("token is expired")
	ErrNoToken            = errors.New("token is not present")
	ErrTokenRevoked       = errors.New("token is revoked")
	ErrPrincipalNotFound  = errors.New("principal is not found")
	ErrForbidden          = errors.New("insufficient role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyUsed   = errors.New("email is already used")
	ErrSlotUnavailable    = errors.New("time slot is already booked")
)

func IsConflictError(err error) bool {
	return strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
