package security

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypeReset   = "reset"
)

// UserClaims carries the token type next to the registered claims; the
// subject holds the user id in decimal string form (or, for reset tokens,
// the account email).
type UserClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}
