package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of an access token: the user id and username,
// plus the registered expiry and issue time.
type TokenClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
