package helpers

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of a session token: the user it identifies
// plus the registered issued-at/expiry claims.
type SessionClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
