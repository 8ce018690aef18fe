package helpers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	SessionCookieName = "jwt"
	SessionDuration   = 7 * 24 * time.Hour
)

// GenerateSessionToken signs a stateless 7-day session token for the user.
func GenerateSessionToken(secret, userID string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSessionToken verifies signature and expiry and returns the claims.
func ValidateSessionToken(secret, tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	if claims.UserID == "" {
		return nil, errors.New("token is missing a user id")
	}

	return claims, nil
}

// RandomAvatarURL picks one of the 100 stock avatars for users who sign up
// without a profile picture.
func RandomAvatarURL() string {
	idx := rand.IntN(100) + 1
	return fmt.Sprintf("https://avatar.iran.liara.run/public/%d.png", idx)
}

// SetSessionCookie stores the session token as an HTTP-only, same-site-strict
// cookie. Secure is tied to the deployment environment.
func SetSessionCookie(c *gin.Context, token string, isProduction bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		SessionCookieName,
		token,
		int(SessionDuration.Seconds()),
		"/",
		"", // let Gin pick current domain
		isProduction,
		true,
	)
}

// ClearSessionCookie expires the session cookie. The token itself is
// stateless, so this is the whole of logout.
func ClearSessionCookie(c *gin.Context, isProduction bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", isProduction, true)
}
