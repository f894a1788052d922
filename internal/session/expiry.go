package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry reads the exp claim of the session cookie. The signature is not
// checked: the API is the only authority on validity, this is for display.
func Expiry(c *http.Cookie) (time.Time, bool) {
	if c == nil || c.Value == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.Value, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
