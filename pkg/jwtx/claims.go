package jwtx

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a login stays valid without logging in again.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Claims are the claims carried by a session token. The subject is the
// numeric user id and SID points at the server side session row, which is
// what makes logout actually revoke the token.
type Claims struct {
	jwt.RegisteredClaims

	// Session ID
	SID string `json:"sid"`

	// Username at the time of login, informational only
	Username string `json:"username,omitempty"`
}

// NewSessionClaims builds claims for a freshly opened session.
func NewSessionClaims(userID int64, sid, username, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        sid,
		},
		SID:      sid,
		Username: username,
	}
}

// UserID parses the subject back into a user id.
func (c Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: subject %q", ErrInvalidClaim, c.Subject)
	}
	return id, nil
}
