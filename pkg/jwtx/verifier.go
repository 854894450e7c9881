package jwtx

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrUnknownKID   = errors.New("jwtx: unknown kid")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// Verifier validates session tokens against a set of Ed25519 public keys
// indexed by kid.
type Verifier struct {
	keys   map[string]ed25519.PublicKey
	issuer string
	leeway time.Duration
}

// NewVerifier trusts the public keys of the given signers. Keep the previous
// signer in the list while rotating so open sessions keep working.
func NewVerifier(issuer string, leeway time.Duration, signers ...*Signer) *Verifier {
	keys := make(map[string]ed25519.PublicKey, len(signers))
	for _, s := range signers {
		keys[s.KID()] = s.PublicKey()
	}
	return &Verifier{keys: keys, issuer: issuer, leeway: leeway}
}

// Verify checks signature, issuer and expiry and returns the claims.
func (v *Verifier) Verify(raw string) (Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	_, err := jwt.NewParser(opts...).ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		pub, ok := v.keys[kid]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownKID, kid)
		}
		return pub, nil
	})

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return Claims{}, ErrIssuer
	case errors.Is(err, ErrUnknownKID):
		return Claims{}, ErrUnknownKID
	default:
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if claims.SID == "" {
		return Claims{}, fmt.Errorf("%w: missing sid", ErrInvalidClaim)
	}
	return claims, nil
}
