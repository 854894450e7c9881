package jwtx

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"github.com/aussiebroadwan/mutuals/pkg/cryptox"
	"github.com/golang-jwt/jwt/v5"
)

// Signer signs session tokens with an Ed25519 key.
type Signer struct {
	kid string
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// NewSigner loads a PKCS8 PEM Ed25519 key. The kid is derived from the public
// key so rotating the key file changes it without any extra config.
func NewSigner(pemKey []byte) (*Signer, error) {
	key, err := cryptox.ParseEd25519Key(pemKey)
	if err != nil {
		return nil, err
	}

	pub, ok := key.Public().(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("jwtx: unexpected public key type")
	}

	sum := sha256.Sum256(pub)
	return &Signer{
		kid: base64.RawURLEncoding.EncodeToString(sum[:12]),
		key: key,
		pub: pub,
	}, nil
}

func (s *Signer) KID() string                  { return s.kid }
func (s *Signer) PublicKey() ed25519.PublicKey { return s.pub }

// Sign takes your claims and turns them into a signed JWT string.
func (s *Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}
