package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/mutuals/pkg/cryptox"
	"github.com/aussiebroadwan/mutuals/pkg/jwtx"
)

// InitSessionKeys loads the Ed25519 session signing key from disk, generating
// it on first start. Keeping it on disk means sessions survive restarts.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.Signer, *jwtx.Verifier, error) {
	pemKey, err := cryptox.LoadOrGenerateEd25519Key(cfg.SessionKeyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load session key: %w", err)
	}

	signer, err := jwtx.NewSigner(pemKey)
	if err != nil {
		return nil, nil, fmt.Errorf("parse session key: %w", err)
	}

	logger.Info("session signing key loaded", "kid", signer.KID(), "path", cfg.SessionKeyFile)
	return signer, jwtx.NewVerifier(cfg.Issuer, 30*time.Second, signer), nil
}
