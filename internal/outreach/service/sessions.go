package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/pkg/httpx"
	"github.com/aussiebroadwan/mutuals/pkg/idx"
	"github.com/aussiebroadwan/mutuals/pkg/jwtx"
	"github.com/aussiebroadwan/mutuals/pkg/slogx"
)

// SessionService pairs a sessions row with a signed token naming it. The
// token alone is not enough, the row has to be live too, which is what lets
// logout take effect before the token expires.
type SessionService struct {
	Store    store.Store
	Signer   *jwtx.Signer
	Verifier *jwtx.Verifier
	Issuer   string
	TTL      time.Duration

	// Now is overridable for tests
	Now func() time.Time
}

var _ httpx.Authenticator = (*SessionService)(nil)

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL <= 0 {
		return jwtx.DefaultSessionTTL
	}
	return s.TTL
}

// Open starts a session for user and returns the token to hand to the client.
func (s *SessionService) Open(ctx context.Context, user domain.User) (string, domain.Session, error) {
	now := s.now()
	sess := domain.Session{
		ID:        idx.NewAt(now).String(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.ttl()),
		CreatedAt: now,
	}
	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return "", domain.Session{}, fmt.Errorf("create session: %w", err)
	}

	token, err := s.Signer.Sign(jwtx.NewSessionClaims(user.ID, sess.ID, user.Username, s.Issuer, s.ttl(), now))
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("sign session token: %w", err)
	}

	slogx.FromContext(ctx).Info("session opened",
		slog.Int64("user_id", user.ID),
		slog.String("session_id", sess.ID),
	)
	return token, sess, nil
}

// Authenticate implements httpx.Authenticator.
func (s *SessionService) Authenticate(ctx context.Context, token string) (httpx.Principal, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return httpx.Principal{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	userID, err := claims.UserID()
	if err != nil {
		return httpx.Principal{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	sess, err := s.Store.Sessions().GetSession(ctx, claims.SID)
	if errors.Is(err, store.ErrNotFound) {
		return httpx.Principal{}, fmt.Errorf("%w: unknown session", ErrInvalidSession)
	}
	if err != nil {
		return httpx.Principal{}, err
	}

	if sess.UserID != userID || !sess.Live(s.now()) {
		return httpx.Principal{}, fmt.Errorf("%w: session %s not live", ErrInvalidSession, sess.ID)
	}
	return httpx.Principal{UserID: userID, SessionID: sess.ID}, nil
}

// Revoke ends a session. Revoking an unknown session is not an error, the
// client is logged out either way.
func (s *SessionService) Revoke(ctx context.Context, sessionID string) error {
	err := s.Store.Sessions().RevokeSession(ctx, sessionID, s.now())
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	slogx.FromContext(ctx).Info("session revoked", slog.String("session_id", sessionID))
	return nil
}

// ExpiresAt is when a session opened now would expire, for cookie Max-Age.
func (s *SessionService) ExpiresAt() time.Time {
	return s.now().Add(s.ttl())
}
