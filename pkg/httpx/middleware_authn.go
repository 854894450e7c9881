package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/mutuals/pkg/slogx"
)

// Authenticator turns a raw session token into a Principal. The token can
// arrive either as a cookie or as a bearer header, the authenticator does not
// care which.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Principal, error)
}

// ErrInvalidSession is what an Authenticator wraps when the credentials
// themselves are bad. Any other error is treated as a server failure.
var ErrInvalidSession = errors.New("session is invalid or expired")

// AuthnMiddleware rejects requests without a live session with 401.
func AuthnMiddleware(a Authenticator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := SessionToken(r, cookieName)
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, "unauthenticated", "Not authenticated")
				return
			}

			p, err := a.Authenticate(ctx, raw)
			if errors.Is(err, ErrInvalidSession) {
				log.Debug("session rejected", "err", err)
				WriteError(w, http.StatusUnauthorized, "unauthenticated", "Session is invalid or expired")
				return
			}
			if err != nil {
				log.Error("session lookup failed", "err", err)
				WriteError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
				return
			}

			ctx = ContextWithPrincipal(ctx, p)
			ctx = slogx.With(ctx, "user_id", strconv.FormatInt(p.UserID, 10))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionToken pulls the session token from the named cookie, falling back to
// an "Authorization: Bearer" header for non-browser clients.
func SessionToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
}
