package httpx_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/mutuals/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator map[string]httpx.Principal

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (httpx.Principal, error) {
	if token == "db-down" {
		return httpx.Principal{}, errors.New("sessions table unavailable")
	}
	p, ok := f[token]
	if !ok {
		return httpx.Principal{}, fmt.Errorf("%w: unknown token", httpx.ErrInvalidSession)
	}
	return p, nil
}

func TestAuthnMiddleware(t *testing.T) {
	auth := fakeAuthenticator{"good": {UserID: 7, SessionID: "sid-1"}}

	var gotUser int64
	var gotSession string
	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = httpx.UserIDFromContext(r.Context())
		gotSession, _ = httpx.SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}), httpx.AuthnMiddleware(auth, "session"))

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{"no credentials", func(*http.Request) {}, http.StatusUnauthorized},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: "good"}) }, http.StatusNoContent},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, http.StatusNoContent},
		{"bad token", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: "bad"}) }, http.StatusUnauthorized},
		{"store failure", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: "db-down"}) }, http.StatusInternalServerError},
		{"basic auth is not a session", func(r *http.Request) { r.Header.Set("Authorization", "Basic Zm9vOmJhcg==") }, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUser, gotSession = 0, ""
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)
			require.Equal(t, tt.status, rec.Code)

			if tt.status == http.StatusNoContent {
				require.EqualValues(t, 7, gotUser)
				require.Equal(t, "sid-1", gotSession)
			} else if tt.status == http.StatusUnauthorized {
				require.True(t, strings.Contains(rec.Body.String(), "unauthenticated"))
			} else {
				require.Contains(t, rec.Body.String(), "internal_error")
				require.Zero(t, gotUser)
			}
		})
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler, mw("first"), mw("second"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"first", "second"}, order)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","extra":true}`))
	require.NoError(t, httpx.DecodeJSON(rec, req, &v))
	require.Equal(t, "x", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	require.ErrorIs(t, httpx.DecodeJSON(rec, req, &v), httpx.ErrEmptyBody)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	require.Error(t, httpx.DecodeJSON(rec, req, &v))
}
