package httpx_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/mutuals/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"remote addr", nil, "192.168.1.1"},
		{"forwarded for wins", map[string]string{"X-Forwarded-For": "203.0.113.1, 192.168.1.1"}, "203.0.113.1"},
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.2"}, "203.0.113.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, httpx.ClientIP(req))
		})
	}
}

func TestJSONField(t *testing.T) {
	t.Run("reads field and restores body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":" Alice ","password":"x"}`))

		require.Equal(t, "alice", httpx.JSONField("username")(req))

		rest, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		require.Contains(t, string(rest), `"password":"x"`)
	})

	t.Run("non json body yields empty key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`username=alice`))
		require.Equal(t, "", httpx.JSONField("username")(req))
	})

	t.Run("non string field yields empty key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":42}`))
		require.Equal(t, "", httpx.JSONField("username")(req))
	})
}

func TestUserKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.9:4000"
	require.Equal(t, "ip:192.168.1.9", httpx.UserKey(req))

	ctx := httpx.ContextWithPrincipal(context.Background(), httpx.Principal{UserID: 42, SessionID: "s"})
	require.Equal(t, "user:42", httpx.UserKey(req.WithContext(ctx)))
}

func TestRateLimitMiddleware(t *testing.T) {
	send := func(h http.Handler, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("blocks over limit with headers", func(t *testing.T) {
		limited := httpx.RateLimitByIP(httpx.RateLimitConfig{
			RequestsPerWindow: 2,
			Window:            time.Minute,
			Burst:             2,
		})(okHandler)

		for i := range 2 {
			require.Equal(t, http.StatusOK, send(limited, "192.168.1.1").Code, "request %d", i+1)
		}

		rec := send(limited, "192.168.1.1")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
		require.Contains(t, rec.Body.String(), "rate_limit_exceeded")

		// a different address has its own bucket
		require.Equal(t, http.StatusOK, send(limited, "192.168.1.2").Code)
	})

	t.Run("empty key is let through", func(t *testing.T) {
		limited := httpx.RateLimit(httpx.RateLimitConfig{
			RequestsPerWindow: 1,
			Window:            time.Minute,
			Burst:             1,
		}, func(*http.Request) string { return "" })(okHandler)

		for range 3 {
			require.Equal(t, http.StatusOK, send(limited, "192.168.1.1").Code)
		}
	})
}

func TestRateLimitByIPAndJSONField(t *testing.T) {
	limited := httpx.RateLimitByIPAndJSONField(httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	}, "username")(okHandler)

	login := func(username string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"`+username+`"}`))
		req.RemoteAddr = "192.168.1.1:12345"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, login("alice"))
	require.Equal(t, http.StatusTooManyRequests, login("alice"))
	require.Equal(t, http.StatusOK, login("bob"))
}

func TestLimitFromEnv(t *testing.T) {
	t.Setenv("RATELIMIT_TEST_REQUESTS", "7")
	t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "30")
	t.Setenv("RATELIMIT_TEST_BURST", "nope")

	cfg := httpx.LimitFromEnv("TEST", httpx.PerMinute(3))
	require.Equal(t, 7, cfg.RequestsPerWindow)
	require.Equal(t, 30*time.Second, cfg.Window)
	require.Equal(t, 3, cfg.Burst, "unparseable override keeps the default")

	t.Setenv("RATELIMIT_TEST_REQUESTS", "-2")
	require.Equal(t, 3, httpx.LimitFromEnv("TEST", httpx.PerMinute(3)).RequestsPerWindow)
}
