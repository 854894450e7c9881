package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/mutuals/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig is a token bucket: RequestsPerWindow refill over Window,
// with up to Burst spent at once.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// PerMinute allows n requests a minute, all of them available as a burst.
func PerMinute(n int) RateLimitConfig {
	return RateLimitConfig{RequestsPerWindow: n, Window: time.Minute, Burst: n}
}

// LimitFromEnv applies RATELIMIT_{name}_REQUESTS, RATELIMIT_{name}_WINDOW_SEC
// and RATELIMIT_{name}_BURST on top of def. Values that are not positive
// integers are ignored.
func LimitFromEnv(name string, def RateLimitConfig) RateLimitConfig {
	cfg := def
	prefix := "RATELIMIT_" + name + "_"
	if n, ok := positiveEnv(prefix + "REQUESTS"); ok {
		cfg.RequestsPerWindow = n
	}
	if n, ok := positiveEnv(prefix + "WINDOW_SEC"); ok {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnv(prefix + "BURST"); ok {
		cfg.Burst = n
	}
	return cfg
}

func positiveEnv(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	return n, err == nil && n > 0
}

// KeyFunc names the bucket a request is charged to. An empty key means the
// request cannot be attributed and is let through.
type KeyFunc func(*http.Request) string

// ClientIP is the first X-Forwarded-For hop, then X-Real-IP, then the peer.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// UserKey charges authenticated requests to the user and anything else to
// the client address.
func UserKey(r *http.Request) string {
	if userID, ok := UserIDFromContext(r.Context()); ok {
		return "user:" + strconv.FormatInt(userID, 10)
	}
	return "ip:" + ClientIP(r)
}

// JSONField reads a top level string field from a JSON body, lowercased, and
// puts the body back for the handler.
func JSONField(name string) KeyFunc {
	return func(r *http.Request) string {
		if r.Body == nil {
			return ""
		}
		raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(raw))
		if err != nil {
			return ""
		}

		var fields map[string]any
		if json.Unmarshal(raw, &fields) != nil {
			return ""
		}
		v, _ := fields[name].(string)
		return strings.ToLower(strings.TrimSpace(v))
	}
}

type bucket struct {
	limiter *rate.Limiter
	seen    time.Time
}

// buckets holds one limiter per key. Keys idle for longer than a full refill
// are swept.
type buckets struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idle      time.Duration
	byKey     map[string]*bucket
	lastSweep time.Time
}

func newBuckets(cfg RateLimitConfig) *buckets {
	limit := rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds())
	refill := time.Duration(float64(cfg.Burst) / float64(limit) * float64(time.Second))
	return &buckets{
		limit:     limit,
		burst:     cfg.Burst,
		idle:      max(refill, cfg.Window),
		byKey:     make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

func (b *buckets) get(key string, now time.Time) *rate.Limiter {
	b.mu.Lock()
	defer b.mu.Unlock()

	if now.Sub(b.lastSweep) > b.idle {
		for k, bk := range b.byKey {
			if now.Sub(bk.seen) > b.idle {
				delete(b.byKey, k)
			}
		}
		b.lastSweep = now
	}

	bk, ok := b.byKey[key]
	if !ok {
		bk = &bucket{limiter: rate.NewLimiter(b.limit, b.burst)}
		b.byKey[key] = bk
	}
	bk.seen = now
	return bk.limiter
}

// RateLimit answers 429 with Retry-After once the request's bucket is empty.
func RateLimit(cfg RateLimitConfig, key KeyFunc) Middleware {
	set := newBuckets(cfg)
	limitHeader := strconv.Itoa(cfg.RequestsPerWindow)
	windowHeader := cfg.Window.String()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				slogx.FromContext(r.Context()).Warn("rate limit key missing, request allowed", "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}

			limiter := set.get(k, time.Now())
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			// Seconds until one whole token is back.
			wait := (1 - limiter.Tokens()) / float64(limiter.Limit())
			retryAfter := max(int(math.Ceil(wait)), 1)

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("X-RateLimit-Window", windowHeader)

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"key", k,
				"path", r.URL.Path,
				"retry_after", retryAfter,
			)
			WriteError(w, http.StatusTooManyRequests, "rate_limit_exceeded", "Too many requests. Please try again later.")
		})
	}
}

func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimit(cfg, ClientIP)
}

func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimit(cfg, UserKey)
}

// RateLimitByIPAndJSONField keys on the client address plus a body field,
// e.g. the username on login.
func RateLimitByIPAndJSONField(cfg RateLimitConfig, field string) Middleware {
	fieldKey := JSONField(field)
	return RateLimit(cfg, func(r *http.Request) string {
		ip := ClientIP(r)
		if v := fieldKey(r); v != "" {
			return ip + ":" + v
		}
		return ip
	})
}
