package http_test

import (
	"testing"

	httpapi "github.com/aussiebroadwan/mutuals/internal/outreach/http"
	"github.com/stretchr/testify/require"
)

func TestDefaultRateLimits(t *testing.T) {
	limits := httpapi.DefaultRateLimits()
	require.Less(t, limits.Strict.RequestsPerWindow, limits.Moderate.RequestsPerWindow)
	require.Less(t, limits.Moderate.RequestsPerWindow, limits.Lenient.RequestsPerWindow)
	require.Less(t, limits.Lenient.RequestsPerWindow, limits.Public.RequestsPerWindow)

	t.Setenv("RATELIMIT_STRICT_REQUESTS", "2")
	require.Equal(t, 2, httpapi.DefaultRateLimits().Strict.RequestsPerWindow)
}
