package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/mutuals/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddlewareUsesRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	// The middleware wraps the mux, so it only learns the pattern after
	// ServeHTTP, which is when it reads it.
	h := metrics.HTTPMiddleware(mux)

	before := testutil.CollectAndCount(metrics.HTTPRequestDuration)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, before+1, testutil.CollectAndCount(metrics.HTTPRequestDuration))
}

func TestCounters(t *testing.T) {
	metrics.IncrementMessageTransition("Draft", "Sent")
	require.InDelta(t, 1, testutil.ToFloat64(metrics.MessageTransitions.WithLabelValues("Draft", "Sent")), 0.001)

	metrics.AddDiscoveredRows("mutual", 0)
	metrics.AddDiscoveredRows("mutual", 3)
	require.InDelta(t, 3, testutil.ToFloat64(metrics.DiscoveredRows.WithLabelValues("mutual")), 0.001)
}
