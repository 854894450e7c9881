package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBucketsSweepIdleKeys(t *testing.T) {
	b := newBuckets(PerMinute(2))
	require.InDelta(t, float64(time.Minute), float64(b.idle), float64(time.Millisecond))

	start := time.Now()
	first := b.get("a", start)
	require.Same(t, first, b.get("a", start.Add(30*time.Second)))

	b.get("b", start.Add(50*time.Second))
	require.Len(t, b.byKey, 2)

	// both were last seen over a minute before this
	b.get("b", start.Add(2*time.Minute))
	require.Len(t, b.byKey, 1)
	require.Contains(t, b.byKey, "b")
	require.NotSame(t, first, b.get("a", start.Add(2*time.Minute)))
}
