package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithDefaults(t *testing.T) {
	require.Equal(t, ":memory:?_pragma=foreign_keys(1)&_time_format=sqlite", withDefaults(":memory:"))
	require.Equal(t, "file:x.db?cache=shared&_pragma=foreign_keys(1)&_time_format=sqlite", withDefaults("file:x.db?cache=shared"))
	require.Equal(t, "x.db?_time_format=sqlite&_pragma=foreign_keys(1)", withDefaults("x.db?_time_format=sqlite"))
}
