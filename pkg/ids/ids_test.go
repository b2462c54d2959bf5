package ids

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Shape(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := New()
		require.True(t, IsID(id), "generated id %q must match the id shape", id)
		_, dup := seen[id]
		require.False(t, dup, "generated id %q repeated", id)
		seen[id] = struct{}{}
	}
}

func TestIsID(t *testing.T) {
	require.True(t, IsID("cmf8xk2yq0001ab12cd34ef56"))
	require.True(t, IsID("CMF8XK2YQ0001AB12CD34EF56"))
	require.False(t, IsID("mf8xk2yq0001ab12cd34ef56x"))
	require.False(t, IsID("c123"))
	require.False(t, IsID("cmf8xk2yq0001ab12cd34ef5"))
	require.False(t, IsID("cmf8xk2yq0001ab12cd34ef567"))
	require.False(t, IsID("Ankara"))
	require.False(t, IsID(""))
}
