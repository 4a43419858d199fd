package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_OpenAndLookup tests that an opened window resolves by id
func TestRegistry_OpenAndLookup(t *testing.T) {
	registry := NewRegistry()

	w := registry.Open("main")
	require.NotNil(t, w)
	assert.Equal(t, "main", w.Title())
	assert.True(t, w.Live())

	resolved := registry.Lookup(w.ID())
	assert.Same(t, w, resolved)
	assert.Equal(t, 1, registry.Count())
}

// TestRegistry_LookupUnknownID tests that an unknown id resolves to nil
func TestRegistry_LookupUnknownID(t *testing.T) {
	registry := NewRegistry()
	assert.Nil(t, registry.Lookup(42))
}

// TestRegistry_ClosedWindowResolvesToNil tests the liveness check: a closed
// window must never be handed back as a dialog owner.
func TestRegistry_ClosedWindowResolvesToNil(t *testing.T) {
	registry := NewRegistry()

	w := registry.Open("settings")
	id := w.ID()
	registry.Close(w)

	assert.False(t, w.Live())
	assert.Nil(t, registry.Lookup(id))
	assert.Equal(t, 0, registry.Count())
}

// TestRegistry_CloseTwice tests that double close is a no-op
func TestRegistry_CloseTwice(t *testing.T) {
	registry := NewRegistry()

	w := registry.Open("main")
	registry.Close(w)
	registry.Close(w)

	assert.Equal(t, 0, registry.Count())
}

// TestRegistry_CloseNil tests that closing nil does not panic
func TestRegistry_CloseNil(t *testing.T) {
	registry := NewRegistry()
	registry.Close(nil)
	assert.Equal(t, 0, registry.Count())
}

// TestRegistry_IDsAreUnique tests that ids are never reused across windows
func TestRegistry_IDsAreUnique(t *testing.T) {
	registry := NewRegistry()

	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		w := registry.Open("w")
		require.False(t, seen[w.ID()])
		seen[w.ID()] = true
		if i%2 == 0 {
			registry.Close(w)
		}
	}
	assert.Equal(t, 50, registry.Count())
}
