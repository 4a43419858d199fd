package dialog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDriver struct{ name string }

func (d *stubDriver) Name() string                              { return d.name }
func (d *stubDriver) MessageBox(*MessageBoxRequest) (int, error) { return 0, nil }
func (d *stubDriver) OpenFiles(*OpenRequest) ([]string, error)   { return nil, nil }
func (d *stubDriver) SaveFile(*SaveRequest) (string, error)      { return "", nil }

// TestRegistry_RegisterAndOpen tests the register → open round trip
func TestRegistry_RegisterAndOpen(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("stub", func() (Driver, error) {
		return &stubDriver{name: "stub"}, nil
	}))

	driver, err := registry.Open("stub")
	require.NoError(t, err)
	assert.Equal(t, "stub", driver.Name())
}

// TestRegistry_DuplicateName tests that a name registers at most once
func TestRegistry_DuplicateName(t *testing.T) {
	registry := NewRegistry()
	factory := func() (Driver, error) { return &stubDriver{}, nil }

	require.NoError(t, registry.Register("stub", factory))
	err := registry.Register("stub", factory)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

// TestRegistry_InvalidRegistration tests empty names and nil factories
func TestRegistry_InvalidRegistration(t *testing.T) {
	registry := NewRegistry()
	assert.Error(t, registry.Register("", func() (Driver, error) { return &stubDriver{}, nil }))
	assert.Error(t, registry.Register("stub", nil))
}

// TestRegistry_Names tests sorted name enumeration
func TestRegistry_Names(t *testing.T) {
	registry := NewRegistry()
	factory := func() (Driver, error) { return &stubDriver{}, nil }
	for _, name := range []string{"zenity", "term", "kdialog"} {
		require.NoError(t, registry.Register(name, factory))
	}

	assert.Equal(t, []string{"kdialog", "term", "zenity"}, registry.Names())
}

// TestRegistry_UnknownWithSuggestion tests the typo hint in the error
func TestRegistry_UnknownWithSuggestion(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("zenity", func() (Driver, error) { return &stubDriver{}, nil }))

	_, err := registry.Open("zenit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean 'zenity'?")
}

// TestRegistry_UnknownWithoutSuggestion tests the error when nothing is close
func TestRegistry_UnknownWithoutSuggestion(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("zenity", func() (Driver, error) { return &stubDriver{}, nil }))

	_, err := registry.Open("cocoa")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

// TestRegistry_FactoryFailure tests that construction errors are wrapped
func TestRegistry_FactoryFailure(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("stub", func() (Driver, error) {
		return nil, fmt.Errorf("toolkit not available")
	}))

	_, err := registry.Open("stub")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open dialog driver 'stub'")
	assert.Contains(t, err.Error(), "toolkit not available")
}

// TestSuggestSimilarDriverName tests the distance cutoff
func TestSuggestSimilarDriverName(t *testing.T) {
	names := []string{"zenity", "term"}

	assert.Equal(t, "zenity", SuggestSimilarDriverName(names, "Zenit"))
	assert.Equal(t, "term", SuggestSimilarDriverName(names, "trem"))
	assert.Equal(t, "", SuggestSimilarDriverName(names, "qt"))
	assert.Equal(t, "", SuggestSimilarDriverName(nil, "term"))
}
