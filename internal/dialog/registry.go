package dialog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"
)

// Factory constructs a driver. Construction may fail, e.g. when the native
// toolkit is unavailable on this system.
type Factory func() (Driver, error)

// Registry maps driver names to factories. Drivers register themselves at
// startup; the CLI resolves the configured name through Open.
type Registry struct {
	factories  *xsync.MapOf[string, Factory]
	registered mapset.Set[string]
}

// NewRegistry creates an empty driver registry.
func NewRegistry() *Registry {
	return &Registry{
		factories:  xsync.NewMapOf[string, Factory](),
		registered: mapset.NewSet[string](),
	}
}

// Register adds a named driver factory. Registering the same name twice is an
// error.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("driver name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("driver factory for '%s' cannot be nil", name)
	}
	if !r.registered.Add(name) {
		return fmt.Errorf("driver '%s' is already registered", name)
	}
	r.factories.Store(name, factory)
	zap.L().Debug("Registered dialog driver", zap.String("driver", name))
	return nil
}

// Names returns the registered driver names in sorted order.
func (r *Registry) Names() []string {
	names := r.registered.ToSlice()
	sort.Strings(names)
	return names
}

// Open constructs the named driver. An unknown name produces an error that
// includes the closest registered name, if one is close enough.
func (r *Registry) Open(name string) (Driver, error) {
	factory, ok := r.factories.Load(name)
	if !ok {
		if suggestion := SuggestSimilarDriverName(r.Names(), name); suggestion != "" {
			return nil, fmt.Errorf("unknown dialog driver '%s' (did you mean '%s'?)", name, suggestion)
		}
		return nil, fmt.Errorf("unknown dialog driver '%s'", name)
	}
	driver, err := factory()
	if err != nil {
		return nil, fmt.Errorf("failed to open dialog driver '%s': %w", name, err)
	}
	return driver, nil
}

// SuggestSimilarDriverName finds the most similar driver name for typo
// detection using Levenshtein distance.
func SuggestSimilarDriverName(names []string, name string) string {
	var best string
	bestDistance := 3 // Only consider distances <= 2

	nameLower := strings.ToLower(name)

	for _, candidate := range names {
		distance := levenshtein.ComputeDistance(nameLower, strings.ToLower(candidate))
		if distance < bestDistance {
			bestDistance = distance
			best = candidate
		}
	}

	return best
}
