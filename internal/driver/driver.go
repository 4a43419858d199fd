// Package driver wires the built-in dialog drivers into a registry.
package driver

import (
	"fmt"

	"github.com/iw/electron/internal/dialog"
	"github.com/iw/electron/internal/driver/term"
	"github.com/iw/electron/internal/driver/zenity"
)

// DefaultRegistry returns a registry holding every built-in driver. Driver
// construction is deferred to first use, so registering a driver whose
// toolkit is missing on this system is not an error; opening it is.
func DefaultRegistry() (*dialog.Registry, error) {
	registry := dialog.NewRegistry()

	builtins := map[string]dialog.Factory{
		zenity.DriverName: func() (dialog.Driver, error) { return zenity.New() },
		term.DriverName:   func() (dialog.Driver, error) { return term.New(), nil },
	}

	for name, factory := range builtins {
		if err := registry.Register(name, factory); err != nil {
			return nil, fmt.Errorf("failed to register built-in driver: %w", err)
		}
	}
	return registry, nil
}
