// ABOUTME: Process-wide active theme behind an atomic.Pointer
// ABOUTME: Activate resolves a builtin plus overrides; Current() is read by the render loop each frame

package theme

import (
	"fmt"
	"sync/atomic"
)

var current atomic.Pointer[Theme]

func init() {
	current.Store(&Theme{Name: "default", Palette: DefaultPalette()})
}

// Current returns the active theme. Never returns nil.
func Current() *Theme {
	return current.Load()
}

// Set atomically replaces the active theme.
func Set(t *Theme) {
	current.Store(t)
}

// Activate looks up a builtin theme, applies the overrides, and makes
// the result current. An empty name means "default".
func Activate(name string, overrides Palette) (*Theme, error) {
	if name == "" {
		name = "default"
	}
	base := Builtin(name)
	if base == nil {
		return nil, fmt.Errorf("unknown theme %q (have %v)", name, BuiltinNames())
	}
	t := &Theme{Name: base.Name, Palette: base.Palette.WithOverrides(overrides)}
	Set(t)
	return t, nil
}
