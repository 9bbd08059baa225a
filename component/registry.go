package component

import (
	"errors"
	"fmt"
	"sort"

	"github.com/matt-g-everett/ledseq/sequence"
)

// ErrUnknownType is returned when no factory is registered under a name.
var ErrUnknownType = errors.New("unknown component type")

// Factory makes a zero component ready for ResetComponent.
type Factory func() sequence.Component

// Registry maps authored type names to component factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Default returns a registry holding every built-in component.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister("transform/position", func() sequence.Component { return new(TransformPosition) })
	r.MustRegister("transform/scale", func() sequence.Component { return new(TransformScale) })
	r.MustRegister("light/colour", func() sequence.Component { return new(LightColour) })
	r.MustRegister("light/brightness", func() sequence.Component { return new(LightBrightness) })
	return r
}

// Register adds f under name.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" || f == nil {
		return errors.New("component name and factory are required")
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("component %q already registered", name)
	}
	r.factories[name] = f
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(name string, f Factory) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// New makes the component registered under name, with defaults applied.
func (r *Registry) New(name string) (sequence.Component, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	c := f()
	c.ResetComponent()
	return c, nil
}

// Names lists the registered type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
