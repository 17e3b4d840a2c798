package macro

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Registry maps capabilities to adapters.
//
// It is built once by NewRegistry and is read-only afterwards, so one
// Registry can be shared by every render. Adapters are created lazily on
// first use and memoized per capability.
type Registry struct {
	factories map[Capability]Factory
	adapters  sync.Map // Capability -> Adapter
	group     singleflight.Group
	order     []Capability
}

// RegistryOption configures a Registry during construction.
type RegistryOption func(*Registry) error

// WithAdapter registers a factory for a capability. Built-in capabilities are
// registered before any option runs; registering an existing capability
// replaces its factory but keeps its position.
//
// Example:
//
//	reg, err := macro.NewRegistry(
//	    macro.WithAdapter("host.player.location", func() macro.Adapter {
//	        return macro.Bridge("host.player.location", macro.Builtin(macro.CapLocation),
//	            func(p *game.Player) macro.Locatable { return playerLocation{p} })
//	    }),
//	)
func WithAdapter(capability Capability, factory Factory) RegistryOption {
	return func(r *Registry) error {
		if capability == "" {
			return ErrEmptyCapability
		}
		if factory == nil {
			return fmt.Errorf("%w: %q", ErrNilFactory, capability)
		}
		r.register(capability, factory)
		return nil
	}
}

// NewRegistry creates a registry holding the built-in adapters followed by
// the adapters registered through opts.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	r := &Registry{
		factories: make(map[Capability]Factory, len(builtins)+len(opts)),
	}

	for _, b := range builtins {
		r.register(b.capability, b.factory)
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply registry option: %w", err)
		}
	}

	return r, nil
}

func (r *Registry) register(capability Capability, factory Factory) {
	if _, exists := r.factories[capability]; !exists {
		r.order = append(r.order, capability)
	}
	r.factories[capability] = factory
}

// Adapter returns the adapter for a capability, creating it on first use.
// Concurrent first calls share a single factory invocation. A factory that
// panics or returns nil leaves the capability without an adapter.
func (r *Registry) Adapter(capability Capability) (Adapter, bool) {
	if a, ok := r.adapters.Load(capability); ok {
		return a.(Adapter), true
	}

	factory, ok := r.factories[capability]
	if !ok {
		return nil, false
	}

	v, _, _ := r.group.Do(string(capability), func() (any, error) {
		if a, ok := r.adapters.Load(capability); ok {
			return a, nil
		}
		a := build(factory)
		if a == nil {
			return nil, nil
		}
		r.adapters.Store(capability, a)
		return a, nil
	})

	a, ok := v.(Adapter)
	return a, ok
}

// MatchingAdapters returns every adapter that accepts v, in registration
// order. A nil value matches nothing; an adapter that panics in Adapt does
// not match.
func (r *Registry) MatchingAdapters(v any) []Adapter {
	if v == nil {
		return nil
	}

	var matches []Adapter
	for _, capability := range r.order {
		a, ok := r.Adapter(capability)
		if !ok {
			continue
		}
		if _, ok := adapt(a, v); ok {
			matches = append(matches, a)
		}
	}
	return matches
}

func build(factory Factory) (a Adapter) {
	defer func() {
		if recover() != nil {
			a = nil
		}
	}()
	return factory()
}

// adapt calls a.Adapt, reporting a panic as no match.
func adapt(a Adapter, v any) (e Extractor, ok bool) {
	defer func() {
		if recover() != nil {
			e, ok = nil, false
		}
	}()
	return a.Adapt(v)
}

// Capabilities lists the registered capabilities in registration order.
func (r *Registry) Capabilities() []Capability {
	return slices.Clone(r.order)
}
