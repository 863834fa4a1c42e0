package sandbox

import "fmt"

// ModuleFactory constructs a fresh Module instance. Builtins register a
// factory rather than a shared value because a module may carry mutable
// per-ship-key state (e.g. a patrol target) that must not leak between
// independent scenario runs.
type ModuleFactory func() Module

// Registry maps a compiled-blob name to the factory that constructs it,
// generalizing the teacher's fixed BotNames/behavior-selection table
// (server/bot_types.go, server/bots.go) from a closed roster of bot
// personalities to an open table of named guest programs: builtins today,
// user-submitted compiled blobs in the full pipeline (spec.md §6).
type Registry struct {
	factories map[string]ModuleFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]ModuleFactory)}
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory ModuleFactory) {
	r.factories[name] = factory
}

// New instantiates a fresh Module for name (spec.md §4.5 LoadError: "module
// failed to instantiate" maps to the returned error here).
func (r *Registry) New(name string) (Module, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("sandbox: unknown module %q", name)
	}
	return factory(), nil
}

// Names lists every registered module name.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// NewBuiltinRegistry returns a Registry preloaded with the builtin guest
// modules (builtins.go), standing in for the system's precompiled AI
// library (spec.md §6 "builtin AI").
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	r.Register("builtin.guns", func() Module { return &gunsModule{} })
	r.Register("builtin.fly_to_target", func() Module { return &flyToTargetModule{} })
	r.Register("builtin.rotate_and_fire", func() Module { return &rotateAndFireModule{} })
	r.Register("builtin.lead_and_fire", func() Module { return &leadAndFireModule{} })
	r.Register("builtin.radar_hunter", func() Module { return &radarHunterModule{} })
	r.Register("builtin.radio_intercept", func() Module { return &radioInterceptModule{} })
	r.Register("builtin.wanderer", func() Module { return newWandererModule() })
	r.Register("builtin.divide_by_zero", func() Module { return &divideByZeroModule{} })
	return r
}
