// Package scenario holds the built-in scenario library: entity
// placement, scenario-owned per-tick state, and victory predicates
// (spec.md §4.6). Generalizes the teacher's victory.go/tournament.go
// (fixed win/draw rules over a hardcoded Netrek ruleset) into an open
// Scenario interface with a registry of concrete scenarios, mirroring
// original_source/shared/simulator/src/scenario/*.rs file-for-file.
package scenario

import (
	"fmt"

	"github.com/oortcore/simulator/world"
)

// Status is a scenario's outcome classification (spec.md §4.6).
type Status int

const (
	Running Status = iota
	Victory
	Defeat
	Finished
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// StatusResult pairs a Status with the winning team when Status is
// Victory (spec.md §4.6: "Victory{team}").
type StatusResult struct {
	Status Status
	Team   int
}

// Code names one team's compiled guest program: the sandbox registry key
// standing in for a compiled blob (spec.md §4.5, §6).
type Code struct {
	Name string
}

// Scenario places entities into a world, advances scenario-owned state
// each tick (e.g. moving a target ring), and classifies the outcome
// (spec.md §4.6).
type Scenario interface {
	Name() string
	WorldSize() float64
	// InitialCode lists the per-team default code offered by the editor,
	// indexed by team.
	InitialCode() []Code
	// Solution is the reference implementation used for scoring/self-play.
	Solution() Code
	Init(w *world.World, seed uint32)
	Tick(w *world.World)
	Status(w *world.World) StatusResult
}

// Registry maps a scenario name to the factory that constructs it.
type Registry struct {
	factories map[string]func() Scenario
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]func() Scenario)}
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory func() Scenario) {
	r.factories[name] = factory
}

// Error reports an unknown scenario name.
type Error struct {
	Name string
}

func (e *Error) Error() string { return fmt.Sprintf("scenario: unknown scenario %q", e.Name) }

// New instantiates the named scenario.
func (r *Registry) New(name string) (Scenario, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, &Error{Name: name}
	}
	return factory(), nil
}

// Names lists every registered scenario name.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
