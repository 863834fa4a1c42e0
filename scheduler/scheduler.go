// Package scheduler wires world, sandbox, and scenario together into one
// runnable simulation (spec.md §4.5-§4.6): it owns the per-ship sandbox
// instances, drives the host/guest protocol once per tick in handle
// order, advances the physics world, and evaluates scenario status.
// Generalizes the teacher's game loop (server/game_loop.go's per-frame
// "collect bot commands, step physics, broadcast") from a fixed 60Hz
// broadcast hub to an embeddable, headless stepper a caller can drive at
// any pace and inspect via Snapshot/Hash.
package scheduler

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oortcore/simulator/sandbox"
	"github.com/oortcore/simulator/scenario"
	"github.com/oortcore/simulator/world"
)

// Code names the controller a team runs, resolved against a
// sandbox.Registry. Selecting between a scenario's "initial" and
// "solution" code pairs (spec.md §9 open question (b)) is the caller's
// job; the scheduler only ever sees one resolved Code per team.
type Code struct {
	Team int
	Name string
}

// Config describes one run: which scenario, which seed, and which code
// each team plays.
type Config struct {
	ScenarioName string
	Seed         uint32
	Codes        []Code
	// Deadline bounds every controller invocation in this run (spec.md
	// §5). Zero means sandbox.DefaultDeadline.
	Deadline time.Duration
}

// EventKind classifies one entry in a Scheduler's error log (spec.md §7).
type EventKind int

const (
	// ControllerCrash: a guest panicked or exceeded its deadline.
	// Non-finite command values are zeroed by sandbox.ReadOutputs and do
	// not count as a crash. Local to one ship; the run continues.
	ControllerCrash EventKind = iota
	// LoadError: a team's code failed to instantiate. Fatal for that
	// team: every current ship on it is marked crashed before its first
	// tick.
	LoadError
	// ScenarioError: the configured scenario name is not registered.
	// Fatal at setup.
	ScenarioError
)

func (k EventKind) String() string {
	switch k {
	case ControllerCrash:
		return "controller_crash"
	case LoadError:
		return "load_error"
	case ScenarioError:
		return "scenario_error"
	default:
		return "unknown"
	}
}

// Event records one error surfaced during New or Step (spec.md §7
// propagation: "LoadError and ScenarioError surface to the caller of
// step() via the status channel").
type Event struct {
	Kind    EventKind
	Tick    int64
	Team    int
	Ship    world.Handle
	Message string
}

// Scheduler runs one scenario instance to completion, tick by tick.
type Scheduler struct {
	RunID uuid.UUID

	world    *world.World
	scen     scenario.Scenario
	registry *sandbox.Registry

	teamCode  map[int]string
	instances map[world.Handle]*sandbox.Instance
	deadline  time.Duration

	Events []Event
	status scenario.StatusResult
}

// New builds a Scheduler for cfg against registry, instantiating cfg's
// scenario and placing its initial ships (spec.md §4.6). A bad scenario
// name is a ScenarioError (spec.md §7); a team code name that fails to
// resolve is a LoadError for that team, and every ship already spawned
// on it is marked crashed before the first tick (spec.md §7).
func New(cfg Config, scenarios *scenario.Registry, registry *sandbox.Registry) (*Scheduler, error) {
	scen, err := scenarios.New(cfg.ScenarioName)
	if err != nil {
		return nil, fmt.Errorf("scheduler: %w", err)
	}

	w := world.New(scen.WorldSize(), cfg.Seed)
	scen.Init(w, cfg.Seed)

	sched := &Scheduler{
		RunID:     uuid.New(),
		world:     w,
		scen:      scen,
		registry:  registry,
		teamCode:  make(map[int]string, len(cfg.Codes)),
		instances: make(map[world.Handle]*sandbox.Instance, len(w.Ships())),
		deadline:  cfg.Deadline,
	}
	for _, c := range cfg.Codes {
		sched.teamCode[c.Team] = c.Name
	}

	loadFailedTeams := make(map[int]bool)
	for _, s := range w.Ships() {
		if loadFailedTeams[s.Team] {
			s.Destroyed = true
			s.CrashMessage = "team code failed to load"
			continue
		}
		if err := sched.attach(s); err != nil {
			loadFailedTeams[s.Team] = true
			s.Destroyed = true
			s.CrashMessage = "team code failed to load"
			sched.Events = append(sched.Events, Event{
				Kind: LoadError, Tick: w.Tick, Team: s.Team, Ship: s.Handle,
				Message: err.Error(),
			})
		}
	}
	return sched, nil
}

// attach instantiates and registers a sandbox instance for s from its
// team's configured code.
func (sched *Scheduler) attach(s *world.Ship) error {
	name, ok := sched.teamCode[s.Team]
	if !ok {
		return fmt.Errorf("no code configured for team %d", s.Team)
	}
	module, err := sched.registry.New(name)
	if err != nil {
		return err
	}
	inst := sandbox.NewInstance(module, int64(s.Handle), nil)
	if sched.deadline > 0 {
		inst.Deadline = sched.deadline
	}
	sched.instances[s.Handle] = inst
	return nil
}

// World exposes the underlying world for read-only inspection (snapshot,
// hashing). Callers must not mutate it directly; all state changes flow
// through Step.
func (sched *Scheduler) World() *world.World { return sched.world }

// Status reports the scenario's current status, refreshed by the last
// Step call.
func (sched *Scheduler) Status() scenario.StatusResult { return sched.status }
