// Package host is the process-level binary boundary: it runs one or
// more scheduler.Scheduler instances at the fixed tick rate and streams
// their snapshots to external subscribers over a websocket, generalizing
// the teacher's Server/gameLoop/updateGame hub (server/websocket.go)
// from a single shared Netrek galaxy with bidirectional player input to
// many independent, push-only simulation runs (spec.md §6: "external
// host... worker message loop").
package host

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oortcore/simulator/sandbox"
	"github.com/oortcore/simulator/scenario"
	"github.com/oortcore/simulator/scheduler"
	"github.com/oortcore/simulator/snapshot"
	"github.com/oortcore/simulator/world"
)

// Defaults bundles the host-process-level fallbacks a RunRequest may
// omit: which scenario/seed to run and how long a controller invocation
// may take before it is aborted as a crash (config.Config's
// DefaultScenario/DefaultSeed/ControllerDeadline, spec.md §5-§6).
type Defaults struct {
	Scenario string
	Seed     uint32
	Deadline time.Duration
}

// RunRequest describes a scheduler run a caller wants started.
type RunRequest struct {
	Scenario string          `json:"scenario"`
	Seed     uint32          `json:"seed"`
	Codes    []scheduler.Code `json:"codes"`
}

// run is one live scheduler plus its websocket subscribers.
type run struct {
	id    uuid.UUID
	sched *scheduler.Scheduler

	mu      sync.RWMutex
	clients map[*Client]bool
}

// Hub owns every run started by this process. Its zero value is not
// ready for use; construct one with NewHub.
type Hub struct {
	scenarios *scenario.Registry
	modules   *sandbox.Registry
	logger    *log.Logger
	defaults  Defaults

	mu   sync.RWMutex
	runs map[uuid.UUID]*run
}

// NewHub builds a Hub backed by the builtin scenario and module
// registries, logging through logger (the teacher threads a bare
// *log.Logger the same way throughout server/websocket.go), and falling
// back to defaults for any RunRequest field the caller leaves unset.
func NewHub(logger *log.Logger, defaults Defaults) *Hub {
	return &Hub{
		scenarios: scenario.NewBuiltinRegistry(),
		modules:   sandbox.NewBuiltinRegistry(),
		logger:    logger,
		defaults:  defaults,
		runs:      make(map[uuid.UUID]*run),
	}
}

// StartRun creates and registers a new scheduler run, launching its tick
// loop in the background. It returns the run's id immediately; callers
// attach to its live snapshot stream via Subscribe. An empty req.Scenario
// falls back to h.defaults.Scenario.
func (h *Hub) StartRun(req RunRequest) (uuid.UUID, error) {
	scenarioName := req.Scenario
	if scenarioName == "" {
		scenarioName = h.defaults.Scenario
	}
	seed := req.Seed
	if seed == 0 {
		seed = h.defaults.Seed
	}

	sched, err := scheduler.New(scheduler.Config{
		ScenarioName: scenarioName,
		Seed:         seed,
		Codes:        req.Codes,
		Deadline:     h.defaults.Deadline,
	}, h.scenarios, h.modules)
	if err != nil {
		return uuid.UUID{}, err
	}

	r := &run{id: sched.RunID, sched: sched, clients: make(map[*Client]bool)}
	h.mu.Lock()
	h.runs[r.id] = r
	h.mu.Unlock()

	h.logger.Printf("run %s started: scenario=%s seed=%d", r.id, scenarioName, seed)
	go h.driveRun(r)
	return r.id, nil
}

// driveRun steps one run at the simulation's fixed rate until it reaches
// a terminal status, broadcasting a snapshot to every subscriber after
// each tick.
func (h *Hub) driveRun(r *run) {
	ticker := time.NewTicker(time.Duration(world.DT * float64(time.Second)))
	defer ticker.Stop()

	for range ticker.C {
		status := r.sched.Step()
		r.broadcast(r.sched.Snapshot())
		if status.Status != scenario.Running {
			h.logger.Printf("run %s finished: status=%v team=%d hash=%d", r.id, status.Status, status.Team, r.sched.Hash())
			r.closeAll()
			h.mu.Lock()
			delete(h.runs, r.id)
			h.mu.Unlock()
			return
		}
	}
}

// Run looks up a live run by id, or nil.
func (h *Hub) Run(id uuid.UUID) (*scheduler.Scheduler, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.runs[id]
	if !ok {
		return nil, false
	}
	return r.sched, true
}

// Subscribe attaches c to id's live snapshot broadcast. It returns false
// if no such run exists.
func (h *Hub) Subscribe(id uuid.UUID, c *Client) bool {
	h.mu.RLock()
	r, ok := h.runs[id]
	h.mu.RUnlock()
	if !ok {
		return false
	}
	r.mu.Lock()
	r.clients[c] = true
	r.mu.Unlock()
	return true
}

// Unsubscribe detaches c from id's broadcast set.
func (h *Hub) Unsubscribe(id uuid.UUID, c *Client) {
	h.mu.RLock()
	r, ok := h.runs[id]
	h.mu.RUnlock()
	if !ok {
		return
	}
	r.mu.Lock()
	delete(r.clients, c)
	r.mu.Unlock()
}

func (r *run) broadcast(snap snapshot.Snapshot) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for c := range r.clients {
		select {
		case c.send <- snap:
		default:
			// Slow subscriber: drop this frame rather than block the tick
			// loop (same tradeoff as the teacher's broadcast case in
			// Server.Run).
		}
	}
}

func (r *run) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for c := range r.clients {
		close(c.send)
	}
	r.clients = make(map[*Client]bool)
}
