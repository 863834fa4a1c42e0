package sandbox

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Module is a compiled guest control program: the stand-in for the
// sandboxed binary blob spec.md §4.5 describes. A Module may serve many
// ships at once when a team's ships share identical code (spec.md §4.5
// "Team controller"); ShipKey distinguishes which logical ship this call
// is for, and any per-ship state the module keeps must be indexed by it.
type Module interface {
	Tick(shipKey int64, api *API)
}

// DefaultDeadline is the per-tick wall-clock budget bounding a single
// controller invocation (spec.md §5). Instance.Deadline defaults to this
// value; the budget is the same for every ship class.
const DefaultDeadline = 5 * time.Millisecond

// Instance is one ship's sandbox: a module reference plus the per-tick
// scratch state the host drains after every call. Each ship gets its own
// Instance; the scheduler also builds a fresh Module for every ship
// (Registry.New per attach), so ships on the same team do not share a
// Module value.
type Instance struct {
	Module   Module
	ShipKey  int64
	Deadline time.Duration
	Env      map[string]string

	PanicMessage string
	DebugLines   []string
}

// NewInstance builds a sandbox instance bound to module for the given
// logical ship key and static environment table.
func NewInstance(module Module, shipKey int64, env map[string]string) *Instance {
	return &Instance{Module: module, ShipKey: shipKey, Deadline: DefaultDeadline, Env: env}
}

// RunTick executes the per-tick protocol of spec.md §4.5 steps 1-5
// around a single call into the guest: it assumes the caller has already
// written mem's input fields (step 1) and hands it rng, the ship's own
// PRNG, which the guest advances in place; no copy of its state is taken
// or restored (step 2). It calls tick (step 3), and reports whether the
// ship crashed, either by panic or by exceeding Deadline (step 5); the
// caller is responsible for reading mem's output fields (step 4) only
// when crashed is false,
// matching "a crash leaves outputs undefined; the ship is destroyed".
func (inst *Instance) RunTick(mem *Memory, rng *rand.Rand) (crashed bool, crashMessage string) {
	inst.DebugLines = inst.DebugLines[:0]
	inst.PanicMessage = ""

	deadline := inst.Deadline
	if deadline <= 0 {
		deadline = DefaultDeadline
	}

	done := make(chan struct{})
	ctx := &Context{RNG: rng, env: inst.Env, debug: &inst.DebugLines}
	api := newAPI(mem, ctx)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				inst.PanicMessage = fmt.Sprintf("%v", r)
			}
			close(done)
		}()
		inst.Module.Tick(inst.ShipKey, api)
	}()

	select {
	case <-done:
	case <-time.After(deadline):
		// The goroutine above is abandoned, not killed: Go has no forced
		// preemption of a running goroutine. A runaway guest's goroutine
		// leaks until it happens to return; the ship is marked crashed
		// immediately regardless (see DESIGN.md).
		return true, "deadline exceeded"
	}

	if inst.PanicMessage != "" {
		return true, inst.PanicMessage
	}
	return false, ""
}
