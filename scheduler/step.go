package scheduler

import (
	"github.com/oortcore/simulator/sandbox"
	"github.com/oortcore/simulator/scenario"
)

// Step advances the run by exactly one fixed tick (spec.md §4.1, §4.5):
// every live ship's controller runs once, in ascending handle order, via
// the Receive -> WriteInputs -> RunTick -> ReadOutputs -> Send protocol,
// with the ship's own RNG (s.RNG) handed to the call by pointer and
// advanced in place; no copy of its state is saved or restored around
// the call. The physics world then advances one step, after which the
// controllers' debug lines are placed in the world for the snapshot; finally the scenario's own
// per-tick hook and status check run. A crashed controller destroys only
// its own ship (spec.md §7 "ControllerCrash... is local; the simulation
// continues").
func (sched *Scheduler) Step() scenario.StatusResult {
	w := sched.world
	var debug []string

	for _, s := range w.Ships() {
		if s.Destroyed {
			continue
		}
		inst, ok := sched.instances[s.Handle]
		if !ok {
			continue // a ship from a team whose code failed to load
		}

		s.RadioReceived, s.RadioHasMessage = w.Receive(s.Team, s.RadioChannel, w.Tick)

		var mem sandbox.Memory
		perShipSeed := uint32(s.Handle) ^ w.Seed()
		sandbox.WriteInputs(&mem, s, perShipSeed)

		crashed, message := inst.RunTick(&mem, s.RNG)
		if crashed {
			s.Destroyed = true
			s.CrashMessage = message
			sched.Events = append(sched.Events, Event{
				Kind: ControllerCrash, Tick: w.Tick, Team: s.Team, Ship: s.Handle,
				Message: message,
			})
			continue
		}
		sandbox.ReadOutputs(&mem, s)
		debug = append(debug, inst.DebugLines...)

		// Publish this ship's radio send, in ascending-handle order, which
		// is what gives same-tick same-channel writes their documented
		// last-writer-wins-by-handle semantics (spec.md §4.4, §9).
		if s.RadioSendPending {
			w.Send(s.Team, s.RadioChannel, w.Tick, s.RadioSend)
		}
	}

	w.Step()
	// World.Step clears DebugLines as it starts, so this tick's lines are
	// added only after it.
	w.DebugLines = append(w.DebugLines, debug...)

	// Ships spawned by a missile tube this tick need their own sandbox
	// instance, loaded with the owning team's code, before they can act
	// next tick (spec.md §4.2, world.World.Launches).
	for _, h := range w.Launches {
		s := w.Ship(h)
		if s == nil {
			continue
		}
		if err := sched.attach(s); err != nil {
			s.Destroyed = true
			s.CrashMessage = "team code failed to load"
			sched.Events = append(sched.Events, Event{
				Kind: LoadError, Tick: w.Tick, Team: s.Team, Ship: s.Handle,
				Message: err.Error(),
			})
		}
	}

	// Drop sandbox instances for ships the world just garbage-collected,
	// so the instance map doesn't grow without bound over a long run.
	for _, h := range w.ShipsDestroyedThisTick {
		delete(sched.instances, h)
	}

	sched.scen.Tick(w)
	sched.status = sched.scen.Status(w)
	return sched.status
}

// Run steps the scheduler until the scenario reaches a terminal status
// (Victory, Defeat, or Finished) or maxTicks elapses, whichever comes
// first, returning the final status. maxTicks <= 0 means no cap beyond
// whatever the scenario's own Status enforces.
func (sched *Scheduler) Run(maxTicks int64) scenario.StatusResult {
	for maxTicks <= 0 || sched.world.Tick < maxTicks {
		result := sched.Step()
		if result.Status != scenario.Running {
			return result
		}
	}
	return sched.status
}
