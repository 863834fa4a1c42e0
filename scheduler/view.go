package scheduler

import "github.com/oortcore/simulator/snapshot"

// Snapshot renders the scheduler's current world state for a caller
// outside the simulation loop (spec.md §4.7).
func (sched *Scheduler) Snapshot() snapshot.Snapshot {
	return snapshot.FromWorld(sched.world)
}

// Hash returns the scheduler's current determinism fingerprint (spec.md
// §4.7, §8 "running to terminal status twice yields the same final
// snapshot hash").
func (sched *Scheduler) Hash() uint64 {
	return snapshot.Hash(sched.world)
}
