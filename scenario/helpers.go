package scenario

import (
	"math/rand/v2"

	"github.com/oortcore/simulator/class"
	"github.com/oortcore/simulator/vec2"
	"github.com/oortcore/simulator/world"
)

// newScenarioRNG derives a ChaCha8 PRNG from the scenario seed (spec.md
// §4.6: "every randomized placement draws from an RNG seeded from the
// scenario seed via a stream cipher (ChaCha-8 family). Scenario RNG is
// separate from per-ship RNGs."). The 32-byte expansion mirrors
// world.seedFor's (documented there and in DESIGN.md) but without the
// per-ship handle term, since there is exactly one scenario RNG per run.
func newScenarioRNG(seed uint32) *rand.Rand {
	var key [32]byte
	for i := 0; i < 32; i += 4 {
		v := seed + uint32(i)*0x85EBCA6B
		key[i] = byte(v)
		key[i+1] = byte(v >> 8)
		key[i+2] = byte(v >> 16)
		key[i+3] = byte(v >> 24)
	}
	return rand.New(rand.NewChaCha8(key))
}

// rangeFloat returns a uniform float in [lo, hi).
func rangeFloat(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// defaultWorldSize is used by scenarios that don't need a larger arena.
const defaultWorldSize = 40000.0

// addBoundaryWalls encloses the world in four wall boxes just outside its
// edge, so ships reflect instead of being destroyed for drifting out
// (spec.md §4.1). Grounded on the teacher's wrap-around galaxy bounds in
// server/physics.go, adapted from toroidal wrap to reflective walls per
// spec.md's wall semantics.
func addBoundaryWalls(w *world.World) {
	half := w.Size / 2
	thickness := 10.0
	w.AddWall(vec2.V{X: half + thickness}, vec2.V{X: thickness, Y: half + thickness})
	w.AddWall(vec2.V{X: -half - thickness}, vec2.V{X: thickness, Y: half + thickness})
	w.AddWall(vec2.V{Y: half + thickness}, vec2.V{X: half + thickness, Y: thickness})
	w.AddWall(vec2.V{Y: -half - thickness}, vec2.V{X: half + thickness, Y: thickness})
}

// placement is one team's starting position and heading.
type placement struct {
	Position vec2.V
	Heading  float64
}

// placeTeams distributes numTeams starting positions evenly around a
// ring sized to the world, each facing the ring's center, then jitters
// position and heading slightly so repeated runs with different seeds
// aren't perfectly symmetric. Grounded on
// original_source/shared/simulator/src/scenario/fighter_duel.rs and
// furball.rs's per-team radial/offset placement.
func placeTeams(rng *rand.Rand, worldSize float64, numTeams int) []placement {
	radius := worldSize * 0.35
	placements := make([]placement, numTeams)
	for team := 0; team < numTeams; team++ {
		angle := vec2.TAU * float64(team) / float64(numTeams)
		angle += rangeFloat(rng, -0.1, 0.1)
		pos := vec2.FromPolar(angle, radius)
		placements[team] = placement{Position: pos, Heading: pos.Scale(-1).Angle()} // face the center
	}
	return placements
}

// spawnShip is a thin convenience wrapper around world.NewShip+Spawn.
func spawnShip(w *world.World, team int, c class.Class, pos, vel vec2.V, heading float64) *world.Ship {
	s := world.NewShip(team, c, pos, vel, heading)
	w.Spawn(s)
	return s
}
