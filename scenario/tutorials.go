package scenario

import (
	"math"

	"github.com/oortcore/simulator/class"
	"github.com/oortcore/simulator/vec2"
	"github.com/oortcore/simulator/world"
)

// tutorial01Guns: a stationary fighter faces a stationary target
// asteroid and must destroy it with guns alone. Grounded on
// original_source/shared/simulator/src/scenario/tutorial01_guns.rs.
type tutorial01Guns struct{}

func (tutorial01Guns) Name() string      { return "tutorial01" }
func (tutorial01Guns) WorldSize() float64 { return defaultWorldSize }
func (tutorial01Guns) InitialCode() []Code { return []Code{{Name: "builtin.guns"}} }
func (tutorial01Guns) Solution() Code      { return Code{Name: "builtin.guns"} }

func (tutorial01Guns) Init(w *world.World, seed uint32) {
	spawnShip(w, 0, class.Fighter, vec2.V{X: -1000}, vec2.Zero, 0)
	spawnShip(w, 1, class.Asteroid, vec2.V{X: 1000}, vec2.Zero, 0.1)
}

func (tutorial01Guns) Tick(w *world.World) {}

func (tutorial01Guns) Status(w *world.World) StatusResult {
	return CheckTutorialVictory(w, DefaultTutorialMaxTicks)
}

// tutorial04Rotation: the ship must turn and accelerate to hit a
// randomly placed Target-class ship; the scenario writes the random point
// into the ship's Target hint (spec.md §3). Grounded on
// original_source/shared/simulator/src/scenario/tutorial04_rotation.rs.
type tutorial04Rotation struct{}

func (tutorial04Rotation) Name() string       { return "tutorial04" }
func (tutorial04Rotation) WorldSize() float64 { return defaultWorldSize }
func (tutorial04Rotation) InitialCode() []Code {
	return []Code{{Name: "builtin.rotate_and_fire"}}
}
func (tutorial04Rotation) Solution() Code { return Code{Name: "builtin.rotate_and_fire"} }

func (tutorial04Rotation) Init(w *world.World, seed uint32) {
	rng := newScenarioRNG(seed)
	targetAngle := rangeFloat(rng, 0, vec2.TAU)
	targetDist := rangeFloat(rng, 600, 1000)
	target := vec2.FromPolar(targetAngle, targetDist)

	startAngle := rangeFloat(rng, 0, vec2.TAU)
	startDist := rangeFloat(rng, 100, 500)
	start := vec2.FromPolar(startAngle, startDist)

	s := spawnShip(w, 0, class.Fighter, start, vec2.Zero, 0)
	s.Target = target
	s.HasTarget = true

	spawnShip(w, 1, class.Target, target, vec2.Zero, 0)
}

func (tutorial04Rotation) Tick(w *world.World) {}

func (tutorial04Rotation) Status(w *world.World) StatusResult {
	return CheckTutorialVictory(w, DefaultTutorialMaxTicks)
}

// tutorial09Missiles: the player's gun is disabled so they must close in
// and fire missiles at a faster, half-health enemy fighter which wanders
// on its own. Grounded on
// original_source/shared/simulator/src/scenario/tutorial09_missiles.rs.
type tutorial09Missiles struct{}

func (tutorial09Missiles) Name() string       { return "tutorial09" }
func (tutorial09Missiles) WorldSize() float64 { return defaultWorldSize }
func (tutorial09Missiles) InitialCode() []Code {
	return []Code{{Name: "builtin.lead_and_fire"}, {Name: "builtin.wanderer"}}
}
func (tutorial09Missiles) Solution() Code { return Code{Name: "builtin.lead_and_fire"} }

func (tutorial09Missiles) Init(w *world.World, seed uint32) {
	addBoundaryWalls(w)

	player := spawnShip(w, 0, class.Fighter, vec2.Zero, vec2.Zero, 0)
	player.GunCooldown[0] = 1e9 // guns disabled: force missile use

	rng := newScenarioRNG(seed)
	pos := vec2.FromPolar(rangeFloat(rng, 0, vec2.TAU), rangeFloat(rng, 2000, 2500))
	vel := vec2.FromPolar(rangeFloat(rng, 0, vec2.TAU), rangeFloat(rng, 0, 300))
	enemy := spawnShip(w, 1, class.Fighter, pos, vel, math.Pi)
	enemy.Health /= 2
}

func (tutorial09Missiles) Tick(w *world.World) {}

func (tutorial09Missiles) Status(w *world.World) StatusResult {
	return CheckTutorialVictory(w, DefaultTutorialMaxTicks*2)
}

// tutorial10Frigate: a frigate against five fighters. Grounded on
// original_source/shared/simulator/src/scenario/tutorial10_frigate.rs.
type tutorial10Frigate struct{}

func (tutorial10Frigate) Name() string       { return "tutorial10" }
func (tutorial10Frigate) WorldSize() float64 { return defaultWorldSize }
func (tutorial10Frigate) InitialCode() []Code {
	return []Code{{Name: "builtin.radar_hunter"}, {Name: "builtin.wanderer"}}
}
func (tutorial10Frigate) Solution() Code { return Code{Name: "builtin.radar_hunter"} }

func (tutorial10Frigate) Init(w *world.World, seed uint32) {
	spawnShip(w, 0, class.Frigate, vec2.Zero, vec2.Zero, 0)

	rng := newScenarioRNG(seed)
	for i := 0; i < 5; i++ {
		pos := vec2.FromPolar(rangeFloat(rng, 0, vec2.TAU), rangeFloat(rng, 1000, 1500))
		vel := vec2.FromPolar(rangeFloat(rng, 0, vec2.TAU), rangeFloat(rng, 0, 300))
		spawnShip(w, 1, class.Fighter, pos, vel, math.Pi)
	}
}

func (tutorial10Frigate) Tick(w *world.World) {}

func (tutorial10Frigate) Status(w *world.World) StatusResult {
	return CheckTutorialVictory(w, DefaultTutorialMaxTicks*2)
}

// tutorial11Cruiser: a cruiser against five fighters inside a walled
// arena. Grounded on
// original_source/shared/simulator/src/scenario/tutorial11_cruiser.rs.
type tutorial11Cruiser struct{}

func (tutorial11Cruiser) Name() string       { return "tutorial11" }
func (tutorial11Cruiser) WorldSize() float64 { return defaultWorldSize }
func (tutorial11Cruiser) InitialCode() []Code {
	return []Code{{Name: "builtin.radar_hunter"}, {Name: "builtin.wanderer"}}
}
func (tutorial11Cruiser) Solution() Code { return Code{Name: "builtin.radar_hunter"} }

func (tutorial11Cruiser) Init(w *world.World, seed uint32) {
	addBoundaryWalls(w)
	spawnShip(w, 0, class.Cruiser, vec2.Zero, vec2.Zero, 0)

	rng := newScenarioRNG(seed)
	for i := 0; i < 5; i++ {
		pos := vec2.FromPolar(rangeFloat(rng, 0, vec2.TAU), rangeFloat(rng, 1000, 1500))
		vel := vec2.FromPolar(rangeFloat(rng, 0, vec2.TAU), rangeFloat(rng, 0, 300))
		spawnShip(w, 1, class.Fighter, pos, vel, math.Pi)
	}
}

func (tutorial11Cruiser) Tick(w *world.World) {}

func (tutorial11Cruiser) Status(w *world.World) StatusResult {
	return CheckTutorialVictory(w, DefaultTutorialMaxTicks*2)
}
