package scenario

import (
	"math"

	"github.com/oortcore/simulator/class"
	"github.com/oortcore/simulator/vec2"
	"github.com/oortcore/simulator/world"
)

// fighterDuel pits two fighters against each other at opposite points on
// a ring (spec.md §4.6 tournament flavor). Grounded on
// original_source/shared/simulator/src/scenario/fighter_duel.rs.
type fighterDuel struct{}

func (fighterDuel) Name() string       { return "fighter_duel" }
func (fighterDuel) WorldSize() float64 { return defaultWorldSize }
func (fighterDuel) InitialCode() []Code {
	return []Code{{Name: "builtin.wanderer"}, {Name: "builtin.radar_hunter"}}
}
func (fighterDuel) Solution() Code { return Code{Name: "builtin.radar_hunter"} }

func (fighterDuel) Init(w *world.World, seed uint32) {
	rng := newScenarioRNG(seed)
	for team, p := range placeTeams(rng, w.Size, 2) {
		spawnShip(w, team, class.Fighter, p.Position, vec2.Zero, p.Heading)
	}
}

func (fighterDuel) Tick(w *world.World) {}

func (fighterDuel) Status(w *world.World) StatusResult {
	return CheckTournamentVictory(w, DefaultTournamentMaxTicks)
}

// cruiserDuel pits two cruisers against each other in a larger arena.
// Grounded on
// original_source/shared/simulator/src/scenario/cruiser_duel.rs.
type cruiserDuel struct{}

const cruiserDuelWorldSize = 100000.0

func (cruiserDuel) Name() string       { return "cruiser_duel" }
func (cruiserDuel) WorldSize() float64 { return cruiserDuelWorldSize }
func (cruiserDuel) InitialCode() []Code {
	return []Code{{Name: "builtin.wanderer"}, {Name: "builtin.radar_hunter"}}
}
func (cruiserDuel) Solution() Code { return Code{Name: "builtin.radar_hunter"} }

func (cruiserDuel) Init(w *world.World, seed uint32) {
	rng := newScenarioRNG(seed)
	span := w.Size * 0.45
	p0 := vec2.V{X: rangeFloat(rng, -span, span), Y: rangeFloat(rng, -span, span)}
	p1 := vec2.V{X: rangeFloat(rng, -span, span), Y: rangeFloat(rng, -span, span)}
	spawnShip(w, 0, class.Cruiser, p0, vec2.Zero, 0)
	spawnShip(w, 1, class.Cruiser, p1, vec2.Zero, 0)
}

func (cruiserDuel) Tick(w *world.World) {}

func (cruiserDuel) Status(w *world.World) StatusResult {
	return CheckTournamentVictory(w, DefaultTournamentMaxTicks)
}

// frigateDuel pits two frigates against each other. Grounded on
// original_source/shared/simulator/src/scenario/frigate_duel.rs (a peer
// of cruiser_duel.rs using the same placement shape).
type frigateDuel struct{}

func (frigateDuel) Name() string       { return "frigate_duel" }
func (frigateDuel) WorldSize() float64 { return cruiserDuelWorldSize }
func (frigateDuel) InitialCode() []Code {
	return []Code{{Name: "builtin.wanderer"}, {Name: "builtin.radar_hunter"}}
}
func (frigateDuel) Solution() Code { return Code{Name: "builtin.radar_hunter"} }

func (frigateDuel) Init(w *world.World, seed uint32) {
	rng := newScenarioRNG(seed)
	span := w.Size * 0.45
	p0 := vec2.V{X: rangeFloat(rng, -span, span), Y: rangeFloat(rng, -span, span)}
	p1 := vec2.V{X: rangeFloat(rng, -span, span), Y: rangeFloat(rng, -span, span)}
	spawnShip(w, 0, class.Frigate, p0, vec2.Zero, 0)
	spawnShip(w, 1, class.Frigate, p1, vec2.Zero, 0)
}

func (frigateDuel) Tick(w *world.World) {}

func (frigateDuel) Status(w *world.World) StatusResult {
	return CheckTournamentVictory(w, DefaultTournamentMaxTicks)
}

// missileDuel pits two gunless fighters against each other at long range,
// forcing an all-missile engagement. Grounded on
// original_source/shared/simulator/src/scenario/missile_duel.rs.
type missileDuel struct{}

func (missileDuel) Name() string       { return "missile_duel" }
func (missileDuel) WorldSize() float64 { return defaultWorldSize }
func (missileDuel) InitialCode() []Code {
	return []Code{{Name: "builtin.wanderer"}, {Name: "builtin.lead_and_fire"}}
}
func (missileDuel) Solution() Code { return Code{Name: "builtin.lead_and_fire"} }

func (missileDuel) Init(w *world.World, seed uint32) {
	rng := newScenarioRNG(seed)
	angle := rangeFloat(rng, 0, vec2.TAU)
	distance := rangeFloat(rng, 15000, 17000)
	offset := vec2.V{X: rangeFloat(rng, -10000, 10000), Y: rangeFloat(rng, -10000, 10000)}

	a := offset.Add(vec2.FromPolar(angle, distance*0.5))
	b := offset.Sub(vec2.FromPolar(angle, distance*0.5))

	shipA := spawnShip(w, 0, class.Fighter, a, vec2.Zero, 0)
	shipA.GunCooldown[0] = 1e9
	shipB := spawnShip(w, 1, class.Fighter, b, vec2.Zero, math.Pi)
	shipB.GunCooldown[0] = 1e9
}

func (missileDuel) Tick(w *world.World) {}

func (missileDuel) Status(w *world.World) StatusResult {
	return CheckTournamentVictory(w, DefaultTournamentMaxTicks)
}

// furball is a 10-vs-10 fighter brawl. Grounded on
// original_source/shared/simulator/src/scenario/furball.rs.
type furball struct{}

const furballFleetRadius = 500.0
const furballFleetsPerSide = 10
const furballCenterOffset = 4000.0

func (furball) Name() string       { return "furball" }
func (furball) WorldSize() float64 { return defaultWorldSize }
func (furball) InitialCode() []Code {
	return []Code{{Name: "builtin.wanderer"}, {Name: "builtin.radar_hunter"}}
}
func (furball) Solution() Code { return Code{Name: "builtin.radar_hunter"} }

func (furball) Init(w *world.World, seed uint32) {
	rng := newScenarioRNG(seed)
	for team := 0; team < 2; team++ {
		center := vec2.V{X: (float64(team) - 0.5) * furballCenterOffset}
		heading := 0.0
		if team != 0 {
			heading = math.Pi
		}
		for i := 0; i < furballFleetsPerSide; i++ {
			offset := vec2.V{
				X: rangeFloat(rng, -furballFleetRadius, furballFleetRadius),
				Y: rangeFloat(rng, -furballFleetRadius, furballFleetRadius),
			}
			spawnShip(w, team, class.Fighter, center.Add(offset), vec2.Zero, heading)
		}
	}
}

func (furball) Tick(w *world.World) {}

func (furball) Status(w *world.World) StatusResult {
	return CheckTournamentVictory(w, DefaultTournamentMaxTicks)
}
