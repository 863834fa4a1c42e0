// Package snapshot renders a world.World into a stable, serializable
// record for callers outside the simulation loop (spec.md §4.7): a
// binary wire form for transport and a JSON form for inspection, plus a
// deterministic 64-bit hash used to verify two runs produced identical
// results. Generalizes the teacher's JSON game-state broadcast
// (server/websocket.go, server/game_state_handlers.go) from a live
// per-client push model to an on-demand, fully self-contained record.
package snapshot

import (
	"github.com/oortcore/simulator/class"
	"github.com/oortcore/simulator/vec2"
	"github.com/oortcore/simulator/world"
)

// ShipView is the externally visible state of one ship (spec.md §4.7).
type ShipView struct {
	Handle   uint64      `json:"handle"`
	Team     int         `json:"team"`
	Class    class.Class `json:"class"`
	Position vec2.V      `json:"position"`
	Velocity vec2.V      `json:"velocity"`
	Heading  float64     `json:"heading"`
	Health   float64     `json:"health"`
	// CrashMessage is non-empty when this ship's controller crashed this
	// run (spec.md §7 ControllerCrash).
	CrashMessage string `json:"crash_message,omitempty"`
}

// BulletView is the externally visible state of one in-flight bullet.
type BulletView struct {
	Team     int     `json:"team"`
	Position vec2.V  `json:"position"`
	Velocity vec2.V  `json:"velocity"`
}

// HitView mirrors world.HitEvent for wire transport.
type HitView struct {
	Target   uint64  `json:"target"`
	Attacker uint64  `json:"attacker"`
	Damage   float64 `json:"damage"`
	Position vec2.V  `json:"position"`
	Bullet   bool    `json:"bullet"`
}

// Snapshot is the full externally visible state of a world at one tick
// (spec.md §4.7): "Snapshot { time, ships, bullets, debug_lines,
// scenario_lines, hits, ships_destroyed, timing }". ScenarioLines carries
// whatever a scenario appended via its own Debugf-equivalent; the core
// has no scenario-debug channel of its own, so it is always empty unless
// a caller fills it in after Status().
type Snapshot struct {
	Tick           int64        `json:"tick"`
	Ships          []ShipView   `json:"ships"`
	Bullets        []BulletView `json:"bullets"`
	DebugLines     []string     `json:"debug_lines"`
	ScenarioLines  []string     `json:"scenario_lines,omitempty"`
	Hits           []HitView    `json:"hits"`
	ShipsDestroyed []uint64     `json:"ships_destroyed"`
}

// FromWorld builds a Snapshot from the current state of w. The returned
// value shares no memory with w: later calls to w.Step do not mutate it.
func FromWorld(w *world.World) Snapshot {
	ships := make([]ShipView, len(w.Ships()))
	for i, s := range w.Ships() {
		ships[i] = ShipView{
			Handle:       uint64(s.Handle),
			Team:         s.Team,
			Class:        s.Class,
			Position:     s.Position,
			Velocity:     s.Velocity,
			Heading:      s.Heading,
			Health:       s.Health,
			CrashMessage: s.CrashMessage,
		}
	}

	bullets := make([]BulletView, len(w.Bullets))
	for i, b := range w.Bullets {
		bullets[i] = BulletView{Team: b.Team, Position: b.Position, Velocity: b.Velocity}
	}

	hits := make([]HitView, len(w.Hits))
	for i, h := range w.Hits {
		hits[i] = HitView{
			Target:   uint64(h.Target),
			Attacker: uint64(h.Attacker),
			Damage:   h.Damage,
			Position: h.Position,
			Bullet:   h.Bullet,
		}
	}

	destroyed := make([]uint64, len(w.ShipsDestroyedThisTick))
	for i, h := range w.ShipsDestroyedThisTick {
		destroyed[i] = uint64(h)
	}

	debug := make([]string, len(w.DebugLines))
	copy(debug, w.DebugLines)

	return Snapshot{
		Tick:           w.Tick,
		Ships:          ships,
		Bullets:        bullets,
		DebugLines:     debug,
		Hits:           hits,
		ShipsDestroyed: destroyed,
	}
}
