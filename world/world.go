// Package world implements the deterministic rigid-body simulation core:
// ship/bullet state, collision broadphase and response, the fixed-step
// integrator, weapons and missile lifecycle, radar scanning, and the
// radio bus (spec.md §4.1-§4.4). Generalizes the teacher's
// server/physics.go and server/spatial_grid.go from Netrek's
// continuous-speed model to force/torque-clamped rigid-body integration.
package world

import (
	"math"
	"math/rand/v2"

	"github.com/oortcore/simulator/vec2"
)

// DT is the fixed simulation timestep: 1/60 second (spec.md §4.1).
const DT = 1.0 / 60.0

// Wall is a static, axis-aligned box obstacle. A scenario may add walls
// enclosing the world, or omit them entirely (spec.md §4.1).
type Wall struct {
	Center      vec2.V
	HalfExtents vec2.V
}

// HitEvent records one bullet or explosion striking a ship, for the
// snapshot (spec.md §4.7).
type HitEvent struct {
	Target   Handle
	Attacker Handle // the exploding ship for a blast; 0 for bullet hits, which do not record their shooter
	Damage   float64
	Position vec2.V
	Bullet   bool
}

// World is the arena holding every live ship and bullet for one
// simulation instance. Handles resolve cyclic references (ship <-> bullet
// <-> scenario) without back-pointers (spec.md §9).
type World struct {
	Size  float64 // world spans [-Size/2, +Size/2] on both axes
	Walls []Wall

	ships   []*Ship // ascending handle order, maintained by construction
	Bullets []*Bullet

	nextHandle Handle
	seed       uint32

	grid *spatialGrid

	Tick int64

	Radio [MaxTeams][RadioChannels]RadioSlot

	Hits                   []HitEvent
	DebugLines             []string
	ShipsDestroyedThisTick []Handle
	// Launches lists ships created by a missile tube this tick, so the
	// scheduler can attach a fresh sandbox instance loaded with the
	// owning team's missile code before the next tick (spec.md §4.2).
	Launches []Handle
}

// New creates an empty world of the given size and seed. Seed feeds both
// per-ship RNG derivation (spec.md §3 invariant: "seeded from the
// scenario seed ⊕ ship id") and is available to scenario placement code.
func New(size float64, seed uint32) *World {
	return &World{
		Size: size,
		seed: seed,
		grid: newSpatialGrid(size, 600),
	}
}

// Seed returns the scenario seed this world was constructed with.
func (w *World) Seed() uint32 { return w.seed }

// Ships returns every live ship, ascending by handle. Iteration order
// over this slice is the determinism requirement of spec.md §4.1: ships
// are appended in handle-assignment order and removals preserve order, so
// no separate sort is needed.
func (w *World) Ships() []*Ship { return w.ships }

// Ship looks up a live ship by handle, or nil if it does not exist.
func (w *World) Ship(h Handle) *Ship {
	for _, s := range w.ships {
		if s.Handle == h {
			return s
		}
	}
	return nil
}

// Spawn assigns a fresh handle and per-ship RNG to s, and adds it to the
// world. Returns the assigned handle.
func (w *World) Spawn(s *Ship) Handle {
	w.nextHandle++
	s.Handle = w.nextHandle
	s.RNG = rand.New(rand.NewChaCha8(seedFor(w.seed, s.Handle)))
	w.ships = append(w.ships, s)
	return s.Handle
}

// seedFor derives a 32-byte ChaCha8 seed from the scenario seed and a
// ship handle. The original Rust core seeds its ChaCha8Rng from a single
// u32 via a generic seeder crate (original_source/simulator/src/rng.rs);
// Go's rand.NewChaCha8 takes a 32-byte key directly, so the u32 is
// expanded deterministically by repetition with a per-position salt
// (documented in DESIGN.md) rather than by any third-party seed-stretching
// package, none of which appears in the retrieved pack.
func seedFor(scenarioSeed uint32, h Handle) [32]byte {
	mixed := scenarioSeed ^ uint32(h) ^ uint32(h>>32)
	var out [32]byte
	for i := 0; i < 32; i += 4 {
		v := mixed + uint32(i)*0x9E3779B1
		out[i] = byte(v)
		out[i+1] = byte(v >> 8)
		out[i+2] = byte(v >> 16)
		out[i+3] = byte(v >> 24)
	}
	return out
}

// AddWall adds a static wall box to the world.
func (w *World) AddWall(center, halfExtents vec2.V) {
	w.Walls = append(w.Walls, Wall{Center: center, HalfExtents: halfExtents})
}

// HasWalls reports whether the scenario enclosed the world. Ships that
// drift past the boundary of a wall-less world are destroyed (spec.md
// §4.1).
func (w *World) HasWalls() bool { return len(w.Walls) > 0 }

// Step advances the simulation by one fixed timestep (spec.md §4.1):
// apply commands, integrate bodies, sweep bullets, resolve collisions and
// explosions, scan radar, and garbage-collect destroyed entities.
func (w *World) Step() {
	w.Hits = w.Hits[:0]
	w.DebugLines = w.DebugLines[:0]
	w.ShipsDestroyedThisTick = w.ShipsDestroyedThisTick[:0]
	w.Launches = w.Launches[:0]

	w.decrementCooldowns()
	w.applyMotion()
	w.resolveWeapons()
	w.rebuildGrid()
	w.sweepBullets()
	w.resolveShipCollisions()
	w.resolveWallCollisions()
	w.resolveExplosions()
	w.destroyOutOfBounds()
	w.scanRadar()
	w.gcDestroyed()

	w.Tick++
}

func (w *World) rebuildGrid() {
	w.grid.clear()
	for _, s := range w.ships {
		if !s.Destroyed {
			w.grid.insert(s.Handle, s.Position.X, s.Position.Y)
		}
	}
}

// gcDestroyed removes destroyed ships at end-of-tick only, never mid-tick
// (spec.md §3 invariant), preserving ascending handle order.
func (w *World) gcDestroyed() {
	kept := w.ships[:0]
	for _, s := range w.ships {
		if s.Destroyed {
			w.ShipsDestroyedThisTick = append(w.ShipsDestroyedThisTick, s.Handle)
			continue
		}
		kept = append(kept, s)
	}
	w.ships = kept
}

func (w *World) destroyOutOfBounds() {
	if w.HasWalls() {
		return
	}
	half := w.Size / 2
	for _, s := range w.ships {
		if s.Destroyed {
			continue
		}
		if math.Abs(s.Position.X) > half || math.Abs(s.Position.Y) > half {
			s.Destroyed = true
		}
	}
}

func (w *World) decrementCooldowns() {
	for _, s := range w.ships {
		spec := s.Spec()
		for i := range spec.Guns {
			s.GunCooldown[i] -= DT
		}
		for i := range spec.Tubes {
			s.TubeCooldown[i] -= DT
		}
	}
}
