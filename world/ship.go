package world

import (
	"math/rand/v2"

	"github.com/oortcore/simulator/class"
	"github.com/oortcore/simulator/vec2"
)

// EcmMode is the radar jamming posture a ship can broadcast.
type EcmMode int

const (
	EcmNone EcmMode = iota
	EcmNoise
)

// RadarContact is the result of a beam scan: the nearest enemy ship found,
// reported in world frame (spec.md §4.3).
type RadarContact struct {
	Found    bool
	Class    class.Class
	Position vec2.V
	Velocity vec2.V
}

// RadioSlot holds the most recently posted message on one channel, plus
// the tick it was written on. A slot is visible to receivers during the
// tick it was written and the following tick (spec.md §4.4's one-tick
// visibility window), then reads as empty until written again.
type RadioSlot struct {
	Data        [4]float64
	HasData     bool
	WrittenTick int64
}

// Visible reports whether the slot is still within its visibility window
// as of the given tick.
func (s RadioSlot) Visible(tick int64) bool {
	return s.HasData && tick-s.WrittenTick <= 1
}

const RadioChannels = 10

// Ship is the live state of one ship, bullet-like missile, or tutorial
// prop. Missiles and torpedoes are ordinary Ships of the corresponding
// Class (spec.md §3).
type Ship struct {
	Handle Handle
	Team   int
	Class  class.Class

	Position vec2.V
	Velocity vec2.V
	Heading  float64
	// AngularVelocity is in radians/second.
	AngularVelocity float64

	Health float64

	GunCooldown  [class.MaxGuns]float64
	TubeCooldown [class.MaxTubes]float64

	// Commands written by the controller this tick, applied atomically
	// by World.Step (spec.md §5: "Commands are queued and applied
	// atomically by the physics step").
	AccelCommand  vec2.V  // ship-frame: X forward, Y lateral
	TorqueCommand float64
	BoostCommand  bool
	GunAim        [class.MaxGuns]float64
	GunFire       [class.MaxGuns]bool
	TubeLaunch    [class.MaxTubes]bool
	ExplodeCommand bool

	RadarHeading float64
	RadarWidth   float64
	RadarEcm     EcmMode
	RadarContact RadarContact

	RadioChannel     int
	RadioSend        [4]float64
	RadioSendPending bool
	RadioReceived    [4]float64
	RadioHasMessage  bool

	Destroyed bool
	// CrashMessage is non-empty when the ship's controller crashed (spec
	// §7 ControllerCrash); a crashed ship is destroyed with this recorded.
	CrashMessage string

	// Target is an optional scenario-provided hint (spec.md §3), e.g. the
	// random point a rotation tutorial asks the player to fly to.
	Target       vec2.V
	TargetVelocity vec2.V
	HasTarget    bool

	// RNG is this ship's isolated PRNG, seeded from the scenario seed XOR
	// the ship's handle (spec.md §3 invariants). It is handed directly to
	// the sandbox instance for the duration of a tick and to World's own
	// radar ECM evaluation; because it is an explicit object rather than
	// a thread-local, there is nothing to copy in/out across goroutines
	// (see DESIGN.md).
	RNG *rand.Rand
}

// NewShip constructs a ship in its class's default state. The caller
// (World.Spawn) assigns Handle and RNG. A radar-capable class starts
// with its DefaultRadarWidth rather than a zero beam, so acquisition
// isn't a disguised no-op before any controller ever calls
// SetRadarWidth (spec.md §4.3, §8).
func NewShip(team int, c class.Class, pos vec2.V, vel vec2.V, heading float64) *Ship {
	spec := class.Specs[c]
	return &Ship{
		Team:       team,
		Class:      c,
		Position:   pos,
		Velocity:   vel,
		Heading:    heading,
		Health:     spec.Health,
		RadarWidth: spec.DefaultRadarWidth,
	}
}

// Spec is a convenience accessor for this ship's class specification.
func (s *Ship) Spec() class.Spec { return class.Specs[s.Class] }
