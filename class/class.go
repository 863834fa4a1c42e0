// Package class holds the closed set of ship classes and their fixed
// per-class specifications: acceleration/angular limits, health, mass,
// collider radius, and armament layout (spec.md §3 "ShipClass").
package class

import "github.com/oortcore/simulator/vec2"

// Class is a closed enum of ship variants. Missile and Torpedo ships are
// ordinary Ship values (spec.md §3): "a Ship of class Missile or Torpedo;
// behaves as a ship with a controller, plus an explode flag".
type Class int

const (
	Fighter Class = iota
	Frigate
	Cruiser
	Missile
	Torpedo
	Asteroid
	Target
	numClasses
)

func (c Class) String() string {
	if c < 0 || c >= numClasses {
		return "unknown"
	}
	return classNames[c]
}

var classNames = [numClasses]string{
	Fighter:  "fighter",
	Frigate:  "frigate",
	Cruiser:  "cruiser",
	Missile:  "missile",
	Torpedo:  "torpedo",
	Asteroid: "asteroid",
	Target:   "target",
}

// Gun describes one fixed or turreted weapon slot.
type Gun struct {
	// AimRelative, when true, measures Aim relative to the ship's current
	// heading rather than as an absolute world-frame angle.
	AimRelative  bool
	MuzzleOffset vec2.V
	MuzzleSpeed  float64
	Damage       float64
	CycleTime    float64 // seconds between shots
	MaxAimRange  float64 // radians of travel allowed off the mount's forward axis; 0 = no limit
}

// Tube describes a missile/torpedo launch slot.
type Tube struct {
	Launches  Class
	Cooldown  float64 // seconds between launches
	MuzzleOffset vec2.V
}

// Spec is the fixed specification for one ship class.
type Spec struct {
	Name string

	MaxForwardAccel float64 // m/s^2, +X in ship frame
	MaxLateralAccel float64 // m/s^2, +Y in ship frame
	MaxAngularAccel float64 // rad/s^2

	Health  float64
	Mass    float64
	Radius  float64 // collider radius

	Guns  []Gun
	Tubes []Tube

	HasRadar bool
	// RadarRangeConstant is k in max_range = k / width: narrow beams see
	// farther (spec.md §4.3).
	RadarRangeConstant float64
	// DefaultRadarWidth seeds a freshly spawned ship's beam width so radar
	// acquisition isn't a silent no-op until a controller first sets one
	// (a width of 0 only ever detects a contact at exact bearing, per
	// spec.md §8). Matches the sweep width the original tutorial/combat
	// solutions assume (original_source/.../tutorial06.solution.rs:
	// "radar_heading() + TAU/6").
	DefaultRadarWidth float64

	HasBoost   bool
	BoostAccel float64 // forward-only extra acceleration while boosting

	// ExplosionDamage/ExplosionRadius apply only to Missile/Torpedo: area
	// damage on `explode`, falling off linearly from center (spec §4.2).
	ExplosionDamage float64
	ExplosionRadius float64
}

// Specs is the fixed table of per-class specifications, keyed by Class.
// Generalizes the teacher's ShipData table (game/types.go) from Netrek's
// roster to Oort's.
var Specs = map[Class]Spec{
	Fighter: {
		Name:            "fighter",
		MaxForwardAccel: 60,
		MaxLateralAccel: 30,
		MaxAngularAccel: 2 * vec2.TAU,
		Health:          100,
		Mass:            2000,
		Radius:          10,
		Guns: []Gun{
			{AimRelative: true, MuzzleOffset: vec2.V{X: 10}, MuzzleSpeed: 1000, Damage: 15, CycleTime: 0.2, MaxAimRange: vec2.TAU / 4},
		},
		Tubes: []Tube{
			{Launches: Missile, Cooldown: 3, MuzzleOffset: vec2.V{X: 10}},
		},
		HasRadar:           true,
		RadarRangeConstant: 50000,
		DefaultRadarWidth:  vec2.TAU / 6,
		HasBoost:           true,
		BoostAccel:         120,
	},
	Frigate: {
		Name:            "frigate",
		MaxForwardAccel: 30,
		MaxLateralAccel: 15,
		MaxAngularAccel: vec2.TAU / 2,
		Health:          2000,
		Mass:            40000,
		Radius:          45,
		Guns: []Gun{
			{AimRelative: true, MuzzleOffset: vec2.V{X: 30}, MuzzleSpeed: 1200, Damage: 40, CycleTime: 0.3, MaxAimRange: vec2.TAU / 4},
			{AimRelative: true, MuzzleOffset: vec2.V{X: 30}, MuzzleSpeed: 1200, Damage: 40, CycleTime: 0.3, MaxAimRange: vec2.TAU / 4},
		},
		Tubes: []Tube{
			{Launches: Missile, Cooldown: 2, MuzzleOffset: vec2.V{X: 30}},
			{Launches: Torpedo, Cooldown: 6, MuzzleOffset: vec2.V{X: 30}},
		},
		HasRadar:           true,
		RadarRangeConstant: 80000,
		DefaultRadarWidth:  vec2.TAU / 6,
	},
	Cruiser: {
		Name:            "cruiser",
		MaxForwardAccel: 15,
		MaxLateralAccel: 8,
		MaxAngularAccel: vec2.TAU / 4,
		Health:          10000,
		Mass:            300000,
		Radius:          90,
		Guns: []Gun{
			{AimRelative: false, MuzzleOffset: vec2.V{X: 60}, MuzzleSpeed: 800, Damage: 8, CycleTime: 0.05},
			{AimRelative: false, MuzzleOffset: vec2.V{X: 60}, MuzzleSpeed: 800, Damage: 8, CycleTime: 0.05},
			{AimRelative: false, MuzzleOffset: vec2.V{X: 60}, MuzzleSpeed: 800, Damage: 8, CycleTime: 0.05},
			{AimRelative: false, MuzzleOffset: vec2.V{X: 60}, MuzzleSpeed: 800, Damage: 8, CycleTime: 0.05},
		},
		Tubes: []Tube{
			{Launches: Torpedo, Cooldown: 3, MuzzleOffset: vec2.V{X: 60}},
			{Launches: Torpedo, Cooldown: 3, MuzzleOffset: vec2.V{X: 60}},
		},
		HasRadar:           true,
		RadarRangeConstant: 120000,
		DefaultRadarWidth:  vec2.TAU / 6,
	},
	Missile: {
		Name:               "missile",
		MaxForwardAccel:    400,
		MaxLateralAccel:    100,
		MaxAngularAccel:    4 * vec2.TAU,
		Health:             1,
		Mass:               25,
		Radius:             4,
		HasRadar:           true,
		RadarRangeConstant: 20000,
		DefaultRadarWidth:  vec2.TAU / 6,
		ExplosionDamage:    100,
		ExplosionRadius:    50,
	},
	Torpedo: {
		Name:               "torpedo",
		MaxForwardAccel:    70,
		MaxLateralAccel:    20,
		MaxAngularAccel:    2 * vec2.TAU,
		Health:             4,
		Mass:               400,
		Radius:             8,
		HasRadar:           true,
		RadarRangeConstant: 20000,
		DefaultRadarWidth:  vec2.TAU / 6,
		ExplosionDamage:    1000,
		ExplosionRadius:    200,
	},
	Asteroid: {
		Name:   "asteroid",
		Health: 200,
		Mass:   1_000_000,
		Radius: 40,
	},
	Target: {
		Name:   "target",
		Health: 1,
		Mass:   1,
		Radius: 10,
	},
}

// MaxGuns and MaxTubes size the fixed ABI arrays shared by every class:
// at most 4 of each, per spec §4.5's Gun0..3 / Missile0..3.
const (
	MaxGuns  = 4
	MaxTubes = 4
)
