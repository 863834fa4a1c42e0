package sandbox

import (
	"math/rand/v2"

	"github.com/oortcore/simulator/vec2"
)

// Contact is a builtin-facing view of a radar scan result.
type Contact struct {
	Found    bool
	Position vec2.V
	Velocity vec2.V
}

// API is the ergonomic per-tick facade a Module's Tick method uses
// instead of poking Memory fields by index: position/velocity/heading
// readers, accelerate/torque/fire/explode writers, radar and radio
// helpers, plus this ship's RNG and debug sink. It mirrors the guest-
// side host functions spec.md §4.5 describes, the way the teacher's bot
// code calls small helpers like fireWeapon/moveToward rather than
// poking game.Player fields inline.
type API struct {
	mem *Memory
	ctx *Context
}

func newAPI(mem *Memory, ctx *Context) *API { return &API{mem: mem, ctx: ctx} }

func (a *API) Position() vec2.V        { return vec2.V{X: a.mem[FieldPositionX], Y: a.mem[FieldPositionY]} }
func (a *API) Velocity() vec2.V        { return vec2.V{X: a.mem[FieldVelocityX], Y: a.mem[FieldVelocityY]} }
func (a *API) Heading() float64        { return a.mem[FieldHeading] }
func (a *API) AngularVelocity() float64 { return a.mem[FieldAngularVelocity] }
func (a *API) Seed() uint32            { return uint32(a.mem[FieldSeed]) }

func (a *API) Accelerate(v vec2.V) {
	a.mem[FieldAccelerateX] = v.X
	a.mem[FieldAccelerateY] = v.Y
}

func (a *API) Torque(t float64) { a.mem[FieldTorque] = t }
func (a *API) Boost(on bool)    { a.mem[FieldBoost] = boolToFloat(on) }

// TurnTo is the standard "PD-ish" heading controller used throughout the
// tutorial solutions (original_source/.../tutorial05.solution.rs,
// tutorial_radio.solution.rs): proportional on heading error, damped by
// current angular velocity.
func (a *API) TurnTo(targetHeading float64, gain float64) {
	err := vec2.AngleDiff(a.Heading(), targetHeading)
	a.Torque(gain*err - a.AngularVelocity())
}

func (a *API) FireGun(i int, aim float64) {
	a.mem.SetGunAim(i, aim)
	a.mem.SetGunFire(i, true)
}

func (a *API) LaunchMissile(i int) { a.mem.SetMissileLaunch(i, true) }
func (a *API) Explode()            { a.mem[FieldExplode] = 1 }

func (a *API) SetRadarHeading(h float64) { a.mem[FieldRadarHeading] = h }
func (a *API) RadarHeading() float64     { return a.mem[FieldRadarHeading] }
func (a *API) SetRadarWidth(w float64)   { a.mem[FieldRadarWidth] = w }

// Target reports the scenario-provided target hint, if any (spec.md §3).
func (a *API) Target() (position, velocity vec2.V, ok bool) {
	if a.mem[FieldHasTarget] == 0 {
		return vec2.Zero, vec2.Zero, false
	}
	return vec2.V{X: a.mem[FieldTargetX], Y: a.mem[FieldTargetY]},
		vec2.V{X: a.mem[FieldTargetVelocityX], Y: a.mem[FieldTargetVelocityY]}, true
}

func (a *API) Scan() Contact {
	if a.mem[FieldRadarContactFound] == 0 {
		return Contact{}
	}
	return Contact{
		Found:    true,
		Position: vec2.V{X: a.mem[FieldRadarContactPositionX], Y: a.mem[FieldRadarContactPositionY]},
		Velocity: vec2.V{X: a.mem[FieldRadarContactVelocityX], Y: a.mem[FieldRadarContactVelocityY]},
	}
}

func (a *API) SetRadioChannel(ch int) { a.mem[FieldRadioChannel] = float64(ch) }
func (a *API) Send(data [4]float64)   { a.mem.SetSend(data) }
func (a *API) Receive() ([4]float64, bool) { return a.mem.Receive() }

func (a *API) RNG() *rand.Rand                   { return a.ctx.RNG }
func (a *API) Debugf(format string, args ...any) { a.ctx.Debugf(format, args...) }
func (a *API) Getenv(key string) (string, bool)  { return a.ctx.Getenv(key) }

// LeadTarget predicts an intercept heading for a target moving at
// constant velocity, given an assumed closing speed (original_source
// shared/ai/tutorial/tutorial_radio.solution.rs's lead_target, adapted
// to take the closing speed as a parameter rather than a hardcoded
// 1000 m/s bullet speed).
func LeadTarget(from, targetPosition, targetVelocity, selfVelocity vec2.V, closingSpeed float64) float64 {
	dp := targetPosition.Sub(from)
	dv := targetVelocity.Sub(selfVelocity)
	predicted := dp.Add(dv.Scale(dp.Length() / closingSpeed))
	return predicted.Angle()
}
