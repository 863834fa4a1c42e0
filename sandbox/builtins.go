package sandbox

import (
	"github.com/oortcore/simulator/vec2"
)

// gunsModule fires its forward gun continuously without moving.
// Grounded on original_source/ai/tutorial/tutorial04.solution.rs's
// fire-a-fixed-gun shape, simplified down to the bare weapons-only case a
// guns tutorial scenario exercises.
type gunsModule struct{}

func (m *gunsModule) Tick(shipKey int64, a *API) {
	a.FireGun(0, 0)
}

// flyToTargetModule accelerates toward the scenario's target point.
// Grounded on original_source/ai/tutorial/tutorial02.solution.rs and
// tutorial03.solution.rs.
type flyToTargetModule struct{}

func (m *flyToTargetModule) Tick(shipKey int64, a *API) {
	targetPos, _, ok := a.Target()
	if !ok {
		return
	}
	dp := targetPos.Sub(a.Position())
	a.Accelerate(dp.Rotate(-a.Heading()).Normalize().Scale(30))
}

// rotateAndFireModule turns to face the scenario's target point and
// fires, without translating. Grounded on
// original_source/ai/tutorial/tutorial04.solution.rs.
type rotateAndFireModule struct{}

func (m *rotateAndFireModule) Tick(shipKey int64, a *API) {
	targetPos, _, ok := a.Target()
	if !ok {
		return
	}
	bearing := targetPos.Sub(a.Position()).Angle()
	a.TurnTo(bearing, 1)
	a.FireGun(0, 0)
}

// leadAndFireModule closes on a target, predicts its position one flight
// time ahead assuming a 1000 m/s bullet, and fires. Grounded on
// original_source/ai/tutorial/tutorial05.solution.rs.
type leadAndFireModule struct{}

const assumedBulletSpeed = 1000.0

func (m *leadAndFireModule) Tick(shipKey int64, a *API) {
	contact := a.Scan()
	if !contact.Found {
		return
	}
	pos := a.Position()
	dp := contact.Position.Sub(pos).Sub(a.Velocity())
	a.Accelerate(dp.Scale(0.1))
	heading := LeadTarget(pos, contact.Position, contact.Velocity, a.Velocity(), assumedBulletSpeed)
	a.TurnTo(heading, 3)
	a.FireGun(0, 0)
}

// radarHunterModule sweeps its radar when no contact is held, and closes,
// aims, and fires once it acquires one, re-centering the beam on the
// contact's current bearing so it stays locked. Grounded on
// original_source/ai/tutorial/tutorial06.solution.rs (and the wider sweep
// of tutorial08.solution.rs for the lost-contact search pattern).
type radarHunterModule struct{}

func (m *radarHunterModule) Tick(shipKey int64, a *API) {
	contact := a.Scan()
	if !contact.Found {
		a.SetRadarHeading(a.RadarHeading() + vec2.TAU/6)
		return
	}
	pos := a.Position()
	dp := contact.Position.Sub(pos).Sub(a.Velocity())
	a.Accelerate(dp.Rotate(-a.Heading()).Scale(0.1))
	bearing := contact.Position.Sub(pos).Angle()
	a.TurnTo(bearing, 3)
	a.FireGun(0, 0)
	a.SetRadarHeading(bearing - a.Heading())
}

// radioInterceptModule has no working radar; it tunes to channel 2 and
// acts on whatever contact position/velocity arrives over the radio
// instead, falling silent when nothing has been posted. Grounded on
// original_source/shared/ai/tutorial/tutorial_radio.solution.rs.
type radioInterceptModule struct{}

const radioContactChannel = 2

func (m *radioInterceptModule) Tick(shipKey int64, a *API) {
	a.SetRadioChannel(radioContactChannel)
	msg, ok := a.Receive()
	if !ok {
		a.Torque(0)
		return
	}
	contactPosition := vec2.V{X: msg[0], Y: msg[1]}
	contactVelocity := vec2.V{X: msg[2], Y: msg[3]}
	pos := a.Position()
	a.Accelerate(contactPosition.Sub(pos).Scale(0.01).Sub(a.Velocity().Scale(0.1)))
	heading := LeadTarget(pos, contactPosition, contactVelocity, a.Velocity(), assumedBulletSpeed)
	a.TurnTo(heading, 10)
	a.FireGun(0, 0)
}

// wandererModule is the default hostile used by duel/furball scenarios:
// it picks a random point within its patrol radius, flies to it, and
// re-rolls on arrival. Per-ship-key state (each logical ship's current
// patrol point) is kept in a map since one module value may serve every
// ship on a team (spec.md §4.5 "Team controller"). Grounded on
// original_source/shared/builtin_ai/src/tutorial/tutorial_search_initial.rs
// and original_source/ai/tutorial/tutorial09.enemy.rs.
type wandererModule struct {
	patrol map[int64]vec2.V
}

func newWandererModule() *wandererModule {
	return &wandererModule{patrol: make(map[int64]vec2.V)}
}

const wandererPatrolRadius = 1000.0
const wandererArrivalRadius = 50.0

func (m *wandererModule) Tick(shipKey int64, a *API) {
	pos := a.Position()
	target, ok := m.patrol[shipKey]
	if !ok || target.Sub(pos).Length() < wandererArrivalRadius {
		angle := a.RNG().Float64() * vec2.TAU
		dist := a.RNG().Float64() * wandererPatrolRadius
		target = pos.Add(vec2.FromPolar(angle, dist))
		m.patrol[shipKey] = target
	}
	a.Accelerate(target.Sub(pos).Sub(a.Velocity()))
	a.TurnTo(target.Sub(pos).Angle(), 3)
}

// divideByZeroModule panics every tick it runs. It exists to give the
// host's crash-containment path (Instance.RunTick's recover, spec.md §7
// ControllerCrash) something real to catch in tests, the same way a
// guest dividing by zero would trap inside the sandboxed runtime.
type divideByZeroModule struct{}

func (m *divideByZeroModule) Tick(shipKey int64, a *API) {
	zero := 0
	bad := 1 / zero
	a.Torque(float64(bad))
}
