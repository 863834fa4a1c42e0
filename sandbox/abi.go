// Package sandbox implements the host side of the ship-control sandbox
// (spec.md §4.5): a fixed-layout shared-memory ABI, per-tick invocation
// protocol, per-ship PRNG installation, and panic/deadline containment.
//
// The real system compiles untrusted source to a sandboxed binary blob
// and invokes it across a WASM-style boundary. No scripting or WASM
// runtime dependency exists anywhere in the retrieved example pack, so a
// Module here stands in for that blob: a plain Go value holding exactly
// the capabilities spec.md §4.5 grants a guest (random numbers, a
// read-only environment table, a debug sink) and nothing else. The
// per-instance dispatch shape follows the teacher's bot roster
// (server/bots.go: one behavior function invoked once per game frame per
// bot, keyed by player slot) generalized from a fixed bot roster to an
// arbitrary team's worth of compiled code.
package sandbox

// Field identifies one slot in the shared-memory ABI array (spec.md
// §4.5's field table), in the fixed order the table specifies.
type Field int

const (
	FieldClass Field = iota
	FieldSeed

	FieldPositionX
	FieldPositionY
	FieldVelocityX
	FieldVelocityY
	FieldHeading
	FieldAngularVelocity

	FieldRadarContactFound
	FieldRadarContactClass
	FieldRadarContactPositionX
	FieldRadarContactPositionY
	FieldRadarContactVelocityX
	FieldRadarContactVelocityY

	FieldAccelerateX
	FieldAccelerateY
	FieldTorque
	FieldBoost

	FieldGun0Aim
	FieldGun0Fire
	FieldGun1Aim
	FieldGun1Fire
	FieldGun2Aim
	FieldGun2Fire
	FieldGun3Aim
	FieldGun3Fire

	FieldMissile0Launch
	FieldMissile1Launch
	FieldMissile2Launch
	FieldMissile3Launch

	FieldRadarHeading
	FieldRadarWidth
	FieldRadarEcmMode

	FieldExplode

	FieldRadioChannel
	FieldSend0
	FieldSend1
	FieldSend2
	FieldSend3
	FieldReceive0
	FieldReceive1
	FieldReceive2
	FieldReceive3

	// FieldRadioReceiveFound and FieldRadioSendFlag are host bookkeeping,
	// not part of spec.md §4.5's literal field table: a zero-valued
	// message is a legal message, so distinguishing "no message" and
	// "did the guest call send this tick" needs an explicit flag the same
	// way RadarContactFound already disambiguates an empty radar scan.
	FieldRadioReceiveFound
	FieldRadioSendFlag

	// FieldHasTarget, FieldTargetX/Y, FieldTargetVelocityX/Y carry the
	// scenario-provided "target" hint (spec.md §3: e.g. the random point
	// a rotation tutorial asks the player to fly to). Also not part of
	// §4.5's literal table, which only enumerates radar/radio/kinematics;
	// Target is a distinct per-ship field on world.Ship and needs its own
	// ABI slots rather than overloading the radar contact fields.
	FieldHasTarget
	FieldTargetX
	FieldTargetY
	FieldTargetVelocityX
	FieldTargetVelocityY

	numFields
)

// gunAimField and gunFireField locate the Aim/Fire pair for gun slot i
// (0..3); missileLaunchField locates the Launch flag for tube slot i.
func gunAimField(i int) Field     { return FieldGun0Aim + Field(i*2) }
func gunFireField(i int) Field    { return FieldGun0Fire + Field(i*2) }
func missileLaunchField(i int) Field { return FieldMissile0Launch + Field(i) }

// Memory is the flat shared-memory region handed to a guest module each
// tick (spec.md §4.5): one global region per team controller, rewritten
// per invocation, with no concurrent access (spec.md §5's single-writer
// policy obviates any need for locking here).
type Memory [numFields]float64

// Get and Set are plain indexed access. Most callers use the named
// accessors below; these exist for the translation layer and tests.
func (m *Memory) Get(f Field) float64     { return m[f] }
func (m *Memory) Set(f Field, v float64)  { m[f] = v }

func (m *Memory) GunAim(i int) float64  { return m[gunAimField(i)] }
func (m *Memory) GunFire(i int) bool    { return m[gunFireField(i)] != 0 }
func (m *Memory) SetGunAim(i int, v float64) { m[gunAimField(i)] = v }
func (m *Memory) SetGunFire(i int, v bool)   { m[gunFireField(i)] = boolToFloat(v) }

func (m *Memory) MissileLaunch(i int) bool     { return m[missileLaunchField(i)] != 0 }
func (m *Memory) SetMissileLaunch(i int, v bool) { m[missileLaunchField(i)] = boolToFloat(v) }

func (m *Memory) Send() [4]float64 {
	return [4]float64{m[FieldSend0], m[FieldSend1], m[FieldSend2], m[FieldSend3]}
}

func (m *Memory) SendPending() bool { return m[FieldRadioSendFlag] != 0 }

func (m *Memory) SetSend(data [4]float64) {
	m[FieldSend0], m[FieldSend1], m[FieldSend2], m[FieldSend3] = data[0], data[1], data[2], data[3]
	m[FieldRadioSendFlag] = 1
}

func (m *Memory) Receive() ([4]float64, bool) {
	if m[FieldRadioReceiveFound] == 0 {
		return [4]float64{}, false
	}
	return [4]float64{m[FieldReceive0], m[FieldReceive1], m[FieldReceive2], m[FieldReceive3]}, true
}

func (m *Memory) SetReceive(data [4]float64, found bool) {
	m[FieldReceive0], m[FieldReceive1], m[FieldReceive2], m[FieldReceive3] = data[0], data[1], data[2], data[3]
	m[FieldRadioReceiveFound] = boolToFloat(found)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
