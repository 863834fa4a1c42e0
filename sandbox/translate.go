package sandbox

import (
	"github.com/oortcore/simulator/class"
	"github.com/oortcore/simulator/vec2"
	"github.com/oortcore/simulator/world"
)

// WriteInputs copies this ship's host→guest fields into mem (spec.md
// §4.5 protocol step 1): kinematics, last tick's radar contact, the
// scenario target hint, the current radar configuration, and the radio
// channel and received message. mem is a fresh zero-valued Memory each
// tick (scheduler.Step), so a motion, gun, tube, explode or radio-send
// field the controller doesn't touch this tick reads back as zero/no-op
// in ReadOutputs — that zeroing, not any method on Ship, is what resets
// command intent between ticks. Radar heading, width and ECM mode and
// the radio channel are pre-filled here, so they keep their values until
// a controller changes them.
func WriteInputs(mem *Memory, s *world.Ship, seed uint32) {
	mem[FieldClass] = float64(s.Class)
	mem[FieldSeed] = float64(seed)

	mem[FieldPositionX] = s.Position.X
	mem[FieldPositionY] = s.Position.Y
	mem[FieldVelocityX] = s.Velocity.X
	mem[FieldVelocityY] = s.Velocity.Y
	mem[FieldHeading] = s.Heading
	mem[FieldAngularVelocity] = s.AngularVelocity

	if s.RadarContact.Found {
		mem[FieldRadarContactFound] = 1
		mem[FieldRadarContactClass] = float64(s.RadarContact.Class)
		mem[FieldRadarContactPositionX] = s.RadarContact.Position.X
		mem[FieldRadarContactPositionY] = s.RadarContact.Position.Y
		mem[FieldRadarContactVelocityX] = s.RadarContact.Velocity.X
		mem[FieldRadarContactVelocityY] = s.RadarContact.Velocity.Y
	} else {
		mem[FieldRadarContactFound] = 0
	}

	mem[FieldRadarHeading] = s.RadarHeading
	mem[FieldRadarWidth] = s.RadarWidth
	mem[FieldRadarEcmMode] = float64(s.RadarEcm)

	mem[FieldHasTarget] = boolToFloat(s.HasTarget)
	mem[FieldTargetX] = s.Target.X
	mem[FieldTargetY] = s.Target.Y
	mem[FieldTargetVelocityX] = s.TargetVelocity.X
	mem[FieldTargetVelocityY] = s.TargetVelocity.Y

	mem[FieldRadioChannel] = float64(s.RadioChannel)
	mem.SetReceive(s.RadioReceived, s.RadioHasMessage)
	mem[FieldRadioSendFlag] = 0
}

// ReadOutputs copies the guest→host command fields from mem back onto s
// (spec.md §4.5 protocol step 4), sanitizing non-finite motion commands
// to zero (spec.md §8 boundary behavior) rather than letting NaN/Inf
// reach the physics step.
func ReadOutputs(mem *Memory, s *world.Ship) {
	s.AccelCommand = vec2.V{X: mem[FieldAccelerateX], Y: mem[FieldAccelerateY]}.Sanitize()
	s.TorqueCommand = vec2.SanitizeScalar(mem[FieldTorque])
	s.BoostCommand = mem[FieldBoost] != 0

	for i := 0; i < class.MaxGuns; i++ {
		s.GunAim[i] = vec2.SanitizeScalar(mem.GunAim(i))
		s.GunFire[i] = mem.GunFire(i)
	}
	for i := 0; i < class.MaxTubes; i++ {
		s.TubeLaunch[i] = mem.MissileLaunch(i)
	}

	s.RadarHeading = vec2.SanitizeScalar(mem[FieldRadarHeading])
	s.RadarWidth = vec2.SanitizeScalar(mem[FieldRadarWidth])
	s.RadarEcm = world.EcmMode(int(mem[FieldRadarEcmMode]))

	s.ExplodeCommand = mem[FieldExplode] != 0

	s.RadioChannel = int(mem[FieldRadioChannel])
	s.RadioSend = mem.Send()
	s.RadioSendPending = mem.SendPending()
}
