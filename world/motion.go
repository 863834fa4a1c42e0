package world

import "github.com/oortcore/simulator/vec2"

// applyMotion clamps each ship's commanded acceleration/torque to its
// class limits and integrates velocity then position with semi-implicit
// Euler (spec.md §4.1: "apply commanded acceleration/torque, clamped;
// advance rigid bodies"). Gravity is zero throughout.
func (w *World) applyMotion() {
	for _, s := range w.ships {
		if s.Destroyed {
			continue
		}
		spec := s.Spec()

		accel := s.AccelCommand.Sanitize()
		torque := vec2.SanitizeScalar(s.TorqueCommand)

		forward := accel.X
		lateral := accel.Y
		if forward > spec.MaxForwardAccel {
			forward = spec.MaxForwardAccel
		} else if forward < -spec.MaxForwardAccel {
			forward = -spec.MaxForwardAccel
		}
		if spec.HasBoost && s.BoostCommand && forward > 0 {
			forward += spec.BoostAccel
		}
		if lateral > spec.MaxLateralAccel {
			lateral = spec.MaxLateralAccel
		} else if lateral < -spec.MaxLateralAccel {
			lateral = -spec.MaxLateralAccel
		}

		if torque > spec.MaxAngularAccel {
			torque = spec.MaxAngularAccel
		} else if torque < -spec.MaxAngularAccel {
			torque = -spec.MaxAngularAccel
		}

		worldAccel := vec2.V{X: forward, Y: lateral}.Rotate(s.Heading)

		// Semi-implicit Euler: update velocity first, then use the new
		// velocity to advance position.
		s.Velocity = s.Velocity.Add(worldAccel.Scale(DT))
		s.AngularVelocity += torque * DT

		s.Position = s.Position.Add(s.Velocity.Scale(DT))
		s.Heading += s.AngularVelocity * DT
		s.Heading = wrapAngle(s.Heading)
	}
}

func wrapAngle(a float64) float64 {
	for a > vec2.TAU {
		a -= vec2.TAU
	}
	for a < 0 {
		a += vec2.TAU
	}
	return a
}
