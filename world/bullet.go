package world

import (
	"github.com/oortcore/simulator/class"
	"github.com/oortcore/simulator/vec2"
)

// Bullet is a kinematic projectile, not a rigid body subject to collision
// response (spec.md §3): it is swept analytically each tick and removed
// on its first hit or TTL expiry.
type Bullet struct {
	Team     int
	Position vec2.V
	Velocity vec2.V
	TTL      float64 // seconds remaining
	Damage   float64
	// Source is the class of the ship that fired this bullet, used only
	// for damage shaping (spec.md §3).
	Source class.Class
}
