// Package vec2 implements the 2D vector math shared by every simulation
// component. All angles are radians, TAU convention.
package vec2

import "math"

// TAU is a full turn in radians. The core uses TAU rather than 2*Pi at
// call sites to match how headings and radar beams are specified.
const TAU = 2 * math.Pi

// V is a pair of 64-bit floats. Values are passed by value everywhere;
// there is no mutation through pointers.
type V struct {
	X, Y float64
}

// Zero is the additive identity.
var Zero = V{}

func New(x, y float64) V { return V{X: x, Y: y} }

// FromPolar builds a vector from an angle (radians) and a length.
func FromPolar(angle, length float64) V {
	return V{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

func (a V) Add(b V) V { return V{a.X + b.X, a.Y + b.Y} }
func (a V) Sub(b V) V { return V{a.X - b.X, a.Y - b.Y} }
func (a V) Scale(k float64) V { return V{a.X * k, a.Y * k} }
func (a V) Neg() V { return V{-a.X, -a.Y} }

func (a V) Dot(b V) float64 { return a.X*b.X + a.Y*b.Y }

// Cross returns the scalar (z component) of the 2D cross product.
func (a V) Cross(b V) float64 { return a.X*b.Y - a.Y*b.X }

func (a V) LengthSquared() float64 { return a.X*a.X + a.Y*a.Y }
func (a V) Length() float64        { return math.Sqrt(a.LengthSquared()) }

// Angle returns the vector's bearing in radians, atan2(y, x).
func (a V) Angle() float64 { return math.Atan2(a.Y, a.X) }

// Normalize returns a unit vector in the same direction, or Zero if a is
// the zero vector.
func (a V) Normalize() V {
	l := a.Length()
	if l == 0 {
		return Zero
	}
	return a.Scale(1 / l)
}

// Rotate returns a rotated by angle radians (counter-clockwise).
func (a V) Rotate(angle float64) V {
	s, c := math.Sincos(angle)
	return V{a.X*c - a.Y*s, a.X*s + a.Y*c}
}

// Distance returns the Euclidean distance between a and b.
func (a V) Distance(b V) float64 { return a.Sub(b).Length() }

// IsFinite reports whether both components are finite (not NaN, not Inf).
func (a V) IsFinite() bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0)
}

// Sanitize replaces non-finite components with 0, matching the host's
// NaN-to-zero policy for commanded motion (spec §7: "NaN is accepted but
// treated as 0 for motion commands to avoid poisoning physics").
func (a V) Sanitize() V {
	x, y := a.X, a.Y
	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = 0
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		y = 0
	}
	return V{x, y}
}

// ClampLength returns a scaled down to max length if it exceeds it.
func (a V) ClampLength(max float64) V {
	l := a.Length()
	if l <= max || l == 0 {
		return a
	}
	return a.Scale(max / l)
}

// AngleDiff returns the signed difference (b - a) wrapped to [-PI, PI],
// the shortest rotation from heading a to heading b.
func AngleDiff(a, b float64) float64 {
	d := math.Mod(b-a, TAU)
	if d > math.Pi {
		d -= TAU
	} else if d < -math.Pi {
		d += TAU
	}
	return d
}

// SanitizeScalar treats a non-finite scalar motion command as 0.
func SanitizeScalar(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
