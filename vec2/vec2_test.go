package vec2

import (
	"math"
	"testing"
)

func TestRotateQuarterTurn(t *testing.T) {
	v := New(1, 0).Rotate(math.Pi / 2)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-1) > 1e-9 {
		t.Fatalf("rotate: got %+v", v)
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := Zero.Normalize(); got != Zero {
		t.Fatalf("normalize of zero vector should be zero, got %+v", got)
	}
}

func TestSanitizeNaN(t *testing.T) {
	v := New(math.NaN(), math.Inf(1)).Sanitize()
	if v != Zero {
		t.Fatalf("sanitize: expected zero, got %+v", v)
	}
}

func TestClampLength(t *testing.T) {
	v := New(3, 4).ClampLength(2.5)
	if math.Abs(v.Length()-2.5) > 1e-9 {
		t.Fatalf("clamp: expected length 2.5, got %v", v.Length())
	}
	v2 := New(1, 0).ClampLength(2.5)
	if v2 != New(1, 0) {
		t.Fatalf("clamp should be a no-op under the limit, got %+v", v2)
	}
}

func TestAngleDiffWraps(t *testing.T) {
	d := AngleDiff(-3.1, 3.1)
	if d > 0 {
		t.Fatalf("expected the shortest (negative) turn, got %v", d)
	}
}

func TestFromPolarRoundTrip(t *testing.T) {
	v := FromPolar(1.234, 5.0)
	if math.Abs(v.Length()-5.0) > 1e-9 {
		t.Fatalf("length: got %v", v.Length())
	}
	if math.Abs(AngleDiff(1.234, v.Angle())) > 1e-9 {
		t.Fatalf("angle: got %v want %v", v.Angle(), 1.234)
	}
}
