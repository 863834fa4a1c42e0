package world

import (
	"math"

	"github.com/oortcore/simulator/vec2"
)

// scanRadar evaluates each radar-capable ship's beam against every enemy
// ship and records the nearest contact, tie-broken by ascending handle
// (spec.md §4.3). Radar is evaluated at the end of the physics step, so
// the *next* tick's controllers observe it.
func (w *World) scanRadar() {
	for _, s := range w.ships {
		if s.Destroyed {
			continue
		}
		s.RadarContact = RadarContact{}
		if !s.Spec().HasRadar {
			continue
		}
		s.RadarContact = w.scanFor(s)
	}
}

func (w *World) scanFor(s *Ship) RadarContact {
	width := s.RadarWidth
	if width < 0 {
		width = 0
	}
	maxRange := maxRadarRange(s.Spec().RadarRangeConstant, width)

	var best *Ship
	bestDist := math.Inf(1)
	for _, other := range w.ships {
		if other.Destroyed || other.Team == s.Team {
			continue
		}
		delta := other.Position.Sub(s.Position)
		dist := delta.Length()
		if dist > maxRange {
			continue
		}
		bearing := delta.Angle()
		diff := math.Abs(vec2.AngleDiff(s.Heading+s.RadarHeading, bearing))
		if diff > width/2 {
			continue
		}
		if other.RadarEcm == EcmNoise && suppressedByEcm(s) {
			continue
		}
		if dist < bestDist || (dist == bestDist && (best == nil || other.Handle < best.Handle)) {
			bestDist = dist
			best = other
		}
	}
	if best == nil {
		return RadarContact{}
	}
	return RadarContact{
		Found:    true,
		Class:    best.Class,
		Position: best.Position,
		Velocity: best.Velocity,
	}
}

// maxRadarRange implements "range × width is roughly constant" (spec.md
// §4.3): narrow beams see farther. A zero-width beam is a point beam with
// an effectively unbounded range, satisfying the boundary behavior "a
// radar width of 0 yields at most one contact at exact bearing" (spec.md
// §8) since the angular test alone then selects the contact.
func maxRadarRange(k, width float64) float64 {
	if width <= 0 {
		return math.MaxFloat64
	}
	return k / width
}

// suppressedByEcm consumes the scanning ship's own per-ship PRNG to
// probabilistically suppress detection of a noise-jamming target (spec.md
// §4.3). Using the scanning ship's RNG (rather than the target's) keeps
// the decision attributable to, and reproducible from, the ship doing the
// observing.
func suppressedByEcm(scanner *Ship) bool {
	if scanner.RNG == nil {
		return false
	}
	const suppressProbability = 0.5
	return scanner.RNG.Float64() < suppressProbability
}
