package world

import (
	"math"

	"github.com/oortcore/simulator/vec2"
)

// sweepBullets advances every bullet by one timestep and resolves the
// first hit against an eligible ship as a ray-vs-disc test against the
// swept segment, rather than a sustained contact (spec.md §4.1: "bullet-
// anything yields an immediate hit event... and the bullet is removed").
func (w *World) sweepBullets() {
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		b.TTL -= DT
		from := b.Position
		to := from.Add(b.Velocity.Scale(DT))

		target := w.firstShipOnSegment(from, to, b.Team)
		if target != nil {
			target.Health -= b.Damage
			w.Hits = append(w.Hits, HitEvent{Target: target.Handle, Damage: b.Damage, Position: to, Bullet: true})
			if target.Health <= 0 {
				target.Destroyed = true
			}
			continue // bullet consumed by the hit
		}

		b.Position = to
		if b.TTL > 0 {
			kept = append(kept, b)
		}
	}
	w.Bullets = kept
}

// firstShipOnSegment returns the nearest eligible ship whose collider the
// segment from->to intersects, or nil. Ties (equal distance along the
// segment) are broken by ascending handle (spec.md §4.1 determinism
// requirement).
func (w *World) firstShipOnSegment(from, to vec2.V, bulletTeam int) *Ship {
	candidates := w.grid.nearby(to.X, to.Y)
	var best *Ship
	bestT := math.Inf(1)
	seen := make(map[Handle]bool, len(candidates))
	for _, h := range candidates {
		if seen[h] {
			continue
		}
		seen[h] = true
		s := w.Ship(h)
		if s == nil || s.Destroyed {
			continue
		}
		if !bulletHitsShip(bulletTeam, s.Team) {
			continue
		}
		if t, hit := segmentCircleHit(from, to, s.Position, s.Spec().Radius); hit {
			if t < bestT || (t == bestT && (best == nil || s.Handle < best.Handle)) {
				bestT = t
				best = s
			}
		}
	}
	return best
}

// segmentCircleHit returns the fractional position (0..1) along segment
// from->to where it first enters the circle centered at c with radius r.
func segmentCircleHit(from, to, c vec2.V, r float64) (float64, bool) {
	d := to.Sub(from)
	f := from.Sub(c)

	a := d.Dot(d)
	if a == 0 {
		return 0, f.Length() <= r
	}
	b := 2 * f.Dot(d)
	cc := f.Dot(f) - r*r

	disc := b*b - 4*a*cc
	if disc < 0 {
		return 0, false
	}
	disc = math.Sqrt(disc)
	t1 := (-b - disc) / (2 * a)
	t2 := (-b + disc) / (2 * a)
	if t1 >= 0 && t1 <= 1 {
		return t1, true
	}
	if t2 >= 0 && t2 <= 1 {
		return t2, true
	}
	return 0, false
}

// resolveShipCollisions applies elastic, mass-proportional impulses
// between overlapping ships, with no friction (spec.md §4.1).
func (w *World) resolveShipCollisions() {
	ships := w.ships
	for i := 0; i < len(ships); i++ {
		a := ships[i]
		if a.Destroyed {
			continue
		}
		for _, h := range w.grid.nearby(a.Position.X, a.Position.Y) {
			if h <= a.Handle {
				continue // each pair resolved once, in ascending-handle order
			}
			b := w.Ship(h)
			if b == nil || b.Destroyed {
				continue
			}
			minDist := a.Spec().Radius + b.Spec().Radius
			delta := b.Position.Sub(a.Position)
			dist := delta.Length()
			if dist >= minDist || dist == 0 {
				continue
			}
			normal := delta.Normalize()
			rel := b.Velocity.Sub(a.Velocity).Dot(normal)
			if rel >= 0 {
				continue // already separating
			}
			ma, mb := a.Spec().Mass, b.Spec().Mass
			impulse := -2 * rel / (1/ma + 1/mb)
			a.Velocity = a.Velocity.Sub(normal.Scale(impulse / ma))
			b.Velocity = b.Velocity.Add(normal.Scale(impulse / mb))

			overlap := minDist - dist
			a.Position = a.Position.Sub(normal.Scale(overlap / 2))
			b.Position = b.Position.Add(normal.Scale(overlap / 2))
		}
	}
}

// resolveWallCollisions reflects ships off static wall boxes (spec.md
// §4.1: "ship-wall reflective").
func (w *World) resolveWallCollisions() {
	if !w.HasWalls() {
		return
	}
	for _, s := range w.ships {
		if s.Destroyed {
			continue
		}
		r := s.Spec().Radius
		for _, wall := range w.Walls {
			lo := wall.Center.Sub(wall.HalfExtents)
			hi := wall.Center.Add(wall.HalfExtents)
			if s.Position.X+r < lo.X || s.Position.X-r > hi.X || s.Position.Y+r < lo.Y || s.Position.Y-r > hi.Y {
				continue
			}
			// Push out along the axis of least penetration and reflect
			// the corresponding velocity component.
			penLeft := s.Position.X + r - lo.X
			penRight := hi.X - (s.Position.X - r)
			penBottom := s.Position.Y + r - lo.Y
			penTop := hi.Y - (s.Position.Y - r)

			min := penLeft
			axis := 0
			if penRight < min {
				min, axis = penRight, 1
			}
			if penBottom < min {
				min, axis = penBottom, 2
			}
			if penTop < min {
				min, axis = penTop, 3
			}
			switch axis {
			case 0:
				s.Position.X = lo.X - r
				s.Velocity.X = -s.Velocity.X
			case 1:
				s.Position.X = hi.X + r
				s.Velocity.X = -s.Velocity.X
			case 2:
				s.Position.Y = lo.Y - r
				s.Velocity.Y = -s.Velocity.Y
			case 3:
				s.Position.Y = hi.Y + r
				s.Velocity.Y = -s.Velocity.Y
			}
		}
	}
}
