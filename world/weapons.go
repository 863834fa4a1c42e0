package world

import (
	"github.com/oortcore/simulator/class"
	"github.com/oortcore/simulator/vec2"
)

// resolveWeapons turns this tick's gun-fire and missile-launch commands
// into bullets and new ships (spec.md §4.2). A fire/launch command on a
// slot still on cooldown is silently ignored, not an error (spec.md §8
// boundary behaviors).
func (w *World) resolveWeapons() {
	for _, s := range w.ships {
		if s.Destroyed {
			continue
		}
		spec := s.Spec()
		for i, gun := range spec.Guns {
			if i >= class.MaxGuns || !s.GunFire[i] {
				continue
			}
			if s.GunCooldown[i] > 0 {
				continue // no-op: still cycling
			}
			w.fireGun(s, gun, i)
			s.GunCooldown[i] = gun.CycleTime
		}
		for i, tube := range spec.Tubes {
			if i >= class.MaxTubes || !s.TubeLaunch[i] {
				continue
			}
			if s.TubeCooldown[i] > 0 {
				continue
			}
			w.launchMissile(s, tube)
			s.TubeCooldown[i] = tube.Cooldown
		}
	}
}

func (w *World) fireGun(s *Ship, gun class.Gun, index int) {
	aim := s.GunAim[index]
	muzzleAngle := aim
	if gun.AimRelative {
		muzzleAngle = s.Heading + aim
	}
	if gun.MaxAimRange > 0 {
		// Clamp the aim offset to the mount's travel.
		rel := muzzleAngle - s.Heading
		if rel > gun.MaxAimRange {
			muzzleAngle = s.Heading + gun.MaxAimRange
		} else if rel < -gun.MaxAimRange {
			muzzleAngle = s.Heading - gun.MaxAimRange
		}
	}

	muzzlePos := s.Position.Add(gun.MuzzleOffset.Rotate(s.Heading))
	velocity := s.Velocity.Add(vec2.FromPolar(muzzleAngle, gun.MuzzleSpeed))

	w.Bullets = append(w.Bullets, &Bullet{
		Team:     s.Team,
		Position: muzzlePos,
		Velocity: velocity,
		TTL:      bulletLifetime(gun.MuzzleSpeed, w.Size),
		Damage:   gun.Damage,
		Source:   s.Class,
	})
}

func bulletLifetime(speed, worldSize float64) float64 {
	if speed <= 0 {
		return 1
	}
	// Bullets live long enough to cross the world once, plus margin.
	return 2 * worldSize / speed
}

func (w *World) launchMissile(parent *Ship, tube class.Tube) {
	missile := NewShip(parent.Team, tube.Launches, parent.Position.Add(tube.MuzzleOffset.Rotate(parent.Heading)), parent.Velocity, parent.Heading)
	h := w.Spawn(missile)
	w.Launches = append(w.Launches, h)
}

// resolveExplosions marks missiles/torpedoes that requested `explode`
// this tick as destroyed (gcDestroyed removes them at the end of the
// tick) and applies area damage to all ships within the blast
// radius, falling off linearly from the center (spec.md §4.2). `explode`
// on a non-missile class is a no-op (spec.md §8).
func (w *World) resolveExplosions() {
	for _, s := range w.ships {
		if s.Destroyed || !s.ExplodeCommand {
			continue
		}
		spec := s.Spec()
		if s.Class != class.Missile && s.Class != class.Torpedo {
			continue
		}
		w.applyBlast(s.Handle, s.Position, spec.ExplosionDamage, spec.ExplosionRadius)
		s.Destroyed = true
	}
}

func (w *World) applyBlast(attacker Handle, center vec2.V, maxDamage, radius float64) {
	if radius <= 0 {
		return
	}
	for _, s := range w.ships {
		if s.Destroyed {
			continue
		}
		d := s.Position.Distance(center)
		if d > radius {
			continue
		}
		falloff := 1 - d/radius
		dmg := maxDamage * falloff
		if dmg <= 0 {
			continue
		}
		s.Health -= dmg
		w.Hits = append(w.Hits, HitEvent{Target: s.Handle, Attacker: attacker, Damage: dmg, Position: s.Position})
		if s.Health <= 0 {
			s.Destroyed = true
		}
	}
}
