package world

import (
	"math"
	"testing"

	"github.com/oortcore/simulator/class"
	"github.com/oortcore/simulator/vec2"
)

func TestWorldEdgeDestruction(t *testing.T) {
	w := New(2000, 1)
	s := NewShip(0, class.Fighter, vec2.V{X: 990, Y: 0}, vec2.V{X: 500, Y: 0}, 0)
	w.Spawn(s)

	ticks := int(math.Ceil(20.0 / 500.0 * 60.0))
	for i := 0; i < ticks; i++ {
		w.Step()
	}

	if w.Ship(s.Handle) != nil {
		t.Fatalf("expected ship destroyed after %d ticks crossing the world edge", ticks)
	}
}

func TestWallsPreventEdgeDestruction(t *testing.T) {
	w := New(2000, 1)
	w.AddWall(vec2.V{X: 1010}, vec2.V{X: 10, Y: 1010})
	w.AddWall(vec2.V{X: -1010}, vec2.V{X: 10, Y: 1010})
	w.AddWall(vec2.V{Y: 1010}, vec2.V{X: 1010, Y: 10})
	w.AddWall(vec2.V{Y: -1010}, vec2.V{X: 1010, Y: 10})

	s := NewShip(0, class.Fighter, vec2.V{X: 990, Y: 0}, vec2.V{X: 5000, Y: 0}, 0)
	w.Spawn(s)
	for i := 0; i < 120; i++ {
		w.Step()
	}
	if s.Destroyed {
		t.Fatalf("walled world should bounce the ship, not destroy it")
	}
	if math.Abs(s.Position.X) > 1000 {
		t.Fatalf("ship escaped the wall: position=%+v", s.Position)
	}
}

func TestGunCooldownNoOp(t *testing.T) {
	w := New(10000, 1)
	s := NewShip(0, class.Fighter, vec2.Zero, vec2.Zero, 0)
	w.Spawn(s)

	s.GunFire[0] = true
	w.Step()
	n := len(w.Bullets)
	if n != 1 {
		t.Fatalf("expected 1 bullet fired, got %d", n)
	}

	// Still on cooldown: a second fire command on the next tick is a no-op.
	s.GunFire[0] = true
	w.Step()
	if len(w.Bullets) != n {
		t.Fatalf("firing on cooldown should be a no-op, bullets went from %d to %d", n, len(w.Bullets))
	}
}

func TestLaunchFromEmptyTubeIsNoOp(t *testing.T) {
	w := New(10000, 1)
	s := NewShip(0, class.Asteroid, vec2.Zero, vec2.Zero, 0) // asteroid has no tubes
	w.Spawn(s)
	s.TubeLaunch[0] = true
	before := len(w.Ships())
	w.Step()
	if len(w.Ships()) != before {
		t.Fatalf("launching from a class with no tubes must be a no-op")
	}
}

func TestExplodeOnNonMissileIsNoOp(t *testing.T) {
	w := New(10000, 1)
	s := NewShip(0, class.Fighter, vec2.Zero, vec2.Zero, 0)
	w.Spawn(s)
	s.ExplodeCommand = true
	w.Step()
	if w.Ship(s.Handle) == nil {
		t.Fatalf("explode on a non-missile class must be a no-op, not destroy the ship")
	}
}

func TestRadarZeroWidthAtMostOneContact(t *testing.T) {
	w := New(10000, 1)
	a := NewShip(0, class.Fighter, vec2.Zero, vec2.Zero, 0)
	w.Spawn(a)
	b := NewShip(1, class.Fighter, vec2.V{X: 100}, vec2.Zero, 0)
	w.Spawn(b)
	a.RadarWidth = 0
	a.RadarHeading = 0
	w.scanRadar()
	if !a.RadarContact.Found {
		t.Fatalf("expected exact-bearing contact with zero-width beam")
	}
}

func TestRadarSymmetry(t *testing.T) {
	w := New(20000, 1)
	a := NewShip(0, class.Fighter, vec2.V{X: -500}, vec2.Zero, 0)
	w.Spawn(a)
	b := NewShip(1, class.Fighter, vec2.V{X: 500}, vec2.Zero, math.Pi)
	w.Spawn(b)
	a.RadarWidth = vec2.TAU / 2
	b.RadarWidth = vec2.TAU / 2
	w.scanRadar()
	if !a.RadarContact.Found || !b.RadarContact.Found {
		t.Fatalf("expected both ships to detect each other: a=%+v b=%+v", a.RadarContact, b.RadarContact)
	}
}

func TestBulletHitsEnemyNotFriendly(t *testing.T) {
	w := New(10000, 1)
	friendly := NewShip(0, class.Target, vec2.V{X: 10}, vec2.Zero, 0)
	w.Spawn(friendly)
	enemy := NewShip(1, class.Target, vec2.V{X: 10}, vec2.Zero, 0)
	w.Spawn(enemy)

	w.Bullets = append(w.Bullets, &Bullet{Team: 0, Position: vec2.Zero, Velocity: vec2.V{X: 6000}, TTL: 10, Damage: 50})
	w.rebuildGrid()
	w.sweepBullets()

	if !enemy.Destroyed && enemy.Health >= class.Specs[class.Target].Health {
		t.Fatalf("expected enemy ship to take bullet damage")
	}
	if friendly.Health != class.Specs[class.Target].Health {
		t.Fatalf("friendly ship should not be hit by its own team's bullet")
	}
}

func TestRadioVisibilityWindow(t *testing.T) {
	w := New(1000, 1)
	w.Send(0, 2, 10, [4]float64{1, 2, 3, 4})

	if _, ok := w.Receive(0, 2, 10); !ok {
		t.Fatalf("message should be visible on the tick it was sent")
	}
	if _, ok := w.Receive(0, 2, 11); !ok {
		t.Fatalf("message should be visible the tick after it was sent")
	}
	if _, ok := w.Receive(0, 2, 12); ok {
		t.Fatalf("message should have expired two ticks after it was sent")
	}
}

func TestRadioLastWriterWinsByHandleOrder(t *testing.T) {
	w := New(1000, 1)
	// Emulates two same-team ships writing the same channel in the same
	// tick, processed in ascending handle order: the later (higher
	// handle) ship's write must be what remains visible.
	w.Send(0, 0, 5, [4]float64{1, 0, 0, 0})
	w.Send(0, 0, 5, [4]float64{2, 0, 0, 0})
	data, ok := w.Receive(0, 0, 5)
	if !ok || data[0] != 2 {
		t.Fatalf("expected last writer's message (2), got %v ok=%v", data, ok)
	}
}

func TestNaNAccelerationSanitizedToZero(t *testing.T) {
	w := New(10000, 1)
	s := NewShip(0, class.Fighter, vec2.Zero, vec2.Zero, 0)
	w.Spawn(s)
	s.AccelCommand = vec2.V{X: math.NaN(), Y: math.Inf(1)}
	w.Step()
	if !s.Velocity.IsFinite() {
		t.Fatalf("NaN/Inf commanded acceleration must sanitize to 0, got velocity %+v", s.Velocity)
	}
}

func TestAccelerationClampedToClassMax(t *testing.T) {
	w := New(100000, 1)
	s := NewShip(0, class.Fighter, vec2.Zero, vec2.Zero, 0)
	w.Spawn(s)
	s.AccelCommand = vec2.V{X: 1e9, Y: 0}
	w.Step()
	maxVel := class.Specs[class.Fighter].MaxForwardAccel * DT
	if s.Velocity.Length() > maxVel+1e-6 {
		t.Fatalf("acceleration should clamp to class max, got velocity length %v want <= %v", s.Velocity.Length(), maxVel)
	}
}

func TestExplosionDamageFallsOffLinearly(t *testing.T) {
	w := New(10000, 1)
	missile := NewShip(0, class.Missile, vec2.Zero, vec2.Zero, 0)
	w.Spawn(missile)
	spec := class.Specs[class.Missile]
	near := NewShip(1, class.Frigate, vec2.V{X: spec.ExplosionRadius * 0.1}, vec2.Zero, 0)
	w.Spawn(near)
	far := NewShip(1, class.Frigate, vec2.V{X: spec.ExplosionRadius * 0.9}, vec2.Zero, 0)
	w.Spawn(far)

	missile.ExplodeCommand = true
	w.resolveExplosions()

	nearDamage := class.Specs[class.Frigate].Health - near.Health
	farDamage := class.Specs[class.Frigate].Health - far.Health
	if nearDamage <= farDamage {
		t.Fatalf("expected closer ship to take more damage: near=%v far=%v", nearDamage, farDamage)
	}
	// Exploded missiles are removed by the end-of-tick cleanup.
	w.gcDestroyed()
	if w.Ship(missile.Handle) != nil {
		t.Fatalf("missile should be removed after exploding")
	}
}
