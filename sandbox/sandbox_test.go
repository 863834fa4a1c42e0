package sandbox

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/oortcore/simulator/class"
	"github.com/oortcore/simulator/vec2"
	"github.com/oortcore/simulator/world"
)

func newRNG() *rand.Rand { return rand.New(rand.NewChaCha8([32]byte{1})) }

func TestWriteReadOutputsRoundTrip(t *testing.T) {
	s := world.NewShip(0, class.Fighter, vec2.V{X: 1, Y: 2}, vec2.V{X: 3, Y: 4}, 0.5)
	var mem Memory
	WriteInputs(&mem, s, 42)

	if mem[FieldPositionX] != 1 || mem[FieldPositionY] != 2 {
		t.Fatalf("position not written: %+v", mem)
	}

	mem[FieldAccelerateX] = 10
	mem[FieldAccelerateY] = -5
	mem.SetGunAim(0, 1.5)
	mem.SetGunFire(0, true)
	mem.SetMissileLaunch(1, true)
	mem[FieldExplode] = 1

	ReadOutputs(&mem, s)

	if s.AccelCommand.X != 10 || s.AccelCommand.Y != -5 {
		t.Fatalf("accel command not read back: %+v", s.AccelCommand)
	}
	if !s.GunFire[0] || s.GunAim[0] != 1.5 {
		t.Fatalf("gun command not read back")
	}
	if !s.TubeLaunch[1] {
		t.Fatalf("tube launch not read back")
	}
	if !s.ExplodeCommand {
		t.Fatalf("explode command not read back")
	}
}

func TestNonFiniteOutputsSanitized(t *testing.T) {
	s := world.NewShip(0, class.Fighter, vec2.Zero, vec2.Zero, 0)
	var mem Memory
	mem[FieldAccelerateX] = math.NaN()
	mem[FieldTorque] = math.Inf(1)
	ReadOutputs(&mem, s)
	if !s.AccelCommand.IsFinite() {
		t.Fatalf("expected sanitized accel command, got %+v", s.AccelCommand)
	}
	if s.TorqueCommand != 0 {
		t.Fatalf("expected sanitized torque, got %v", s.TorqueCommand)
	}
}

type crashingModule struct{}

func (crashingModule) Tick(shipKey int64, a *API) { panic("boom") }

func TestRunTickCapturesPanic(t *testing.T) {
	inst := NewInstance(crashingModule{}, 1, nil)
	var mem Memory
	crashed, msg := inst.RunTick(&mem, newRNG())
	if !crashed || msg == "" {
		t.Fatalf("expected crash with message, got crashed=%v msg=%q", crashed, msg)
	}
}

type slowModule struct{}

func (slowModule) Tick(shipKey int64, a *API) { time.Sleep(50 * time.Millisecond) }

func TestRunTickEnforcesDeadline(t *testing.T) {
	inst := NewInstance(slowModule{}, 1, nil)
	inst.Deadline = 5 * time.Millisecond
	var mem Memory
	crashed, msg := inst.RunTick(&mem, newRNG())
	if !crashed || msg != "deadline exceeded" {
		t.Fatalf("expected deadline crash, got crashed=%v msg=%q", crashed, msg)
	}
}

func TestRegistryUnknownModule(t *testing.T) {
	r := NewRegistry()
	if _, err := r.New("nope"); err == nil {
		t.Fatalf("expected error for unknown module name")
	}
}

func TestBuiltinRegistryCoversNamedModules(t *testing.T) {
	r := NewBuiltinRegistry()
	for _, name := range []string{
		"builtin.guns", "builtin.fly_to_target", "builtin.rotate_and_fire",
		"builtin.lead_and_fire", "builtin.radar_hunter", "builtin.radio_intercept",
		"builtin.wanderer",
	} {
		if _, err := r.New(name); err != nil {
			t.Fatalf("expected %q to be registered: %v", name, err)
		}
	}
}

func TestGunsModuleFiresForwardGun(t *testing.T) {
	mod := &gunsModule{}
	var mem Memory
	mod.Tick(0, newAPI(&mem, &Context{RNG: newRNG(), debug: &[]string{}}))
	if !mem.GunFire(0) {
		t.Fatalf("expected builtin.guns to fire gun 0")
	}
}

func TestWandererPicksNewTargetOnArrival(t *testing.T) {
	mod := newWandererModule()
	var mem Memory
	mem[FieldPositionX], mem[FieldPositionY] = 0, 0
	ctx := &Context{RNG: newRNG(), debug: &[]string{}}
	api := newAPI(&mem, ctx)
	mod.Tick(7, api)
	first := mod.patrol[7]
	if first == (vec2.V{}) {
		t.Fatalf("expected a patrol target to be chosen")
	}
	// Move "to" the target and tick again: expect a new target chosen.
	mem[FieldPositionX], mem[FieldPositionY] = first.X, first.Y
	mod.Tick(7, api)
	if mod.patrol[7] == first {
		t.Fatalf("expected a new patrol target after arrival")
	}
}
