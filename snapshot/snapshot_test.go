package snapshot

import (
	"testing"

	"github.com/oortcore/simulator/class"
	"github.com/oortcore/simulator/vec2"
	"github.com/oortcore/simulator/world"
)

func buildWorld(seed uint32) *world.World {
	w := world.New(40000, seed)
	a := world.NewShip(0, class.Fighter, vec2.V{X: -100}, vec2.Zero, 0)
	b := world.NewShip(1, class.Fighter, vec2.V{X: 100}, vec2.Zero, vec2.TAU/2)
	w.Spawn(a)
	w.Spawn(b)
	return w
}

func TestFromWorldCopiesShipFields(t *testing.T) {
	w := buildWorld(1)
	snap := FromWorld(w)
	if len(snap.Ships) != 2 {
		t.Fatalf("expected 2 ships, got %d", len(snap.Ships))
	}
	if snap.Ships[0].Handle != uint64(w.Ships()[0].Handle) {
		t.Fatalf("handle mismatch: %d vs %d", snap.Ships[0].Handle, w.Ships()[0].Handle)
	}
	if snap.Ships[0].Class != class.Fighter {
		t.Fatalf("expected fighter, got %v", snap.Ships[0].Class)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	w := buildWorld(42)
	w.Step()
	want := FromWorld(w)

	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	var got Snapshot
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}

	if got.Tick != want.Tick {
		t.Fatalf("tick mismatch: %d vs %d", got.Tick, want.Tick)
	}
	if len(got.Ships) != len(want.Ships) {
		t.Fatalf("ship count mismatch: %d vs %d", len(got.Ships), len(want.Ships))
	}
	for i := range want.Ships {
		if got.Ships[i] != want.Ships[i] {
			t.Fatalf("ship %d mismatch: %+v vs %+v", i, got.Ships[i], want.Ships[i])
		}
	}
}

func TestBinaryRoundTripPreservesCrashMessage(t *testing.T) {
	w := buildWorld(7)
	w.Ships()[0].CrashMessage = "divide by zero at controller.rs:12"
	snap := FromWorld(w)

	data, err := snap.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var got Snapshot
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got.Ships[0].CrashMessage != snap.Ships[0].CrashMessage {
		t.Fatalf("crash message not preserved: %q vs %q", got.Ships[0].CrashMessage, snap.Ships[0].CrashMessage)
	}
}

func TestHashDeterministicAcrossIdenticalRuns(t *testing.T) {
	w1 := buildWorld(99)
	w2 := buildWorld(99)
	for i := 0; i < 120; i++ {
		w1.Step()
		w2.Step()
	}
	if Hash(w1) != Hash(w2) {
		t.Fatalf("identical seeds produced different hashes")
	}
}

func TestHashDiffersAcrossDifferentSeeds(t *testing.T) {
	w1 := buildWorld(1)
	w2 := buildWorld(2)
	// The seed reaches a world only through each ship's RNG, so let that
	// RNG drive a placement offset the way scenario code would.
	for _, w := range []*world.World{w1, w2} {
		for _, s := range w.Ships() {
			s.Position.Y = s.RNG.Float64() * 100
		}
	}
	for i := 0; i < 120; i++ {
		w1.Step()
		w2.Step()
	}
	if Hash(w1) == Hash(w2) {
		t.Fatalf("different seeds produced the same hash")
	}
}

func TestHashChangesAsSimulationAdvances(t *testing.T) {
	w := buildWorld(5)
	before := Hash(w)
	w.Step()
	after := Hash(w)
	if before == after {
		t.Fatalf("expected the hash to change after a step")
	}
}
