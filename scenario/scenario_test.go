package scenario

import (
	"testing"

	"github.com/oortcore/simulator/world"
)

func TestBuiltinRegistryCoversEveryScenario(t *testing.T) {
	r := NewBuiltinRegistry()
	names := []string{
		"tutorial01", "tutorial04", "tutorial09", "tutorial10", "tutorial11",
		"fighter_duel", "cruiser_duel", "frigate_duel", "missile_duel", "furball",
	}
	for _, name := range names {
		s, err := r.New(name)
		if err != nil {
			t.Fatalf("expected %q to be registered: %v", name, err)
		}
		if s.Name() != name {
			t.Fatalf("scenario registered as %q reports Name()=%q", name, s.Name())
		}
	}
}

func TestUnknownScenarioNameErrors(t *testing.T) {
	r := NewBuiltinRegistry()
	if _, err := r.New("does-not-exist"); err == nil {
		t.Fatalf("expected an error for an unknown scenario name")
	}
}

func TestTutorial01InitPlacesPlayerAndTarget(t *testing.T) {
	s := tutorial01Guns{}
	w := world.New(s.WorldSize(), 7)
	s.Init(w, 7)
	if len(w.Ships()) != 2 {
		t.Fatalf("expected 2 ships, got %d", len(w.Ships()))
	}
	if w.Ships()[0].Team != 0 || w.Ships()[1].Team != 1 {
		t.Fatalf("expected team 0 then team 1, got %+v", w.Ships())
	}
}

func TestTutorial01VictoryOnEnemyDestroyed(t *testing.T) {
	s := tutorial01Guns{}
	w := world.New(s.WorldSize(), 1)
	s.Init(w, 1)
	w.Ships()[1].Destroyed = true
	// Drop the destroyed ship the way World.Step's gcDestroyed would.
	w.Step()
	if got := s.Status(w).Status; got != Finished {
		t.Fatalf("expected Finished once the only enemy is gone, got %v", got)
	}
}

func TestTutorial01DefeatWhenPlayerDestroyed(t *testing.T) {
	s := tutorial01Guns{}
	w := world.New(s.WorldSize(), 1)
	s.Init(w, 1)
	w.Ships()[0].Destroyed = true
	w.Step()
	if got := s.Status(w).Status; got != Defeat {
		t.Fatalf("expected Defeat once the player ship is gone, got %v", got)
	}
}

func TestTutorial01DefeatOnTimeout(t *testing.T) {
	s := tutorial01Guns{}
	w := world.New(s.WorldSize(), 1)
	s.Init(w, 1)
	w.Tick = DefaultTutorialMaxTicks
	if got := s.Status(w).Status; got != Defeat {
		t.Fatalf("expected Defeat once the tick budget is exhausted, got %v", got)
	}
}

func TestFighterDuelVictoryWhenOneTeamRemains(t *testing.T) {
	s := fighterDuel{}
	w := world.New(s.WorldSize(), 3)
	s.Init(w, 3)
	for _, sh := range w.Ships() {
		if sh.Team == 1 {
			sh.Destroyed = true
		}
	}
	w.Step()
	result := s.Status(w)
	if result.Status != Victory || result.Team != 0 {
		t.Fatalf("expected Victory{team=0}, got %+v", result)
	}
}

func TestFighterDuelDrawOnTimeout(t *testing.T) {
	s := fighterDuel{}
	w := world.New(s.WorldSize(), 3)
	s.Init(w, 3)
	w.Tick = DefaultTournamentMaxTicks
	if got := s.Status(w).Status; got != Finished {
		t.Fatalf("expected a draw once the tournament clock runs out, got %v", got)
	}
}

func TestTutorial04WritesTargetHint(t *testing.T) {
	s := tutorial04Rotation{}
	w := world.New(s.WorldSize(), 5)
	s.Init(w, 5)
	player := w.Ships()[0]
	if !player.HasTarget {
		t.Fatalf("expected the player ship to carry a target hint")
	}
}

func TestDeterministicPlacementAcrossRuns(t *testing.T) {
	s := fighterDuel{}
	w1 := world.New(s.WorldSize(), 99)
	s.Init(w1, 99)
	w2 := world.New(s.WorldSize(), 99)
	s.Init(w2, 99)
	for i := range w1.Ships() {
		if w1.Ships()[i].Position != w2.Ships()[i].Position {
			t.Fatalf("same seed produced different placements: %+v vs %+v", w1.Ships()[i].Position, w2.Ships()[i].Position)
		}
	}
}
