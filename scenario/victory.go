package scenario

import "github.com/oortcore/simulator/world"

// DefaultTutorialMaxTicks bounds a tutorial scenario at 30 seconds of
// simulated time (spec.md §4.6: "within a tick budget"); tutorials that
// need more room (missiles, frigate, cruiser) pass a multiple of it.
const DefaultTutorialMaxTicks int64 = 30 * 60

// DefaultTournamentMaxTicks bounds a tournament scenario at 5 minutes of
// simulated time before it is scored a draw (spec.md §4.6: "draw after a
// class-defined timeout").
const DefaultTournamentMaxTicks int64 = 5 * 60 * 60

// CheckTutorialVictory implements the tutorial victory flavor of spec.md
// §4.6: Finished once every team-≥1 ship is destroyed while the player's
// team-0 ship still exists; Defeat if team 0 has nothing left, or if
// maxTicks elapses first; Running otherwise. Generalizes the teacher's
// single-player win condition in server/victory.go to an arbitrary
// number of enemy teams.
func CheckTutorialVictory(w *world.World, maxTicks int64) StatusResult {
	teamZeroAlive := false
	enemyAlive := false
	for _, s := range w.Ships() {
		if s.Team == 0 {
			teamZeroAlive = true
		} else {
			enemyAlive = true
		}
	}
	if !teamZeroAlive {
		return StatusResult{Status: Defeat}
	}
	if !enemyAlive {
		return StatusResult{Status: Finished}
	}
	if w.Tick >= maxTicks {
		return StatusResult{Status: Defeat}
	}
	return StatusResult{Status: Running}
}

// CheckTournamentVictory implements the tournament flavor of spec.md
// §4.6: Victory{team} once exactly one team retains surviving ships, a
// draw once maxTicks elapses with more than one team still alive.
// Generalizes the teacher's multi-team scoring in server/tournament.go.
func CheckTournamentVictory(w *world.World, maxTicks int64) StatusResult {
	alive := make(map[int]bool)
	for _, s := range w.Ships() {
		alive[s.Team] = true
	}
	if len(alive) == 1 {
		for team := range alive {
			return StatusResult{Status: Victory, Team: team}
		}
	}
	if len(alive) == 0 || w.Tick >= maxTicks {
		return StatusResult{Status: Finished}
	}
	return StatusResult{Status: Running}
}
