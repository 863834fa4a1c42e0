package world

// Collision group bitmasks (spec.md §3 "Collision group model"),
// generalizing original_source/shared/simulator/src/collision.rs's
// rapier2d InteractionGroups scheme from Rust to a plain Go bitmask
// filter since no physics-engine dependency exists anywhere in the
// retrieved pack.
const (
	wallGroupBit = 0
	shipGroupBit = 1
	// bulletGroupBase is the first bit used for per-team bullet groups;
	// team t occupies bit bulletGroupBase+t, for up to MaxTeams teams.
	bulletGroupBase = 2
)

// MaxTeams bounds the number of distinct bullet collision groups (spec.md
// §3: "up to 10 teams").
const MaxTeams = 10

func bulletGroupMask(team int) uint32 {
	return 1 << uint(bulletGroupBase+team)
}

func allBulletGroupsMask() uint32 {
	var mask uint32
	for t := 0; t < MaxTeams; t++ {
		mask |= bulletGroupMask(t)
	}
	return mask
}

// group/filter is rapier's InteractionGroups split into two explicit
// uint32 fields: membership (what this body is) and filter (what it is
// allowed to interact with).
type groupFilter struct {
	membership uint32
	filter     uint32
}

func wallGroups() groupFilter {
	return groupFilter{
		membership: 1 << wallGroupBit,
		filter:     1<<shipGroupBit | allBulletGroupsMask(),
	}
}

func shipGroups(team int) groupFilter {
	// A ship interacts with walls, other ships, and every team's bullets
	// except its own (spec.md §3: "Bullets filter out collisions with
	// same-team ships").
	return groupFilter{
		membership: 1 << shipGroupBit,
		filter:     1<<wallGroupBit | 1<<shipGroupBit | (allBulletGroupsMask() &^ bulletGroupMask(team)),
	}
}

func bulletGroups(team int) groupFilter {
	return groupFilter{
		membership: bulletGroupMask(team),
		filter:     1<<wallGroupBit | 1<<shipGroupBit,
	}
}

// interacts reports whether two group/filter pairs are allowed to collide:
// each must list the other's membership bits in its own filter.
func interacts(a, b groupFilter) bool {
	return a.filter&b.membership != 0 && b.filter&a.membership != 0
}

// bulletHitsShip reports whether a bullet fired by bulletTeam can strike a
// ship on shipTeam (same-team friendly fire is filtered out).
func bulletHitsShip(bulletTeam, shipTeam int) bool {
	return interacts(bulletGroups(bulletTeam), shipGroups(shipTeam))
}
