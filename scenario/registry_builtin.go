package scenario

// NewBuiltinRegistry returns a Registry preloaded with every scenario
// built into the core, standing in for the system's precompiled scenario
// library (spec.md §4.6).
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	r.Register("tutorial01", func() Scenario { return tutorial01Guns{} })
	r.Register("tutorial04", func() Scenario { return tutorial04Rotation{} })
	r.Register("tutorial09", func() Scenario { return tutorial09Missiles{} })
	r.Register("tutorial10", func() Scenario { return tutorial10Frigate{} })
	r.Register("tutorial11", func() Scenario { return tutorial11Cruiser{} })
	r.Register("fighter_duel", func() Scenario { return fighterDuel{} })
	r.Register("cruiser_duel", func() Scenario { return cruiserDuel{} })
	r.Register("frigate_duel", func() Scenario { return frigateDuel{} })
	r.Register("missile_duel", func() Scenario { return missileDuel{} })
	r.Register("furball", func() Scenario { return furball{} })
	return r
}
