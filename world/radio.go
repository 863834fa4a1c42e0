package world

// Send posts a 4-float message on the given team's channel, visible for
// the remainder of the current tick plus the next (spec.md §4.4). The
// scheduler calls this immediately after reading a ship's tick outputs,
// in ascending-handle order, which is what gives same-tick, same-channel
// writes their last-writer-wins-by-handle semantics: a later ship's call
// to Receive this same tick already observes an earlier ship's Send.
func (w *World) Send(team, channel int, tick int64, data [4]float64) {
	if team < 0 || team >= MaxTeams || channel < 0 || channel >= RadioChannels {
		return
	}
	w.Radio[team][channel] = RadioSlot{Data: data, HasData: true, WrittenTick: tick}
}

// Receive reads the given team's channel as of tick, returning ok=false
// if the slot is empty or has expired its visibility window.
func (w *World) Receive(team, channel int, tick int64) (data [4]float64, ok bool) {
	if team < 0 || team >= MaxTeams || channel < 0 || channel >= RadioChannels {
		return [4]float64{}, false
	}
	slot := w.Radio[team][channel]
	if !slot.Visible(tick) {
		return [4]float64{}, false
	}
	return slot.Data, true
}
