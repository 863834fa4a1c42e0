package snapshot

import (
	"hash/fnv"
	"math"

	"github.com/oortcore/simulator/world"
)

// Hash computes the 64-bit determinism fingerprint of w (spec.md §4.7):
// "the world also computes a 64-bit hash by feeding a canonical,
// handle-sorted encoding of positions, velocities, headings, and
// healths (quantized via their raw bit patterns) through a fixed hash
// function." world.World.Ships already iterates in ascending handle
// order (a construction invariant, not re-sorted here), so the encoding
// is canonical without an extra sort pass. FNV-1a is the stdlib's only
// non-cryptographic hash; no xxhash/cityhash-style dependency appears
// anywhere in the retrieved pack (see DESIGN.md).
func Hash(w *world.World) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	put := func(bits uint64) {
		buf[0] = byte(bits)
		buf[1] = byte(bits >> 8)
		buf[2] = byte(bits >> 16)
		buf[3] = byte(bits >> 24)
		buf[4] = byte(bits >> 32)
		buf[5] = byte(bits >> 40)
		buf[6] = byte(bits >> 48)
		buf[7] = byte(bits >> 56)
		h.Write(buf[:])
	}
	putFloat := func(v float64) { put(math.Float64bits(v)) }

	put(uint64(w.Tick))
	for _, s := range w.Ships() {
		put(uint64(s.Handle))
		put(uint64(s.Team))
		put(uint64(s.Class))
		putFloat(s.Position.X)
		putFloat(s.Position.Y)
		putFloat(s.Velocity.X)
		putFloat(s.Velocity.Y)
		putFloat(s.Heading)
		putFloat(s.Health)
	}

	return h.Sum64()
}
