package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/oortcore/simulator/class"
	"github.com/oortcore/simulator/vec2"
)

// wireVersion guards against decoding a snapshot produced by an
// incompatible layout change.
const wireVersion uint32 = 1

// MarshalBinary encodes the snapshot as a length-prefixed binary record
// (spec.md §6: "a structured binary encoding (length-prefixed)...
// bit-exact equality is required for the binary form across platforms
// that share IEEE-754 semantics"). Every variable-length section (ships,
// bullets, hits, destroyed handles, debug lines) is prefixed with its
// element count as a uint32.
func (s Snapshot) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := &binWriter{buf: &buf}

	w.u32(wireVersion)
	w.i64(s.Tick)

	w.u32(uint32(len(s.Ships)))
	for _, sh := range s.Ships {
		w.u64(sh.Handle)
		w.i32(int32(sh.Team))
		w.i32(int32(sh.Class))
		w.vec(sh.Position)
		w.vec(sh.Velocity)
		w.f64(sh.Heading)
		w.f64(sh.Health)
		w.str(sh.CrashMessage)
	}

	w.u32(uint32(len(s.Bullets)))
	for _, b := range s.Bullets {
		w.i32(int32(b.Team))
		w.vec(b.Position)
		w.vec(b.Velocity)
	}

	w.u32(uint32(len(s.Hits)))
	for _, h := range s.Hits {
		w.u64(h.Target)
		w.u64(h.Attacker)
		w.f64(h.Damage)
		w.vec(h.Position)
		w.boolean(h.Bullet)
	}

	w.u32(uint32(len(s.ShipsDestroyed)))
	for _, h := range s.ShipsDestroyed {
		w.u64(h)
	}

	w.u32(uint32(len(s.DebugLines)))
	for _, line := range s.DebugLines {
		w.str(line)
	}

	w.u32(uint32(len(s.ScenarioLines)))
	for _, line := range s.ScenarioLines {
		w.str(line)
	}

	if w.err != nil {
		return nil, w.err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a record written by MarshalBinary, replacing
// the receiver's contents.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	r := &binReader{r: bytes.NewReader(data)}

	version := r.u32()
	if version != wireVersion {
		return fmt.Errorf("snapshot: unsupported wire version %d (want %d)", version, wireVersion)
	}
	tick := r.i64()

	numShips := r.u32()
	ships := make([]ShipView, numShips)
	for i := range ships {
		ships[i] = ShipView{
			Handle:   r.u64(),
			Team:     int(r.i32()),
			Class:    class.Class(r.i32()),
			Position: r.vec(),
			Velocity: r.vec(),
			Heading:  r.f64(),
			Health:   r.f64(),
		}
		ships[i].CrashMessage = r.str()
	}

	numBullets := r.u32()
	bullets := make([]BulletView, numBullets)
	for i := range bullets {
		bullets[i] = BulletView{
			Team:     int(r.i32()),
			Position: r.vec(),
			Velocity: r.vec(),
		}
	}

	numHits := r.u32()
	hits := make([]HitView, numHits)
	for i := range hits {
		hits[i] = HitView{
			Target:   r.u64(),
			Attacker: r.u64(),
			Damage:   r.f64(),
			Position: r.vec(),
			Bullet:   r.boolean(),
		}
	}

	numDestroyed := r.u32()
	destroyed := make([]uint64, numDestroyed)
	for i := range destroyed {
		destroyed[i] = r.u64()
	}

	numDebug := r.u32()
	debug := make([]string, numDebug)
	for i := range debug {
		debug[i] = r.str()
	}

	numScenario := r.u32()
	scenarioLines := make([]string, numScenario)
	for i := range scenarioLines {
		scenarioLines[i] = r.str()
	}

	if r.err != nil && r.err != io.EOF {
		return r.err
	}

	s.Tick = tick
	s.Ships = ships
	s.Bullets = bullets
	s.Hits = hits
	s.ShipsDestroyed = destroyed
	s.DebugLines = debug
	s.ScenarioLines = scenarioLines
	return nil
}

// binWriter accumulates the first error encountered so call sites don't
// need to check every field write.
type binWriter struct {
	buf *bytes.Buffer
	err error
}

func (w *binWriter) write(v any) {
	if w.err != nil {
		return
	}
	w.err = binary.Write(w.buf, binary.LittleEndian, v)
}

func (w *binWriter) u32(v uint32)   { w.write(v) }
func (w *binWriter) i32(v int32)    { w.write(v) }
func (w *binWriter) u64(v uint64)   { w.write(v) }
func (w *binWriter) i64(v int64)    { w.write(v) }
func (w *binWriter) f64(v float64)  { w.write(v) }
func (w *binWriter) vec(v vec2.V)   { w.f64(v.X); w.f64(v.Y) }
func (w *binWriter) boolean(b bool) { w.write(b) }

func (w *binWriter) str(s string) {
	w.u32(uint32(len(s)))
	if w.err != nil {
		return
	}
	_, w.err = w.buf.WriteString(s)
}

type binReader struct {
	r   *bytes.Reader
	err error
}

func (r *binReader) read(v any) {
	if r.err != nil {
		return
	}
	r.err = binary.Read(r.r, binary.LittleEndian, v)
}

func (r *binReader) u32() uint32 {
	var v uint32
	r.read(&v)
	return v
}
func (r *binReader) i32() int32 {
	var v int32
	r.read(&v)
	return v
}
func (r *binReader) u64() uint64 {
	var v uint64
	r.read(&v)
	return v
}
func (r *binReader) i64() int64 {
	var v int64
	r.read(&v)
	return v
}
func (r *binReader) f64() float64 {
	var v float64
	r.read(&v)
	return v
}
func (r *binReader) vec() vec2.V { return vec2.V{X: r.f64(), Y: r.f64()} }
func (r *binReader) boolean() bool {
	var v bool
	r.read(&v)
	return v
}

func (r *binReader) str() string {
	n := r.u32()
	if r.err != nil {
		return ""
	}
	buf := make([]byte, n)
	_, r.err = io.ReadFull(r.r, buf)
	return string(buf)
}
