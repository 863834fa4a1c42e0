package sandbox

import (
	"fmt"
	"math/rand/v2"
)

// Context is the restricted host-function surface a guest module sees
// during one tick call (spec.md §4.5 isolation rules): this ship's own
// isolated PRNG, a static environment lookup, and a debug sink. No
// filesystem, clock, or network call is reachable from here.
type Context struct {
	RNG   *rand.Rand
	env   map[string]string
	debug *[]string
}

// Getenv looks up a scenario-provided key/value pair (spec.md §4.5: "the
// only exported host functions are environment lookup... and a
// telemetry-free getenv").
func (c *Context) Getenv(key string) (string, bool) {
	if c.env == nil {
		return "", false
	}
	v, ok := c.env[key]
	return v, ok
}

// Debugf appends a formatted line to this tick's debug buffer, drained
// by the host into the snapshot after the tick returns.
func (c *Context) Debugf(format string, args ...any) {
	*c.debug = append(*c.debug, fmt.Sprintf(format, args...))
}
