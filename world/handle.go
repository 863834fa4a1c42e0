package world

// Handle is a stable integer identifier for a ship within one simulation.
// Handles are assigned by a monotonically increasing counter and are never
// reused within a run, satisfying spec.md §3: "A ship's handle is stable
// until destruction; handles are never reused within a scenario."
type Handle uint64

// invalidHandle marks "no ship" (e.g. an empty radar contact or target).
const invalidHandle Handle = 0
