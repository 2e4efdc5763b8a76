// Package arena implements the bump allocator that island discovery
// draws its scratch and output storage from.
//
// A single fixed-capacity buffer is shared by two allocation regions
// growing toward each other: persistent allocations (the island output
// tables) bump up from the low end, scratch allocations (working
// buffers consumed within one call) bump down from the high end. This
// lets scratch be released unconditionally at the end of a call without
// disturbing whatever was already committed on the persistent side, and
// lets a failed persistent allocation be rolled back to a saved
// watermark without touching live scratch.
//
// Construction, lifetime, and ownership of the arena itself belong to
// the engine's per-step data context; this package only implements the
// allocation discipline island discovery needs from it.
package arena
