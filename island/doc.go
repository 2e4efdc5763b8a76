// Package island orchestrates one call to constraint-island discovery:
// given a Model, a step's Data, and an arena to allocate from, it
// produces the per-DoF and per-constraint island indexing tables
// downstream solvers thread through.
//
// What:
//
//   - Discover reduces the active constraints to a tree-adjacency CSR
//     (edges.Collect), partitions it (floodfill.Discover), and
//     broadcasts the per-tree island ids to per-DoF and per-constraint
//     tables.
//   - Same-island members are threaded through intrusive next-index
//     lists (DofIslandNext, EfcIslandNext) in strictly ascending index
//     order, with per-island head indices (IslandDofAdr, IslandEfcAdr)
//     and a -1 tail sentinel.
//   - Scratch is drawn from the arena's high side and released before
//     Discover returns on every path; output tables live on the low
//     side and survive for the downstream solver.
//
// Why:
//
//   - Islands are independent sub-problems: a solver can process each
//     island's DoFs and constraint rows without touching the others.
//   - Ascending-order intrusive lists give O(1) append during
//     construction and a contiguous, allocation-free iteration order
//     for consumers.
//
// Complexity:
//
//   - Discover: O(nv + nefc + nedge) time, O(ntree + nedge) arena
//     scratch, O(nv + nefc + nisland) arena output.
//
// Errors:
//
//   - ErrConstraintBufferFull: the arena could not satisfy an
//     allocation. Discover rolls back the output watermark, emits one
//     "constraint buffer full" warning through the injected
//     *zap.Logger, and returns an empty Islands; the step continues
//     with an empty island view.
//   - Invariant violations (static-tree self-edge, edge-buffer
//     overflow, constraint row with no tree incidence, island-count
//     mismatch between flood fill and the sweeps) panic with a
//     model.InternalError, aborting the step outright. These are
//     programmer errors and cannot happen on well-formed input.
//
// Discover is strictly single-threaded within one (Model, Data, Arena)
// triple and re-entrant across independent triples; it touches no
// process-wide state.
package island
