// Package edges collects tree-tree edges from a step's active
// constraint rows and bounds how many such edges can occur.
//
// What:
//
//   - Collect walks the constraint rows once, in order, deduplicating
//     consecutive rows of the same logical constraint, and emits
//     interleaved (src, dst) edge records plus per-tree endpoint counts.
//   - Fast paths keyed by constraint kind (DoF friction, joint limit,
//     contact, connect/weld equality) resolve endpoints from model
//     tables; every other kind falls back to a generic Jacobian scan
//     via treescan, chaining the trees of a hyper-edge.
//   - Non-self edges are written twice, once per orientation, so the
//     adjacency CSR built from the records is symmetric in one pass.
//   - An edge touching the static tree folds onto its other endpoint.
//   - MaxEdges computes the record-count upper bound used to size
//     Collect's output buffer ahead of time.
//
// Complexity:
//
//   - Collect: O(nefc + nnz) time (nnz only for generic-fallback rows),
//     Memory: O(1) beyond the caller-provided buffers.
//   - MaxEdges: O(ntendon) time, O(1) memory.
//
// Errors:
//
//   - Collect panics with a model.InternalError on an edge with both
//     endpoints at the static tree, or when the record buffer would
//     overflow a correct MaxEdges bound. Both are invariant violations
//     that cannot happen on well-formed input; there is no error
//     return.
package edges
