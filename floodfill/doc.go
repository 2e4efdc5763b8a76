// Package floodfill implements generic connected-components discovery
// over a symmetric sparse adjacency graph given in CSR form.
//
// Connectivity: O(n + nnz) time, an explicit LIFO scratch buffer
// instead of recursion. Duplicate column indices and self-loops in
// the input are tolerated without affecting the result: a vertex
// already labeled is simply discarded when popped.
package floodfill
