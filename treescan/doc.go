// Package treescan scans a single constraint row's Jacobian for the
// next kinematic tree, different from a given one, that has a nonzero
// entry in that row.
//
// Two representations are supported behind one Scanner interface,
// selected once per call rather than branched per element:
// SparseScanner walks a CSR row's column indices, DenseScanner walks
// the full row testing each entry against zero.
package treescan
