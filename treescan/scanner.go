package treescan

import "github.com/nopaddleboat/mujoco/model"

// Scanner finds, within a single constraint row, the next kinematic
// tree different from a given one that has a nonzero Jacobian entry
// in that row.
type Scanner interface {
	// Next scans row starting at cursor (0 to start from the
	// beginning) for a tree id different from tree. It returns the
	// found tree id, or -1 if none remains, and the cursor position
	// just past the discovered nonzero, for a resumed scan. tree may
	// be model.StaticTree, in which case Next returns the first tree
	// incident on the row.
	Next(row int, tree int32, cursor int32) (next int32, nextCursor int32)
}

// SparseScanner scans rows of a sparse (CSR) Jacobian.
type SparseScanner struct {
	DofTreeID []int32
	Rownnz    []int32
	Rowadr    []int32
	Colind    []int32
}

// NewSparseScanner builds a SparseScanner over m and d's sparse
// Jacobian. d must have Sparse set.
func NewSparseScanner(m *model.Model, d *model.Data) *SparseScanner {
	return &SparseScanner{
		DofTreeID: m.DofTreeID,
		Rownnz:    d.EfcJRownnz,
		Rowadr:    d.EfcJRowadr,
		Colind:    d.EfcJColind,
	}
}

// Next implements Scanner.
func (s *SparseScanner) Next(row int, tree int32, cursor int32) (int32, int32) {
	rownnz := s.Rownnz[row]
	colind := s.Colind[s.Rowadr[row] : s.Rowadr[row]+rownnz]

	for j := cursor; j < rownnz; j++ {
		treeJ := s.DofTreeID[colind[j]]
		if treeJ != tree {
			return treeJ, j + 1
		}
	}
	return -1, rownnz
}

// DenseScanner scans rows of a dense Jacobian, nv columns per row.
type DenseScanner struct {
	DofTreeID []int32
	NV        int32
	EfcJ      []float64
}

// NewDenseScanner builds a DenseScanner over m and d's dense Jacobian.
// d must have Sparse unset.
func NewDenseScanner(m *model.Model, d *model.Data) *DenseScanner {
	return &DenseScanner{
		DofTreeID: m.DofTreeID,
		NV:        m.NV,
		EfcJ:      d.EfcJ,
	}
}

// Next implements Scanner.
func (s *DenseScanner) Next(row int, tree int32, cursor int32) (int32, int32) {
	base := int64(row) * int64(s.NV)
	for j := cursor; j < s.NV; j++ {
		if s.EfcJ[base+int64(j)] != 0 {
			treeJ := s.DofTreeID[j]
			if treeJ != tree {
				return treeJ, j + 1
			}
		}
	}
	return -1, s.NV
}

// New selects a Scanner for d's Jacobian representation once, rather
// than branching per row.
func New(m *model.Model, d *model.Data) Scanner {
	if d.Sparse {
		return NewSparseScanner(m, d)
	}
	return NewDenseScanner(m, d)
}
