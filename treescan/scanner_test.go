package treescan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nopaddleboat/mujoco/model"
	"github.com/nopaddleboat/mujoco/treescan"
)

func TestScanner_DenseSparseParity(t *testing.T) {
	t.Parallel()
	// 4 DoFs: 0,1 -> tree 0; 2,3 -> tree 1. One row touches DoF 0 and 3.
	dofTree := []int32{0, 0, 1, 1}
	m := &model.Model{NV: 4, DofTreeID: dofTree}

	dense := &model.Data{
		Sparse: false,
		EfcJ:   []float64{1, 0, 0, 2},
		Nefc:   1,
	}
	sparse := &model.Data{
		Sparse:     true,
		EfcJRownnz: []int32{2},
		EfcJRowadr: []int32{0},
		EfcJColind: []int32{0, 3},
		Nefc:       1,
	}

	for _, d := range []*model.Data{dense, sparse} {
		sc := treescan.New(m, d)
		t1, cur := sc.Next(0, model.StaticTree, 0)
		require.Equal(t, int32(0), t1)
		t2, _ := sc.Next(0, t1, cur)
		require.Equal(t, int32(1), t2)
	}
}

func TestScanner_NoFurtherTree(t *testing.T) {
	t.Parallel()
	dofTree := []int32{0, 0}
	m := &model.Model{NV: 2, DofTreeID: dofTree}
	d := &model.Data{
		Sparse:     true,
		EfcJRownnz: []int32{2},
		EfcJRowadr: []int32{0},
		EfcJColind: []int32{0, 1},
	}
	sc := treescan.New(m, d)
	t1, cur := sc.Next(0, model.StaticTree, 0)
	require.Equal(t, int32(0), t1)
	t2, _ := sc.Next(0, t1, cur)
	require.Equal(t, int32(-1), t2, "single tree row has no second tree")
}

func TestScanner_StaticTreeFilter(t *testing.T) {
	t.Parallel()
	// tree = StaticTree as input filter returns the first incident tree.
	dofTree := []int32{5}
	m := &model.Model{NV: 1, DofTreeID: dofTree}
	d := &model.Data{
		Sparse:     true,
		EfcJRownnz: []int32{1},
		EfcJRowadr: []int32{0},
		EfcJColind: []int32{0},
	}
	sc := treescan.New(m, d)
	got, _ := sc.Next(0, model.StaticTree, 0)
	require.Equal(t, int32(5), got)
}
