package edges_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nopaddleboat/mujoco/edges"
	"github.com/nopaddleboat/mujoco/model"
	"github.com/nopaddleboat/mujoco/treescan"
)

func TestMaxEdges(t *testing.T) {
	t.Parallel()
	m := &model.Model{
		NTendon:            2,
		TendonNum:          []int32{3, 5},
		TendonLimited:      []bool{true, false},
		TendonFrictionloss: []bool{false, true},
	}
	d := &model.Data{Ncon: 2, Ne: 1, Nf: 4}

	// 2*2 + 2*1 + 4 + tendon0.limited(3) + tendon1.frictionloss(5)
	want := int32(2*2 + 2*1 + 4 + 3 + 5)
	require.Equal(t, want, edges.MaxEdges(m, d))
}

func TestCollect_ContactFastPath(t *testing.T) {
	t.Parallel()
	m := &model.Model{
		NTree:      2,
		BodyTreeID: []int32{0, 1},
		GeomBodyID: []int32{0, 1},
	}
	d := &model.Data{
		Nefc:     1,
		EfcType:  []model.ConstraintKind{model.ConstraintContactFrictionless},
		EfcID:    []int32{0},
		Contacts: []model.Contact{{Geom1: 0, Geom2: 1}},
	}
	record := make([]int32, 4)
	treenedge := make([]int32, m.NTree)

	n := edges.Collect(m, d, nil, record, treenedge, 2)
	require.Equal(t, int32(2), n, "pair + flip")
	require.Equal(t, []int32{0, 1, 1, 0}, record[:4])
	require.Equal(t, []int32{1, 1}, treenedge)
}

func TestCollect_StaticTreeFolds(t *testing.T) {
	t.Parallel()
	m := &model.Model{
		NTree:      1,
		BodyTreeID: []int32{model.StaticTree, 0},
		GeomBodyID: []int32{0, 1},
	}
	d := &model.Data{
		Nefc:     1,
		EfcType:  []model.ConstraintKind{model.ConstraintContactFrictionless},
		EfcID:    []int32{0},
		Contacts: []model.Contact{{Geom1: 0, Geom2: 1}},
	}
	record := make([]int32, 4)
	treenedge := make([]int32, m.NTree)

	n := edges.Collect(m, d, nil, record, treenedge, 2)
	require.Equal(t, int32(1), n, "folded self-edge")
	require.Equal(t, []int32{0, 0}, record[:2])
}

func TestCollect_DedupesConsecutiveRows(t *testing.T) {
	t.Parallel()
	m := &model.Model{NTree: 1, DofTreeID: []int32{0}}
	d := &model.Data{
		Nefc:    3,
		EfcType: []model.ConstraintKind{model.ConstraintFrictionDOF, model.ConstraintFrictionDOF, model.ConstraintFrictionDOF},
		EfcID:   []int32{0, 0, 0},
	}
	record := make([]int32, 2)
	treenedge := make([]int32, m.NTree)

	n := edges.Collect(m, d, nil, record, treenedge, 1)
	require.Equal(t, int32(1), n, "three identical rows collapse to one edge")
	require.Equal(t, int32(1), treenedge[0])
}

func TestCollect_GenericFallbackChains(t *testing.T) {
	t.Parallel()
	// A hyper-edge row touching trees 0,1,2 via the generic fallback
	// must chain into (0,1) and (1,2), not (0,1) and (0,2).
	dofTree := []int32{0, 1, 2}
	m := &model.Model{NTree: 3, DofTreeID: dofTree}
	d := &model.Data{
		Nefc:       1,
		EfcType:    []model.ConstraintKind{model.ConstraintOther},
		EfcID:      []int32{0},
		Sparse:     true,
		EfcJRownnz: []int32{3},
		EfcJRowadr: []int32{0},
		EfcJColind: []int32{0, 1, 2},
	}
	sc := treescan.New(m, d)
	record := make([]int32, 8)
	treenedge := make([]int32, m.NTree)

	n := edges.Collect(m, d, sc, record, treenedge, 4)
	require.Equal(t, int32(4), n, "two flipped pairs")

	pairs := map[[2]int32]bool{}
	for e := int32(0); e < n; e++ {
		pairs[[2]int32{record[2*e], record[2*e+1]}] = true
	}
	require.True(t, pairs[[2]int32{0, 1}])
	require.True(t, pairs[[2]int32{1, 2}])
}
