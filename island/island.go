package island

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nopaddleboat/mujoco/arena"
	"github.com/nopaddleboat/mujoco/edges"
	"github.com/nopaddleboat/mujoco/floodfill"
	"github.com/nopaddleboat/mujoco/model"
	"github.com/nopaddleboat/mujoco/treescan"
)

// Islands holds one step's island discovery result: the per-DoF and
// per-constraint assignment tables and the intrusive next-links that
// thread each island's members in ascending index order.
//
// All fields are nil and N is 0 when Discover found no active
// constraints (Data.Nefc == 0) or rolled back after an allocation
// failure.
type Islands struct {
	// N is the number of discovered islands.
	N int32

	// DofIsland maps DoF index to island id, or -1 if the DoF
	// participates in no active constraint.
	DofIsland []int32
	// DofIslandNext threads DoFs of the same island in ascending
	// order; -1 terminates the list and marks unconstrained DoFs.
	DofIslandNext []int32

	// EfcIsland maps constraint-row index to island id. Never -1 for
	// an active row.
	EfcIsland []int32
	// EfcIslandNext threads constraint rows of the same island in
	// ascending order; -1 terminates the list.
	EfcIslandNext []int32

	// IslandDofAdr and IslandEfcAdr give the head index of each
	// island's DoF list and constraint-row list, respectively.
	IslandDofAdr []int32
	IslandEfcAdr []int32
}

// Discover partitions the active constraints in d, and the DoFs they
// touch, into disjoint islands. Scratch is drawn from a's high side
// and released before Discover returns, win or lose; output tables
// are drawn from a's low side and, on success, left allocated for the
// caller's downstream solver to consume.
//
// logger may be nil; a no-op logger is used in that case. It receives
// exactly one warning, on allocation failure, naming the arena's byte
// capacity.
//
// Discover panics with a model.InternalError if it detects an edge
// with both endpoints at the static tree, an edge-budget overflow, an
// active constraint row with no tree incidence, or an island count
// that disagrees between flood fill and the DoF/constraint sweeps —
// all invariant violations that cannot happen on well-formed input.
func Discover(m *model.Model, d *model.Data, a *arena.Arena, logger *zap.Logger) (*Islands, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if d.Nefc == 0 {
		return &Islands{}, nil
	}

	mark := a.Mark()
	scratchMark := a.MarkScratch()
	defer a.RewindScratch(scratchMark)

	maxEdges := edges.MaxEdges(m, d)

	record, err := a.AllocScratch(2 * maxEdges)
	if err != nil {
		return rollback(a, mark, logger, err)
	}
	treenedge, err := a.AllocScratch(m.NTree)
	if err != nil {
		return rollback(a, mark, logger, err)
	}

	sc := treescan.New(m, d)
	nedge := edges.Collect(m, d, sc, record, treenedge, maxEdges)

	rowadr, err := a.AllocScratch(m.NTree)
	if err != nil {
		return rollback(a, mark, logger, err)
	}
	if m.NTree > 0 {
		rowadr[0] = 0
		for r := int32(1); r < m.NTree; r++ {
			rowadr[r] = rowadr[r-1] + treenedge[r-1]
			treenedge[r-1] = 0
		}
		treenedge[m.NTree-1] = 0
	}

	colind, err := a.AllocScratch(nedge)
	if err != nil {
		return rollback(a, mark, logger, err)
	}
	for e := int32(0); e < nedge; e++ {
		row := record[2*e]
		col := record[2*e+1]
		colind[rowadr[row]+treenedge[row]] = col
		treenedge[row]++
	}

	treeIsland, err := a.AllocScratch(m.NTree)
	if err != nil {
		return rollback(a, mark, logger, err)
	}
	floodStack, err := a.AllocScratch(nedge)
	if err != nil {
		return rollback(a, mark, logger, err)
	}
	nisland := floodfill.Discover(treeIsland, treenedge, rowadr, colind, floodStack)

	dofIsland, err := a.Alloc(m.NV)
	if err != nil {
		return rollback(a, mark, logger, err)
	}
	dofIslandNext, err := a.Alloc(m.NV)
	if err != nil {
		return rollback(a, mark, logger, err)
	}
	efcIsland, err := a.Alloc(d.Nefc)
	if err != nil {
		return rollback(a, mark, logger, err)
	}
	efcIslandNext, err := a.Alloc(d.Nefc)
	if err != nil {
		return rollback(a, mark, logger, err)
	}
	islandDofAdr, err := a.Alloc(nisland)
	if err != nil {
		return rollback(a, mark, logger, err)
	}
	islandEfcAdr, err := a.Alloc(nisland)
	if err != nil {
		return rollback(a, mark, logger, err)
	}

	islandLast, err := a.AllocScratch(nisland)
	if err != nil {
		return rollback(a, mark, logger, err)
	}
	for i := range islandLast {
		islandLast[i] = -1
	}

	var foundDof int32
	for i := int32(0); i < m.NV; i++ {
		k := treeIsland[m.DofTreeID[i]]
		dofIsland[i] = k
		if k == -1 {
			dofIslandNext[i] = -1
			continue
		}
		if last := islandLast[k]; last == -1 {
			islandDofAdr[k] = i
			foundDof++
		} else {
			dofIslandNext[last] = i
		}
		islandLast[k] = i
	}
	if foundDof != nisland {
		panic(model.Fatalf("island: not all islands assigned to dofs"))
	}
	for k := int32(0); k < nisland; k++ {
		dofIslandNext[islandLast[k]] = -1
	}

	for i := range islandLast {
		islandLast[i] = -1
	}

	var foundEfc int32
	for i := int32(0); i < d.Nefc; i++ {
		firstTree, _ := sc.Next(int(i), model.StaticTree, 0)
		if firstTree == -1 {
			panic(model.Fatalf("island: constraint %d has no tree incidence", i))
		}
		k := treeIsland[firstTree]
		efcIsland[i] = k
		if k == -1 {
			panic(model.Fatalf("island: constraint %d not in any island", i))
		}
		if last := islandLast[k]; last == -1 {
			islandEfcAdr[k] = i
			foundEfc++
		} else {
			efcIslandNext[last] = i
		}
		islandLast[k] = i
	}
	if foundEfc != nisland {
		panic(model.Fatalf("island: not all islands assigned to constraints"))
	}
	for k := int32(0); k < nisland; k++ {
		efcIslandNext[islandLast[k]] = -1
	}

	return &Islands{
		N:             nisland,
		DofIsland:     dofIsland,
		DofIslandNext: dofIslandNext,
		EfcIsland:     efcIsland,
		EfcIslandNext: efcIslandNext,
		IslandDofAdr:  islandDofAdr,
		IslandEfcAdr:  islandEfcAdr,
	}, nil
}

// rollback restores a's output watermark to mark, emits the bounded
// constraint-buffer-full warning, and returns an empty Islands
// alongside a wrapped error. Scratch is released by Discover's
// deferred RewindScratch regardless of which path returns.
func rollback(a *arena.Arena, mark int32, logger *zap.Logger, cause error) (*Islands, error) {
	a.RewindTo(mark)
	logger.Warn("constraint buffer full",
		zap.Int64("arena_bytes", a.CapacityBytes()),
		zap.Error(cause))
	return &Islands{}, fmt.Errorf("%w: %w", ErrConstraintBufferFull, cause)
}
