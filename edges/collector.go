package edges

import (
	"github.com/nopaddleboat/mujoco/model"
	"github.com/nopaddleboat/mujoco/treescan"
)

// Collect walks d's active constraint rows in order and writes
// tree-tree edge records into record, an interleaved (src, dst) array
// of capacity at least 2*maxEdges (see MaxEdges). It returns the
// number of records written. treenedge, length m.NTree, is cleared
// and then incremented once per endpoint appearance.
//
// Consecutive rows sharing (EfcType, EfcID) belong to one logical
// constraint and are only emitted once. Fast paths apply per
// model.ConstraintKind; anything else falls back to a generic scan of
// the row's Jacobian via sc.
//
// Panics with a model.InternalError if an edge would have both
// endpoints at model.StaticTree, or if maxEdges underestimates the
// true edge count — both are invariant violations that cannot happen
// on well-formed input.
func Collect(m *model.Model, d *model.Data, sc treescan.Scanner, record []int32, treenedge []int32, maxEdges int32) int32 {
	for i := range treenedge {
		treenedge[i] = 0
	}

	var curType model.ConstraintKind = -1
	var curID int32 = -1
	var nedge int32

	for i := 0; i < int(d.Nefc); i++ {
		if curType == d.EfcType[i] && curID == d.EfcID[i] {
			continue
		}
		curType = d.EfcType[i]
		curID = d.EfcID[i]

		switch {
		case curType == model.ConstraintFrictionDOF:
			t1 := m.DofTreeID[curID]
			nedge = addEdge(treenedge, record, nedge, t1, t1, maxEdges)

		case curType == model.ConstraintLimitJoint:
			t1 := m.DofTreeID[m.JntDofAdr[curID]]
			nedge = addEdge(treenedge, record, nedge, t1, t1, maxEdges)

		case curType.IsContact():
			c := d.Contacts[curID]
			t1 := m.BodyTreeID[m.GeomBodyID[c.Geom1]]
			t2 := m.BodyTreeID[m.GeomBodyID[c.Geom2]]
			nedge = addEdge(treenedge, record, nedge, t1, t2, maxEdges)

		case curType == model.ConstraintEquality && isConnectOrWeld(m, curID):
			t1 := m.BodyTreeID[m.EqObj1ID[curID]]
			t2 := m.BodyTreeID[m.EqObj2ID[curID]]
			nedge = addEdge(treenedge, record, nedge, t1, t2, maxEdges)

		default:
			nedge = collectGeneric(sc, record, treenedge, nedge, i, maxEdges)
		}
	}

	return nedge
}

func isConnectOrWeld(m *model.Model, eqID int32) bool {
	t := m.EqType[eqID]
	return t == model.EqualityConnect || t == model.EqualityWeld
}

// collectGeneric chains the trees incident on row i into a spanning
// chain of edges, sufficient for connectivity even for a hyper-edge
// that touches more than two trees.
func collectGeneric(sc treescan.Scanner, record []int32, treenedge []int32, nedge int32, row int, maxEdges int32) int32 {
	var cursor int32
	t1, cursor := sc.Next(row, model.StaticTree, cursor)
	t2, cursor := sc.Next(row, t1, cursor)

	if t2 == -1 {
		return addEdge(treenedge, record, nedge, t1, t1, maxEdges)
	}

	nedge = addEdge(treenedge, record, nedge, t1, t2, maxEdges)
	t3, cursor := sc.Next(row, t2, cursor)
	for t3 > -1 && t3 != t2 {
		t1, t2 = t2, t3
		nedge = addEdge(treenedge, record, nedge, t1, t2, maxEdges)
		t3, cursor = sc.Next(row, t2, cursor)
	}
	return nedge
}

// addEdge appends 0, 1 (self), or 2 (flipped pair) records to record,
// deduplicating an emission identical to the immediately preceding
// record, and increments treenedge once per endpoint appearance.
func addEdge(treenedge, record []int32, nedge, t1, t2, maxEdges int32) int32 {
	if t1 == model.StaticTree && t2 == model.StaticTree {
		panic(model.Fatalf("edges: self-edge of the static tree"))
	}
	if t1 == model.StaticTree {
		t1 = t2
	}
	if t2 == model.StaticTree {
		t2 = t1
	}

	var p1, p2 int32 = -1, -1
	if nedge > 0 {
		p1 = record[2*nedge-2]
		p2 = record[2*nedge-1]
	}

	if t1 == t2 {
		if nedge > 0 && t1 == p1 && t1 == p2 {
			return nedge
		}
		if nedge >= maxEdges {
			panic(model.Fatalf("edges: edge array too small"))
		}
		record[2*nedge] = t1
		record[2*nedge+1] = t1
		treenedge[t1]++
		return nedge + 1
	}

	if nedge > 0 && ((t1 == p1 && t2 == p2) || (t1 == p2 && t2 == p1)) {
		return nedge
	}
	if nedge+2 > maxEdges {
		panic(model.Fatalf("edges: edge array too small"))
	}
	record[2*nedge+0] = t1
	record[2*nedge+1] = t2
	record[2*nedge+2] = t2
	record[2*nedge+3] = t1
	treenedge[t1]++
	treenedge[t2]++
	return nedge + 2
}
