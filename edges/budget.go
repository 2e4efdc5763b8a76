package edges

import "github.com/nopaddleboat/mujoco/model"

// MaxEdges computes an upper bound on the number of edge records
// Collect can emit for the given step: contacts and equalities
// contribute at most two records each (pair plus its flip),
// joint-friction contributes one self-record, and tendon constraints
// contribute at most one record per involved DoF.
//
// Complexity: O(NTendon).
func MaxEdges(m *model.Model, d *model.Data) int32 {
	n := 2*d.Ncon + 2*d.Ne + d.Nf
	for t := int32(0); t < m.NTendon; t++ {
		if m.TendonFrictionloss[t] {
			n += m.TendonNum[t]
		}
		if m.TendonLimited[t] {
			n += m.TendonNum[t]
		}
	}
	return n
}
