package floodfill

// Discover partitions an n-vertex graph, given as a symmetric sparse
// adjacency CSR triple (rownnz, rowadr, colind), into connected
// components. It writes a component id into labels[0..n) for every
// vertex with at least one edge, and -1 for vertices with rownnz == 0.
// It returns the number of components discovered.
//
// stack must have capacity at least the total nonzero count (sum of
// rownnz); it is used as an explicit LIFO scratch buffer and its
// contents are not meaningful on return. Duplicate column indices and
// self-loops are tolerated: a vertex popped from the stack after
// already being labeled is simply discarded.
//
// Complexity: O(n + nnz). This is a pure function over well-formed
// inputs; it has no failure mode.
func Discover(labels []int32, rownnz, rowadr, colind []int32, stack []int32) int32 {
	n := int32(len(labels))
	for i := range labels {
		labels[i] = -1
	}

	var nisland int32
	for i := int32(0); i < n; i++ {
		if labels[i] != -1 || rownnz[i] == 0 {
			continue
		}

		var nstack int32
		stack[nstack] = i
		nstack++

		for nstack > 0 {
			nstack--
			v := stack[nstack]
			if labels[v] != -1 {
				continue
			}
			labels[v] = nisland

			adr := rowadr[v]
			nnz := rownnz[v]
			copy(stack[nstack:nstack+nnz], colind[adr:adr+nnz])
			nstack += nnz
		}

		nisland++
	}

	return nisland
}
