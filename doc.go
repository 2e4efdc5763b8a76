// Package mujoco discovers constraint islands for a rigid-body solver:
// disjoint connected components of kinematic trees coupled by active
// constraints, so downstream solvers can process each independently.
//
// Under the hood, the work is organized into six subpackages:
//
//	model/     — read-only Model/Data views the caller provides per step
//	arena/     — bump allocator scratch and output space is drawn from
//	floodfill/ — generic connected-components over symmetric CSR adjacency
//	treescan/  — per-row Jacobian scan, dense or sparse, for tree incidence
//	edges/     — constraint-to-tree-edge collection and its size bound
//	island/    — orchestrates the above into the per-step island tables
//
// A single call to island.Discover partitions the active constraint set;
// there is no incremental update across steps and no CLI surface — every
// input arrives as Go values already held by the caller.
package mujoco
