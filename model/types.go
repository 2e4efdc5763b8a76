package model

// StaticTree is the sentinel tree id denoting the worldbody: no DoFs
// belong to it, and it never appears as an edge endpoint on its own —
// an edge touching it folds onto its other endpoint.
const StaticTree int32 = -1

// ConstraintKind classifies a constraint row for the edge collector's
// fast paths (see edges.Collect). Kinds without a dedicated fast path
// fall through to the generic Jacobian-scan path.
type ConstraintKind int8

const (
	// ConstraintOther has no fast path; the edge collector scans its
	// Jacobian row via treescan instead.
	ConstraintOther ConstraintKind = iota
	// ConstraintFrictionDOF is a DoF friction-loss row.
	ConstraintFrictionDOF
	// ConstraintLimitJoint is a joint-limit row.
	ConstraintLimitJoint
	// ConstraintContactFrictionless is a frictionless contact row.
	ConstraintContactFrictionless
	// ConstraintContactPyramidal is a pyramidal-friction contact row.
	ConstraintContactPyramidal
	// ConstraintContactElliptic is an elliptic-friction contact row.
	ConstraintContactElliptic
	// ConstraintEquality is an equality-constraint row; whether it gets
	// the fast path depends on its EqualityType (connect/weld only).
	ConstraintEquality
)

// IsContact reports whether k is one of the three contact kinds.
func (k ConstraintKind) IsContact() bool {
	switch k {
	case ConstraintContactFrictionless, ConstraintContactPyramidal, ConstraintContactElliptic:
		return true
	default:
		return false
	}
}

// EqualityType classifies an equality constraint's subtype. Only
// Connect and Weld get the edge collector's fast path; every other
// subtype (joint, tendon, distance, flex, ...) falls through to the
// generic Jacobian scan.
type EqualityType int8

const (
	// EqualityOther covers every equality subtype without a fast path.
	EqualityOther EqualityType = iota
	// EqualityConnect ties a point on body1 to a point on body2.
	EqualityConnect
	// EqualityWeld rigidly fixes body1 to body2.
	EqualityWeld
)

// Contact is the subset of a contact pair the edge collector needs:
// the two geoms whose bodies (and therefore trees) it couples.
type Contact struct {
	Geom1 int32
	Geom2 int32
}

// Model is the read-only, per-simulation description of the kinematic
// system. It partitions DoFs into trees and carries the tendon tables
// edges.MaxEdges needs to size its bound.
type Model struct {
	// NV is the number of scalar degrees of freedom.
	NV int32
	// NTree is the number of kinematic trees (the static tree, id -1,
	// is not counted here).
	NTree int32

	// DofTreeID maps DoF index to tree id, or StaticTree.
	DofTreeID []int32
	// BodyTreeID maps body id to tree id, or StaticTree.
	BodyTreeID []int32
	// GeomBodyID maps geom id to the body it is attached to.
	GeomBodyID []int32
	// JntDofAdr maps joint id to the address of its first DoF.
	JntDofAdr []int32

	// EqType maps equality-constraint id to its subtype.
	EqType []EqualityType
	// EqObj1ID and EqObj2ID map equality-constraint id to the body ids
	// (for Connect/Weld) it couples.
	EqObj1ID []int32
	EqObj2ID []int32

	// NTendon is the number of tendons.
	NTendon int32
	// TendonNum maps tendon id to its DoF-span size, used by the
	// budget estimator (edges.MaxEdges).
	TendonNum []int32
	// TendonLimited and TendonFrictionloss flag, per tendon, whether
	// that tendon contributes limit/friction constraint rows.
	TendonLimited      []bool
	TendonFrictionloss []bool
}

// Data is the read-only, per-step description of the active constraint
// set and its Jacobian over the model's DoFs. Exactly one of the two
// Jacobian representations is populated, selected by Sparse.
type Data struct {
	// Nefc is the number of active constraint rows; may be zero.
	Nefc int32
	// EfcType and EfcID classify each row and index into its family's
	// table. Consecutive rows sharing both fields are one logical
	// constraint.
	EfcType []ConstraintKind
	EfcID   []int32

	// Sparse selects the Jacobian representation: true for
	// EfcJRownnz/EfcJRowadr/EfcJColind, false for EfcJ.
	Sparse bool

	// EfcJRownnz, EfcJRowadr, EfcJColind hold the sparse Jacobian as a
	// CSR triple over constraint rows. Column indices within a row
	// are neither sorted nor unique.
	EfcJRownnz []int32
	EfcJRowadr []int32
	EfcJColind []int32

	// EfcJ holds the dense Jacobian, row-major, Nefc*Model.NV entries.
	EfcJ []float64

	// Ncon, Ne, Nf are the contact, equality, and joint-friction
	// constraint counts, used by the budget estimator.
	Ncon int32
	Ne   int32
	Nf   int32

	// Contacts holds the geom pair for each contact, indexed by
	// EfcID for contact-kind rows.
	Contacts []Contact
}

// SparseRow returns the column-index slice for constraint row i under
// the sparse representation. Callers must check Sparse first.
func (d *Data) SparseRow(i int) []int32 {
	adr := d.EfcJRowadr[i]
	nnz := d.EfcJRownnz[i]
	return d.EfcJColind[adr : adr+nnz]
}

// DenseRow returns the dense Jacobian row for constraint row i over
// nv columns. Callers must check Sparse first.
func (d *Data) DenseRow(i int, nv int32) []float64 {
	return d.EfcJ[int64(i)*int64(nv) : int64(i)*int64(nv)+int64(nv)]
}
