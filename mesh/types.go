// SPDX-License-Identifier: MIT

package mesh

import "github.com/maximsnoep/douconel/arena"

type (
	vertTag struct{}
	edgeTag struct{}
	faceTag struct{}
)

// VertID is an opaque vertex handle.
type VertID = arena.Handle[vertTag]

// EdgeID is an opaque half-edge handle.
type EdgeID = arena.Handle[edgeTag]

// FaceID is an opaque face handle.
type FaceID = arena.Handle[faceTag]

// Empty is the payload for elements that carry no data.
type Empty struct{}

// EdgePair is a routing state made of the last half-edge crossed (Prev)
// and the half-edge chosen next (Cur).
type EdgePair struct {
	Prev EdgeID
	Cur  EdgeID
}

type vertRecord[V any] struct {
	rep  EdgeID
	data V
}

type edgeRecord[E any] struct {
	root VertID
	face FaceID
	next EdgeID
	twin EdgeID
	data E
}

type faceRecord[F any] struct {
	rep  EdgeID
	data F
}

// Mesh is a half-edge mesh with vertex payload V, half-edge payload E and
// face payload F.
type Mesh[V, E, F any] struct {
	verts *arena.Arena[vertTag, vertRecord[V]]
	edges *arena.Arena[edgeTag, edgeRecord[E]]
	faces *arena.Arena[faceTag, faceRecord[F]]

	cfg config
}

func newMesh[V, E, F any](cfg config, nv, ne, nf int) *Mesh[V, E, F] {
	return &Mesh[V, E, F]{
		verts: arena.New[vertTag, vertRecord[V]](nv),
		edges: arena.New[edgeTag, edgeRecord[E]](ne),
		faces: arena.New[faceTag, faceRecord[F]](nf),
		cfg:   cfg,
	}
}

// Relation names one of the topological relations.
type Relation int

// Relations stored by a mesh.
const (
	RelNone Relation = iota
	RelRoot
	RelFace
	RelNext
	RelTwin
	RelVertRep
	RelFaceRep
)

// String returns the relation name used in diagnostics.
func (r Relation) String() string {
	switch r {
	case RelRoot:
		return "root"
	case RelFace:
		return "face"
	case RelNext:
		return "next"
	case RelTwin:
		return "twin"
	case RelVertRep:
		return "vertex representative"
	case RelFaceRep:
		return "face representative"
	default:
		return "none"
	}
}

// Invariant names a structural invariant checked by VerifyInvariants.
type Invariant int

// Invariants of a valid mesh.
const (
	InvNone Invariant = iota
	// InvTwinInvolution: twin(twin(e)) == e.
	InvTwinInvolution
	// InvVertexConsistency: root(next(twin(e))) == root(e).
	InvVertexConsistency
	// InvFaceConsistency: face(next(e)) == face(e).
	InvFaceConsistency
	// InvClosedCycle: next-walks return to their start within the bound.
	InvClosedCycle
	// InvRepresentative: rep(v) leaves v and rep(f) bounds f.
	InvRepresentative
)

// String returns the invariant name used in diagnostics.
func (i Invariant) String() string {
	switch i {
	case InvTwinInvolution:
		return "twin(twin(e)) == e"
	case InvVertexConsistency:
		return "root(next(twin(e))) == root(e)"
	case InvFaceConsistency:
		return "face(next(e)) == face(e)"
	case InvClosedCycle:
		return "closed cycle"
	case InvRepresentative:
		return "representative incidence"
	default:
		return "none"
	}
}
