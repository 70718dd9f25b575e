// SPDX-License-Identifier: MIT

// Package mesh implements a half-edge mesh (doubly connected edge list, DCEL)
// over polygonal faces: topology storage, construction from face lists,
// three-pass invariant verification and traversal primitives.
//
// A Mesh[V, E, F] owns three arenas (vertices, half-edges, faces) and the five
// relations between them:
//
//	root(e)  – vertex the half-edge leaves from
//	face(e)  – face the half-edge bounds
//	next(e)  – following half-edge on the same face, fixed winding
//	twin(e)  – the opposite half-edge (endpoints swapped)
//	rep(v), rep(f) – one representative half-edge per vertex / face
//
// V, E and F are caller payloads attached to vertices, half-edges and faces;
// use Empty when nothing needs to be stored.
//
// Invariants (hold for every mesh returned by Build or Restore):
//
//  1. twin(twin(e)) == e
//  2. root(next(twin(e))) == root(e)
//  3. face(next(e)) == face(e)
//  4. next-walks from any e return to e within the configured max face degree
//  5. every representative refers to a live half-edge incident to its element
//  6. every half-edge has all four relations defined
//
// Construction:
//
//	m, maps, err := mesh.Build[mesh.Empty, mesh.Empty, mesh.Empty](
//	    [][]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}},
//	)
//
// Build either returns a verified mesh or a *StructuralError; partial meshes
// are never returned. Errors:
//
//	ErrDegenerateFace      – fewer than 3 indices, or a repeated index
//	ErrFaceDegreeExceeded  – face longer than WithMaxFaceDegree
//	ErrNonManifold         – a directed edge claimed by two faces
//	ErrNonWatertight       – a directed edge without its reverse
//	ErrNonManifoldVertex   – faces around a vertex form more than one fan
//
// Verification (each pass assumes the previous succeeded):
//
//	VerifyProperties()  – relations defined      → ErrMissingRelation
//	VerifyReferences()  – stored handles live    → ErrDanglingReference
//	VerifyInvariants()  – invariants 1–5         → ErrInvariantViolated
//
// Accessors come in two tiers. LookupRoot, LookupTwin, ... return errors;
// Root, Twin, ... and the traversal helpers built on them panic with an
// *IntegrityError when the topology is broken, which never happens on a
// verified mesh.
//
// Concurrency: no internal locking. A built mesh may be read from many
// goroutines at once; UpdateVert/UpdateEdge/UpdateFace need exclusive access.
package mesh
