// SPDX-License-Identifier: MIT

package mesh

// File: verify.go
// Role: three ordered verification passes over the whole mesh.
//
// Each pass reports the first failure found, scanning elements in
// allocation order so results are deterministic.

// Verify runs VerifyProperties, VerifyReferences and VerifyInvariants in order.
func (m *Mesh[V, E, F]) Verify() error {
	if err := m.VerifyProperties(); err != nil {
		return err
	}
	if err := m.VerifyReferences(); err != nil {
		return err
	}

	return m.VerifyInvariants()
}

// VerifyProperties checks that every half-edge has root, face, next and twin
// defined and that every vertex and face has a representative.
func (m *Mesh[V, E, F]) VerifyProperties() error {
	for _, e := range m.edges.Keys() {
		r, _ := m.edges.Ptr(e)
		switch {
		case r.root.IsNil():
			return missing(RelRoot, edgeName(e))
		case r.face.IsNil():
			return missing(RelFace, edgeName(e))
		case r.next.IsNil():
			return missing(RelNext, edgeName(e))
		case r.twin.IsNil():
			return missing(RelTwin, edgeName(e))
		}
	}
	for _, v := range m.verts.Keys() {
		if r, _ := m.verts.Ptr(v); r.rep.IsNil() {
			return missing(RelVertRep, vertName(v))
		}
	}
	for _, f := range m.faces.Keys() {
		if r, _ := m.faces.Ptr(f); r.rep.IsNil() {
			return missing(RelFaceRep, faceName(f))
		}
	}

	return nil
}

// VerifyReferences checks that every stored handle refers to a live element.
func (m *Mesh[V, E, F]) VerifyReferences() error {
	for _, e := range m.edges.Keys() {
		r, _ := m.edges.Ptr(e)
		switch {
		case !m.verts.Contains(r.root):
			return danglingRef(RelRoot, edgeName(e), vertName(r.root))
		case !m.faces.Contains(r.face):
			return danglingRef(RelFace, edgeName(e), faceName(r.face))
		case !m.edges.Contains(r.next):
			return danglingRef(RelNext, edgeName(e), edgeName(r.next))
		case !m.edges.Contains(r.twin):
			return danglingRef(RelTwin, edgeName(e), edgeName(r.twin))
		}
	}
	for _, v := range m.verts.Keys() {
		if r, _ := m.verts.Ptr(v); !m.edges.Contains(r.rep) {
			return danglingRef(RelVertRep, vertName(v), edgeName(r.rep))
		}
	}
	for _, f := range m.faces.Keys() {
		if r, _ := m.faces.Ptr(f); !m.edges.Contains(r.rep) {
			return danglingRef(RelFaceRep, faceName(f), edgeName(r.rep))
		}
	}

	return nil
}

// VerifyInvariants checks twin involution, vertex and face consistency,
// bounded face cycles and representative incidence. It assumes the two
// previous passes succeeded.
func (m *Mesh[V, E, F]) VerifyInvariants() error {
	for _, e := range m.edges.Keys() {
		r, _ := m.edges.Ptr(e)
		twin, err := m.edges.Ptr(r.twin)
		if err != nil {
			return danglingRef(RelTwin, edgeName(e), edgeName(r.twin))
		}
		if twin.twin != e {
			return violated(InvTwinInvolution, edgeName(e))
		}
		around, err := m.edges.Ptr(twin.next)
		if err != nil {
			return danglingRef(RelNext, edgeName(r.twin), edgeName(twin.next))
		}
		if around.root != r.root {
			return violated(InvVertexConsistency, edgeName(e))
		}
		next, err := m.edges.Ptr(r.next)
		if err != nil {
			return danglingRef(RelNext, edgeName(e), edgeName(r.next))
		}
		if next.face != r.face {
			return violated(InvFaceConsistency, edgeName(e))
		}
		if !m.closes(e) {
			return violated(InvClosedCycle, edgeName(e))
		}
	}
	for _, v := range m.verts.Keys() {
		r, _ := m.verts.Ptr(v)
		if rep, err := m.edges.Ptr(r.rep); err != nil || rep.root != v {
			return violated(InvRepresentative, vertName(v))
		}
	}
	for _, f := range m.faces.Keys() {
		r, _ := m.faces.Ptr(f)
		if rep, err := m.edges.Ptr(r.rep); err != nil || rep.face != f {
			return violated(InvRepresentative, faceName(f))
		}
	}

	return nil
}

// closes reports whether repeated next from e returns to e within the
// configured max face degree.
func (m *Mesh[V, E, F]) closes(e EdgeID) bool {
	cur := e
	for steps := 0; steps < m.cfg.maxFaceDegree; steps++ {
		r, err := m.edges.Ptr(cur)
		if err != nil {
			return false
		}
		cur = r.next
		if cur == e {
			return true
		}
	}

	return false
}
