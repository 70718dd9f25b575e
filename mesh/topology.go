// SPDX-License-Identifier: MIT

package mesh

// File: topology.go
// Role: the only read path into the relation store, plus payload access.
//
// Checked tier (Lookup*) returns *IntegrityError values; the unchecked tier
// panics with the same errors and is what traversal code builds on.

func (m *Mesh[V, E, F]) vert(v VertID) (*vertRecord[V], error) {
	r, err := m.verts.Ptr(v)
	if err != nil {
		return nil, dangling(vertName(v))
	}

	return r, nil
}

func (m *Mesh[V, E, F]) edge(e EdgeID) (*edgeRecord[E], error) {
	r, err := m.edges.Ptr(e)
	if err != nil {
		return nil, dangling(edgeName(e))
	}

	return r, nil
}

func (m *Mesh[V, E, F]) face(f FaceID) (*faceRecord[F], error) {
	r, err := m.faces.Ptr(f)
	if err != nil {
		return nil, dangling(faceName(f))
	}

	return r, nil
}

// LookupRoot returns the vertex e leaves from.
func (m *Mesh[V, E, F]) LookupRoot(e EdgeID) (VertID, error) {
	r, err := m.edge(e)
	if err != nil {
		return VertID{}, err
	}
	if r.root.IsNil() {
		return VertID{}, missing(RelRoot, edgeName(e))
	}
	if m.cfg.checkRefs && !m.verts.Contains(r.root) {
		return VertID{}, danglingRef(RelRoot, edgeName(e), vertName(r.root))
	}

	return r.root, nil
}

// LookupFace returns the face e bounds.
func (m *Mesh[V, E, F]) LookupFace(e EdgeID) (FaceID, error) {
	r, err := m.edge(e)
	if err != nil {
		return FaceID{}, err
	}
	if r.face.IsNil() {
		return FaceID{}, missing(RelFace, edgeName(e))
	}
	if m.cfg.checkRefs && !m.faces.Contains(r.face) {
		return FaceID{}, danglingRef(RelFace, edgeName(e), faceName(r.face))
	}

	return r.face, nil
}

// LookupNext returns the half-edge following e on its face.
func (m *Mesh[V, E, F]) LookupNext(e EdgeID) (EdgeID, error) {
	r, err := m.edge(e)
	if err != nil {
		return EdgeID{}, err
	}

	return m.edgeTarget(RelNext, e, r.next)
}

// LookupTwin returns the half-edge opposite to e.
func (m *Mesh[V, E, F]) LookupTwin(e EdgeID) (EdgeID, error) {
	r, err := m.edge(e)
	if err != nil {
		return EdgeID{}, err
	}

	return m.edgeTarget(RelTwin, e, r.twin)
}

// LookupVertRep returns the representative outgoing half-edge of v.
func (m *Mesh[V, E, F]) LookupVertRep(v VertID) (EdgeID, error) {
	r, err := m.vert(v)
	if err != nil {
		return EdgeID{}, err
	}
	if r.rep.IsNil() {
		return EdgeID{}, missing(RelVertRep, vertName(v))
	}
	if m.cfg.checkRefs && !m.edges.Contains(r.rep) {
		return EdgeID{}, danglingRef(RelVertRep, vertName(v), edgeName(r.rep))
	}

	return r.rep, nil
}

// LookupFaceRep returns the representative boundary half-edge of f.
func (m *Mesh[V, E, F]) LookupFaceRep(f FaceID) (EdgeID, error) {
	r, err := m.face(f)
	if err != nil {
		return EdgeID{}, err
	}
	if r.rep.IsNil() {
		return EdgeID{}, missing(RelFaceRep, faceName(f))
	}
	if m.cfg.checkRefs && !m.edges.Contains(r.rep) {
		return EdgeID{}, danglingRef(RelFaceRep, faceName(f), edgeName(r.rep))
	}

	return r.rep, nil
}

func (m *Mesh[V, E, F]) edgeTarget(rel Relation, e, target EdgeID) (EdgeID, error) {
	if target.IsNil() {
		return EdgeID{}, missing(rel, edgeName(e))
	}
	if m.cfg.checkRefs && !m.edges.Contains(target) {
		return EdgeID{}, danglingRef(rel, edgeName(e), edgeName(target))
	}

	return target, nil
}

func must[H any](h H, err error) H {
	if err != nil {
		panic(err)
	}

	return h
}

// Root returns the vertex e leaves from. Panics on broken topology.
func (m *Mesh[V, E, F]) Root(e EdgeID) VertID { return must(m.LookupRoot(e)) }

// Face returns the face e bounds. Panics on broken topology.
func (m *Mesh[V, E, F]) Face(e EdgeID) FaceID { return must(m.LookupFace(e)) }

// Next returns the half-edge following e. Panics on broken topology.
func (m *Mesh[V, E, F]) Next(e EdgeID) EdgeID { return must(m.LookupNext(e)) }

// Twin returns the half-edge opposite to e. Panics on broken topology.
func (m *Mesh[V, E, F]) Twin(e EdgeID) EdgeID { return must(m.LookupTwin(e)) }

// VertRep returns the representative of v. Panics on broken topology.
func (m *Mesh[V, E, F]) VertRep(v VertID) EdgeID { return must(m.LookupVertRep(v)) }

// FaceRep returns the representative of f. Panics on broken topology.
func (m *Mesh[V, E, F]) FaceRep(f FaceID) EdgeID { return must(m.LookupFaceRep(f)) }

// VertData returns the payload of v.
func (m *Mesh[V, E, F]) VertData(v VertID) (V, error) {
	r, err := m.vert(v)
	if err != nil {
		var zero V
		return zero, err
	}

	return r.data, nil
}

// EdgeData returns the payload of e.
func (m *Mesh[V, E, F]) EdgeData(e EdgeID) (E, error) {
	r, err := m.edge(e)
	if err != nil {
		var zero E
		return zero, err
	}

	return r.data, nil
}

// FaceData returns the payload of f.
func (m *Mesh[V, E, F]) FaceData(f FaceID) (F, error) {
	r, err := m.face(f)
	if err != nil {
		var zero F
		return zero, err
	}

	return r.data, nil
}

// UpdateVert applies fn to the payload of v in place.
func (m *Mesh[V, E, F]) UpdateVert(v VertID, fn func(*V)) error {
	r, err := m.vert(v)
	if err != nil {
		return err
	}
	fn(&r.data)

	return nil
}

// UpdateEdge applies fn to the payload of e in place.
func (m *Mesh[V, E, F]) UpdateEdge(e EdgeID, fn func(*E)) error {
	r, err := m.edge(e)
	if err != nil {
		return err
	}
	fn(&r.data)

	return nil
}

// UpdateFace applies fn to the payload of f in place.
func (m *Mesh[V, E, F]) UpdateFace(f FaceID, fn func(*F)) error {
	r, err := m.face(f)
	if err != nil {
		return err
	}
	fn(&r.data)

	return nil
}

// HasVert reports whether v is live.
func (m *Mesh[V, E, F]) HasVert(v VertID) bool { return m.verts.Contains(v) }

// HasEdge reports whether e is live.
func (m *Mesh[V, E, F]) HasEdge(e EdgeID) bool { return m.edges.Contains(e) }

// HasFace reports whether f is live.
func (m *Mesh[V, E, F]) HasFace(f FaceID) bool { return m.faces.Contains(f) }

// VertCount returns the number of vertices.
func (m *Mesh[V, E, F]) VertCount() int { return m.verts.Len() }

// EdgeCount returns the number of half-edges.
func (m *Mesh[V, E, F]) EdgeCount() int { return m.edges.Len() }

// FaceCount returns the number of faces.
func (m *Mesh[V, E, F]) FaceCount() int { return m.faces.Len() }

// VertIDs returns all vertex handles in allocation order.
func (m *Mesh[V, E, F]) VertIDs() []VertID { return m.verts.Keys() }

// EdgeIDs returns all half-edge handles in allocation order.
func (m *Mesh[V, E, F]) EdgeIDs() []EdgeID { return m.edges.Keys() }

// FaceIDs returns all face handles in allocation order.
func (m *Mesh[V, E, F]) FaceIDs() []FaceID { return m.faces.Keys() }
