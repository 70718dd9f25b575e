// SPDX-License-Identifier: MIT

package mesh

// WalkOutgoing returns the half-edges leaving v, starting at its
// representative and stepping e -> next(twin(e)) until the walk recurs.
//
// Errors:
//   - ErrMissingRelation / ErrDanglingHandle from the accessors; a vertex
//     without a representative is rejected before walking.
//   - ErrInvariantViolated if the walk does not recur within EdgeCount steps.
func (m *Mesh[V, E, F]) WalkOutgoing(v VertID) ([]EdgeID, error) {
	start, err := m.LookupVertRep(v)
	if err != nil {
		return nil, err
	}
	out := []EdgeID{start}
	cur := start
	for steps := 0; ; steps++ {
		if steps >= m.edges.Len() {
			return nil, violated(InvClosedCycle, vertName(v))
		}
		t, err := m.LookupTwin(cur)
		if err != nil {
			return nil, err
		}
		if cur, err = m.LookupNext(t); err != nil {
			return nil, err
		}
		if cur == start {
			return out, nil
		}
		out = append(out, cur)
	}
}

// WalkFace returns the boundary half-edges of f in next order, starting at
// its representative.
//
// Errors:
//   - ErrMissingRelation / ErrDanglingHandle from the accessors.
//   - ErrInvariantViolated if the walk does not recur within MaxFaceDegree steps.
func (m *Mesh[V, E, F]) WalkFace(f FaceID) ([]EdgeID, error) {
	start, err := m.LookupFaceRep(f)
	if err != nil {
		return nil, err
	}
	out := []EdgeID{start}
	cur := start
	for steps := 0; ; steps++ {
		if steps >= m.cfg.maxFaceDegree {
			return nil, violated(InvClosedCycle, faceName(f))
		}
		if cur, err = m.LookupNext(cur); err != nil {
			return nil, err
		}
		if cur == start {
			return out, nil
		}
		out = append(out, cur)
	}
}

// Outgoing returns the half-edges leaving v in rotation order.
// Panics on broken topology.
func (m *Mesh[V, E, F]) Outgoing(v VertID) []EdgeID { return must(m.WalkOutgoing(v)) }

// FaceEdges returns the boundary half-edges of f in next order.
// Panics on broken topology.
func (m *Mesh[V, E, F]) FaceEdges(f FaceID) []EdgeID { return must(m.WalkFace(f)) }

// Star returns the faces around v, one per outgoing half-edge.
func (m *Mesh[V, E, F]) Star(v VertID) []FaceID {
	out := m.Outgoing(v)
	star := make([]FaceID, len(out))
	for i, e := range out {
		star[i] = m.Face(e)
	}

	return star
}

// Corners returns the vertices of f in winding order.
func (m *Mesh[V, E, F]) Corners(f FaceID) []VertID {
	ring := m.FaceEdges(f)
	corners := make([]VertID, len(ring))
	for i, e := range ring {
		corners[i] = m.Root(e)
	}

	return corners
}

// VertNeighbors returns the vertices adjacent to v, in rotation order.
func (m *Mesh[V, E, F]) VertNeighbors(v VertID) []VertID {
	out := m.Outgoing(v)
	nbs := make([]VertID, len(out))
	for i, e := range out {
		nbs[i] = m.Root(m.Twin(e))
	}

	return nbs
}

// FaceNeighbors returns the faces sharing an edge with f, in boundary order.
func (m *Mesh[V, E, F]) FaceNeighbors(f FaceID) []FaceID {
	ring := m.FaceEdges(f)
	nbs := make([]FaceID, len(ring))
	for i, e := range ring {
		nbs[i] = m.Face(m.Twin(e))
	}

	return nbs
}

// Endpoints returns the root of e and the root of its twin.
func (m *Mesh[V, E, F]) Endpoints(e EdgeID) (VertID, VertID) {
	return m.Root(e), m.Root(m.Twin(e))
}

// EdgeFaces returns the face of e and the face of its twin.
func (m *Mesh[V, E, F]) EdgeFaces(e EdgeID) [2]FaceID {
	return [2]FaceID{m.Face(e), m.Face(m.Twin(e))}
}

// Degree returns the number of half-edges leaving v.
func (m *Mesh[V, E, F]) Degree(v VertID) int { return len(m.Outgoing(v)) }

// FaceDegree returns the number of corners of f.
func (m *Mesh[V, E, F]) FaceDegree(f FaceID) int { return len(m.FaceEdges(f)) }

// EdgeBetweenVerts returns the half-edge a -> b and its twin b -> a.
// ok is false when a and b are not adjacent.
func (m *Mesh[V, E, F]) EdgeBetweenVerts(a, b VertID) (ab, ba EdgeID, ok bool) {
	for _, e := range m.Outgoing(a) {
		t := m.Twin(e)
		if m.Root(t) == b {
			return e, t, true
		}
	}

	return EdgeID{}, EdgeID{}, false
}

// EdgeBetweenFaces returns the half-edge of a whose twin bounds b, and that
// twin. ok is false when a and b share no edge.
func (m *Mesh[V, E, F]) EdgeBetweenFaces(a, b FaceID) (inA, inB EdgeID, ok bool) {
	for _, e := range m.FaceEdges(a) {
		t := m.Twin(e)
		if m.Face(t) == b {
			return e, t, true
		}
	}

	return EdgeID{}, EdgeID{}, false
}
