// SPDX-License-Identifier: MIT

package mesh

import "fmt"

// Snapshot is a dense structural dump of a mesh: every relation is an index
// into the element slices (in allocation order), -1 for an undefined one.
// It is JSON-friendly when the payloads are, and it is not a stable file
// format.
type Snapshot[V, E, F any] struct {
	Verts []VertEntry[V] `json:"verts"`
	Edges []EdgeEntry[E] `json:"edges"`
	Faces []FaceEntry[F] `json:"faces"`
}

// VertEntry is one vertex of a Snapshot.
type VertEntry[V any] struct {
	Rep  int `json:"rep"`
	Data V   `json:"data"`
}

// EdgeEntry is one half-edge of a Snapshot.
type EdgeEntry[E any] struct {
	Root int `json:"root"`
	Face int `json:"face"`
	Next int `json:"next"`
	Twin int `json:"twin"`
	Data E   `json:"data"`
}

// FaceEntry is one face of a Snapshot.
type FaceEntry[F any] struct {
	Rep  int `json:"rep"`
	Data F   `json:"data"`
}

func denseIndex[H comparable](keys []H) map[H]int {
	idx := make(map[H]int, len(keys))
	for i, h := range keys {
		idx[h] = i
	}

	return idx
}

func lookupDense[H comparable](idx map[H]int, h H) int {
	if i, ok := idx[h]; ok {
		return i
	}

	return -1
}

// Snapshot dumps the relations and payloads of m.
func (m *Mesh[V, E, F]) Snapshot() Snapshot[V, E, F] {
	vkeys, ekeys, fkeys := m.verts.Keys(), m.edges.Keys(), m.faces.Keys()
	vi, ei, fi := denseIndex(vkeys), denseIndex(ekeys), denseIndex(fkeys)

	s := Snapshot[V, E, F]{
		Verts: make([]VertEntry[V], len(vkeys)),
		Edges: make([]EdgeEntry[E], len(ekeys)),
		Faces: make([]FaceEntry[F], len(fkeys)),
	}
	for i, v := range vkeys {
		r, _ := m.verts.Ptr(v)
		s.Verts[i] = VertEntry[V]{Rep: lookupDense(ei, r.rep), Data: r.data}
	}
	for i, e := range ekeys {
		r, _ := m.edges.Ptr(e)
		s.Edges[i] = EdgeEntry[E]{
			Root: lookupDense(vi, r.root),
			Face: lookupDense(fi, r.face),
			Next: lookupDense(ei, r.next),
			Twin: lookupDense(ei, r.twin),
			Data: r.data,
		}
	}
	for i, f := range fkeys {
		r, _ := m.faces.Ptr(f)
		s.Faces[i] = FaceEntry[F]{Rep: lookupDense(ei, r.rep), Data: r.data}
	}

	return s
}

// Restore rebuilds a mesh from a snapshot with fresh handles and verifies it.
//
// Errors:
//   - ErrBadSnapshot if an index is out of range.
//   - any Verify error if the dumped topology is not a valid mesh.
//   - a *StructuralError wrapping ErrNonManifoldVertex if several fans share
//     one vertex; Indices holds its snapshot index.
func Restore[V, E, F any](s Snapshot[V, E, F], opts ...Option) (*Mesh[V, E, F], error) {
	m := newMesh[V, E, F](resolve(opts), len(s.Verts), len(s.Edges), len(s.Faces))

	vs := make([]VertID, len(s.Verts))
	for i, ve := range s.Verts {
		vs[i] = m.verts.Insert(vertRecord[V]{data: ve.Data})
	}
	es := make([]EdgeID, len(s.Edges))
	for i, ee := range s.Edges {
		es[i] = m.edges.Insert(edgeRecord[E]{data: ee.Data})
	}
	fs := make([]FaceID, len(s.Faces))
	for i, fe := range s.Faces {
		fs[i] = m.faces.Insert(faceRecord[F]{data: fe.Data})
	}

	var bad error
	pick := func(what string, i, n int) int {
		if (i < -1 || i >= n) && bad == nil {
			bad = fmt.Errorf("%w: %s index %d out of range [-1, %d)", ErrBadSnapshot, what, i, n)
		}

		return i
	}
	for i, ve := range s.Verts {
		if j := pick("vertex rep", ve.Rep, len(es)); j >= 0 && j < len(es) {
			r, _ := m.verts.Ptr(vs[i])
			r.rep = es[j]
		}
	}
	for i, ee := range s.Edges {
		r, _ := m.edges.Ptr(es[i])
		if j := pick("root", ee.Root, len(vs)); j >= 0 && j < len(vs) {
			r.root = vs[j]
		}
		if j := pick("face", ee.Face, len(fs)); j >= 0 && j < len(fs) {
			r.face = fs[j]
		}
		if j := pick("next", ee.Next, len(es)); j >= 0 && j < len(es) {
			r.next = es[j]
		}
		if j := pick("twin", ee.Twin, len(es)); j >= 0 && j < len(es) {
			r.twin = es[j]
		}
	}
	for i, fe := range s.Faces {
		if j := pick("face rep", fe.Rep, len(es)); j >= 0 && j < len(es) {
			r, _ := m.faces.Ptr(fs[i])
			r.rep = es[j]
		}
	}
	if bad != nil {
		return nil, bad
	}
	if err := m.Verify(); err != nil {
		return nil, err
	}
	dense := denseIndex(m.verts.Keys())
	if err := m.checkFans(func(v VertID) int { return dense[v] }); err != nil {
		return nil, err
	}

	return m, nil
}
