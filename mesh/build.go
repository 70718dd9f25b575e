// SPDX-License-Identifier: MIT

package mesh

import "fmt"

// directed is an edge of the input, as a pair of caller vertex indices.
type directed struct{ from, to int }

// Build constructs a verified mesh from a list of faces, each a cyclic
// sequence of caller vertex indices. Indices may be arbitrary and
// non-contiguous.
//
// Implementation:
//   - Stage 1: validate faces (length, repeated indices, max degree).
//   - Stage 2: one vertex per distinct index, in first-appearance order.
//   - Stage 3: per face in input order, one face and one half-edge per
//     boundary edge, with root, face and a circular next chain; the first
//     half-edge is the face representative, the first half-edge leaving a
//     vertex is the vertex representative.
//   - Stage 4: link twins over directed index pairs.
//   - Stage 5: reject vertices whose incident faces form several fans,
//     then run Verify.
//
// Returns:
//   - the mesh and its index maps, or a *StructuralError; never a partial mesh.
//
// Complexity:
//   - Time O(N), Space O(N) where N is the total number of face corners
//     (expected, map-based twin resolution).
func Build[V, E, F any](faces [][]int, opts ...Option) (*Mesh[V, E, F], Maps, error) {
	cfg := resolve(opts)

	// Stage 1: face validation before anything is allocated.
	corners := 0
	for fi, face := range faces {
		if err := validateFace(fi, face, cfg.maxFaceDegree); err != nil {
			return nil, Maps{}, err
		}
		corners += len(face)
	}

	// Stage 2: vertices.
	m := newMesh[V, E, F](cfg, 0, corners, len(faces))
	vmap := newIndexMap[VertID](0)
	for _, face := range faces {
		for _, idx := range face {
			if _, ok := vmap.Handle(idx); !ok {
				vmap.put(idx, m.verts.Insert(vertRecord[V]{}))
			}
		}
	}

	// Stage 3: faces and half-edges.
	fmap := newIndexMap[FaceID](len(faces))
	claimed := make(map[directed]EdgeID, corners)
	order := make([]EdgeID, 0, corners)
	pairs := make([]directed, 0, corners)
	owner := make([]int, 0, corners)

	for fi, face := range faces {
		f := m.faces.Insert(faceRecord[F]{})
		fmap.put(fi, f)

		ring := make([]EdgeID, len(face))
		for i, idx := range face {
			v, _ := vmap.Handle(idx)
			ring[i] = m.edges.Insert(edgeRecord[E]{root: v, face: f})
		}

		for i, e := range ring {
			r, _ := m.edges.Ptr(e)
			r.next = ring[(i+1)%len(ring)]

			vr, _ := m.verts.Ptr(r.root)
			if vr.rep.IsNil() {
				vr.rep = e
			}

			d := directed{from: face[i], to: face[(i+1)%len(face)]}
			if prev, dup := claimed[d]; dup {
				return nil, Maps{}, &StructuralError{
					Kind:    ErrNonManifold,
					Face:    fi,
					Indices: []int{d.from, d.to},
					Edges:   []EdgeID{prev, e},
				}
			}
			claimed[d] = e
			order = append(order, e)
			pairs = append(pairs, d)
			owner = append(owner, fi)
		}

		fr, _ := m.faces.Ptr(f)
		fr.rep = ring[0]
	}

	// Stage 4: twins, in creation order so the reported edge is deterministic.
	for i, e := range order {
		d := pairs[i]
		t, ok := claimed[directed{from: d.to, to: d.from}]
		if !ok {
			return nil, Maps{}, &StructuralError{
				Kind:    ErrNonWatertight,
				Face:    owner[i],
				Indices: []int{d.from, d.to},
				Edges:   []EdgeID{e},
			}
		}
		r, _ := m.edges.Ptr(e)
		r.twin = t
	}

	// Stage 5: one fan per vertex, then full verification.
	if err := m.checkFans(func(v VertID) int {
		idx, _ := vmap.Index(v)
		return idx
	}); err != nil {
		return nil, Maps{}, err
	}
	if err := m.Verify(); err != nil {
		return nil, Maps{}, fmt.Errorf("mesh: build: %w", err)
	}

	return m, Maps{Verts: vmap, Faces: fmap}, nil
}

// checkFans rejects vertices whose outgoing walk misses some of the
// half-edges rooted at them: several fans sharing one vertex. index names
// the vertex in the returned *StructuralError.
func (m *Mesh[V, E, F]) checkFans(index func(VertID) int) error {
	rooted := make(map[VertID]int, m.verts.Len())
	for _, e := range m.edges.Keys() {
		r, _ := m.edges.Ptr(e)
		rooted[r.root]++
	}
	for _, v := range m.verts.Keys() {
		out, err := m.WalkOutgoing(v)
		if err != nil {
			return err
		}
		if len(out) != rooted[v] {
			return &StructuralError{
				Kind:    ErrNonManifoldVertex,
				Face:    -1,
				Indices: []int{index(v)},
				Edges:   out[:1],
			}
		}
	}

	return nil
}

func validateFace(fi int, face []int, maxDegree int) error {
	if len(face) < 3 {
		return &StructuralError{Kind: ErrDegenerateFace, Face: fi, Indices: append([]int(nil), face...)}
	}
	if len(face) > maxDegree {
		return &StructuralError{Kind: ErrFaceDegreeExceeded, Face: fi}
	}
	seen := make(map[int]struct{}, len(face))
	for _, idx := range face {
		if _, dup := seen[idx]; dup {
			return &StructuralError{Kind: ErrDegenerateFace, Face: fi, Indices: append([]int(nil), face...)}
		}
		seen[idx] = struct{}{}
	}

	return nil
}

// FaceIndices reads every face back as a list of caller vertex indices,
// in face allocation order. Feeding the result to Build yields a mesh
// isomorphic to m.
func (m *Mesh[V, E, F]) FaceIndices(vm *IndexMap[VertID]) ([][]int, error) {
	if vm == nil {
		return nil, ErrNilIndexMap
	}
	out := make([][]int, 0, m.FaceCount())
	for _, f := range m.faces.Keys() {
		ring, err := m.WalkFace(f)
		if err != nil {
			return nil, err
		}
		face := make([]int, len(ring))
		for i, e := range ring {
			v, err := m.LookupRoot(e)
			if err != nil {
				return nil, err
			}
			idx, ok := vm.Index(v)
			if !ok {
				return nil, fmt.Errorf("%w: %s not in index map", ErrDanglingHandle, vertName(v))
			}
			face[i] = idx
		}
		out = append(out, face)
	}

	return out, nil
}
