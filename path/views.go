// SPDX-License-Identifier: MIT

package path

import "github.com/maximsnoep/douconel/mesh"

// File: views.go
// Role: neighbor functions projecting a mesh onto a graph.
//
// Every view walks the mesh through its panicking accessors, so it must only
// be used on a verified mesh. Neighbor order follows the mesh's traversal
// order and is therefore deterministic.

// VertexView steps from a vertex to its adjacent vertices.
func VertexView[V, E, F any](m *mesh.Mesh[V, E, F]) NeighborFunc[mesh.VertID] {
	return m.VertNeighbors
}

// EdgeView steps from a half-edge to every half-edge leaving its head,
// including its own twin.
func EdgeView[V, E, F any](m *mesh.Mesh[V, E, F]) NeighborFunc[mesh.EdgeID] {
	return func(e mesh.EdgeID) []mesh.EdgeID {
		return m.Outgoing(m.Root(m.Twin(e)))
	}
}

// EdgePairView crosses the edge cur of a routing state (prev, cur): the
// successors are (twin(cur), x) for every other boundary edge x of the face
// on the far side. Leaving through twin(cur) itself would be a U-turn and is
// excluded.
func EdgePairView[V, E, F any](m *mesh.Mesh[V, E, F]) NeighborFunc[mesh.EdgePair] {
	return func(p mesh.EdgePair) []mesh.EdgePair {
		t := m.Twin(p.Cur)
		edges := m.FaceEdges(m.Face(t))
		out := make([]mesh.EdgePair, 0, len(edges)-1)
		for _, x := range edges {
			if x == t {
				continue
			}
			out = append(out, mesh.EdgePair{Prev: t, Cur: x})
		}

		return out
	}
}

// FaceView steps from a face to the faces sharing an edge with it (the dual graph).
func FaceView[V, E, F any](m *mesh.Mesh[V, E, F]) NeighborFunc[mesh.FaceID] {
	return m.FaceNeighbors
}

// FilteredVertexView is VertexView with the given vertices and half-edges
// removed. A skipped vertex has no successors and is never a successor; a
// skipped half-edge removes only its own direction.
func FilteredVertexView[V, E, F any](m *mesh.Mesh[V, E, F], skipVerts []mesh.VertID, skipEdges []mesh.EdgeID) NeighborFunc[mesh.VertID] {
	verts := make(map[mesh.VertID]struct{}, len(skipVerts))
	for _, v := range skipVerts {
		verts[v] = struct{}{}
	}
	edges := make(map[mesh.EdgeID]struct{}, len(skipEdges))
	for _, e := range skipEdges {
		edges[e] = struct{}{}
	}

	return func(v mesh.VertID) []mesh.VertID {
		if _, skip := verts[v]; skip {
			return nil
		}
		var out []mesh.VertID
		for _, e := range m.Outgoing(v) {
			if _, skip := edges[e]; skip {
				continue
			}
			w := m.Root(m.Twin(e))
			if _, skip := verts[w]; skip {
				continue
			}
			out = append(out, w)
		}

		return out
	}
}

// Seeds returns the routing states that start on half-edge e: (e, x) for
// every other boundary edge x of e's face. Use them as sources in an
// EdgePairView search.
func Seeds[V, E, F any](m *mesh.Mesh[V, E, F], e mesh.EdgeID) []mesh.EdgePair {
	edges := m.FaceEdges(m.Face(e))
	out := make([]mesh.EdgePair, 0, len(edges)-1)
	for _, x := range edges {
		if x != e {
			out = append(out, mesh.EdgePair{Prev: e, Cur: x})
		}
	}

	return out
}

// FilterView drops every step from → to of nb for which keep returns false.
// Combined with EdgePairView and an alignment predicate it yields a
// direction-filtered routing graph.
func FilterView[N comparable](nb NeighborFunc[N], keep func(from, to N) bool) NeighborFunc[N] {
	return func(n N) []N {
		var out []N
		for _, m := range nb(n) {
			if keep(n, m) {
				out = append(out, m)
			}
		}

		return out
	}
}
