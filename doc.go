// SPDX-License-Identifier: MIT

// Package douconel is a half-edge mesh kernel for polygonal surfaces in 3D.
//
// The module is organized as a stack of small packages, leaf to root:
//
//	arena/   – generational handle storage (Handle[T], Arena[T, D])
//	mesh/    – topology store, construction from face lists, three-pass
//	           verification, traversal, snapshots
//	embed/   – position/normal/color payloads, geometric queries (length,
//	           angle, centroid, angular defect) and weight factories
//	path/    – neighbor views of a mesh and Dijkstra shortest paths / cycles
//	builder/ – deterministic face lists: Platonic solids, icospheres, grids
//
// A typical flow:
//
//	shape, _ := builder.Icosphere(2)
//	m, maps, err := embed.Build[embed.Vertex, mesh.Empty, embed.Face](shape.Faces, shape.Positions, nil)
//	if err != nil {
//	    // *mesh.StructuralError: non-manifold, open or degenerate input
//	}
//	g := path.NewGraph(path.VertexView(m), embed.On(m).Euclidean())
//	a, _ := maps.Verts.Handle(0)
//	b, _ := maps.Verts.Handle(11)
//	p, ok, err := path.ShortestPath(g, a, b, path.NewCache[mesh.VertID]())
//
// Meshes are safe for concurrent reads once built; mutation needs exclusive
// access. There is no I/O: parsing and rendering live outside this module.
package douconel
