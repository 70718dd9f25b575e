// SPDX-License-Identifier: MIT

// Package builder generates deterministic polygon soups for tests, demos and
// benchmarks: the five Platonic solids, subdivided icospheres and open grids.
//
// Every generator returns a Shape: a face list in the form mesh.Build
// consumes, plus one position per vertex index. Closed shapes are wound
// counter-clockwise when seen from outside, so computed face normals point
// outward.
//
//	s, err := builder.Solid(builder.Icosahedron, builder.WithRadius(2))
//	m, maps, err := embed.Build[embed.Vertex, mesh.Empty, embed.Face](s.Faces, s.Positions, nil)
//
// Generators:
//
//	Solid(name, opts...)        – Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron
//	Icosphere(n, opts...)       – icosahedron subdivided n times, projected on the sphere
//	Grid(rows, cols, opts...)   – flat open patch of rows×cols quads (not watertight)
//
// Options:
//
//	WithRadius(r)   – circumradius of solids and spheres, cell size of grids (default 1)
//	WithCenter(c)   – translation applied to every position (default origin)
//
// Option constructors panic on meaningless values; generators return only
// sentinel errors (ErrTooFewVertices, ErrUnknownSolid, ErrConstructFailed).
//
// Determinism: vertex indices are dense and stable for a given input;
// Dodecahedron is derived as the dual of Icosahedron, so its vertex i is the
// centre of icosahedron face i.
package builder
