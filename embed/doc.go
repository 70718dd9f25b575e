// SPDX-License-Identifier: MIT

// Package embed places a mesh in 3D space: vertex positions, face normals and
// the geometric quantities and routing weights derived from them.
//
// Capabilities are small interfaces implemented by payload types:
//
//	HasPosition  – Position() r3.Vector   (vertices)
//	HasNormal    – Normal() r3.Vector     (faces)
//	HasColor     – Color() color.RGBA     (faces, for export)
//
// Vertex and Face are ready-made payloads implementing them; any caller type
// with the same methods works.
//
// Views:
//
//   - Space[V, E, F] wraps a mesh whose vertices have positions and answers
//     Vector, Length, Midpoint, Distance, Angle, Defect, Centroid, VectorArea,
//     ComputedNormal and IsPlanar.
//   - Surface[V, E, F] additionally needs face normals and answers Normal,
//     VertNormal, EdgeNormal and EdgeNormalOffset.
//
// Both embed *mesh.Mesh, so topology queries stay available on the view.
// Geometric queries use the unchecked mesh tier and panic on dangling handles.
//
// Weight factories return pure functions over pairs of mesh elements, ready
// for path.NewGraph:
//
//	Euclidean()                           – vertex to vertex
//	DualEuclidean()                       – face centroid to face centroid
//	AngleEdges(slack)                     – turning angle between half-edges
//	AngleEdgePairs(slack)                 – turning angle between edge pairs
//	AngleEdgePairsAligned(a, b, axis)     – turning plus alignment penalty
//
// Angles are in radians, raised to the integer slack exponent.
//
// Build combines mesh construction with position and normal application:
//
//	m, maps, err := embed.Build[embed.Vertex, mesh.Empty, embed.Face](faces, positions, nil)
//
// A nil normals slice means "compute them": each face normal is the normalized
// sum of cross(vector(next(e)), vector(twin(e))) over its boundary, which points
// outward for faces wound counter-clockwise when seen from outside.
package embed
