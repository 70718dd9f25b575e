// SPDX-License-Identifier: MIT
// Package: douconel/builder
//
// variants_platonic.go: canonical datasets for the Platonic solids.
//
// Design:
//   • Single source of truth for raw positions and face lists.
//   • Faces are wound counter-clockwise seen from outside.
//   • Raw positions are unscaled; Solid recentres and scales them.
//   • Dodecahedron has no dataset: it is derived as the dual of Icosahedron.
//
// Never mutate these slices; Solid hands out copies.

package builder

import "github.com/golang/geo/r3"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  F=4 triangles
	Cube                             // V=8,  F=6 quads
	Octahedron                       // V=6,  F=8 triangles
	Dodecahedron                     // V=20, F=12 pentagons
	Icosahedron                      // V=12, F=20 triangles
)

// String returns the solid name.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

type dataset struct {
	positions []r3.Vector
	faces     [][]int
}

// Icosahedron vertex coordinates on the unit sphere.
const (
	icoX = .525731112119133606
	icoZ = .850650808352039932
)

var platonicData = map[PlatonicName]dataset{
	// Alternate cube corners.
	Tetrahedron: {
		positions: []r3.Vector{{X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}},
		faces:     [][]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}},
	},

	// Bottom 0-1-2-3 at z=0, top 4-5-6-7 at z=1.
	Cube: {
		positions: []r3.Vector{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		},
		faces: [][]int{
			{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
			{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
		},
	},

	// Axis points: ±x, ±y, ±z.
	Octahedron: {
		positions: []r3.Vector{
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		},
		faces: [][]int{
			{0, 2, 4}, {1, 4, 2}, {0, 4, 3}, {1, 3, 4},
			{0, 5, 2}, {1, 2, 5}, {0, 3, 5}, {1, 5, 3},
		},
	},

	// Three orthogonal golden rectangles.
	Icosahedron: {
		positions: []r3.Vector{
			{X: -icoX, Z: icoZ}, {X: icoX, Z: icoZ}, {X: -icoX, Z: -icoZ}, {X: icoX, Z: -icoZ},
			{Y: icoZ, Z: icoX}, {Y: icoZ, Z: -icoX}, {Y: -icoZ, Z: icoX}, {Y: -icoZ, Z: -icoX},
			{X: icoZ, Y: icoX}, {X: -icoZ, Y: icoX}, {X: icoZ, Y: -icoX}, {X: -icoZ, Y: -icoX},
		},
		faces: [][]int{
			{0, 1, 4}, {0, 4, 9}, {9, 4, 5}, {4, 8, 5}, {4, 1, 8},
			{8, 1, 10}, {8, 10, 3}, {5, 8, 3}, {5, 3, 2}, {2, 3, 7},
			{7, 3, 10}, {7, 10, 6}, {7, 6, 11}, {11, 6, 0}, {0, 6, 1},
			{6, 10, 1}, {9, 11, 0}, {9, 2, 11}, {9, 5, 2}, {7, 11, 2},
		},
	},
}
