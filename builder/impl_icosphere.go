// SPDX-License-Identifier: MIT
// Package: douconel/builder
//
// impl_icosphere.go: Icosphere(n, opts...) generator.
//
// Canonical model:
//   • Start from the unit icosahedron dataset.
//   • Each subdivision splits triangle (a,b,c) into (a,ab,ca), (b,bc,ab),
//     (c,ca,bc) and (ab,bc,ca); midpoints are projected back on the sphere.
//   • A midpoint is shared by both triangles of its edge (keyed by the
//     unordered index pair), so the result stays watertight.
//
// Counts: F = 20·4ⁿ, V = 10·4ⁿ + 2.

package builder

import (
	"fmt"

	"github.com/golang/geo/r3"
)

const (
	methodIcosphere = "Icosphere"
	minSubdivisions = 0
)

type chord struct{ u, v int }

func newChord(a, b int) chord {
	if a > b {
		a, b = b, a
	}

	return chord{u: a, v: b}
}

// Icosphere returns an icosahedron subdivided n times.
func Icosphere(n int, opts ...Option) (Shape, error) {
	if n < minSubdivisions {
		return Shape{}, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodIcosphere, n, minSubdivisions, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	base := platonicData[Icosahedron]
	positions := append([]r3.Vector(nil), base.positions...)
	faces := copyFaces(base.faces)

	for level := 0; level < n; level++ {
		mid := make(map[chord]int, len(faces)*3/2)
		midpoint := func(a, b int) int {
			key := newChord(a, b)
			if idx, ok := mid[key]; ok {
				return idx
			}
			positions = append(positions, positions[a].Add(positions[b]).Normalize())
			mid[key] = len(positions) - 1

			return mid[key]
		}

		next := make([][]int, 0, 4*len(faces))
		for _, f := range faces {
			a, b, c := f[0], f[1], f[2]
			ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)
			next = append(next,
				[]int{a, ab, ca},
				[]int{b, bc, ab},
				[]int{c, ca, bc},
				[]int{ab, bc, ca},
			)
		}
		faces = next
	}

	for i, p := range positions {
		positions[i] = p.Mul(cfg.radius).Add(cfg.center)
	}

	return Shape{Faces: faces, Positions: positions}, nil
}
