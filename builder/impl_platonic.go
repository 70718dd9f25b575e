// SPDX-License-Identifier: MIT
// Package: douconel/builder
//
// impl_platonic.go: Solid(name, opts...) generator.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     anything else → ErrUnknownSolid.
//   • Positions are recentred on the origin, scaled to radius, then moved to center.
//   • Dodecahedron is the dual of Icosahedron: one vertex per icosahedron face
//     (at its centroid), one face per icosahedron vertex (its star).
//
// Complexity: O(V+F) for the selected solid (V ≤ 20, F ≤ 20).

package builder

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/maximsnoep/douconel/mesh"
)

const (
	methodSolid = "Solid"
	methodDual  = "dual"
)

// Solid returns the named Platonic solid.
func Solid(name PlatonicName, opts ...Option) (Shape, error) {
	cfg := newConfig(opts...)

	if name == Dodecahedron {
		raw, faces, err := dual(platonicData[Icosahedron])
		if err != nil {
			return Shape{}, fmt.Errorf("%s(%s): %w", methodSolid, name, err)
		}

		return Shape{Faces: faces, Positions: place(raw, cfg)}, nil
	}

	ds, ok := platonicData[name]
	if !ok {
		return Shape{}, fmt.Errorf("%s(%d): %w", methodSolid, int(name), ErrUnknownSolid)
	}

	return Shape{Faces: copyFaces(ds.faces), Positions: place(ds.positions, cfg)}, nil
}

// dual builds the polar dual of a closed dataset through the mesh kernel.
//
// Stars rotate clockwise seen from outside, so each star is reversed to keep
// the dual wound counter-clockwise.
func dual(ds dataset) ([]r3.Vector, [][]int, error) {
	m, maps, err := mesh.Build[mesh.Empty, mesh.Empty, mesh.Empty](ds.faces)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %v: %w", methodDual, err, ErrConstructFailed)
	}

	positions := make([]r3.Vector, len(ds.faces))
	for i, f := range ds.faces {
		var c r3.Vector
		for _, idx := range f {
			c = c.Add(ds.positions[idx])
		}
		positions[i] = c.Mul(1 / float64(len(f)))
	}

	faces := make([][]int, 0, len(ds.positions))
	for idx := range ds.positions {
		v, ok := maps.Verts.Handle(idx)
		if !ok {
			return nil, nil, fmt.Errorf("%s: vertex %d unused: %w", methodDual, idx, ErrConstructFailed)
		}
		star := m.Star(v)
		face := make([]int, len(star))
		for i, f := range star {
			fi, _ := maps.Faces.Index(f)
			face[len(star)-1-i] = fi
		}
		faces = append(faces, face)
	}

	return positions, faces, nil
}
