// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/maximsnoep/douconel/mesh"
)

// Build constructs a mesh from faces and applies positions and normals
// through the returned index maps.
//
// positions[i] belongs to caller vertex index i; every index in
// [0, len(positions)) must be used by some face and the slice must cover
// every vertex. normals[i] belongs to input face i; a nil slice computes
// normals from the positions with Space.ComputedNormal.
//
// Errors:
//   - any mesh.Build error, unchanged.
//   - ErrPayloadLength if a slice does not match the vertex or face count.
//   - ErrUnmappedIndex if a position is given for an index no face uses.
func Build[V HasPosition, E, F any,
	PV interface {
		*V
		SetPosition(r3.Vector)
	},
	PF interface {
		*F
		SetNormal(r3.Vector)
	},
](faces [][]int, positions, normals []r3.Vector, opts ...mesh.Option) (*mesh.Mesh[V, E, F], mesh.Maps, error) {
	m, maps, err := mesh.Build[V, E, F](faces, opts...)
	if err != nil {
		return nil, mesh.Maps{}, err
	}
	if len(positions) != maps.Verts.Len() {
		return nil, mesh.Maps{}, fmt.Errorf("%w: %d positions for %d vertices", ErrPayloadLength, len(positions), maps.Verts.Len())
	}
	if normals != nil && len(normals) != maps.Faces.Len() {
		return nil, mesh.Maps{}, fmt.Errorf("%w: %d normals for %d faces", ErrPayloadLength, len(normals), maps.Faces.Len())
	}

	for i, p := range positions {
		v, ok := maps.Verts.Handle(i)
		if !ok {
			return nil, mesh.Maps{}, fmt.Errorf("%w: %d", ErrUnmappedIndex, i)
		}
		if err := m.UpdateVert(v, func(d *V) { PV(d).SetPosition(p) }); err != nil {
			return nil, mesh.Maps{}, err
		}
	}

	space := On(m)
	for i := 0; i < maps.Faces.Len(); i++ {
		f, _ := maps.Faces.Handle(i)
		var n r3.Vector
		if normals != nil {
			n = normals[i]
		} else {
			n = space.ComputedNormal(f)
		}
		if err := m.UpdateFace(f, func(d *F) { PF(d).SetNormal(n) }); err != nil {
			return nil, mesh.Maps{}, err
		}
	}

	return m, maps, nil
}
