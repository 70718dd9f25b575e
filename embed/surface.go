// SPDX-License-Identifier: MIT

package embed

import (
	"image/color"

	"github.com/golang/geo/r3"
	"github.com/maximsnoep/douconel/mesh"
)

// Surface is a Space whose faces also carry normals.
type Surface[V HasPosition, E any, F HasNormal] struct {
	Space[V, E, F]
}

// OnSurface wraps m as a Surface.
func OnSurface[V HasPosition, E any, F HasNormal](m *mesh.Mesh[V, E, F]) Surface[V, E, F] {
	return Surface[V, E, F]{Space: On(m)}
}

// Normal returns the stored normal of f.
func (s Surface[V, E, F]) Normal(f mesh.FaceID) r3.Vector {
	d, err := s.FaceData(f)
	if err != nil {
		panic(err)
	}

	return d.Normal()
}

// VertNormal returns the normalized sum of the normals of the faces around v.
func (s Surface[V, E, F]) VertNormal(v mesh.VertID) r3.Vector {
	var n r3.Vector
	for _, f := range s.Star(v) {
		n = n.Add(s.Normal(f))
	}

	return n.Normalize()
}

// EdgeNormal returns the even blend of the normals on both sides of e.
func (s Surface[V, E, F]) EdgeNormal(e mesh.EdgeID) r3.Vector { return s.EdgeNormalOffset(e, 0.5) }

// EdgeNormalOffset blends the normal of face(e), weighted t, with the normal
// of face(twin(e)), weighted 1-t, and normalizes the result.
func (s Surface[V, E, F]) EdgeNormalOffset(e mesh.EdgeID, t float64) r3.Vector {
	fs := s.EdgeFaces(e)
	return s.Normal(fs[0]).Mul(t).Add(s.Normal(fs[1]).Mul(1 - t)).Normalize()
}

// ColorOf returns the display color of f.
func ColorOf[V, E any, F HasColor](m *mesh.Mesh[V, E, F], f mesh.FaceID) (color.RGBA, error) {
	d, err := m.FaceData(f)
	if err != nil {
		return color.RGBA{}, err
	}

	return d.Color(), nil
}
