// SPDX-License-Identifier: MIT

package embed

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/maximsnoep/douconel/mesh"
)

// Space is a mesh whose vertices carry positions.
type Space[V HasPosition, E, F any] struct {
	*mesh.Mesh[V, E, F]
}

// On wraps m as a Space.
func On[V HasPosition, E, F any](m *mesh.Mesh[V, E, F]) Space[V, E, F] {
	return Space[V, E, F]{Mesh: m}
}

// Position returns the position of v.
func (s Space[V, E, F]) Position(v mesh.VertID) r3.Vector {
	d, err := s.VertData(v)
	if err != nil {
		panic(err)
	}

	return d.Position()
}

// Vector returns the displacement from the root of e to the root of its twin.
func (s Space[V, E, F]) Vector(e mesh.EdgeID) r3.Vector {
	a, b := s.Endpoints(e)
	return s.Position(b).Sub(s.Position(a))
}

// Length returns the length of e.
func (s Space[V, E, F]) Length(e mesh.EdgeID) float64 { return s.Vector(e).Norm() }

// Midpoint returns the middle of e.
func (s Space[V, E, F]) Midpoint(e mesh.EdgeID) r3.Vector { return s.MidpointOffset(e, 0.5) }

// MidpointOffset returns the point at fraction t along e, from its root.
func (s Space[V, E, F]) MidpointOffset(e mesh.EdgeID, t float64) r3.Vector {
	return s.Position(s.Root(e)).Add(s.Vector(e).Mul(t))
}

// Distance returns the straight-line distance between a and b.
func (s Space[V, E, F]) Distance(a, b mesh.VertID) float64 {
	return s.Position(a).Distance(s.Position(b))
}

// Angle returns the angle in radians between the vectors of a and b, in [0, π].
func (s Space[V, E, F]) Angle(a, b mesh.EdgeID) float64 {
	return s.Vector(a).Angle(s.Vector(b)).Radians()
}

// Defect returns the angular defect of v: 2π minus the sum of the corner
// angles at v. It is positive at convex vertices of a closed surface.
func (s Space[V, E, F]) Defect(v mesh.VertID) float64 {
	sum := 0.0
	for _, e := range s.Outgoing(v) {
		sum += s.Angle(e, s.Next(s.Twin(e)))
	}

	return 2*math.Pi - sum
}

// TotalDefect sums Defect over every vertex; 2π times the Euler
// characteristic for a closed surface.
func (s Space[V, E, F]) TotalDefect() float64 {
	total := 0.0
	for _, v := range s.VertIDs() {
		total += s.Defect(v)
	}

	return total
}

// Centroid returns the arithmetic mean of the corners of f. For concave or
// non-planar faces the point may lie off the face.
func (s Space[V, E, F]) Centroid(f mesh.FaceID) r3.Vector {
	corners := s.Corners(f)
	var c r3.Vector
	for _, v := range corners {
		c = c.Add(s.Position(v))
	}

	return c.Mul(1 / float64(len(corners)))
}

// VectorArea returns ½ Σ p_i × p_{i+1} over the corners of f: a vector
// normal to f whose length is its area when f is planar.
func (s Space[V, E, F]) VectorArea(f mesh.FaceID) r3.Vector {
	var a r3.Vector
	for _, e := range s.FaceEdges(f) {
		a = a.Add(s.Position(s.Root(e)).Cross(s.Position(s.Root(s.Next(e)))))
	}

	return a.Mul(0.5)
}

// Area returns the length of VectorArea.
func (s Space[V, E, F]) Area(f mesh.FaceID) float64 { return s.VectorArea(f).Norm() }

// ComputedNormal derives the unit normal of f from its corners, as the
// normalized sum of cross(vector(next(e)), vector(twin(e))). Faces wound
// counter-clockwise seen from outside get outward normals. A degenerate face
// yields the zero vector.
func (s Space[V, E, F]) ComputedNormal(f mesh.FaceID) r3.Vector {
	var n r3.Vector
	for _, e := range s.FaceEdges(f) {
		n = n.Add(s.Vector(s.Next(e)).Cross(s.Vector(s.Twin(e))))
	}

	return n.Normalize()
}

// IsPlanar reports whether every corner of f lies within eps of the plane
// through its centroid with its computed normal.
func (s Space[V, E, F]) IsPlanar(f mesh.FaceID, eps float64) bool {
	n := s.ComputedNormal(f)
	c := s.Centroid(f)
	for _, v := range s.Corners(f) {
		if math.Abs(s.Position(v).Sub(c).Dot(n)) > eps {
			return false
		}
	}

	return true
}
