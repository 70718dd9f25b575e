// SPDX-License-Identifier: MIT
// Package builder_test checks every generator against mesh construction:
// counts, closure, radius and option handling.

package builder_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/maximsnoep/douconel/builder"
	"github.com/maximsnoep/douconel/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func mustBuild(t *testing.T, s builder.Shape) *mesh.Mesh[mesh.Empty, mesh.Empty, mesh.Empty] {
	t.Helper()
	m, maps, err := mesh.Build[mesh.Empty, mesh.Empty, mesh.Empty](s.Faces)
	require.NoError(t, err)
	require.NoError(t, m.Verify())
	// Dense indices: every position is used.
	require.Equal(t, len(s.Positions), maps.Verts.Len())

	return m
}

func TestSolid_Counts(t *testing.T) {
	tests := []struct {
		name    builder.PlatonicName
		v, f, d int // vertices, faces, corners per face
	}{
		{builder.Tetrahedron, 4, 4, 3},
		{builder.Cube, 8, 6, 4},
		{builder.Octahedron, 6, 8, 3},
		{builder.Dodecahedron, 20, 12, 5},
		{builder.Icosahedron, 12, 20, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name.String(), func(t *testing.T) {
			s, err := builder.Solid(tc.name)
			require.NoError(t, err)
			m := mustBuild(t, s)

			assert.Equal(t, tc.v, m.VertCount())
			assert.Equal(t, tc.f, m.FaceCount())
			assert.Equal(t, tc.f*tc.d, m.EdgeCount())
			for _, f := range m.FaceIDs() {
				assert.Equal(t, tc.d, m.FaceDegree(f))
			}
		})
	}
}

func TestSolid_Radius(t *testing.T) {
	center := r3.Vector{X: 1, Y: -2, Z: 3}
	for _, name := range []builder.PlatonicName{
		builder.Tetrahedron, builder.Cube, builder.Octahedron, builder.Dodecahedron, builder.Icosahedron,
	} {
		t.Run(name.String(), func(t *testing.T) {
			s, err := builder.Solid(name, builder.WithRadius(2.5), builder.WithCenter(center))
			require.NoError(t, err)
			for i, p := range s.Positions {
				assert.InDelta(t, 2.5, p.Distance(center), eps, "vertex %d", i)
			}
		})
	}
}

func TestSolid_Unknown(t *testing.T) {
	_, err := builder.Solid(builder.PlatonicName(42))
	require.ErrorIs(t, err, builder.ErrUnknownSolid)
	assert.Equal(t, "Unknown", builder.PlatonicName(42).String())
}

func TestSolid_ReturnsCopies(t *testing.T) {
	a, err := builder.Solid(builder.Cube)
	require.NoError(t, err)
	a.Faces[0][0] = 99

	b, err := builder.Solid(builder.Cube)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Faces[0][0])
}

func TestIcosphere_Counts(t *testing.T) {
	for n := 0; n <= 3; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			s, err := builder.Icosphere(n, builder.WithRadius(3))
			require.NoError(t, err)
			m := mustBuild(t, s)

			pow := int(math.Pow(4, float64(n)))
			assert.Equal(t, 20*pow, m.FaceCount())
			assert.Equal(t, 10*pow+2, m.VertCount())
			for _, p := range s.Positions {
				assert.InDelta(t, 3, p.Norm(), eps)
			}
		})
	}

	_, err := builder.Icosphere(-1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGrid(t *testing.T) {
	s, err := builder.Grid(2, 3, builder.WithRadius(0.5))
	require.NoError(t, err)
	assert.Len(t, s.Faces, 6)
	assert.Len(t, s.Positions, 12)
	assert.Equal(t, []int{0, 1, 5, 4}, s.Faces[0])
	assert.Equal(t, r3.Vector{X: 1.5, Y: 1}, s.Positions[11])

	_, _, err = mesh.Build[mesh.Empty, mesh.Empty, mesh.Empty](s.Faces)
	assert.ErrorIs(t, err, mesh.ErrNonWatertight)

	_, err = builder.Grid(0, 3)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRadius(0) })
	assert.Panics(t, func() { builder.WithRadius(-1) })
	assert.Panics(t, func() { builder.WithRadius(math.NaN()) })
	assert.Panics(t, func() { builder.WithRadius(math.Inf(1)) })
	assert.Panics(t, func() { builder.WithCenter(r3.Vector{X: math.NaN()}) })
	assert.NotPanics(t, func() { builder.WithCenter(r3.Vector{}) })
}
