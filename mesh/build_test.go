// SPDX-License-Identifier: MIT

package mesh_test

import (
	"errors"
	"testing"

	"github.com/maximsnoep/douconel/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Counts(t *testing.T) {
	cases := []struct {
		name         string
		faces        [][]int
		v, e, f, deg int
	}{
		{"tetrahedron", tetraFaces, 4, 12, 4, 3},
		{"cube", cubeFaces, 8, 24, 6, 4},
		{"octahedron", octaFaces, 6, 24, 8, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, maps := build(t, tc.faces)
			assert.Equal(t, tc.v, m.VertCount())
			assert.Equal(t, tc.e, m.EdgeCount())
			assert.Equal(t, tc.f, m.FaceCount())
			assert.Equal(t, tc.v, maps.Verts.Len())
			assert.Equal(t, tc.f, maps.Faces.Len())
			for _, f := range m.FaceIDs() {
				assert.Len(t, m.Corners(f), tc.deg)
			}
			// Euler characteristic of a sphere.
			assert.Equal(t, 2, m.VertCount()-m.EdgeCount()/2+m.FaceCount())
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	m, maps := build(t, nil)
	assert.Zero(t, m.VertCount())
	assert.Zero(t, m.EdgeCount())
	assert.Zero(t, m.FaceCount())
	assert.Zero(t, maps.Verts.Len())
}

func TestBuild_IndexMaps(t *testing.T) {
	faces := shift(tetraFaces, 100)
	m, maps := build(t, faces)

	// First-appearance order: 100, 102, 101, 103.
	assert.Equal(t, []int{100, 102, 101, 103}, maps.Verts.Indices())
	assert.Equal(t, []int{0, 1, 2, 3}, maps.Faces.Indices())

	for _, idx := range maps.Verts.Indices() {
		v := vert(t, maps, idx)
		back, ok := maps.Verts.Index(v)
		require.True(t, ok)
		assert.Equal(t, idx, back)
		assert.True(t, m.HasVert(v))
	}
	_, ok := maps.Verts.Handle(0)
	assert.False(t, ok)
}

func TestBuild_Representatives(t *testing.T) {
	m, maps := build(t, cubeFaces)
	for i, input := range cubeFaces {
		f := face(t, maps, i)
		// The face representative is the half-edge of the first corner.
		assert.Equal(t, vert(t, maps, input[0]), m.Root(m.FaceRep(f)))
	}
	for _, v := range m.VertIDs() {
		assert.Equal(t, v, m.Root(m.VertRep(v)))
	}
}

func TestBuild_Disconnected(t *testing.T) {
	faces := append(append([][]int{}, tetraFaces...), shift(tetraFaces, 4)...)
	m, _ := build(t, faces)
	assert.Equal(t, 8, m.VertCount())
	assert.Equal(t, 24, m.EdgeCount())
	assert.Equal(t, 8, m.FaceCount())
}

func TestBuild_NonManifold(t *testing.T) {
	_, _, err := mesh.Build[mesh.Empty, mesh.Empty, mesh.Empty]([][]int{{0, 1, 2}, {0, 1, 3}})
	require.ErrorIs(t, err, mesh.ErrNonManifold)

	var se *mesh.StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Face)
	assert.Equal(t, []int{0, 1}, se.Indices)
	require.Len(t, se.Edges, 2)
	assert.NotEqual(t, se.Edges[0], se.Edges[1])
}

func TestBuild_NonWatertight(t *testing.T) {
	_, _, err := mesh.Build[mesh.Empty, mesh.Empty, mesh.Empty]([][]int{{0, 1, 2}})
	require.ErrorIs(t, err, mesh.ErrNonWatertight)

	var se *mesh.StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 0, se.Face)
	assert.Equal(t, []int{0, 1}, se.Indices)
	assert.Len(t, se.Edges, 1)

	// A cube with one face missing is open along that face.
	_, _, err = mesh.Build[mesh.Empty, mesh.Empty, mesh.Empty](cubeFaces[1:])
	assert.ErrorIs(t, err, mesh.ErrNonWatertight)
}

func TestBuild_NonManifoldVertex(t *testing.T) {
	// Two tetrahedra touching at index 3 only.
	faces := append(append([][]int{}, tetraFaces...), shift(tetraFaces, 3)...)
	_, _, err := mesh.Build[mesh.Empty, mesh.Empty, mesh.Empty](faces)
	require.ErrorIs(t, err, mesh.ErrNonManifoldVertex)

	var se *mesh.StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, -1, se.Face)
	assert.Equal(t, []int{3}, se.Indices)
}

func TestBuild_DegenerateFace(t *testing.T) {
	for name, faces := range map[string][][]int{
		"too short": {{0, 1}},
		"repeated":  {{0, 1, 1}},
		"empty":     {{}},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := mesh.Build[mesh.Empty, mesh.Empty, mesh.Empty](faces)
			require.ErrorIs(t, err, mesh.ErrDegenerateFace)
			var se *mesh.StructuralError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, 0, se.Face)
		})
	}
}

func TestBuild_FaceDegreeExceeded(t *testing.T) {
	_, _, err := mesh.Build[mesh.Empty, mesh.Empty, mesh.Empty](cubeFaces, mesh.WithMaxFaceDegree(3))
	require.ErrorIs(t, err, mesh.ErrFaceDegreeExceeded)

	m, _ := build(t, cubeFaces, mesh.WithMaxFaceDegree(4))
	assert.Equal(t, 4, m.MaxFaceDegree())
}

func TestWithMaxFaceDegree_Panics(t *testing.T) {
	assert.Panics(t, func() { mesh.WithMaxFaceDegree(2) })
	assert.NotPanics(t, func() { mesh.WithMaxFaceDegree(3) })
}

func TestStructuralError_Message(t *testing.T) {
	_, _, err := mesh.Build[mesh.Empty, mesh.Empty, mesh.Empty]([][]int{{0, 1, 2}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mesh: not watertight")
	assert.Contains(t, err.Error(), "face 0")
	assert.Contains(t, err.Error(), "indices [0 1]")
}

func TestFaceIndices_RoundTrip(t *testing.T) {
	for name, faces := range map[string][][]int{
		"tetrahedron": tetraFaces,
		"cube":        cubeFaces,
		"octahedron":  shift(octaFaces, 7),
	} {
		t.Run(name, func(t *testing.T) {
			m, maps := build(t, faces)
			got, err := m.FaceIndices(maps.Verts)
			require.NoError(t, err)
			assert.Equal(t, faces, got)

			again, againMaps := build(t, got)
			assert.Equal(t, m.VertCount(), again.VertCount())
			assert.Equal(t, m.EdgeCount(), again.EdgeCount())
			assert.Equal(t, m.FaceCount(), again.FaceCount())
			assert.Equal(t, maps.Verts.Indices(), againMaps.Verts.Indices())
		})
	}
}

func TestFaceIndices_NilMap(t *testing.T) {
	m, _ := build(t, tetraFaces)
	_, err := m.FaceIndices(nil)
	assert.ErrorIs(t, err, mesh.ErrNilIndexMap)
}

func TestPayloads(t *testing.T) {
	m, maps, err := mesh.Build[int, float64, string](tetraFaces)
	require.NoError(t, err)

	v := vert(t, maps, 2)
	require.NoError(t, m.UpdateVert(v, func(d *int) { *d = 42 }))
	got, err := m.VertData(v)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	e := m.VertRep(v)
	require.NoError(t, m.UpdateEdge(e, func(d *float64) { *d += 1.5 }))
	w, err := m.EdgeData(e)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, w, 1e-12)

	f := face(t, maps, 0)
	require.NoError(t, m.UpdateFace(f, func(d *string) { *d = "bottom" }))
	s, err := m.FaceData(f)
	require.NoError(t, err)
	assert.Equal(t, "bottom", s)

	_, err = m.VertData(mesh.VertID{})
	assert.ErrorIs(t, err, mesh.ErrDanglingHandle)
	assert.ErrorIs(t, m.UpdateFace(mesh.FaceID{}, func(*string) {}), mesh.ErrDanglingHandle)

	require.NoError(t, m.Verify())
}
