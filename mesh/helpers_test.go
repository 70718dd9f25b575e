// SPDX-License-Identifier: MIT
// Package mesh_test contains fixtures shared by the mesh tests.

package mesh_test

import (
	"testing"

	"github.com/maximsnoep/douconel/mesh"
	"github.com/stretchr/testify/require"
)

// Shape type used throughout: no payloads.
type plain = mesh.Mesh[mesh.Empty, mesh.Empty, mesh.Empty]

// Closed fixtures, counter-clockwise seen from outside.
var (
	tetraFaces = [][]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}}

	cubeFaces = [][]int{
		{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	}

	octaFaces = [][]int{
		{0, 2, 4}, {1, 4, 2}, {0, 4, 3}, {1, 3, 4},
		{0, 5, 2}, {1, 2, 5}, {0, 3, 5}, {1, 5, 3},
	}
)

// build constructs a payload-free mesh and runs every verification pass on it.
func build(t *testing.T, faces [][]int, opts ...mesh.Option) (*plain, mesh.Maps) {
	t.Helper()
	m, maps, err := mesh.Build[mesh.Empty, mesh.Empty, mesh.Empty](faces, opts...)
	require.NoError(t, err)
	requireValid(t, m)

	return m, maps
}

func requireValid(t *testing.T, m *plain) {
	t.Helper()
	require.NoError(t, m.VerifyProperties())
	require.NoError(t, m.VerifyReferences())
	require.NoError(t, m.VerifyInvariants())
}

// vert resolves the handle of caller index i.
func vert(t *testing.T, maps mesh.Maps, i int) mesh.VertID {
	t.Helper()
	v, ok := maps.Verts.Handle(i)
	require.True(t, ok, "index %d not mapped", i)

	return v
}

// face resolves the handle of input face position i.
func face(t *testing.T, maps mesh.Maps, i int) mesh.FaceID {
	t.Helper()
	f, ok := maps.Faces.Handle(i)
	require.True(t, ok, "face %d not mapped", i)

	return f
}

// shift offsets every index of faces by k.
func shift(faces [][]int, k int) [][]int {
	out := make([][]int, len(faces))
	for i, f := range faces {
		out[i] = make([]int, len(f))
		for j, idx := range f {
			out[i][j] = idx + k
		}
	}

	return out
}
