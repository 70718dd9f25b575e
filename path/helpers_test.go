// SPDX-License-Identifier: MIT

package path_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/maximsnoep/douconel/embed"
	"github.com/maximsnoep/douconel/mesh"
	"github.com/maximsnoep/douconel/path"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

type solid = mesh.Mesh[embed.Vertex, mesh.Empty, embed.Face]

// Unit cube with corner 0 at the origin, faces wound outward:
// bottom, top, front (y=0), right (x=1), back (y=1), left (x=0).
var (
	cubeFaces = [][]int{
		{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	}
	cubePositions = []r3.Vector{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
)

func unitCube(t *testing.T) (*solid, mesh.Maps) {
	t.Helper()
	m, maps, err := embed.Build[embed.Vertex, mesh.Empty, embed.Face](cubeFaces, cubePositions, nil)
	require.NoError(t, err)

	return m, maps
}

func vid(t *testing.T, maps mesh.Maps, i int) mesh.VertID {
	t.Helper()
	v, ok := maps.Verts.Handle(i)
	require.True(t, ok)

	return v
}

func fid(t *testing.T, maps mesh.Maps, i int) mesh.FaceID {
	t.Helper()
	f, ok := maps.Faces.Handle(i)
	require.True(t, ok)

	return f
}

func edge(t *testing.T, m *solid, maps mesh.Maps, a, b int) mesh.EdgeID {
	t.Helper()
	ab, _, ok := m.EdgeBetweenVerts(vid(t, maps, a), vid(t, maps, b))
	require.True(t, ok, "no edge %d->%d", a, b)

	return ab
}

// diamond: 0 -> {1, 2} -> 3, every step weighs 1; 4 is isolated.
var diamondAdj = map[int][]int{0: {1, 2}, 1: {3}, 2: {3}}

func diamondNeighbors(n int) []int { return diamondAdj[n] }

func unit(_, _ int) float64 { return 1 }

func diamond() *path.Graph[int] { return path.NewGraph(diamondNeighbors, unit) }
