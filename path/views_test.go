// SPDX-License-Identifier: MIT

package path_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/maximsnoep/douconel/embed"
	"github.com/maximsnoep/douconel/mesh"
	"github.com/maximsnoep/douconel/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexView_Euclidean(t *testing.T) {
	m, maps := unitCube(t)
	g := path.NewGraph(path.VertexView(m), embed.On(m).Euclidean())
	from, to := vid(t, maps, 0), vid(t, maps, 6)

	p, ok, err := path.ShortestPath(g, from, to, path.NewCache[mesh.VertID]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 3, p.Cost, eps)
	require.Len(t, p.Nodes, 4)
	assert.Equal(t, from, p.Nodes[0])
	assert.Equal(t, to, p.Nodes[3])
	for i := 1; i < len(p.Nodes); i++ {
		_, _, adjacent := m.EdgeBetweenVerts(p.Nodes[i-1], p.Nodes[i])
		assert.True(t, adjacent, "step %d", i)
	}

	// Six equal-cost routes exist; fresh caches must agree on one.
	for i := 0; i < 5; i++ {
		again, ok, err := path.ShortestPath(g, from, to, path.NewCache[mesh.VertID]())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, p, again)
	}
}

func TestVertexView_Cycle(t *testing.T) {
	m, maps := unitCube(t)
	g := path.NewGraph(path.VertexView(m), embed.On(m).Euclidean())
	a := vid(t, maps, 0)

	p, ok, err := path.ShortestCycle(g, a, path.NewCache[mesh.VertID]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 1, p.Cost, eps)
	assert.Equal(t, []mesh.VertID{a, m.VertNeighbors(a)[0], a}, p.Nodes)
}

func TestFilteredVertexView(t *testing.T) {
	m, maps := unitCube(t)
	w := embed.On(m).Euclidean()
	v0, v6 := vid(t, maps, 0), vid(t, maps, 6)

	around := path.NewGraph(path.FilteredVertexView(m, []mesh.VertID{vid(t, maps, 1)}, nil), w)
	p, ok, err := path.ShortestPath(around, v0, v6, path.NewCache[mesh.VertID]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 3, p.Cost, eps)
	assert.NotContains(t, p.Nodes, vid(t, maps, 1))

	walled := path.NewGraph(path.FilteredVertexView(m, []mesh.VertID{
		vid(t, maps, 1), vid(t, maps, 3), vid(t, maps, 4),
	}, nil), w)
	_, ok, err = path.ShortestPath(walled, v0, v6, path.NewCache[mesh.VertID]())
	require.NoError(t, err)
	assert.False(t, ok)

	// Skipping every half-edge out of 0 is one-way.
	oneWay := path.NewGraph(path.FilteredVertexView(m, nil, m.Outgoing(v0)), w)
	_, ok, err = path.ShortestPath(oneWay, v0, v6, path.NewCache[mesh.VertID]())
	require.NoError(t, err)
	assert.False(t, ok)
	p, ok, err = path.ShortestPath(oneWay, v6, v0, path.NewCache[mesh.VertID]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 3, p.Cost, eps)
}

func TestEdgeView(t *testing.T) {
	m, maps := unitCube(t)
	s := embed.On(m)
	view := path.EdgeView(m)
	e := edge(t, m, maps, 0, 1)

	nb := view(e)
	assert.Len(t, nb, 3)
	assert.Contains(t, nb, m.Twin(e))
	for _, x := range nb {
		assert.Equal(t, vid(t, maps, 1), m.Root(x))
	}

	g := path.NewGraph(view, s.AngleEdges(1))
	p, ok, err := path.ShortestPath(g, e, m.Next(e), path.NewCache[mesh.EdgeID]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []mesh.EdgeID{e, m.Next(e)}, p.Nodes)
	assert.InDelta(t, math.Pi/2, p.Cost, eps)
}

// straightState crosses the front face (y=0) from edge 0->1 to edge 5->4.
func straightState(t *testing.T, m *solid, maps mesh.Maps) mesh.EdgePair {
	t.Helper()
	prev, cur := edge(t, m, maps, 0, 1), edge(t, m, maps, 5, 4)
	require.Equal(t, m.Face(prev), m.Face(cur))

	return mesh.EdgePair{Prev: prev, Cur: cur}
}

func TestEdgePairView_NoUTurn(t *testing.T) {
	m, maps := unitCube(t)
	a := straightState(t, m, maps)
	tw := m.Twin(a.Cur)

	nb := path.EdgePairView(m)(a)
	require.Len(t, nb, 3)
	for _, n := range nb {
		assert.Equal(t, tw, n.Prev)
		assert.NotEqual(t, tw, n.Cur)
		assert.Equal(t, m.Face(tw), m.Face(n.Cur))
	}
}

func TestEdgePairView_AnglePenalty(t *testing.T) {
	m, maps := unitCube(t)
	a := straightState(t, m, maps)
	// Over the top face straight on, towards the back.
	n := mesh.EdgePair{Prev: m.Twin(a.Cur), Cur: edge(t, m, maps, 6, 7)}

	g := path.NewGraph(path.EdgePairView(m), embed.On(m).AngleEdgePairs(1))
	p, ok, err := path.ShortestPath(g, a, n, path.NewCache[mesh.EdgePair]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []mesh.EdgePair{a, n}, p.Nodes)
	assert.InDelta(t, math.Pi/2, p.Cost, eps)
}

func TestEdgePairView_Cycle(t *testing.T) {
	m, maps := unitCube(t)
	a := straightState(t, m, maps)
	hop := func(_, _ mesh.EdgePair) float64 { return 1 }
	g := path.NewGraph(path.EdgePairView(m), hop)

	// Top to front takes at least one side face in between.
	p, ok, err := path.ShortestCycle(g, a, path.NewCache[mesh.EdgePair]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3.0, p.Cost)
	require.Len(t, p.Nodes, 5)
	assert.Equal(t, a, p.Nodes[0])
	assert.Equal(t, a, p.Nodes[4])
	for i := 1; i < len(p.Nodes); i++ {
		assert.Equal(t, m.Twin(p.Nodes[i-1].Cur), p.Nodes[i].Prev, "step %d", i)
	}
}

func TestSeeds(t *testing.T) {
	m, maps := unitCube(t)
	e := edge(t, m, maps, 0, 1)

	seeds := path.Seeds(m, e)
	require.Len(t, seeds, 3)
	for _, s := range seeds {
		assert.Equal(t, e, s.Prev)
		assert.NotEqual(t, e, s.Cur)
		assert.Equal(t, m.Face(e), m.Face(s.Cur))
	}
}

func TestFaceView_DualEuclidean(t *testing.T) {
	m, maps := unitCube(t)
	g := path.NewGraph(path.FaceView(m), embed.On(m).DualEuclidean())
	bottom, top := fid(t, maps, 0), fid(t, maps, 1)

	p, ok, err := path.ShortestPath(g, bottom, top, path.NewCache[mesh.FaceID]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2, p.Cost, eps)
	require.Len(t, p.Nodes, 3)
	assert.NotEqual(t, bottom, p.Nodes[1])
	assert.NotEqual(t, top, p.Nodes[1])
}

func TestFilterView_DirectionFilter(t *testing.T) {
	m, maps := unitCube(t)
	s := embed.On(m)
	a := straightState(t, m, maps)
	up := r3.Vector{Y: 1}

	// Keep only steps whose midpoint-to-midpoint direction is within 30° of +y.
	keep := func(_, to mesh.EdgePair) bool {
		step := s.Midpoint(to.Cur).Sub(s.Midpoint(to.Prev))
		return step.Angle(up).Radians() <= math.Pi/6
	}
	view := path.FilterView(path.EdgePairView(m), keep)

	nb := view(a)
	require.Len(t, nb, 1)
	assert.Equal(t, edge(t, m, maps, 6, 7), nb[0].Cur)

	// Crossing the top face towards +y, the back face only leads down.
	assert.Empty(t, view(nb[0]))

	all := path.FilterView(path.EdgePairView(m), func(_, _ mesh.EdgePair) bool { return true })
	assert.Equal(t, path.EdgePairView(m)(a), all(a))
}
