// SPDX-License-Identifier: MIT

package path

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for path searches.
var (
	// ErrNilGraph is returned if a nil *Graph is passed.
	ErrNilGraph = errors.New("path: graph is nil")

	// ErrNilCache is returned if a nil *Cache is passed.
	ErrNilCache = errors.New("path: cache is nil")

	// ErrCacheMismatch is returned when a cache bound to one graph is used
	// with another. Cached weights are only valid for the graph that made them.
	ErrCacheMismatch = errors.New("path: cache belongs to a different graph")

	// ErrBadWeight is returned when a weight function yields a negative or NaN value.
	ErrBadWeight = errors.New("path: weight must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("path: invalid option supplied")
)

// NeighborFunc lists the successors of a node, in a stable order.
type NeighborFunc[N comparable] func(n N) []N

// WeightFunc prices the step from one node to a successor.
type WeightFunc[N comparable] func(from, to N) float64

// Neighbor is a cached successor with the weight of the step to it.
type Neighbor[N comparable] struct {
	Node   N
	Weight float64
}

// Graph binds a neighbor function and a weight function.
// Create it with NewGraph; compare caches against it by pointer.
type Graph[N comparable] struct {
	neighbors NeighborFunc[N]
	weight    WeightFunc[N]
}

// NewGraph returns a graph over nb weighted by w. Panics if either is nil.
func NewGraph[N comparable](nb NeighborFunc[N], w WeightFunc[N]) *Graph[N] {
	if nb == nil || w == nil {
		panic("path: NewGraph needs both a neighbor and a weight function")
	}

	return &Graph[N]{neighbors: nb, weight: w}
}

// Cache memoizes weighted adjacency for a single graph. The zero value is
// not usable; call NewCache. A cache binds to the first graph it serves.
type Cache[N comparable] struct {
	owner *Graph[N]
	adj   map[N][]Neighbor[N]
}

// NewCache returns an empty, unbound cache.
func NewCache[N comparable]() *Cache[N] {
	return &Cache[N]{adj: make(map[N][]Neighbor[N])}
}

// Len reports how many nodes have their adjacency cached.
func (c *Cache[N]) Len() int { return len(c.adj) }

// Reset drops every entry and unbinds the cache.
func (c *Cache[N]) Reset() {
	c.owner = nil
	clear(c.adj)
}

func (c *Cache[N]) bind(g *Graph[N]) error {
	if c.owner == nil {
		c.owner = g
		return nil
	}
	if c.owner != g {
		return ErrCacheMismatch
	}

	return nil
}

// neighbors returns the weighted successors of n, evaluating them on first use.
// Entries that fail validation are not cached.
func (c *Cache[N]) neighbors(g *Graph[N], n N) ([]Neighbor[N], error) {
	if nb, ok := c.adj[n]; ok {
		return nb, nil
	}
	succ := g.neighbors(n)
	nb := make([]Neighbor[N], 0, len(succ))
	for _, m := range succ {
		w := g.weight(n, m)
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: %v→%v weight=%v", ErrBadWeight, n, m, w)
		}
		nb = append(nb, Neighbor[N]{Node: m, Weight: w})
	}
	c.adj[n] = nb

	return nb, nil
}

// Path is an ordered node sequence and its total cost.
type Path[N comparable] struct {
	Nodes []N
	Cost  float64
}

// Len returns the number of nodes on the path.
func (p Path[N]) Len() int { return len(p.Nodes) }
