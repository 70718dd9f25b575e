// SPDX-License-Identifier: MIT

// Package path runs weighted shortest-path and shortest-cycle searches over
// views of a half-edge mesh.
//
// Overview:
//
//   - A Graph[N] pairs a NeighborFunc[N] with a WeightFunc[N]. Nothing is
//     materialized: neighbors are derived from the mesh on demand.
//   - A Cache[N] memoizes node → []Neighbor for one Graph. The caller owns it
//     and may reuse it across queries on the same graph.
//   - ShortestPath is Dijkstra with lazy decrease-key; ShortestCycle runs one
//     ShortestPath per neighbor of the start node.
//   - ShortestPaths fans independent queries out over an errgroup, each with
//     a fresh cache.
//   - Reachable and Components are unweighted breadth-first helpers over the
//     same views (flood fills, shell detection).
//
// Views:
//
//	VertexView(m)                 v        → VertNeighbors(v)
//	EdgeView(m)                   e        → Outgoing(Root(Twin(e)))
//	EdgePairView(m)               (p, c)   → (Twin(c), x) for x on Face(Twin(c)), x ≠ Twin(c)
//	FaceView(m)                   f        → FaceNeighbors(f)
//	FilteredVertexView(m, vs, es) vertex view without the given vertices and half-edges
//	FilterView(nb, keep)          any view restricted to the steps keep accepts
//
// Weights:
//
//   - +Inf marks a step as impassable; it is cached but never relaxed.
//   - Negative or NaN weights abort the search with ErrBadWeight.
//
// Determinism: ties in the priority queue are broken by push order, so the
// result depends only on the view's neighbor order, which is fixed for a
// given mesh.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per ShortestPath, V settled nodes, E relaxations.
//   - Space: O(V + E), plus whatever the cache retains.
//
// Errors (sentinel):
//
//	ErrNilGraph         nil *Graph
//	ErrNilCache         nil *Cache
//	ErrCacheMismatch    cache already bound to another graph
//	ErrBadWeight        negative or NaN weight
//	ErrOptionViolation  invalid option value (e.g. negative MaxCost)
//
// Concurrency: Graph values are read-only and may be shared. A Cache has no
// locking; give every goroutine its own.
package path
