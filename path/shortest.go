// SPDX-License-Identifier: MIT

package path

import (
	"container/heap"
	"fmt"
	"math"
)

// ShortestPath returns the cheapest path from → to in g.
//
// The boolean is false when to is unreachable, or only reachable above
// Options.MaxCost; err is then nil. from == to yields the single-node path
// with cost 0 without consulting the graph.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. cache must be non-nil (ErrNilCache) and unbound or bound to g (ErrCacheMismatch).
//  3. options must be valid (ErrOptionViolation).
//
// During the search, a cancelled context returns ctx.Err(), a failing
// OnVisit hook returns its error wrapped, and a bad weight returns ErrBadWeight.
func ShortestPath[N comparable](g *Graph[N], from, to N, cache *Cache[N], opts ...Option) (Path[N], bool, error) {
	cfg, err := prepare(g, cache, opts)
	if err != nil {
		return Path[N]{}, false, err
	}
	if from == to {
		return Path[N]{Nodes: []N{from}}, true, nil
	}

	r := newRunner(g, cache, cfg, from)
	found, err := r.process(to)
	if err != nil || !found {
		return Path[N]{}, false, err
	}

	return r.path(to), true, nil
}

// ShortestCycle returns the cheapest closed walk a → n → … → a over the
// neighbors n of a. Each candidate is the shortest path n → a; its cost is
// the cost of that path, without the a → n step. The lowest cost wins and
// ties go to the earlier neighbor. The returned nodes start and end with a.
func ShortestCycle[N comparable](g *Graph[N], a N, cache *Cache[N], opts ...Option) (Path[N], bool, error) {
	if _, err := prepare(g, cache, opts); err != nil {
		return Path[N]{}, false, err
	}
	nb, err := cache.neighbors(g, a)
	if err != nil {
		return Path[N]{}, false, err
	}

	var best Path[N]
	found := false
	for _, n := range nb {
		p, ok, err := ShortestPath(g, n.Node, a, cache, opts...)
		if err != nil {
			return Path[N]{}, false, err
		}
		if ok && (!found || p.Cost < best.Cost) {
			best, found = p, true
		}
	}
	if !found {
		return Path[N]{}, false, nil
	}
	best.Nodes = append([]N{a}, best.Nodes...)

	return best, true, nil
}

func prepare[N comparable](g *Graph[N], cache *Cache[N], opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrNilGraph
	}
	if cache == nil {
		return Options{}, ErrNilCache
	}
	cfg, err := resolve(opts)
	if err != nil {
		return Options{}, err
	}
	if err = cache.bind(g); err != nil {
		return Options{}, err
	}

	return cfg, nil
}

// runner holds the mutable state for a single search.
type runner[N comparable] struct {
	g       *Graph[N]
	cache   *Cache[N]
	options Options
	dist    map[N]float64
	prev    map[N]N
	visited map[N]bool
	pq      nodePQ[N]
	seq     int
}

func newRunner[N comparable](g *Graph[N], cache *Cache[N], cfg Options, from N) *runner[N] {
	r := &runner[N]{
		g:       g,
		cache:   cache,
		options: cfg,
		dist:    map[N]float64{from: 0},
		prev:    make(map[N]N),
		visited: make(map[N]bool),
	}
	heap.Init(&r.pq)
	r.push(from, 0)

	return r
}

func (r *runner[N]) push(n N, cost float64) {
	heap.Push(&r.pq, &nodeItem[N]{node: n, cost: cost, seq: r.seq})
	r.seq++
}

// process settles nodes in cost order until target is settled (true) or the
// frontier runs out (false).
func (r *runner[N]) process(target N) (bool, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[N])
		u := item.node
		if r.visited[u] {
			continue
		}
		if item.cost > r.options.MaxCost {
			break
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		r.visited[u] = true
		if err := r.options.OnVisit(u, item.cost); err != nil {
			return false, fmt.Errorf("path: OnVisit error at %v: %w", u, err)
		}
		if u == target {
			return true, nil
		}
		if err := r.relax(u); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax improves the cost of every successor of the settled node u.
func (r *runner[N]) relax(u N) error {
	nb, err := r.cache.neighbors(r.g, u)
	if err != nil {
		return err
	}
	du := r.dist[u]
	for _, e := range nb {
		if math.IsInf(e.Weight, 1) || r.visited[e.Node] {
			continue
		}
		nd := du + e.Weight
		if nd > r.options.MaxCost {
			continue
		}
		if old, seen := r.dist[e.Node]; seen && nd >= old {
			continue
		}
		r.dist[e.Node] = nd
		r.prev[e.Node] = u
		r.push(e.Node, nd)
	}

	return nil
}

// path walks the predecessor chain back from a settled target.
func (r *runner[N]) path(to N) Path[N] {
	nodes := []N{to}
	for cur := to; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		nodes = append(nodes, p)
		cur = p
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Path[N]{Nodes: nodes, Cost: r.dist[to]}
}

// nodeItem is a frontier entry; stale entries are skipped when popped.
type nodeItem[N comparable] struct {
	node N
	cost float64
	seq  int // push order, breaks cost ties
}

// nodePQ is a min-heap of *nodeItem ordered by (cost, seq).
type nodePQ[N comparable] []*nodeItem[N]

func (pq nodePQ[N]) Len() int { return len(pq) }

func (pq nodePQ[N]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[N]) Push(x any) { *pq = append(*pq, x.(*nodeItem[N])) }

func (pq *nodePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
