// SPDX-License-Identifier: MIT

package path

import "fmt"

type reachEntry[N comparable] struct {
	node  N
	depth int
}

// Reachable lists every node reachable from start over nb, in breadth-first
// order, start first. Weights play no part; OnVisit receives the hop depth
// as its cost, MaxCost bounds that depth and Ctx is checked per node.
func Reachable[N comparable](nb NeighborFunc[N], start N, opts ...Option) ([]N, error) {
	if nb == nil {
		return nil, ErrNilGraph
	}
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	queue := []reachEntry[N]{{node: start}}
	seen := map[N]bool{start: true}
	var order []N
	for qi := 0; qi < len(queue); qi++ {
		select {
		case <-cfg.Ctx.Done():
			return nil, cfg.Ctx.Err()
		default:
		}
		cur := queue[qi]
		if err = cfg.OnVisit(cur.node, float64(cur.depth)); err != nil {
			return nil, fmt.Errorf("path: OnVisit error at %v: %w", cur.node, err)
		}
		order = append(order, cur.node)
		if float64(cur.depth+1) > cfg.MaxCost {
			continue
		}
		for _, n := range nb(cur.node) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, reachEntry[N]{node: n, depth: cur.depth + 1})
			}
		}
	}

	return order, nil
}

// Components partitions nodes into the groups connected over nb. Groups
// appear in the order of their first member in nodes, and each group is in
// breadth-first order from that member. nb should be symmetric (all mesh
// views are); successors outside nodes are followed all the same.
func Components[N comparable](nodes []N, nb NeighborFunc[N]) [][]N {
	seen := make(map[N]bool, len(nodes))
	var comps [][]N
	for _, n0 := range nodes {
		if seen[n0] {
			continue
		}
		queue := []N{n0}
		seen[n0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range nb(queue[qi]) {
				if !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
