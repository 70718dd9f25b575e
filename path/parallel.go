// SPDX-License-Identifier: MIT

package path

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one source/target pair for ShortestPaths.
type Query[N comparable] struct {
	From, To N
}

// Result is the outcome of one Query.
type Result[N comparable] struct {
	Path  Path[N]
	Found bool
}

// ShortestPaths answers queries concurrently, at most limit at a time
// (limit ≤ 0 means no limit). Each query gets its own cache, so g's neighbor
// and weight functions must be safe for concurrent use; views over a mesh
// that is not being mutated are.
//
// Results are indexed like queries. The first error cancels the remaining
// queries and is returned.
func ShortestPaths[N comparable](ctx context.Context, g *Graph[N], queries []Query[N], limit int, opts ...Option) ([]Result[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if _, err := resolve(opts); err != nil {
		return nil, err
	}

	eg, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	results := make([]Result[N], len(queries))
	qopts := append(append([]Option(nil), opts...), WithContext(gctx))
	for i, q := range queries {
		eg.Go(func() error {
			p, ok, err := ShortestPath(g, q.From, q.To, NewCache[N](), qopts...)
			if err != nil {
				return err
			}
			results[i] = Result[N]{Path: p, Found: ok}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
