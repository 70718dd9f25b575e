// SPDX-License-Identifier: MIT
// Package: douconel/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Later options override earlier ones.

package builder

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Option customizes a generator by mutating its config before generation.
type Option func(*config)

// WithRadius sets the circumradius of solids and spheres, or the cell size of
// grids. Panics unless r is finite and > 0.
func WithRadius(r float64) Option {
	if !(r > 0) || math.IsInf(r, 0) {
		panic(fmt.Sprintf("builder: WithRadius(%v): need a finite r > 0", r))
	}

	return func(c *config) { c.radius = r }
}

// WithCenter translates every generated position by c. Panics on NaN or
// infinite components.
func WithCenter(c r3.Vector) Option {
	for _, x := range []float64{c.X, c.Y, c.Z} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			panic(fmt.Sprintf("builder: WithCenter(%v): need finite components", c))
		}
	}

	return func(cfg *config) { cfg.center = c }
}
