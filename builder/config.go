// SPDX-License-Identifier: MIT
// Package: douconel/builder
//
// config.go: generator configuration, deterministic defaults and placement.
//
// Defaults:
//   • radius = 1
//   • center = origin

package builder

import "github.com/golang/geo/r3"

const defaultRadius = 1.0

type config struct {
	radius float64   // > 0
	center r3.Vector // translation
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{radius: defaultRadius}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Shape is a face list with one position per vertex index.
type Shape struct {
	// Faces lists each face as a cyclic sequence of indices into Positions.
	Faces [][]int

	// Positions holds the location of vertex index i at position i.
	Positions []r3.Vector
}

// place recentres raw on its mean, scales it so the farthest point sits at
// cfg.radius and translates it to cfg.center. raw is not modified.
func place(raw []r3.Vector, cfg config) []r3.Vector {
	var mean r3.Vector
	for _, p := range raw {
		mean = mean.Add(p)
	}
	mean = mean.Mul(1 / float64(len(raw)))

	far := 0.0
	for _, p := range raw {
		if d := p.Sub(mean).Norm(); d > far {
			far = d
		}
	}

	out := make([]r3.Vector, len(raw))
	for i, p := range raw {
		out[i] = p.Sub(mean).Mul(cfg.radius / far).Add(cfg.center)
	}

	return out
}

// copyFaces deep-copies a dataset face list so callers may mutate the result.
func copyFaces(faces [][]int) [][]int {
	out := make([][]int, len(faces))
	for i, f := range faces {
		out[i] = append([]int(nil), f...)
	}

	return out
}
