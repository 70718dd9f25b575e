// SPDX-License-Identifier: MIT
// Package: douconel/builder
//
// impl_grid.go: Grid(rows, cols, opts...) generator.
//
// Canonical model:
//   • Flat rows×cols patch of unit quads in the z=0 plane, scaled by radius.
//   • Vertex index r*(cols+1)+c sits at (c, r, 0), row-major.
//   • Each quad is wound counter-clockwise seen from +z.
//
// The patch has a boundary, so mesh.Build rejects it with ErrNonWatertight;
// it exists to exercise that path and open-surface callers.
//
// Contract: rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//
// Determinism: faces in row-major cell order, corners starting at the
// lower-left corner of each cell.

package builder

import (
	"fmt"

	"github.com/golang/geo/r3"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a rows×cols open quad patch.
func Grid(rows, cols int, opts ...Option) (Shape, error) {
	if rows < minGridDim || cols < minGridDim {
		return Shape{}, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	stride := cols + 1
	positions := make([]r3.Vector, 0, (rows+1)*stride)
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			p := r3.Vector{X: float64(c), Y: float64(r)}
			positions = append(positions, p.Mul(cfg.radius).Add(cfg.center))
		}
	}

	faces := make([][]int, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*stride + c
			faces = append(faces, []int{i, i + 1, i + 1 + stride, i + stride})
		}
	}

	return Shape{Faces: faces, Positions: positions}, nil
}
