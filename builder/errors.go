// SPDX-License-Identifier: MIT
// Package: douconel/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with %w and a method tag prefix.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below its minimum
// (negative subdivision level, grid dimension < 1).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrUnknownSolid indicates a PlatonicName outside the five defined solids.
var ErrUnknownSolid = errors.New("builder: unknown solid")

// ErrConstructFailed indicates that a derived dataset could not be built,
// e.g. the icosahedron underlying the dodecahedron failed mesh construction.
var ErrConstructFailed = errors.New("builder: construction failed")
