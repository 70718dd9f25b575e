// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/maximsnoep/douconel/mesh"
)

// File: weights.go
// Role: weight-function factories for path graphs.
//
// Every factory returns a pure function of two nodes. Slack exponents must be
// non-negative; the factories panic otherwise, like option constructors.

func checkSlack(name string, k int) {
	if k < 0 {
		panic(fmt.Sprintf("embed: %s: negative slack %d", name, k))
	}
}

func powi(x float64, k int) float64 {
	r := 1.0
	for ; k > 0; k-- {
		r *= x
	}

	return r
}

// Euclidean weighs a vertex pair by the distance between them.
func (s Space[V, E, F]) Euclidean() func(a, b mesh.VertID) float64 {
	return s.Distance
}

// DualEuclidean weighs a face pair by the distance between their centroids.
func (s Space[V, E, F]) DualEuclidean() func(a, b mesh.FaceID) float64 {
	return func(a, b mesh.FaceID) float64 {
		return s.Centroid(a).Distance(s.Centroid(b))
	}
}

// AngleEdges weighs a half-edge pair by the angle between them, to the power slack.
func (s Space[V, E, F]) AngleEdges(slack int) func(a, b mesh.EdgeID) float64 {
	checkSlack("AngleEdges", slack)

	return func(a, b mesh.EdgeID) float64 {
		return powi(s.Angle(a, b), slack)
	}
}

// pairVector runs from the midpoint of p.Prev to the midpoint of p.Cur.
func (s Space[V, E, F]) pairVector(p mesh.EdgePair) r3.Vector {
	return s.Midpoint(p.Cur).Sub(s.Midpoint(p.Prev))
}

// AngleEdgePairs weighs two routing states by the turning angle between their
// midpoint-to-midpoint steps, to the power slack.
func (s Space[V, E, F]) AngleEdgePairs(slack int) func(a, b mesh.EdgePair) float64 {
	checkSlack("AngleEdgePairs", slack)

	return func(a, b mesh.EdgePair) float64 {
		return powi(s.pairVector(a).Angle(s.pairVector(b)).Radians(), slack)
	}
}

// AngleEdgePairsAligned adds to the AngleEdgePairs turning penalty an
// alignment penalty per state: the angle between axis and the step crossed
// with the edge normal of the state's Prev edge, to the power alignmentSlack.
func (s Surface[V, E, F]) AngleEdgePairsAligned(angularSlack, alignmentSlack int, axis r3.Vector) func(a, b mesh.EdgePair) float64 {
	checkSlack("AngleEdgePairsAligned", angularSlack)
	checkSlack("AngleEdgePairsAligned", alignmentSlack)

	return func(a, b mesh.EdgePair) float64 {
		va, vb := s.pairVector(a), s.pairVector(b)
		crossA := va.Cross(s.EdgeNormal(a.Prev))
		crossB := vb.Cross(s.EdgeNormal(b.Prev))

		turn := va.Angle(vb).Radians()
		return powi(turn, angularSlack) +
			powi(crossA.Angle(axis).Radians(), alignmentSlack) +
			powi(crossB.Angle(axis).Radians(), alignmentSlack)
	}
}
