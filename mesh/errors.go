// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maximsnoep/douconel/arena"
)

// Structural errors, reported by Build when the input cannot form a valid mesh.
var (
	// ErrDegenerateFace indicates a face with fewer than 3 or repeated indices.
	ErrDegenerateFace = errors.New("mesh: degenerate face")

	// ErrFaceDegreeExceeded indicates a face longer than the configured max face degree.
	ErrFaceDegreeExceeded = errors.New("mesh: face degree exceeded")

	// ErrNonManifold indicates a directed edge claimed by more than one face.
	ErrNonManifold = errors.New("mesh: not manifold")

	// ErrNonWatertight indicates a directed edge whose reverse edge is missing.
	ErrNonWatertight = errors.New("mesh: not watertight")

	// ErrNonManifoldVertex indicates a vertex whose incident faces form several fans.
	ErrNonManifoldVertex = errors.New("mesh: non-manifold vertex")
)

// Integrity errors, reported by verification and checked accessors.
var (
	// ErrMissingRelation indicates an undefined relation or representative.
	ErrMissingRelation = errors.New("mesh: missing relation")

	// ErrDanglingHandle indicates a handle that does not refer to a live element.
	ErrDanglingHandle = arena.ErrDanglingHandle

	// ErrDanglingReference indicates a stored relation whose target is not live.
	ErrDanglingReference = errors.New("mesh: dangling reference")

	// ErrInvariantViolated indicates a broken structural invariant.
	ErrInvariantViolated = errors.New("mesh: invariant violated")
)

// ErrNilIndexMap indicates a nil *IndexMap passed to FaceIndices.
var ErrNilIndexMap = errors.New("mesh: index map is nil")

// ErrBadSnapshot indicates a snapshot whose indices are out of range.
var ErrBadSnapshot = errors.New("mesh: malformed snapshot")

// StructuralError reports malformed construction input.
type StructuralError struct {
	// Kind is one of the structural sentinels (ErrNonManifold, ...).
	Kind error

	// Face is the input position of the offending face, or -1.
	Face int

	// Indices holds the offending input vertex indices: the directed pair
	// for edge errors, the face for face errors, the vertex for vertex errors.
	Indices []int

	// Edges holds the offending half-edges, when any were allocated.
	Edges []EdgeID
}

// Error implements error.
func (e *StructuralError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Face >= 0 {
		fmt.Fprintf(&b, ": face %d", e.Face)
	}
	if len(e.Indices) > 0 {
		fmt.Fprintf(&b, ": indices %v", e.Indices)
	}
	if len(e.Edges) > 0 {
		b.WriteString(": edges [")
		for i, h := range e.Edges {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(h.String())
		}
		b.WriteByte(']')
	}

	return b.String()
}

// Unwrap returns Kind so errors.Is matches the sentinel.
func (e *StructuralError) Unwrap() error { return e.Kind }

// IntegrityError reports corrupted topology.
type IntegrityError struct {
	// Kind is ErrMissingRelation, ErrDanglingHandle, ErrDanglingReference or ErrInvariantViolated.
	Kind error

	// Element describes the element being inspected, e.g. "edge 4:1".
	Element string

	// Relation is set for missing and dangling relations.
	Relation Relation

	// Invariant is set for ErrInvariantViolated.
	Invariant Invariant

	// Target describes the stored handle for dangling references.
	Target string
}

// Error implements error.
func (e *IntegrityError) Error() string {
	switch {
	case e.Invariant != InvNone:
		return fmt.Sprintf("%v: %s at %s", e.Kind, e.Invariant, e.Element)
	case e.Target != "":
		return fmt.Sprintf("%v: %s of %s -> %s", e.Kind, e.Relation, e.Element, e.Target)
	case e.Relation != RelNone:
		return fmt.Sprintf("%v: %s of %s", e.Kind, e.Relation, e.Element)
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.Element)
	}
}

// Unwrap returns Kind so errors.Is matches the sentinel.
func (e *IntegrityError) Unwrap() error { return e.Kind }

func vertName(v VertID) string { return "vertex " + v.String() }
func edgeName(e EdgeID) string { return "edge " + e.String() }
func faceName(f FaceID) string { return "face " + f.String() }

func missing(rel Relation, element string) error {
	return &IntegrityError{Kind: ErrMissingRelation, Element: element, Relation: rel}
}

func dangling(element string) error {
	return &IntegrityError{Kind: ErrDanglingHandle, Element: element}
}

func danglingRef(rel Relation, element, target string) error {
	return &IntegrityError{Kind: ErrDanglingReference, Element: element, Relation: rel, Target: target}
}

func violated(inv Invariant, element string) error {
	return &IntegrityError{Kind: ErrInvariantViolated, Element: element, Invariant: inv}
}
