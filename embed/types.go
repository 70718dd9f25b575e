// SPDX-License-Identifier: MIT

package embed

import (
	"errors"
	"image/color"

	"github.com/golang/geo/r3"
)

// DefaultEpsilon is the planarity tolerance used when callers have no better one.
const DefaultEpsilon = 1e-9

// Sentinel errors for embedded construction.
var (
	// ErrPayloadLength indicates a positions or normals slice of the wrong length.
	ErrPayloadLength = errors.New("embed: payload length mismatch")

	// ErrUnmappedIndex indicates a position for a vertex index no face uses.
	ErrUnmappedIndex = errors.New("embed: vertex index not used by any face")
)

// HasPosition is implemented by vertex payloads with a location in space.
type HasPosition interface {
	Position() r3.Vector
}

// HasNormal is implemented by face payloads with a unit normal.
type HasNormal interface {
	Normal() r3.Vector
}

// HasColor is implemented by face payloads carrying a display color.
type HasColor interface {
	Color() color.RGBA
}

// Vertex is a vertex payload holding a position.
type Vertex struct {
	P r3.Vector `json:"position"`
}

// Position implements HasPosition.
func (v Vertex) Position() r3.Vector { return v.P }

// SetPosition replaces the position.
func (v *Vertex) SetPosition(p r3.Vector) { v.P = p }

// Face is a face payload holding a normal and a color.
type Face struct {
	N r3.Vector  `json:"normal"`
	C color.RGBA `json:"color"`
}

// Normal implements HasNormal.
func (f Face) Normal() r3.Vector { return f.N }

// SetNormal replaces the normal.
func (f *Face) SetNormal(n r3.Vector) { f.N = n }

// Color implements HasColor.
func (f Face) Color() color.RGBA { return f.C }

// SetColor replaces the color.
func (f *Face) SetColor(c color.RGBA) { f.C = c }
