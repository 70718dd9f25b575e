// SPDX-License-Identifier: MIT

package mesh

// IndexMap is a bidirectional map between caller indices and handles.
type IndexMap[H comparable] struct {
	byIndex  map[int]H
	byHandle map[H]int
	order    []int
}

func newIndexMap[H comparable](capacity int) *IndexMap[H] {
	return &IndexMap[H]{
		byIndex:  make(map[int]H, capacity),
		byHandle: make(map[H]int, capacity),
		order:    make([]int, 0, capacity),
	}
}

func (m *IndexMap[H]) put(index int, h H) {
	m.byIndex[index] = h
	m.byHandle[h] = index
	m.order = append(m.order, index)
}

// Handle returns the handle allocated for index.
func (m *IndexMap[H]) Handle(index int) (H, bool) {
	h, ok := m.byIndex[index]
	return h, ok
}

// Index returns the caller index h was allocated for.
func (m *IndexMap[H]) Index(h H) (int, bool) {
	i, ok := m.byHandle[h]
	return i, ok
}

// Len returns the number of entries.
func (m *IndexMap[H]) Len() int { return len(m.order) }

// Indices returns the caller indices in allocation order (first appearance
// for vertices, input order for faces).
func (m *IndexMap[H]) Indices() []int {
	out := make([]int, len(m.order))
	copy(out, m.order)

	return out
}

// Maps bundles the index maps produced by Build.
type Maps struct {
	// Verts maps distinct input vertex indices to vertex handles.
	Verts *IndexMap[VertID]

	// Faces maps input face positions to face handles.
	Faces *IndexMap[FaceID]
}
