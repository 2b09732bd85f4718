package core

import "sort"

const matrixInitialCapacity = 8

// AdjacencyMatrix is a dense matrix strategy: cells hold edge weights, a
// parallel presence bitmap distinguishes a stored zero-weight edge from an
// absent one, and full edge records (attributes included) live in a
// canonical-keyed side map.
//
// Resize policy: capacity doubles when a vertex add would exceed it, copying
// the matrix in O(V²) at that moment only; vertex removal compacts the matrix
// immediately (O(V²)) so row and column indices stay dense.
//
// Space: O(V²). Not internally synchronized.
type AdjacencyMatrix struct {
	directed bool
	capacity int

	// cells and present are capacity×capacity, row-major.
	cells   []float64
	present []bool

	index    map[string]int // vertex ID → row/col
	order    []string       // row/col → vertex ID, dense
	vertices map[string]*Vertex
	edges    map[[2]string]*Edge
}

// NewAdjacencyMatrix returns an empty matrix with a small initial capacity.
// Complexity: O(1)
func NewAdjacencyMatrix(directed bool) *AdjacencyMatrix {
	return &AdjacencyMatrix{
		directed: directed,
		capacity: matrixInitialCapacity,
		cells:    make([]float64, matrixInitialCapacity*matrixInitialCapacity),
		present:  make([]bool, matrixInitialCapacity*matrixInitialCapacity),
		index:    make(map[string]int),
		vertices: make(map[string]*Vertex),
		edges:    make(map[[2]string]*Edge),
	}
}

// cell returns the flat offset of (row, col) at the current capacity.
func (m *AdjacencyMatrix) cell(row, col int) int { return row*m.capacity + col }

// grow doubles capacity until it fits need, copying live rows into the new
// layout. O(V²) when triggered.
func (m *AdjacencyMatrix) grow(need int) {
	next := m.capacity
	for next < need {
		next *= 2
	}
	cells := make([]float64, next*next)
	present := make([]bool, next*next)
	n := len(m.order)
	for r := 0; r < n; r++ {
		copy(cells[r*next:r*next+n], m.cells[r*m.capacity:r*m.capacity+n])
		copy(present[r*next:r*next+n], m.present[r*m.capacity:r*m.capacity+n])
	}
	m.capacity = next
	m.cells = cells
	m.present = present
}

// AddVertex assigns the vertex the next dense row/col index, growing the
// matrix when full.
// Complexity: O(1) amortized, O(V²) when a resize triggers.
func (m *AdjacencyMatrix) AddVertex(v *Vertex) error {
	if v == nil || v.ID == "" {
		return ErrEmptyVertexID
	}
	if _, exists := m.vertices[v.ID]; exists {
		return ErrDuplicateVertex
	}
	if len(m.order) == m.capacity {
		m.grow(len(m.order) + 1)
	}
	m.index[v.ID] = len(m.order)
	m.order = append(m.order, v.ID)
	m.vertices[v.ID] = v

	return nil
}

// RemoveVertex deletes the vertex, its incident edges, and compacts the
// matrix by shifting the trailing rows and columns down one slot.
// Complexity: O(V²)
func (m *AdjacencyMatrix) RemoveVertex(id string) error {
	row, exists := m.index[id]
	if !exists {
		return ErrVertexNotFound
	}
	// Drop edge records touching id.
	for key := range m.edges {
		if key[0] == id || key[1] == id {
			delete(m.edges, key)
		}
	}
	// Compact: shift rows and columns past the removed index.
	n := len(m.order)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			nr, nc := r, c
			if r == row || c == row {
				continue
			}
			if r > row {
				nr--
			}
			if c > row {
				nc--
			}
			m.cells[m.cell(nr, nc)] = m.cells[m.cell(r, c)]
			m.present[m.cell(nr, nc)] = m.present[m.cell(r, c)]
		}
	}
	// Zero the now-unused last row and column.
	last := n - 1
	for i := 0; i < n; i++ {
		m.cells[m.cell(last, i)] = 0
		m.present[m.cell(last, i)] = false
		m.cells[m.cell(i, last)] = 0
		m.present[m.cell(i, last)] = false
	}
	m.order = append(m.order[:row], m.order[row+1:]...)
	for i := row; i < len(m.order); i++ {
		m.index[m.order[i]] = i
	}
	delete(m.index, id)
	delete(m.vertices, id)

	return nil
}

// AddEdge stores the weight in the (source, target) cell, mirrored for
// undirected storage. An occupied cell fails with ErrDuplicateEdge.
// Complexity: O(1)
func (m *AdjacencyMatrix) AddEdge(e *Edge) error {
	src, ok := m.index[e.Source]
	if !ok {
		return ErrVertexNotFound
	}
	dst, ok := m.index[e.Target]
	if !ok {
		return ErrVertexNotFound
	}
	if m.present[m.cell(src, dst)] {
		return ErrDuplicateEdge
	}
	m.cells[m.cell(src, dst)] = e.Weight
	m.present[m.cell(src, dst)] = true
	if !m.directed {
		m.cells[m.cell(dst, src)] = e.Weight
		m.present[m.cell(dst, src)] = true
	}
	m.edges[pairKey(m.directed, e.Source, e.Target)] = e

	return nil
}

// RemoveEdge clears the pair's cell (both mirrors for undirected storage).
// Complexity: O(1)
func (m *AdjacencyMatrix) RemoveEdge(source, target string) error {
	src, ok := m.index[source]
	if !ok {
		return ErrEdgeNotFound
	}
	dst, ok := m.index[target]
	if !ok {
		return ErrEdgeNotFound
	}
	if !m.present[m.cell(src, dst)] {
		return ErrEdgeNotFound
	}
	m.cells[m.cell(src, dst)] = 0
	m.present[m.cell(src, dst)] = false
	if !m.directed {
		m.cells[m.cell(dst, src)] = 0
		m.present[m.cell(dst, src)] = false
	}
	delete(m.edges, pairKey(m.directed, source, target))

	return nil
}

// HasVertex reports vertex membership. Complexity: O(1)
func (m *AdjacencyMatrix) HasVertex(id string) bool {
	_, ok := m.index[id]

	return ok
}

// HasEdge reports whether the pair's cell is occupied. Complexity: O(1)
func (m *AdjacencyMatrix) HasEdge(source, target string) bool {
	src, ok := m.index[source]
	if !ok {
		return false
	}
	dst, ok := m.index[target]
	if !ok {
		return false
	}

	return m.present[m.cell(src, dst)]
}

// GetVertex returns the vertex record or ErrVertexNotFound. Complexity: O(1)
func (m *AdjacencyMatrix) GetVertex(id string) (*Vertex, error) {
	v, ok := m.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// GetEdge returns the edge record or ErrEdgeNotFound. Complexity: O(1)
func (m *AdjacencyMatrix) GetEdge(source, target string) (*Edge, error) {
	e, ok := m.edges[pairKey(m.directed, source, target)]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgesBetween returns the single edge between the pair, or an empty slice.
// Complexity: O(1)
func (m *AdjacencyMatrix) EdgesBetween(source, target string) []*Edge {
	e, ok := m.edges[pairKey(m.directed, source, target)]
	if !ok {
		return nil
	}

	return []*Edge{e}
}

// Neighbors scans the vertex's row for occupied cells.
// Complexity: O(V) plus the sort; row order is already index order, which is
// not ID order, so results are sorted explicitly.
func (m *AdjacencyMatrix) Neighbors(id string) ([]string, error) {
	row, ok := m.index[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0)
	for col := range m.order {
		if m.present[m.cell(row, col)] {
			out = append(out, m.order[col])
		}
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all vertex records sorted by ID. Complexity: O(V log V)
func (m *AdjacencyMatrix) Vertices() []*Vertex {
	return sortedVertices(m.vertices)
}

// Edges returns every edge exactly once, sorted by (Source, Target).
// Complexity: O(E log E)
func (m *AdjacencyMatrix) Edges() []*Edge {
	out := make([]*Edge, 0, len(m.edges))
	for _, e := range m.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1)
func (m *AdjacencyMatrix) VertexCount() int { return len(m.order) }

// EdgeCount returns the number of edges. Complexity: O(1)
func (m *AdjacencyMatrix) EdgeCount() int { return len(m.edges) }
