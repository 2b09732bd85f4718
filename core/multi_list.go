package core

import "sort"

// MultiAdjacencyList is a list-backed adjacency list keeping parallel edges
// in insertion order. Each (source, target) slot holds a slice of edge
// records, mirrored on both endpoints for undirected storage, and a flat
// catalog preserves global insertion order for deterministic enumeration.
//
// Space: O(V + E). Not internally synchronized.
type MultiAdjacencyList struct {
	directed  bool
	vertices  map[string]*Vertex
	adjacency map[string]map[string][]*Edge
	catalog   []*Edge // global insertion order, one entry per edge
}

// NewMultiAdjacencyList returns an empty list-backed adjacency list.
// Complexity: O(1)
func NewMultiAdjacencyList(directed bool) *MultiAdjacencyList {
	return &MultiAdjacencyList{
		directed:  directed,
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string][]*Edge),
	}
}

// AddVertex registers v with an empty neighbor map.
// Complexity: O(1)
func (l *MultiAdjacencyList) AddVertex(v *Vertex) error {
	if v == nil || v.ID == "" {
		return ErrEmptyVertexID
	}
	if _, exists := l.vertices[v.ID]; exists {
		return ErrDuplicateVertex
	}
	l.vertices[v.ID] = v
	l.adjacency[v.ID] = make(map[string][]*Edge)

	return nil
}

// RemoveVertex deletes the vertex and every edge touching it, including all
// parallel copies, from the adjacency slots and the catalog.
// Complexity: O(V + E) worst case.
func (l *MultiAdjacencyList) RemoveVertex(id string) error {
	if _, exists := l.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	for _, nbrs := range l.adjacency {
		delete(nbrs, id)
	}
	delete(l.adjacency, id)
	delete(l.vertices, id)

	kept := l.catalog[:0]
	for _, e := range l.catalog {
		if e.Source != id && e.Target != id {
			kept = append(kept, e)
		}
	}
	l.catalog = kept

	return nil
}

// AddEdge appends e to the pair's slot; parallels accumulate in insertion
// order. Undirected storage mirrors the same record on both endpoints.
// Complexity: O(1) amortized
func (l *MultiAdjacencyList) AddEdge(e *Edge) error {
	if _, ok := l.vertices[e.Source]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := l.vertices[e.Target]; !ok {
		return ErrVertexNotFound
	}
	l.adjacency[e.Source][e.Target] = append(l.adjacency[e.Source][e.Target], e)
	if !l.directed && e.Source != e.Target {
		l.adjacency[e.Target][e.Source] = append(l.adjacency[e.Target][e.Source], e)
	}
	l.catalog = append(l.catalog, e)

	return nil
}

// RemoveEdge deletes the oldest edge between the pair (FIFO among parallels).
// Complexity: O(k + E) where k is the pair's multiplicity (catalog scan).
func (l *MultiAdjacencyList) RemoveEdge(source, target string) error {
	slot := l.slot(source, target)
	if len(slot) == 0 {
		return ErrEdgeNotFound
	}
	victim := slot[0]
	l.unlink(source, target, victim)
	if !l.directed && source != target {
		l.unlink(target, source, victim)
	}
	for i, e := range l.catalog {
		if e == victim {
			l.catalog = append(l.catalog[:i], l.catalog[i+1:]...)

			break
		}
	}

	return nil
}

// slot returns the live edge slice between the pair, following the mirror for
// undirected storage.
func (l *MultiAdjacencyList) slot(source, target string) []*Edge {
	nbrs, ok := l.adjacency[source]
	if !ok {
		return nil
	}

	return nbrs[target]
}

// unlink removes one occurrence of victim from the (source, target) slot.
func (l *MultiAdjacencyList) unlink(source, target string, victim *Edge) {
	slot := l.adjacency[source][target]
	for i, e := range slot {
		if e == victim {
			slot = append(slot[:i], slot[i+1:]...)

			break
		}
	}
	if len(slot) == 0 {
		delete(l.adjacency[source], target)
	} else {
		l.adjacency[source][target] = slot
	}
}

// HasVertex reports vertex membership. Complexity: O(1)
func (l *MultiAdjacencyList) HasVertex(id string) bool {
	_, ok := l.vertices[id]

	return ok
}

// HasEdge reports whether at least one edge connects the pair.
// Complexity: O(1)
func (l *MultiAdjacencyList) HasEdge(source, target string) bool {
	return len(l.slot(source, target)) > 0
}

// GetVertex returns the vertex record or ErrVertexNotFound. Complexity: O(1)
func (l *MultiAdjacencyList) GetVertex(id string) (*Vertex, error) {
	v, ok := l.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// GetEdge returns the oldest edge between the pair or ErrEdgeNotFound.
// Complexity: O(1)
func (l *MultiAdjacencyList) GetEdge(source, target string) (*Edge, error) {
	slot := l.slot(source, target)
	if len(slot) == 0 {
		return nil, ErrEdgeNotFound
	}

	return slot[0], nil
}

// EdgesBetween returns all edges between the pair in insertion order.
// The returned slice is a copy; mutating it does not affect the graph.
// Complexity: O(k) where k is the pair's multiplicity.
func (l *MultiAdjacencyList) EdgesBetween(source, target string) []*Edge {
	slot := l.slot(source, target)
	if len(slot) == 0 {
		return nil
	}
	out := make([]*Edge, len(slot))
	copy(out, slot)

	return out
}

// Neighbors returns the distinct adjacent vertex IDs sorted ascending; a
// neighbor connected by several parallels appears once.
// Complexity: O(d log d)
func (l *MultiAdjacencyList) Neighbors(id string) ([]string, error) {
	nbrs, ok := l.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all vertex records sorted by ID. Complexity: O(V log V)
func (l *MultiAdjacencyList) Vertices() []*Vertex {
	return sortedVertices(l.vertices)
}

// Edges returns every edge exactly once in global insertion order, parallels
// included.
// Complexity: O(E)
func (l *MultiAdjacencyList) Edges() []*Edge {
	out := make([]*Edge, len(l.catalog))
	copy(out, l.catalog)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1)
func (l *MultiAdjacencyList) VertexCount() int { return len(l.vertices) }

// EdgeCount returns the number of edges, parallels counted individually.
// Complexity: O(1)
func (l *MultiAdjacencyList) EdgeCount() int { return len(l.catalog) }
