package core

import "sort"

// pairKey returns the canonical lookup key for an edge between a and b.
// Directed storage keeps the pair as given; undirected storage sorts it so
// (a,b) and (b,a) resolve to the same slot.
func pairKey(directed bool, a, b string) [2]string {
	if !directed && b < a {
		return [2]string{b, a}
	}

	return [2]string{a, b}
}

// SimpleAdjacencyList is a set-backed adjacency list holding at most one edge
// per vertex pair. Neighbor sets are map[string]struct{}, mirrored on both
// endpoints for undirected storage, and edge records are keyed by canonical
// pair for O(1) amortized lookup.
//
// Space: O(V + E). Not internally synchronized.
type SimpleAdjacencyList struct {
	directed  bool
	vertices  map[string]*Vertex
	adjacency map[string]map[string]struct{}
	edges     map[[2]string]*Edge
}

// NewSimpleAdjacencyList returns an empty set-backed adjacency list.
// Complexity: O(1)
func NewSimpleAdjacencyList(directed bool) *SimpleAdjacencyList {
	return &SimpleAdjacencyList{
		directed:  directed,
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]struct{}),
		edges:     make(map[[2]string]*Edge),
	}
}

// AddVertex registers v with an empty neighbor set.
// Complexity: O(1)
func (s *SimpleAdjacencyList) AddVertex(v *Vertex) error {
	if v == nil || v.ID == "" {
		return ErrEmptyVertexID
	}
	if _, exists := s.vertices[v.ID]; exists {
		return ErrDuplicateVertex
	}
	s.vertices[v.ID] = v
	s.adjacency[v.ID] = make(map[string]struct{})

	return nil
}

// RemoveVertex deletes the vertex and every incident edge, leaving no stale
// adjacency entries behind.
// Complexity: O(deg(v)) for undirected storage, O(V) for directed (incoming
// edges are found by scanning the canonical edge keys of the neighbors that
// point at id).
func (s *SimpleAdjacencyList) RemoveVertex(id string) error {
	if _, exists := s.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	// Outgoing (and mirrored) side.
	for nbr := range s.adjacency[id] {
		delete(s.edges, pairKey(s.directed, id, nbr))
		if !s.directed {
			delete(s.adjacency[nbr], id)
		}
	}
	// Incoming side of directed storage.
	if s.directed {
		for other, nbrs := range s.adjacency {
			if _, ok := nbrs[id]; ok {
				delete(nbrs, id)
				delete(s.edges, [2]string{other, id})
			}
		}
	}
	delete(s.adjacency, id)
	delete(s.vertices, id)

	return nil
}

// AddEdge stores e, mirroring the adjacency entry for undirected storage.
// A second edge on the same pair fails with ErrDuplicateEdge: the set-backed
// shape admits at most one.
// Complexity: O(1) amortized
func (s *SimpleAdjacencyList) AddEdge(e *Edge) error {
	if _, ok := s.vertices[e.Source]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := s.vertices[e.Target]; !ok {
		return ErrVertexNotFound
	}
	key := pairKey(s.directed, e.Source, e.Target)
	if _, exists := s.edges[key]; exists {
		return ErrDuplicateEdge
	}
	s.edges[key] = e
	s.adjacency[e.Source][e.Target] = struct{}{}
	if !s.directed {
		s.adjacency[e.Target][e.Source] = struct{}{}
	}

	return nil
}

// RemoveEdge deletes the edge between the pair along with both adjacency
// entries for undirected storage.
// Complexity: O(1)
func (s *SimpleAdjacencyList) RemoveEdge(source, target string) error {
	key := pairKey(s.directed, source, target)
	if _, exists := s.edges[key]; !exists {
		return ErrEdgeNotFound
	}
	delete(s.edges, key)
	delete(s.adjacency[source], target)
	if !s.directed {
		delete(s.adjacency[target], source)
	}

	return nil
}

// HasVertex reports vertex membership.
// Complexity: O(1)
func (s *SimpleAdjacencyList) HasVertex(id string) bool {
	_, ok := s.vertices[id]

	return ok
}

// HasEdge reports whether the pair is connected.
// Complexity: O(1)
func (s *SimpleAdjacencyList) HasEdge(source, target string) bool {
	_, ok := s.edges[pairKey(s.directed, source, target)]

	return ok
}

// GetVertex returns the vertex record or ErrVertexNotFound.
// Complexity: O(1)
func (s *SimpleAdjacencyList) GetVertex(id string) (*Vertex, error) {
	v, ok := s.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// GetEdge returns the edge between the pair or ErrEdgeNotFound.
// Complexity: O(1)
func (s *SimpleAdjacencyList) GetEdge(source, target string) (*Edge, error) {
	e, ok := s.edges[pairKey(s.directed, source, target)]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgesBetween returns the single edge between the pair, or an empty slice.
// Complexity: O(1)
func (s *SimpleAdjacencyList) EdgesBetween(source, target string) []*Edge {
	e, ok := s.edges[pairKey(s.directed, source, target)]
	if !ok {
		return nil
	}

	return []*Edge{e}
}

// Neighbors returns the adjacent vertex IDs sorted ascending.
// Complexity: O(d log d) where d is the degree of id.
func (s *SimpleAdjacencyList) Neighbors(id string) ([]string, error) {
	nbrs, ok := s.adjacency[id]
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

// Vertices returns all vertex records sorted by ID.
// Complexity: O(V log V)
func (s *SimpleAdjacencyList) Vertices() []*Vertex {
	return sortedVertices(s.vertices)
}

// Edges returns every edge exactly once, sorted by (Source, Target).
// Complexity: O(E log E)
func (s *SimpleAdjacencyList) Edges() []*Edge {
	out := make([]*Edge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1)
func (s *SimpleAdjacencyList) VertexCount() int { return len(s.vertices) }

// EdgeCount returns the number of edges. Complexity: O(1)
func (s *SimpleAdjacencyList) EdgeCount() int { return len(s.edges) }

// sortedVertices flattens a vertex map into a slice sorted by ID.
func sortedVertices(m map[string]*Vertex) []*Vertex {
	out := make([]*Vertex, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// sortEdges orders edges by (Source, Target) in place. Strategies that admit
// parallel edges must not use it; they preserve insertion order instead.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].Source != es[j].Source {
			return es[i].Source < es[j].Source
		}

		return es[i].Target < es[j].Target
	})
}
