package core

import (
	"sort"

	"github.com/google/uuid"
)

// HypergraphIncidenceMap stores hyperedges (connections among arbitrary
// nonempty vertex sets) behind a bidirectional index: vertex → incident
// hyperedge IDs and hyperedge ID → record. Hyperedge IDs are generated with
// uuid at insertion time since member sets carry no natural key.
//
// The strategy also satisfies the binary Representation contract by viewing
// each hyperedge as a clique over its members: HasEdge, EdgesBetween, and
// Edges synthesize pairwise edges carrying the hyperedge's weight and
// attributes. AddEdge stores a two-member hyperedge (one member for a self
// pair); RemoveEdge removes the oldest hyperedge whose member set is exactly
// the given pair. EdgeCount reports hyperedges, not clique pairs.
//
// Hypergraphs are undirected. Not internally synchronized.
type HypergraphIncidenceMap struct {
	vertices   map[string]*Vertex
	incidence  map[string]map[string]struct{} // vertex ID → hyperedge IDs
	hyperedges map[string]*Hyperedge
	order      []string // hyperedge IDs in insertion order
}

// NewHypergraphIncidenceMap returns an empty incidence map.
// Complexity: O(1)
func NewHypergraphIncidenceMap() *HypergraphIncidenceMap {
	return &HypergraphIncidenceMap{
		vertices:   make(map[string]*Vertex),
		incidence:  make(map[string]map[string]struct{}),
		hyperedges: make(map[string]*Hyperedge),
	}
}

// AddVertex registers v with an empty incidence set.
// Complexity: O(1)
func (h *HypergraphIncidenceMap) AddVertex(v *Vertex) error {
	if v == nil || v.ID == "" {
		return ErrEmptyVertexID
	}
	if _, exists := h.vertices[v.ID]; exists {
		return ErrDuplicateVertex
	}
	h.vertices[v.ID] = v
	h.incidence[v.ID] = make(map[string]struct{})

	return nil
}

// RemoveVertex deletes the vertex and strips it from every incident
// hyperedge's member list; a hyperedge left with no members is dropped.
// Complexity: O(sum of incident hyperedge sizes)
func (h *HypergraphIncidenceMap) RemoveVertex(id string) error {
	incident, exists := h.incidence[id]
	if !exists {
		return ErrVertexNotFound
	}
	for heID := range incident {
		he := h.hyperedges[heID]
		members := he.Members[:0]
		for _, m := range he.Members {
			if m != id {
				members = append(members, m)
			}
		}
		he.Members = members
		if len(he.Members) == 0 {
			h.dropHyperedge(heID)
		}
	}
	delete(h.incidence, id)
	delete(h.vertices, id)

	return nil
}

// AddHyperedge stores a new hyperedge over the given member set and returns
// the record with its generated ID. Members are deduplicated and sorted.
// Fails with ErrNoMembers for an empty set and ErrVertexNotFound when any
// member is absent.
// Complexity: O(k log k) where k is the member count.
func (h *HypergraphIncidenceMap) AddHyperedge(members []string, weight float64, attrs Attrs) (*Hyperedge, error) {
	if len(members) == 0 {
		return nil, ErrNoMembers
	}
	seen := make(map[string]struct{}, len(members))
	distinct := make([]string, 0, len(members))
	for _, m := range members {
		if _, ok := h.vertices[m]; !ok {
			return nil, ErrVertexNotFound
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		distinct = append(distinct, m)
	}
	sort.Strings(distinct)

	he := &Hyperedge{
		ID:      uuid.NewString(),
		Members: distinct,
		Weight:  weight,
		Attrs:   attrs,
	}
	h.hyperedges[he.ID] = he
	h.order = append(h.order, he.ID)
	for _, m := range distinct {
		h.incidence[m][he.ID] = struct{}{}
	}

	return he, nil
}

// RemoveHyperedge deletes the hyperedge by ID and clears its incidence
// entries. Fails with ErrEdgeNotFound.
// Complexity: O(k)
func (h *HypergraphIncidenceMap) RemoveHyperedge(id string) error {
	if _, exists := h.hyperedges[id]; !exists {
		return ErrEdgeNotFound
	}
	h.dropHyperedge(id)

	return nil
}

// dropHyperedge unlinks the record from incidence sets and insertion order.
func (h *HypergraphIncidenceMap) dropHyperedge(id string) {
	he := h.hyperedges[id]
	for _, m := range he.Members {
		if set, ok := h.incidence[m]; ok {
			delete(set, id)
		}
	}
	delete(h.hyperedges, id)
	for i, heID := range h.order {
		if heID == id {
			h.order = append(h.order[:i], h.order[i+1:]...)

			break
		}
	}
}

// HyperedgeByID returns the hyperedge record or ErrEdgeNotFound.
// Complexity: O(1)
func (h *HypergraphIncidenceMap) HyperedgeByID(id string) (*Hyperedge, error) {
	he, ok := h.hyperedges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return he, nil
}

// Hyperedges returns all hyperedge records in insertion order.
// Complexity: O(H)
func (h *HypergraphIncidenceMap) Hyperedges() []*Hyperedge {
	out := make([]*Hyperedge, 0, len(h.order))
	for _, id := range h.order {
		out = append(out, h.hyperedges[id])
	}

	return out
}

// IncidentHyperedges returns the hyperedges touching the vertex in insertion
// order. Fails with ErrVertexNotFound.
// Complexity: O(H)
func (h *HypergraphIncidenceMap) IncidentHyperedges(id string) ([]*Hyperedge, error) {
	incident, ok := h.incidence[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Hyperedge, 0, len(incident))
	for _, heID := range h.order {
		if _, hit := incident[heID]; hit {
			out = append(out, h.hyperedges[heID])
		}
	}

	return out, nil
}

// AddEdge stores the binary pair as a hyperedge over {Source, Target}.
// Complexity: O(1)
func (h *HypergraphIncidenceMap) AddEdge(e *Edge) error {
	members := []string{e.Source, e.Target}
	if e.Source == e.Target {
		members = members[:1]
	}
	_, err := h.AddHyperedge(members, e.Weight, e.Attrs)

	return err
}

// RemoveEdge deletes the oldest hyperedge whose member set is exactly the
// pair {source, target}. Fails with ErrEdgeNotFound.
// Complexity: O(H)
func (h *HypergraphIncidenceMap) RemoveEdge(source, target string) error {
	want := pairMembers(source, target)
	for _, heID := range h.order {
		he := h.hyperedges[heID]
		if membersEqual(he.Members, want) {
			h.dropHyperedge(heID)

			return nil
		}
	}

	return ErrEdgeNotFound
}

// pairMembers returns the sorted distinct member set of a binary pair.
func pairMembers(source, target string) []string {
	if source == target {
		return []string{source}
	}
	if target < source {
		return []string{target, source}
	}

	return []string{source, target}
}

func membersEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// HasVertex reports vertex membership. Complexity: O(1)
func (h *HypergraphIncidenceMap) HasVertex(id string) bool {
	_, ok := h.vertices[id]

	return ok
}

// HasEdge reports whether source and target co-occur in some hyperedge
// (clique view); a self pair matches any hyperedge with that sole member.
// Complexity: O(k) in the hyperedges incident to source.
func (h *HypergraphIncidenceMap) HasEdge(source, target string) bool {
	incident, ok := h.incidence[source]
	if !ok {
		return false
	}
	for heID := range incident {
		he := h.hyperedges[heID]
		if source == target {
			if len(he.Members) == 1 {
				return true
			}

			continue
		}
		if he.Contains(target) {
			return true
		}
	}

	return false
}

// GetVertex returns the vertex record or ErrVertexNotFound. Complexity: O(1)
func (h *HypergraphIncidenceMap) GetVertex(id string) (*Vertex, error) {
	v, ok := h.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// GetEdge returns the oldest synthesized clique edge between the pair or
// ErrEdgeNotFound.
func (h *HypergraphIncidenceMap) GetEdge(source, target string) (*Edge, error) {
	es := h.EdgesBetween(source, target)
	if len(es) == 0 {
		return nil, ErrEdgeNotFound
	}

	return es[0], nil
}

// EdgesBetween synthesizes one clique edge per hyperedge containing both
// endpoints, in hyperedge insertion order, each carrying the hyperedge's
// weight and attributes.
// Complexity: O(H)
func (h *HypergraphIncidenceMap) EdgesBetween(source, target string) []*Edge {
	incident, ok := h.incidence[source]
	if !ok {
		return nil
	}
	var out []*Edge
	for _, heID := range h.order {
		if _, hit := incident[heID]; !hit {
			continue
		}
		he := h.hyperedges[heID]
		if source == target {
			if len(he.Members) != 1 {
				continue
			}
		} else if !he.Contains(target) {
			continue
		}
		out = append(out, &Edge{Source: source, Target: target, Weight: he.Weight, Attrs: he.Attrs})
	}

	return out
}

// Neighbors returns the distinct co-members of the vertex across all its
// hyperedges, sorted ascending, the vertex itself excluded.
// Complexity: O(sum of incident hyperedge sizes + d log d)
func (h *HypergraphIncidenceMap) Neighbors(id string) ([]string, error) {
	incident, ok := h.incidence[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	seen := make(map[string]struct{})
	for heID := range incident {
		for _, m := range h.hyperedges[heID].Members {
			if m != id {
				seen[m] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all vertex records sorted by ID. Complexity: O(V log V)
func (h *HypergraphIncidenceMap) Vertices() []*Vertex {
	return sortedVertices(h.vertices)
}

// Edges returns the clique expansion: for each hyperedge in insertion order,
// one synthesized edge per unordered member pair (a lone member becomes a
// self-loop edge), each carrying the hyperedge's weight and attributes.
// Complexity: O(sum of k² over hyperedges)
func (h *HypergraphIncidenceMap) Edges() []*Edge {
	var out []*Edge
	for _, heID := range h.order {
		he := h.hyperedges[heID]
		if len(he.Members) == 1 {
			m := he.Members[0]
			out = append(out, &Edge{Source: m, Target: m, Weight: he.Weight, Attrs: he.Attrs})

			continue
		}
		for i := 0; i < len(he.Members); i++ {
			for j := i + 1; j < len(he.Members); j++ {
				out = append(out, &Edge{
					Source: he.Members[i],
					Target: he.Members[j],
					Weight: he.Weight,
					Attrs:  he.Attrs,
				})
			}
		}
	}

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1)
func (h *HypergraphIncidenceMap) VertexCount() int { return len(h.vertices) }

// EdgeCount returns the number of hyperedges (not clique pairs).
// Complexity: O(1)
func (h *HypergraphIncidenceMap) EdgeCount() int { return len(h.hyperedges) }
