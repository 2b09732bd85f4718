// Package connectivity provides connected-component analysis and
// reachability queries over a graphs.Graph.
//
// Directed graphs are analyzed under weak connectivity: edge orientation is
// ignored when forming components, so a directed edge joins both endpoints
// into one component. HasPath, by contrast, honors orientation.
//
// All outputs are deterministic: component members sort ascending and
// components order by their smallest member.
package connectivity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/polygraph/core"
	"github.com/katalvlaran/polygraph/graphs"
)

// Sentinel errors for connectivity queries.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("connectivity: graph is nil")

	// ErrVertexNotFound is returned when a queried vertex is absent.
	// It wraps core.ErrVertexNotFound so callers can match either kind.
	ErrVertexNotFound = fmt.Errorf("connectivity: vertex not found: %w", core.ErrVertexNotFound)
)

// Components partitions the graph's vertices into weakly connected
// components. Every vertex appears in exactly one component; an isolated
// vertex forms a singleton. An empty graph yields an empty partition.
//
// Complexity: O(V + E) time plus sorting, O(V + E) space.
func Components(g graphs.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	adj := symmetrize(g)
	visited := make(map[string]bool, g.VertexCount())
	components := make([][]string, 0)

	for _, root := range g.VertexIDs() {
		if visited[root] {
			continue
		}
		comp := bfsComponent(adj, root, visited)
		sort.Strings(comp)
		components = append(components, comp)
	}
	// Roots are taken in ID order and members sort ascending, so the
	// components already order by smallest member.
	return components, nil
}

// IsConnected reports whether the graph forms a single weakly connected
// component. The empty graph is connected by convention.
func IsConnected(g graphs.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	comps, err := Components(g)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}

// HasPath reports whether target is reachable from source following edge
// orientation (every path is bidirectional on undirected graphs). A vertex
// always reaches itself. Fails with ErrVertexNotFound when either endpoint
// is absent.
//
// Complexity: O(V + E) time, O(V) space.
func HasPath(g graphs.Graph, source, target string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return false, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	if !g.HasVertex(target) {
		return false, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}
	if source == target {
		return true, nil
	}

	visited := map[string]bool{source: true}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return false, fmt.Errorf("connectivity: neighbors of %q: %w", u, err)
		}
		for _, v := range nbrs {
			if v == target {
				return true, nil
			}
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return false, nil
}

// symmetrize builds an orientation-free adjacency index from the graph's
// edge list, so weak components cost one edge scan regardless of backing.
func symmetrize(g graphs.Graph) map[string][]string {
	adj := make(map[string][]string, g.VertexCount())
	for _, e := range g.Edges() {
		if e.Source == e.Target {
			continue
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}

	return adj
}

// bfsComponent collects the component containing root over the symmetrized
// adjacency.
func bfsComponent(adj map[string][]string, root string, visited map[string]bool) []string {
	visited[root] = true
	comp := []string{root}
	queue := []string{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				comp = append(comp, v)
				queue = append(queue, v)
			}
		}
	}

	return comp
}
