package paths

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polygraph/graphs"
)

// relaxable is one directed relaxation arc. Undirected edges expand into two
// arcs, which also makes any undirected negative edge an immediate negative
// cycle (u→v→u), matching the mathematical definition.
type relaxable struct {
	from, to string
	weight   float64
}

// BellmanFord computes single-source shortest distances on graphs that may
// carry negative edge weights. It runs |V|-1 relaxation rounds over every
// edge (parallels included, so the lightest parallel wins) followed by one
// verification round; an improvement there proves a reachable negative cycle
// and fails with ErrNegativeCycle naming the cycle's vertices.
//
// Unreachable vertices are absent from the Result.
//
// Complexity: O(V·E) time, O(V + E) space.
func BellmanFord(g graphs.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	arcs := expandArcs(g)
	res := &Result{
		Source: source,
		Dist:   map[string]float64{source: 0},
		Prev:   make(map[string]string, g.VertexCount()),
	}

	rounds := g.VertexCount() - 1
	for i := 0; i < rounds; i++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		improved := false
		for _, a := range arcs {
			if relax(res, a) {
				improved = true
			}
		}
		if !improved {
			break // fixed point reached early
		}
	}

	// Verification round: any further improvement means a negative cycle.
	for _, a := range arcs {
		du, ok := res.Dist[a.from]
		if !ok {
			continue
		}
		if dv, seen := res.Dist[a.to]; !seen || du+a.weight < dv {
			cycle := extractCycle(res.Prev, a.to, g.VertexCount())

			return nil, fmt.Errorf("%w: %v", ErrNegativeCycle, cycle)
		}
	}

	return res, nil
}

// relax applies one arc, returning whether it improved the target.
func relax(res *Result, a relaxable) bool {
	du, ok := res.Dist[a.from]
	if !ok {
		return false
	}
	cand := du + a.weight
	if dv, seen := res.Dist[a.to]; seen && cand >= dv {
		return false
	}
	res.Dist[a.to] = cand
	res.Prev[a.to] = a.from

	return true
}

// expandArcs flattens the graph's edges into directed relaxation arcs,
// mirroring each undirected edge.
func expandArcs(g graphs.Graph) []relaxable {
	edges := g.Edges()
	arcs := make([]relaxable, 0, 2*len(edges))
	for _, e := range edges {
		arcs = append(arcs, relaxable{from: e.Source, to: e.Target, weight: e.Weight})
		if !g.Directed() && e.Source != e.Target {
			arcs = append(arcs, relaxable{from: e.Target, to: e.Source, weight: e.Weight})
		}
	}

	return arcs
}

// extractCycle walks predecessor links from a vertex the verification round
// still improved. |V| hops land inside the cycle; a second walk collects it.
// The cycle is rotated to start at its smallest vertex ID so the error
// message is deterministic.
func extractCycle(prev map[string]string, start string, vertexCount int) []string {
	cur := start
	for i := 0; i < vertexCount; i++ {
		p, ok := prev[cur]
		if !ok {
			return []string{start}
		}
		cur = p
	}
	seen := map[string]bool{}
	var cycle []string
	for !seen[cur] {
		seen[cur] = true
		cycle = append(cycle, cur)
		cur = prev[cur]
	}
	// The walk collected the cycle in predecessor (reverse) order.
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}
	rotateToMin(cycle)

	return cycle
}

// rotateToMin rotates the cycle in place so it starts at the smallest ID.
func rotateToMin(cycle []string) {
	if len(cycle) == 0 {
		return
	}
	min := 0
	for i, id := range cycle {
		if id < cycle[min] {
			min = i
		}
	}
	if min == 0 {
		return
	}
	rotated := append(append([]string{}, cycle[min:]...), cycle[:min]...)
	copy(cycle, rotated)
}

// Reachable reports the IDs the result reached, sorted ascending.
func (r *Result) Reachable() []string {
	out := make([]string, 0, len(r.Dist))
	for id := range r.Dist {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
