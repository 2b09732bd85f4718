package paths_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polygraph/graphs"
	"github.com/katalvlaran/polygraph/paths"
)

// ExampleDijkstra routes around a heavy direct edge: the two-hop detour
// through B is cheaper than A-C at weight 20.
func ExampleDijkstra() {
	g, _ := graphs.NewSimpleGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("A", "B", graphs.WithWeight(10))
	_ = g.AddEdge("B", "C", graphs.WithWeight(5))
	_ = g.AddEdge("A", "C", graphs.WithWeight(20))

	res, err := paths.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("dijkstra:", err)

		return
	}
	fmt.Printf("dist[C]=%g\n", res.Dist["C"])
	route, _ := res.PathTo("C")
	fmt.Println("route:", route)
	// Output:
	// dist[C]=15
	// route: [A B C]
}

// ExampleBellmanFord shows negative-cycle detection on the smallest possible
// offender.
func ExampleBellmanFord() {
	g, _ := graphs.NewSimpleGraph(graphs.WithDirected(true))
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	_ = g.AddEdge("A", "B", graphs.WithWeight(1))
	_ = g.AddEdge("B", "A", graphs.WithWeight(-2))

	_, err := paths.BellmanFord(g, "A")
	fmt.Println(errors.Is(err, paths.ErrNegativeCycle))
	// Output:
	// true
}
