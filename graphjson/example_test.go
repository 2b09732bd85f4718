package graphjson_test

import (
	"fmt"

	"github.com/katalvlaran/polygraph/graphjson"
	"github.com/katalvlaran/polygraph/graphs"
)

// Example saves a tiny graph to JSON and loads it back.
func Example() {
	g, _ := graphs.NewSimpleGraph()
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	_ = g.AddEdge("A", "B", graphs.WithWeight(2.5))

	data, err := graphjson.Marshal(g)
	if err != nil {
		fmt.Println("save:", err)

		return
	}
	fmt.Println(string(data))

	loaded, err := graphjson.Unmarshal(data)
	if err != nil {
		fmt.Println("load:", err)

		return
	}
	fmt.Println("edges:", loaded.EdgeCount())
	// Output:
	// {"type":"simple_graph","directed":false,"representation":"adjacency_list","vertices":[{"id":"A"},{"id":"B"}],"edges":[{"source":"A","target":"B","weight":2.5}]}
	// edges: 1
}
