package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/polygraph/bfs"
	"github.com/katalvlaran/polygraph/build"
)

// ExampleBFS traverses a path fixture and reconstructs the route to its far
// end.
func ExampleBFS() {
	g, err := build.Simple(nil, nil, build.Path(4))
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	res, err := bfs.BFS(g, "v0")
	if err != nil {
		fmt.Println("bfs:", err)

		return
	}
	fmt.Println("order:", res.Order)

	path, _ := res.PathTo("v3")
	fmt.Println("path:", path)
	// Output:
	// order: [v0 v1 v2 v3]
	// path: [v0 v1 v2 v3]
}

// ExampleWalk consumes the lazy sequence and stops early, leaving the rest
// of the frontier unexplored.
func ExampleWalk() {
	g, err := build.Simple(nil, nil, build.Star(5))
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	seq, err := bfs.Walk(g, build.CenterID)
	if err != nil {
		fmt.Println("walk:", err)

		return
	}
	for id, depth := range seq {
		fmt.Printf("%s@%d\n", id, depth)
		if depth == 1 {
			break // abandoning the sequence is free
		}
	}
	// Output:
	// Center@0
	// v0@1
}
