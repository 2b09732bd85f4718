package dfs

import (
	"fmt"

	"github.com/katalvlaran/polygraph/graphs"
)

// frame is one explicit-stack entry: a vertex, its depth, and a cursor into
// its sorted neighbor list.
type frame struct {
	id    string
	depth int
	nbrs  []string
	next  int
}

// walker encapsulates mutable DFS state. The traversal is iterative over an
// explicit frame stack, so arbitrarily deep graphs cannot overflow the
// goroutine stack; neighbor lists are sorted, so the discovery order matches
// what ascending-order recursion would produce.
type walker struct {
	graph   graphs.Graph
	opts    Options
	stack   []frame
	visited map[string]bool
	res     *Result
}

// DFS performs depth-first search on g starting from startID, applying any
// number of functional Options. Edge weights are ignored. With
// WithFullTraversal the search restarts from every unvisited vertex in ID
// order and startID may be empty.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any hook error.
//
// Complexity: O(V + E) time, O(V) space.
func DFS(g graphs.Graph, startID string, opts ...Option) (*Result, error) {
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
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	if o.FullTraversal {
		for _, root := range g.VertexIDs() {
			if w.visited[root] {
				continue
			}
			if err := w.explore(root); err != nil {
				return w.res, err
			}
		}

		return w.res, nil
	}

	return w.res, w.explore(startID)
}

// explore runs one DFS tree rooted at root over the explicit stack.
func (w *walker) explore(root string) error {
	if err := w.discover(root, 0, ""); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.nbrs) {
			w.stack = w.stack[:len(w.stack)-1]
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(top.id); err != nil {
					return fmt.Errorf("dfs: OnExit error at %q: %w", top.id, err)
				}
			}

			continue
		}
		nbr := top.nbrs[top.next]
		top.next++

		if w.visited[nbr] || !w.opts.FilterNeighbor(top.id, nbr) {
			continue
		}
		nextDepth := top.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if err := w.discover(nbr, nextDepth, top.id); err != nil {
			return err
		}
	}

	return nil
}

// discover marks id visited, records preorder bookkeeping, fires OnVisit,
// and pushes the vertex's frame.
func (w *walker) discover(id string, depth int, parent string) error {
	w.visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %q: %w", id, err)
		}
	}
	nbrs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbrs: nbrs})

	return nil
}
