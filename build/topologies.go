package build

import "fmt"

// CenterID is the fixed hub identifier used by Star and Wheel.
const CenterID = "Center"

// Path builds the simple path P_n (n >= 2): v0-v1-...-v(n-1).
// Complexity: O(n)
func Path(n int) Constructor {
	return func(g Target, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%w: path needs n>=2, got %d", ErrTooFewVertices, n)
		}
		if err := addRange(g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := cfg.addEdge(g, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds the simple cycle C_n (n >= 3).
// Complexity: O(n)
func Cycle(n int) Constructor {
	return func(g Target, cfg config) error {
		if n < 3 {
			return fmt.Errorf("%w: cycle needs n>=3, got %d", ErrTooFewVertices, n)
		}
		if err := addRange(g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := cfg.addEdge(g, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with hub CenterID and n-1 leaves (n >= 2).
// Complexity: O(n)
func Star(n int) Constructor {
	return func(g Target, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%w: star needs n>=2, got %d", ErrTooFewVertices, n)
		}
		if err := g.AddVertex(CenterID); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return err
			}
			if err := cfg.addEdge(g, CenterID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n (n >= 4): the cycle C_{n-1} plus CenterID spoked to every
// rim vertex.
// Complexity: O(n)
func Wheel(n int) Constructor {
	return func(g Target, cfg config) error {
		if n < 4 {
			return fmt.Errorf("%w: wheel needs n>=4, got %d", ErrTooFewVertices, n)
		}
		rim := n - 1
		if err := Cycle(rim)(g, cfg); err != nil {
			return err
		}
		if err := g.AddVertex(CenterID); err != nil {
			return err
		}
		for i := 0; i < rim; i++ {
			if err := cfg.addEdge(g, CenterID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n (n >= 1): every vertex pair connected.
// Complexity: O(n^2)
func Complete(n int) Constructor {
	return func(g Target, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%w: complete needs n>=1, got %d", ErrTooFewVertices, n)
		}
		if err := addRange(g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.addEdge(g, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2} with side labels from the partition
// prefixes ("L0".."L<n1-1>" against "R0".."R<n2-1>" by default).
// Complexity: O(n1 * n2)
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g Target, cfg config) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%w: bipartite needs n1,n2>=1, got %d,%d", ErrTooFewVertices, n1, n2)
		}
		left := make([]string, n1)
		for i := range left {
			left[i] = fmt.Sprintf("%s%d", cfg.leftPrefix, i)
			if err := g.AddVertex(left[i]); err != nil {
				return err
			}
		}
		right := make([]string, n2)
		for i := range right {
			right[i] = fmt.Sprintf("%s%d", cfg.rightPrefix, i)
			if err := g.AddVertex(right[i]); err != nil {
				return err
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := cfg.addEdge(g, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows x cols 4-neighborhood lattice with IDs "r,c", emitted
// row-major.
// Complexity: O(rows * cols)
func Grid(rows, cols int) Constructor {
	return func(g Target, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%w: grid needs rows,cols>=1, got %dx%d", ErrTooFewVertices, rows, cols)
		}
		id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(id(r, c)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := cfg.addEdge(g, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.addEdge(g, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdos-Renyi style graph: each vertex pair (ordered
// pair when the target is directed) gets an edge with probability p. Requires
// a seeded source; deterministic per seed.
// Complexity: O(n^2)
func RandomSparse(n int, p float64) Constructor {
	return func(g Target, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%w: random sparse needs n>=1, got %d", ErrTooFewVertices, n)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %v", ErrInvalidProbability, p)
		}
		if cfg.rng == nil {
			return ErrRandRequired
		}
		if err := addRange(g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!g.Directed() && j < i) {
					continue
				}
				if cfg.rng.Float64() < p {
					if err := cfg.addEdge(g, cfg.idFn(i), cfg.idFn(j)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// addRange registers vertices idFn(0)..idFn(n-1).
func addRange(g Target, cfg config, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}
