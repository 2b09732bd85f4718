package convert

// MergeStrategy decides how the weights of parallel edges collapse into the
// single edge a simple graph can hold.
type MergeStrategy uint8

const (
	// MergeMin keeps the lightest parallel. The default, matching the
	// shortest-path convention that the lighter edge wins.
	MergeMin MergeStrategy = iota + 1

	// MergeMax keeps the heaviest parallel.
	MergeMax

	// MergeSum adds the parallels' weights.
	MergeSum

	// MergeMean averages the parallels' weights.
	MergeMean
)

// String returns the strategy's stable name.
func (m MergeStrategy) String() string {
	switch m {
	case MergeMin:
		return "min"
	case MergeMax:
		return "max"
	case MergeSum:
		return "sum"
	case MergeMean:
		return "mean"
	default:
		return "unknown"
	}
}

func (m MergeStrategy) valid() bool {
	return m >= MergeMin && m <= MergeMean
}

// Option adjusts a downgrade conversion.
type Option func(*options)

type options struct {
	merge MergeStrategy
}

// WithMergeStrategy selects how parallel-edge weights collapse.
// An unknown value surfaces as ErrUnknownMergeStrategy when the
// conversion runs.
func WithMergeStrategy(m MergeStrategy) Option {
	return func(o *options) { o.merge = m }
}

// mergeWeights folds the weights of one parallel group. weights is never
// empty and arrives in insertion order.
func mergeWeights(m MergeStrategy, weights []float64) float64 {
	acc := weights[0]
	switch m {
	case MergeMax:
		for _, w := range weights[1:] {
			if w > acc {
				acc = w
			}
		}
	case MergeSum:
		for _, w := range weights[1:] {
			acc += w
		}
	case MergeMean:
		for _, w := range weights[1:] {
			acc += w
		}
		acc /= float64(len(weights))
	default: // MergeMin
		for _, w := range weights[1:] {
			if w < acc {
				acc = w
			}
		}
	}

	return acc
}
