package scoring

import "context"

// Scorer maps a pair of strings to a similarity score in [0, 1], higher
// meaning more similar. Implementations may be network-bound with no
// bounded latency; callers must treat Score as a blocking external call
// and must not hold any lock across it.
type Scorer interface {
	Score(ctx context.Context, a, b string) (float64, error)
}
