package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// DefaultCountLimit is the uniqueness-test cutoff: "0, 1, or 2+" is all
// a caller ever needs.
const DefaultCountLimit = 2

// Count counts completions of b up to limit, stopping the instant the
// cap is reached so worst-case cost stays bounded. limit <= 0 selects
// DefaultCountLimit. The input board is never mutated.
func (bt *Backtracking) Count(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	if limit <= 0 {
		limit = DefaultCountLimit
	}
	ix, err := newIndex(b)
	if err != nil {
		return 0, ports.Stats{Duration: time.Since(start)}, err
	}
	s := &search{grid: b.Values, ix: ix, limit: limit}
	s.run(ctx)
	st := ports.Stats{Nodes: s.nodes, Steps: s.steps, Duration: time.Since(start)}
	if s.cancelled {
		return s.count, st, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
	}
	return s.count, st, nil
}
