package solver

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// Solve finds one completion of b with ascending digit order. The input
// board is never mutated. Outcomes: the solved board, ErrInvalidInput
// (rejected before search), ErrUnsolvable, or ErrCancelled (context).
func (bt *Backtracking) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	return bt.solve(ctx, b, nil, nil)
}

// SolveSteps is Solve with a visualization callback: fn runs synchronously
// after every committed placement and every backtrack-undo, receiving a
// board snapshot and a monotonically increasing step index. fn returning
// false aborts the search with ErrCancelled; the partial state is dropped.
func (bt *Backtracking) SolveSteps(ctx context.Context, b *domain.Board, fn ports.StepFunc) (*domain.Board, ports.Stats, error) {
	return bt.solve(ctx, b, fn, nil)
}

// SolveRandom is Solve with the digit trial order permuted per cell,
// used to grow varied full grids from an empty board. Cell selection
// stays most-constrained-first to bound search cost.
func (bt *Backtracking) SolveRandom(ctx context.Context, b *domain.Board, rng *rand.Rand) (*domain.Board, ports.Stats, error) {
	return bt.solve(ctx, b, nil, rng)
}

func (bt *Backtracking) solve(ctx context.Context, b *domain.Board, fn ports.StepFunc, rng *rand.Rand) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	ix, err := newIndex(b)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	s := &search{grid: b.Values, ix: ix, onStep: fn, rng: rng}
	done := s.run(ctx)
	st := ports.Stats{Nodes: s.nodes, Steps: s.steps, Duration: time.Since(start)}
	switch {
	case s.cancelled:
		if cause := ctx.Err(); cause != nil {
			return nil, st, fmt.Errorf("%w: %v", ErrCancelled, cause)
		}
		return nil, st, ErrCancelled
	case !done:
		return nil, st, ErrUnsolvable
	}
	return &domain.Board{Values: s.grid, Fixed: b.Fixed}, st, nil
}
