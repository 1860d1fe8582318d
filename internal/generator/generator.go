// Package generator produces Sudoku puzzles whose unique solution is
// guaranteed by construction: clues are only removed while a bounded
// solution count stays at exactly one.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// uniquenessLimit is the solution-count cutoff for removal tests:
// only "exactly one" vs "two or more" matters.
const uniquenessLimit = 2

// UniqueGenerator carves puzzles out of a full random solution using the
// provided solver for uniqueness checks.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUnique(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

// clueRange maps a difficulty to its target clue-count band. The bands
// are a fixed policy: monotonic (harder means fewer clues) and
// non-overlapping at the boundaries.
func clueRange(d domain.Difficulty) (lo, hi int) {
	switch d {
	case domain.Easy:
		return 46, 50
	case domain.Hard:
		return 30, 35
	case domain.Expert:
		return 22, 29
	default:
		return 36, 45 // Medium
	}
}

// Generate builds a full random solution from seed, then removes clues
// in shuffled order, keeping each removal only if the board still has
// exactly one solution. It stops at the difficulty's clue target or when
// every remaining removal would break uniqueness, and re-verifies the
// final board before returning it.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	full, st, err := g.Solver.SolveRandom(ctx, &domain.Board{}, rng)
	if err != nil {
		// An empty board always has completions; anything else here is
		// cancellation or a solver defect.
		return nil, st, fmt.Errorf("fill full grid: %w", err)
	}
	nodes := st.Nodes

	work := full.Clone()
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			work.Fixed[r][c] = true
		}
	}

	lo, hi := clueRange(diff)
	target := lo + rng.Intn(hi-lo+1)
	clues := domain.Cells

	// Remove clues in shuffled passes until the target is reached or a
	// whole pass finds no removal that preserves uniqueness.
	for clues > target {
		removed := false
		for _, pos := range rng.Perm(domain.Cells) {
			if clues <= target {
				break
			}
			r, c := pos/domain.Size, pos%domain.Size
			if work.Values[r][c] == 0 {
				continue
			}
			old := work.Values[r][c]
			work.Values[r][c] = 0
			work.Fixed[r][c] = false

			n, cst, err := g.Solver.Count(ctx, work, uniquenessLimit)
			nodes += cst.Nodes
			if err != nil {
				return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
			}
			if n != 1 {
				work.Values[r][c] = old
				work.Fixed[r][c] = true
				continue
			}
			clues--
			removed = true
		}
		if !removed {
			break
		}
	}

	n, cst, err := g.Solver.Count(ctx, work, uniquenessLimit)
	nodes += cst.Nodes
	if err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	if n != 1 {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)},
			fmt.Errorf("generator defect: final board has %d solutions", n)
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      *work,
		Solution:   *full,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
