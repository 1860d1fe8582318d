package solver

import (
	"context"
	"math/rand"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// Backtracking is a recursive solver with most-constrained-first cell
// ordering. One search core serves all modes: find-one (with or without
// a visualization callback, with ascending or randomized digit order)
// and bounded solution counting.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// search holds the state of one top-level solve/count call. The grid is
// a private copy of the caller's board; the constraint index is kept in
// lockstep with it through paired place/remove operations.
type search struct {
	grid   [domain.Size][domain.Size]uint8
	ix     index
	onStep ports.StepFunc
	rng    *rand.Rand // non-nil: digit order randomized per cell
	limit  int        // >0: counting mode, stop at limit solutions

	count     int
	nodes     int
	steps     int
	cancelled bool
}

// next selects the empty cell with the fewest candidates, ties broken by
// row-major position. ok is false when the board is full. A cell with
// zero candidates is returned immediately: the branch is dead and the
// digit loop will fall straight through to a backtrack.
func (s *search) next() (row, col int, ok bool) {
	bestR, bestC, bestN := -1, -1, domain.Size+1
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if s.grid[r][c] != 0 {
				continue
			}
			n := s.ix.candidateCount(r, c)
			if n == 0 {
				return r, c, true
			}
			if n < bestN {
				bestR, bestC, bestN = r, c, n
			}
		}
	}
	if bestR < 0 {
		return 0, 0, false
	}
	return bestR, bestC, true
}

// order returns the digit trial order for one cell: ascending, or a
// fresh permutation when the search is randomized.
func (s *search) order() [domain.Size]uint8 {
	d := [domain.Size]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if s.rng != nil {
		s.rng.Shuffle(domain.Size, func(i, j int) { d[i], d[j] = d[j], d[i] })
	}
	return d
}

// commit counts a committed place/undo event and reports it to the step
// callback, if any. A false return means the callback asked to stop.
func (s *search) commit(kind ports.StepKind, r, c int, v uint8) bool {
	s.steps++
	if s.onStep == nil {
		return true
	}
	return s.onStep(ports.Step{
		Board: domain.Board{Values: s.grid},
		Cell:  domain.CellCoord{Row: r, Col: c},
		Digit: v,
		Kind:  kind,
		Index: s.steps,
	})
}

// run is the shared recursion. It returns true when the search is done
// unwinding: a solution was found (find-one mode), the solution cap was
// reached (counting mode), or the search was cancelled. Every placement
// made on the way down is undone on the way back unless the search ends
// in a solved or cancelled state, in which case the caller either reads
// the full grid or discards it.
func (s *search) run(ctx context.Context) bool {
	if s.cancelled || ctx.Err() != nil {
		s.cancelled = true
		return true
	}
	r, c, ok := s.next()
	if !ok {
		if s.limit > 0 {
			s.count++
			return s.count >= s.limit
		}
		return true
	}
	order := s.order()
	for _, v := range order {
		s.nodes++
		if !s.ix.canPlace(r, c, v) {
			continue
		}
		s.grid[r][c] = v
		s.ix.place(r, c, v)
		if !s.commit(ports.StepPlace, r, c, v) {
			s.cancelled = true
			return true
		}
		if s.run(ctx) {
			if s.limit > 0 && !s.cancelled {
				// counting mode: the cap was reached somewhere below;
				// restore the cell before unwinding.
				s.grid[r][c] = 0
				s.ix.remove(r, c, v)
			}
			return true
		}
		s.grid[r][c] = 0
		s.ix.remove(r, c, v)
		if !s.commit(ports.StepUndo, r, c, v) {
			s.cancelled = true
			return true
		}
	}
	return false
}
