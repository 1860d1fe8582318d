package solver

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// The classic solvable Sudoku with a unique solution.
const sampleLine = "53..7...." + "6..195..." + ".98....6." +
	"8...6...3" + "4..8.3..1" + "7...2...6" +
	".6....28." + "...419..5" + "....8..79"

// Legal but unsatisfiable: no duplicates anywhere, yet r0c0 sees
// 1,2,3,4 in its row, 5,6,7,8 in its box and 9 in its column.
const deadLine = ".1234...." + ".56......" + ".78......" +
	"9........" + "........." + "........." +
	"........." + "........." + "........."

func newTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func mustBoard(t *testing.T, line string) *domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(line)
	require.NoError(t, err)
	return b
}

func requireLegalFull(t *testing.T, b *domain.Board) {
	t.Helper()
	require.True(t, b.IsFull())
	_, err := newIndex(b)
	require.NoError(t, err, "solution violates row/col/box uniqueness")
}

func TestSolveSample(t *testing.T) {
	in := mustBoard(t, sampleLine)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := NewBacktracking().Solve(ctx, in)
	require.NoError(t, err)
	requireLegalFull(t, out)

	// givens are preserved
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if v := in.Values[r][c]; v != 0 {
				assert.Equal(t, v, out.Values[r][c], "given at r%d c%d changed", r, c)
			}
		}
	}
	assert.Less(t, st.Duration, time.Second)
	t.Logf("solved in %v, %d nodes", st.Duration, st.Nodes)
}

// The sample puzzle has exactly one solution, so any correct solver
// must reproduce the known grid.
func TestSolveSampleGolden(t *testing.T) {
	out, _, err := NewBacktracking().Solve(context.Background(), mustBoard(t, sampleLine))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "sample_solution", []byte(out.String()))
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	in := mustBoard(t, sampleLine)
	before := in.Clone()

	_, _, err := NewBacktracking().Solve(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, in.Equal(before), "input board was mutated")
}

func TestSolveIdempotentOnSolvedBoard(t *testing.T) {
	bt := NewBacktracking()
	solved, _, err := bt.Solve(context.Background(), mustBoard(t, sampleLine))
	require.NoError(t, err)

	again, st, err := bt.Solve(context.Background(), solved)
	require.NoError(t, err)
	assert.True(t, solved.Equal(again))
	assert.Zero(t, st.Steps, "a full board needs no search steps")
}

func TestSolveUnsolvable(t *testing.T) {
	_, _, err := NewBacktracking().Solve(context.Background(), mustBoard(t, deadLine))
	require.ErrorIs(t, err, ErrUnsolvable)
}

// A duplicate in a unit is rejected before any search work happens.
func TestSolveRejectsDuplicateBeforeSearch(t *testing.T) {
	b := &domain.Board{}
	b.Values[4][1] = 7
	b.Values[4][6] = 7

	_, st, err := NewBacktracking().Solve(context.Background(), b)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, st.Nodes)
	assert.Zero(t, st.Steps)
}

// With ascending digit order and no randomization the empty board
// solves to one fixed canonical grid.
func TestSolveEmptyBoardCanonical(t *testing.T) {
	bt := NewBacktracking()
	first, _, err := bt.Solve(context.Background(), &domain.Board{})
	require.NoError(t, err)
	requireLegalFull(t, first)

	assert.Equal(t, [domain.Size]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}, first.Values[0])

	second, _, err := bt.Solve(context.Background(), &domain.Board{})
	require.NoError(t, err)
	assert.True(t, first.Equal(second), "canonical solve must be deterministic")
}

func TestSolveRandomProducesVariedFullGrids(t *testing.T) {
	bt := NewBacktracking()
	a, _, err := bt.SolveRandom(context.Background(), &domain.Board{}, newTestRNG(1))
	require.NoError(t, err)
	requireLegalFull(t, a)

	b, _, err := bt.SolveRandom(context.Background(), &domain.Board{}, newTestRNG(2))
	require.NoError(t, err)
	requireLegalFull(t, b)

	assert.False(t, a.Equal(b), "different seeds should give different grids")
}

func TestSolveStepsEmitsPairedEvents(t *testing.T) {
	in := mustBoard(t, sampleLine)
	prev := in.Values
	lastIndex := 0

	out, st, err := NewBacktracking().SolveSteps(context.Background(), in, func(s ports.Step) bool {
		require.Equal(t, lastIndex+1, s.Index, "step counter must increase by one")
		lastIndex = s.Index

		// exactly one cell differs from the previous snapshot
		diff := 0
		for r := 0; r < domain.Size; r++ {
			for c := 0; c < domain.Size; c++ {
				if prev[r][c] != s.Board.Values[r][c] {
					diff++
					require.Equal(t, s.Cell, domain.CellCoord{Row: r, Col: c})
				}
			}
		}
		require.Equal(t, 1, diff)

		at := s.Board.Values[s.Cell.Row][s.Cell.Col]
		if s.Kind == ports.StepPlace {
			require.Equal(t, s.Digit, at)
		} else {
			require.Zero(t, at, "undo must restore the cell to empty")
		}
		prev = s.Board.Values
		return true
	})
	require.NoError(t, err)
	requireLegalFull(t, out)
	assert.Equal(t, lastIndex, st.Steps)
	assert.Positive(t, st.Steps)
}

func TestSolveStepsCancellation(t *testing.T) {
	in := mustBoard(t, sampleLine)
	before := in.Clone()
	seen := 0

	_, _, err := NewBacktracking().SolveSteps(context.Background(), in, func(ports.Step) bool {
		seen++
		return seen < 5
	})
	require.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, 5, seen)
	assert.True(t, in.Equal(before), "cancelled search leaked state into the caller's board")
}

func TestSolveContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewBacktracking().Solve(ctx, mustBoard(t, sampleLine))
	require.ErrorIs(t, err, ErrCancelled)
}
