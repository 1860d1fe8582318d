package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/generator"
	"svw.info/sudokulab/internal/hint"
	"svw.info/sudokulab/internal/ports"
	"svw.info/sudokulab/internal/solver"
	"svw.info/sudokulab/internal/validator"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s := solver.NewBacktracking()
	return NewService(s, generator.NewUnique(s), validator.New(), hint.NewSingles(), nil)
}

func sampleBoard(t *testing.T) *domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(
		"53..7...." + "6..195..." + ".98....6." +
			"8...6...3" + "4..8.3..1" + "7...2...6" +
			".6....28." + "...419..5" + "....8..79")
	require.NoError(t, err)
	return b
}

func TestServiceNotConfigured(t *testing.T) {
	var empty Service
	_, _, err := empty.Solve(context.Background(), &domain.Board{})
	assert.ErrorIs(t, err, errNotConfigured)
	err = empty.Save(context.Background(), &domain.Puzzle{})
	assert.ErrorIs(t, err, errNotConfigured)
}

func TestStreamSolveDeliversStepsAndResult(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	steps, result := svc.StreamSolve(ctx, sampleBoard(t))

	var last ports.Step
	n := 0
	for s := range steps {
		n++
		assert.Equal(t, n, s.Index)
		last = s
	}
	require.Positive(t, n)
	assert.True(t, last.Board.IsFull(), "final step should carry the completed grid")

	res := <-result
	require.NoError(t, res.Err)
	require.NotNil(t, res.Board)
	assert.True(t, res.Board.IsFull())
	assert.Equal(t, n, res.Stats.Steps)
}

func TestStreamSolveCancel(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())

	steps, result := svc.StreamSolve(ctx, sampleBoard(t))

	// consume a few frames, then abandon the solve
	for i := 0; i < 3; i++ {
		_, ok := <-steps
		require.True(t, ok)
	}
	cancel()
	for range steps {
		// drain until the worker notices the cancellation
	}
	res := <-result
	assert.ErrorIs(t, res.Err, solver.ErrCancelled)
}

func TestStreamSolveInvalidInput(t *testing.T) {
	svc := newTestService(t)
	b := &domain.Board{}
	b.Values[6][2] = 7
	b.Values[6][5] = 7

	steps, result := svc.StreamSolve(context.Background(), b)
	_, ok := <-steps
	assert.False(t, ok, "no steps for a rejected board")
	res := <-result
	assert.ErrorIs(t, res.Err, solver.ErrInvalidInput)
}
