package usecase

import (
	"context"
	"errors"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// Service is the facade the shells (CLI, TUI, HTTP) talk to.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Count(ctx, b, limit)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b, max)
}

// SolveResult is the terminal outcome of a streamed solve.
type SolveResult struct {
	Board *domain.Board
	Stats ports.Stats
	Err   error
}

// StreamSolve runs a visualized solve on a worker goroutine and returns
// a channel of step snapshots plus a single-value result channel. The
// solver blocks on each step send, so the consumer's read pace throttles
// the animation; the algorithm itself never sleeps. Cancelling ctx stops
// the search at the next step boundary. The step channel is closed when
// the search ends; the caller must discard any partial board state.
func (u *Service) StreamSolve(ctx context.Context, b *domain.Board) (<-chan ports.Step, <-chan SolveResult) {
	steps := make(chan ports.Step)
	result := make(chan SolveResult, 1)
	if u.Solver == nil {
		close(steps)
		result <- SolveResult{Err: errNotConfigured}
		return steps, result
	}
	go func() {
		defer close(steps)
		out, st, err := u.Solver.SolveSteps(ctx, b, func(s ports.Step) bool {
			select {
			case steps <- s:
				return true
			case <-ctx.Done():
				return false
			}
		})
		result <- SolveResult{Board: out, Stats: st, Err: err}
	}()
	return steps, result
}

// Persistence passthroughs; storage is the shell's concern.
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
