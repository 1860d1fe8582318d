package ports

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudokulab/internal/domain"
)

// Stats captures the cost of one solve/generate operation.
type Stats struct {
	Nodes    int           // candidate placements attempted
	Steps    int           // committed place/undo events
	Duration time.Duration
}

// StepKind distinguishes the two committed mutations a search makes.
type StepKind int

const (
	StepPlace StepKind = iota
	StepUndo
)

func (k StepKind) String() string {
	if k == StepPlace {
		return "place"
	}
	return "undo"
}

// Step is one committed search event delivered to a visualization callback.
// Board is a snapshot; the receiver may keep it.
type Step struct {
	Board domain.Board     `json:"board"`
	Cell  domain.CellCoord `json:"cell"`
	Digit uint8            `json:"digit"`
	Kind  StepKind         `json:"kind"`
	Index int              `json:"index"` // monotonically increasing per search
}

// StepFunc is invoked synchronously after every committed placement and
// every backtrack-undo. Returning false cancels the search.
type StepFunc func(Step) bool

// Solver runs backtracking search over a board.
//
// Solve, SolveSteps and SolveRandom find one completion; Count counts
// completions up to limit, short-circuiting once the cap is reached.
// None of them mutate the input board.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	SolveSteps(ctx context.Context, b *domain.Board, fn StepFunc) (*domain.Board, Stats, error)
	SolveRandom(ctx context.Context, b *domain.Board, rng *rand.Rand) (*domain.Board, Stats, error)
	Count(ctx context.Context, b *domain.Board, limit int) (int, Stats, error)
}

// Generator creates puzzles with a provably unique solution.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast row/col/box duplicate checks.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
