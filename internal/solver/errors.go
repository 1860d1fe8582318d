package solver

import "errors"

// Search outcomes. These are defined results, not internal failures;
// the shell maps them to user-facing messages with errors.Is.
var (
	// ErrInvalidInput marks a board rejected before any search work:
	// an out-of-range value or a duplicate digit in a row, column or box.
	ErrInvalidInput = errors.New("invalid board")

	// ErrUnsolvable marks a legal board with no completion.
	ErrUnsolvable = errors.New("board has no solution")

	// ErrCancelled marks a search aborted by its step callback or context.
	// The partial board is discarded.
	ErrCancelled = errors.New("search cancelled")
)
