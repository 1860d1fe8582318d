package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/solver"
	"svw.info/sudokulab/internal/tui"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Animate bool
	Delay   time.Duration
	Line    bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <board|->",
		Short: "Solve a board given as an 81-character line",
		Long: `Solve a board given as an 81-character row-major line ('.' or '0'
for empty cells), or read the line from stdin when the argument is '-'.

Example:
  sudokulab solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Animate, "animate", false, "animate the search in the terminal")
	cmd.Flags().DurationVar(&opts.Delay, "delay", 40*time.Millisecond, "frame delay during animation")
	cmd.Flags().BoolVar(&opts.Line, "line", false, "print the solution as an 81-character line")

	return cmd
}

func runSolve(opts *SolveOptions, arg string, cmd *cobra.Command) error {
	line := arg
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		line = string(data)
	}
	b, err := domain.ParseBoard(line)
	if err != nil {
		return err
	}

	svc := opts.service()
	if opts.Animate {
		return tui.Run(cmd.Context(), svc, b, opts.Delay)
	}

	out, st, err := svc.Solve(cmd.Context(), b)
	switch {
	case errors.Is(err, solver.ErrInvalidInput):
		return fmt.Errorf("board rejected: %w", err)
	case errors.Is(err, solver.ErrUnsolvable):
		return errors.New("this board has no solution")
	case err != nil:
		return err
	}
	log.Debug().Int("nodes", st.Nodes).Dur("took", st.Duration).Msg("solved")

	if opts.Line {
		fmt.Fprintln(cmd.OutOrStdout(), out.Line())
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderBoard(out, nil))
		fmt.Fprintf(cmd.OutOrStdout(), "solved in %v, %d nodes\n", st.Duration.Round(time.Millisecond), st.Nodes)
	}
	return nil
}
