package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/tui"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Difficulty string
	Seed       int64
	Save       bool
	Line       bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Difficulty, "difficulty", "d", "medium", "easy|medium|hard|expert")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "rng seed (0 = time-based)")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "save the puzzle to the data directory")
	cmd.Flags().BoolVar(&opts.Line, "line", false, "print the 81-character line form only")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	diff, err := domain.ParseDifficulty(opts.Difficulty)
	if err != nil {
		return err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	svc := opts.service()
	p, st, err := svc.Generate(cmd.Context(), seed, diff)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	log.Debug().Int("nodes", st.Nodes).Dur("took", st.Duration).Msg("generated")

	if opts.Line {
		fmt.Fprintln(cmd.OutOrStdout(), p.Board.Line())
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderBoard(&p.Board, nil))
		fmt.Fprintf(cmd.OutOrStdout(), "difficulty %s, %d clues, seed %d\n",
			diff, p.Board.CountClues(), seed)
	}

	if opts.Save {
		if err := svc.Save(cmd.Context(), p); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved as %s\n", p.ID)
	}
	return nil
}
