// Package cli wires the cobra command tree for the sudokulab binary.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"svw.info/sudokulab/internal/config"
	"svw.info/sudokulab/internal/generator"
	"svw.info/sudokulab/internal/hint"
	"svw.info/sudokulab/internal/infrastructure/storage"
	"svw.info/sudokulab/internal/solver"
	"svw.info/sudokulab/internal/usecase"
	"svw.info/sudokulab/internal/validator"
)

// RootOptions holds global flags and the loaded configuration.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Config     config.Config
}

// NewRootCommand creates the root command for the sudokulab CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "sudokulab",
		Short:         "Sudoku engine: unique-solution generator and visualized solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.Config = cfg
			setupLogging(cfg.Log.Level, opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))

	return cmd
}

func setupLogging(level string, verbose bool) {
	lvl := zerolog.InfoLevel
	switch level {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

// service assembles the engine behind its ports.
func (o *RootOptions) service() *usecase.Service {
	s := solver.NewBacktracking()
	return usecase.NewService(
		s,
		generator.NewUnique(s),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(o.Config.Storage.Dir),
	)
}
