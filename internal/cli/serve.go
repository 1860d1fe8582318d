package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudokulab/internal/adapters/http"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine as a JSON API",
		Long: `Serve the engine as a JSON API.

Endpoints under /api: generate, solve, solve/stream (SSE), validate,
hint, save, load, list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = rootOpts.Config.Server.Addr
			}
			if !rootOpts.Verbose {
				gin.SetMode(gin.ReleaseMode)
			}
			e := gin.Default()
			httpadapter.New(rootOpts.service()).Register(e)
			log.Info().Str("addr", addr).Str("data", rootOpts.Config.Storage.Dir).Msg("listening")
			return e.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}
