package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gauss/internal/server"
)

// serveCommand starts the HTTP API and blocks until the context is cancelled.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		maxDim  int
		maxBody int64
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the elimination engine over HTTP",
		Long: `Serve the elimination engine over HTTP.

Endpoints: POST /v1/reduce, POST /v1/solve, POST /v1/inverse, GET /healthz
and GET /metrics (Prometheus).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := server.New(loggerFromContext(cmd.Context()),
				server.WithMaxDim(maxDim),
				server.WithMaxBody(maxBody),
			)
			return s.ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().IntVar(&maxDim, "max-dim", server.DefaultMaxDim, "largest accepted row or column count")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBody, "request body limit in bytes")
	return cmd
}
