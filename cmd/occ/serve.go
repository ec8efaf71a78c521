package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ahmeshaf/opencitations/internal/opencitations"
	"github.com/ahmeshaf/opencitations/internal/server"
)

var serveVerbose bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lookups as MCP tools on stdin/stdout",
	Long: `Serve the OpenCitations lookups as MCP tools over stdio.

The process speaks the Model Context Protocol on stdin/stdout for a
language-model host; logs go to stderr so the protocol stream stays
clean. The access token is resolved from --token, the environment, and
the global config file, in that order.

Example host configuration:
  occ serve
  occ serve --token YOUR-ACCESS-TOKEN --verbose`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Log every API request")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := newServeLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	client, err := newClient(opencitations.WithLogger(logger))
	if err != nil {
		return err
	}

	return server.New(client, logger).Run(cmd.Context())
}

// newServeLogger builds a zap logger writing to stderr. Stdout belongs to
// the protocol stream and must stay clean.
func newServeLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if serveVerbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
