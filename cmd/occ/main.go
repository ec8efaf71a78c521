// Package main provides the occ CLI entry point.
package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ahmeshaf/opencitations/internal/config"
	"github.com/ahmeshaf/opencitations/internal/opencitations"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// accessTokenFlag is the --token flag value
var accessTokenFlag string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "occ",
	Short: "OpenCitations lookup tools",
	Long: `occ looks up citation data in the OpenCitations Index.

It resolves citation counts, citing and cited works, and single citation
links by DOI, ISSN, or OCI, and can serve the same lookups as MCP tools
over stdin/stdout for language-model hosts.

All lookup commands output JSON by default for easy integration with
scripts and agents. Use --human for readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for OPENCITATIONS_ACCESS_TOKEN)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&accessTokenFlag, "token", "", "OpenCitations access token (overrides environment and config file)")
	rootCmd.Version = Version
}

// newClient builds an OpenCitations client from the flag, environment, and
// global config file, in that precedence order.
func newClient(extra ...opencitations.ClientOption) (*opencitations.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	global, err := config.LoadGlobalConfig()
	if err != nil {
		return nil, err
	}

	opts := []opencitations.ClientOption{
		opencitations.WithHTTPClient(&http.Client{Timeout: cfg.Timeout()}),
	}

	if token := config.ResolveToken(accessTokenFlag, cfg.AccessToken, global.AccessToken); token != "" {
		opts = append(opts, opencitations.WithAccessToken(token))
	}
	base := cfg.BaseURL
	if base == "" {
		base = global.BaseURL
	}
	if base != "" {
		opts = append(opts, opencitations.WithBaseURL(base))
	}

	return opencitations.NewClient(append(opts, extra...)...), nil
}
