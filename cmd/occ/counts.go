package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ahmeshaf/opencitations/internal/opencitations"
)

var countCmd = &cobra.Command{
	Use:   "count <doi>",
	Short: "Count works that cite a given DOI",
	Long: `Count the works that cite a given DOI.

Examples:
  occ count 10.1186/1756-8722-6-59
  occ count https://doi.org/10.1186/1756-8722-6-59 --human`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCount(cmd, opencitations.NormalizeDOI(args[0]), "citations",
			func(ctx context.Context, c *opencitations.Client, id string) (int, error) {
				return c.CitationCount(ctx, id)
			})
	},
}

var refCountCmd = &cobra.Command{
	Use:   "refcount <doi>",
	Short: "Count works a given DOI cites",
	Long: `Count the works a given DOI cites.

Examples:
  occ refcount 10.1186/1756-8722-6-59`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCount(cmd, opencitations.NormalizeDOI(args[0]), "references",
			func(ctx context.Context, c *opencitations.Client, id string) (int, error) {
				return c.ReferenceCount(ctx, id)
			})
	},
}

var venueCountCmd = &cobra.Command{
	Use:   "venue-count <issn>",
	Short: "Count citations received by a venue",
	Long: `Count the citations received by all works published in the venue
with the given ISSN.

Examples:
  occ venue-count 0138-9130
  occ venue-count issn:0138-9130 --human`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCount(cmd, opencitations.NormalizeISSN(args[0]), "citations",
			func(ctx context.Context, c *opencitations.Client, id string) (int, error) {
				return c.VenueCitationCount(ctx, id)
			})
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(refCountCmd)
	rootCmd.AddCommand(venueCountCmd)
}

// CountResult is the JSON output for the count commands.
type CountResult struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func runCount(cmd *cobra.Command, id, noun string, op func(context.Context, *opencitations.Client, string) (int, error)) error {
	client, err := newClient()
	if err != nil {
		return exitWithError("loading configuration", err)
	}

	n, err := op(cmd.Context(), client, id)
	if err != nil {
		return exitWithError("fetching count", err)
	}

	if humanOutput {
		outputHuman("%s: %d %s\n", id, n, noun)
		return nil
	}
	return outputJSON(CountResult{ID: id, Count: n})
}
