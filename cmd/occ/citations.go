package main

import (
	"github.com/spf13/cobra"

	"github.com/ahmeshaf/opencitations/internal/opencitations"
)

var citationsCmd = &cobra.Command{
	Use:   "citations <doi>",
	Short: "List works that cite a given DOI",
	Long: `List the citation links pointing at a given DOI.

Each result is one citation link: its OCI, the citing and cited works,
the citation date, and self-citation flags.

Examples:
  occ citations 10.1186/1756-8722-6-59
  occ citations doi:10.1186/1756-8722-6-59 --human
  occ citations https://doi.org/10.1186/1756-8722-6-59`,
	Args: cobra.ExactArgs(1),
	RunE: runCitations,
}

func init() {
	rootCmd.AddCommand(citationsCmd)
}

// CitationListResult is the JSON output for the citations and references
// commands.
type CitationListResult struct {
	ID        string                   `json:"id"`
	Total     int                      `json:"total"`
	Citations []opencitations.Citation `json:"citations"`
}

func runCitations(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return exitWithError("loading configuration", err)
	}

	id := opencitations.NormalizeDOI(args[0])
	citations, err := client.Citations(cmd.Context(), id)
	if err != nil {
		return exitWithError("fetching citations", err)
	}

	return outputCitationList(id, citations)
}

func outputCitationList(id string, citations []opencitations.Citation) error {
	if humanOutput {
		outputHuman("%s\n", opencitations.FormatCitationList(citations))
		return nil
	}
	if citations == nil {
		citations = []opencitations.Citation{}
	}
	return outputJSON(CitationListResult{
		ID:        id,
		Total:     len(citations),
		Citations: citations,
	})
}
