package main

import (
	"github.com/spf13/cobra"

	"github.com/ahmeshaf/opencitations/internal/opencitations"
)

var referencesCmd = &cobra.Command{
	Use:   "references <doi>",
	Short: "List works a given DOI cites",
	Long: `List the citation links going out from a given DOI.

Each result is one citation link from the given work to a work it cites.

Examples:
  occ references 10.1186/1756-8722-6-59
  occ references doi:10.1186/1756-8722-6-59 --human`,
	Args: cobra.ExactArgs(1),
	RunE: runReferences,
}

func init() {
	rootCmd.AddCommand(referencesCmd)
}

func runReferences(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return exitWithError("loading configuration", err)
	}

	id := opencitations.NormalizeDOI(args[0])
	references, err := client.References(cmd.Context(), id)
	if err != nil {
		return exitWithError("fetching references", err)
	}

	return outputCitationList(id, references)
}
