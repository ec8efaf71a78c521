package main

import (
	"github.com/spf13/cobra"

	"github.com/ahmeshaf/opencitations/internal/opencitations"
)

var citationCmd = &cobra.Command{
	Use:   "citation <oci>",
	Short: "Look up one citation link by OCI",
	Long: `Look up a single citation link by its Open Citation Identifier.

A leading oci: prefix is accepted and stripped. A missing citation is not
an error: the command reports found=false and exits successfully.

Examples:
  occ citation 06101801781-06180334099
  occ citation oci:06101801781-06180334099 --human`,
	Args: cobra.ExactArgs(1),
	RunE: runCitation,
}

func init() {
	rootCmd.AddCommand(citationCmd)
}

// CitationResult is the JSON output for the citation command.
type CitationResult struct {
	OCI      string                  `json:"oci"`
	Found    bool                    `json:"found"`
	Citation *opencitations.Citation `json:"citation,omitempty"`
}

func runCitation(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return exitWithError("loading configuration", err)
	}

	oci := opencitations.StripOCIPrefix(args[0])
	citation, err := client.Citation(cmd.Context(), oci)
	if err != nil {
		return exitWithError("fetching citation", err)
	}

	if humanOutput {
		if citation == nil {
			outputHuman("No citation found for OCI: %s\n", oci)
		} else {
			outputHuman("%s\n", opencitations.FormatCitation(*citation))
		}
		return nil
	}

	return outputJSON(CitationResult{
		OCI:      oci,
		Found:    citation != nil,
		Citation: citation,
	})
}
