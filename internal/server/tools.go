package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/ahmeshaf/opencitations/internal/opencitations"
)

// toolSpec defines a tool's metadata for declarative registration. All six
// tools are read-only lookups against the remote index, so the annotations
// are uniform.
type toolSpec struct {
	name        string
	title       string
	description string
}

var toolSpecs = map[string]toolSpec{
	"get_citation_count": {
		name:        "get_citation_count",
		title:       "Citation count",
		description: "Get the number of works that cite a given DOI. Accepts a bare DOI (10.x/y), a doi:-prefixed DOI, or a https://doi.org/ URL.",
	},
	"get_citations": {
		name:        "get_citations",
		title:       "Citing works",
		description: "List the citation links pointing at a given DOI (the works that cite it), including dates and self-citation flags.",
	},
	"get_reference_count": {
		name:        "get_reference_count",
		title:       "Reference count",
		description: "Get the number of works a given DOI cites.",
	},
	"get_references": {
		name:        "get_references",
		title:       "Referenced works",
		description: "List the citation links going out from a given DOI (the works it cites), including dates and self-citation flags.",
	},
	"get_citation_by_oci": {
		name:        "get_citation_by_oci",
		title:       "Citation by OCI",
		description: "Look up a single citation link by its Open Citation Identifier (OCI). A leading oci: prefix is accepted.",
	},
	"get_venue_citation_count": {
		name:        "get_venue_citation_count",
		title:       "Venue citation count",
		description: "Get the number of citations received by all works published in the venue with the given ISSN.",
	},
}

// DOIInput identifies a work by DOI.
type DOIInput struct {
	DOI string `json:"doi" jsonschema:"DOI of the work, e.g. 10.1186/1756-8722-6-59, doi:10.1186/1756-8722-6-59, or https://doi.org/10.1186/1756-8722-6-59"`
}

// OCIInput identifies a single citation link.
type OCIInput struct {
	OCI string `json:"oci" jsonschema:"Open Citation Identifier, e.g. 06101801781-06180334099 or oci:06101801781-06180334099"`
}

// ISSNInput identifies a venue by ISSN.
type ISSNInput struct {
	ISSN string `json:"issn" jsonschema:"ISSN of the venue, e.g. 0138-9130 or issn:0138-9130"`
}

// CountOutput is the structured result of the three count tools.
type CountOutput struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// CitationListOutput is the structured result of the two list tools.
type CitationListOutput struct {
	ID        string                   `json:"id"`
	Total     int                      `json:"total"`
	Citations []opencitations.Citation `json:"citations"`
}

// CitationOutput is the structured result of the single-citation lookup.
type CitationOutput struct {
	OCI      string                  `json:"oci"`
	Found    bool                    `json:"found"`
	Citation *opencitations.Citation `json:"citation,omitempty"`
}

// register adds all six tools to the MCP server.
func (s *Server) register(srv *mcp.Server) {
	addTool(srv, toolSpecs["get_citation_count"], s.citationCount)
	addTool(srv, toolSpecs["get_citations"], s.citations)
	addTool(srv, toolSpecs["get_reference_count"], s.referenceCount)
	addTool(srv, toolSpecs["get_references"], s.references)
	addTool(srv, toolSpecs["get_citation_by_oci"], s.citationByOCI)
	addTool(srv, toolSpecs["get_venue_citation_count"], s.venueCitationCount)
}

// addTool registers one tool with the shared read-only annotations.
func addTool[In, Out any](srv *mcp.Server, spec toolSpec, h mcp.ToolHandlerFor[In, Out]) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        spec.name,
		Description: spec.description,
		Annotations: &mcp.ToolAnnotations{
			Title:          spec.title,
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  ptr(true),
		},
	}, h)
}

func (s *Server) citationCount(ctx context.Context, _ *mcp.CallToolRequest, in DOIInput) (*mcp.CallToolResult, CountOutput, error) {
	id := opencitations.NormalizeDOI(in.DOI)
	return s.countResult(ctx, "get_citation_count", id, "Citation count for "+id, s.client.CitationCount)
}

func (s *Server) referenceCount(ctx context.Context, _ *mcp.CallToolRequest, in DOIInput) (*mcp.CallToolResult, CountOutput, error) {
	id := opencitations.NormalizeDOI(in.DOI)
	return s.countResult(ctx, "get_reference_count", id, "Reference count for "+id, s.client.ReferenceCount)
}

func (s *Server) venueCitationCount(ctx context.Context, _ *mcp.CallToolRequest, in ISSNInput) (*mcp.CallToolResult, CountOutput, error) {
	id := opencitations.NormalizeISSN(in.ISSN)
	return s.countResult(ctx, "get_venue_citation_count", id, "Venue citation count for "+id, s.client.VenueCitationCount)
}

func (s *Server) citations(ctx context.Context, _ *mcp.CallToolRequest, in DOIInput) (*mcp.CallToolResult, CitationListOutput, error) {
	return s.listResult(ctx, "get_citations", opencitations.NormalizeDOI(in.DOI), s.client.Citations)
}

func (s *Server) references(ctx context.Context, _ *mcp.CallToolRequest, in DOIInput) (*mcp.CallToolResult, CitationListOutput, error) {
	return s.listResult(ctx, "get_references", opencitations.NormalizeDOI(in.DOI), s.client.References)
}

func (s *Server) citationByOCI(ctx context.Context, _ *mcp.CallToolRequest, in OCIInput) (*mcp.CallToolResult, CitationOutput, error) {
	oci := opencitations.StripOCIPrefix(in.OCI)

	citation, err := s.client.Citation(ctx, oci)
	if err != nil {
		s.logFailure("get_citation_by_oci", oci, err)
		return nil, CitationOutput{}, err
	}

	if citation == nil {
		// An empty lookup is an absent value, not a tool failure.
		return textResult("No citation found for OCI: " + oci), CitationOutput{OCI: oci}, nil
	}

	return textResult(opencitations.FormatCitation(*citation)), CitationOutput{
		OCI:      oci,
		Found:    true,
		Citation: citation,
	}, nil
}

// countResult runs a count lookup and shapes the result. The op receives the
// already-normalized identifier; normalization is idempotent so the client's
// own pass is a no-op.
func (s *Server) countResult(ctx context.Context, tool, id, label string, op func(context.Context, string) (int, error)) (*mcp.CallToolResult, CountOutput, error) {
	n, err := op(ctx, id)
	if err != nil {
		s.logFailure(tool, id, err)
		return nil, CountOutput{}, err
	}
	return textResult(fmt.Sprintf("%s: %d", label, n)), CountOutput{ID: id, Count: n}, nil
}

// listResult runs a list lookup and shapes the result.
func (s *Server) listResult(ctx context.Context, tool, id string, op func(context.Context, string) ([]opencitations.Citation, error)) (*mcp.CallToolResult, CitationListOutput, error) {
	citations, err := op(ctx, id)
	if err != nil {
		s.logFailure(tool, id, err)
		return nil, CitationListOutput{}, err
	}
	return textResult(opencitations.FormatCitationList(citations)), CitationListOutput{
		ID:        id,
		Total:     len(citations),
		Citations: citations,
	}, nil
}

func (s *Server) logFailure(tool, id string, err error) {
	s.logger.Warn("lookup failed",
		zap.String("tool", tool),
		zap.String("id", id),
		zap.Error(err))
}

// textResult wraps a string as a text-content tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
