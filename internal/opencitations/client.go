// Package opencitations is a client for the OpenCitations Index API.
//
// It covers the six lookup endpoints (citation/reference counts, citation
// and reference lists, single-edge lookup by OCI, venue citation count),
// identifier normalization, and human-readable formatting of the results.
// The client holds no state between calls and applies no retry or rate
// limiting; every failure is surfaced to the caller as-is.
package opencitations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

const (
	// BaseURL is the OpenCitations Index API base URL.
	BaseURL = "https://opencitations.net/index/api/v2"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second
)

// Client is an HTTP client for the OpenCitations Index API. It is safe for
// concurrent use.
type Client struct {
	httpClient  *http.Client
	accessToken string
	baseURL     string
	logger      *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAccessToken sets the OpenCitations access token. The token is sent
// verbatim in the Authorization header (the API uses no "Bearer " scheme).
func WithAccessToken(token string) ClientOption {
	return func(c *Client) {
		c.accessToken = token
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithLogger sets a structured logger for request tracing.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new OpenCitations API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    BaseURL,
		logger:     zap.NewNop(),
	}

	// Check for an access token in the environment
	if token := os.Getenv("OPENCITATIONS_ACCESS_TOKEN"); token != "" {
		c.accessToken = token
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get issues a GET against the given endpoint path and decodes the JSON
// response into v. Identifiers are embedded in the path as-is; the API takes
// them path-embedded, not query-encoded.
func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", c.accessToken)
	}

	c.logger.Debug("calling OpenCitations API", zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response body: %v", ErrNetwork, err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return nil
}

// count fetches a count endpoint. The response is a possibly-empty array
// whose first element carries the count as a numeric string; an empty array
// means zero.
func (c *Client) count(ctx context.Context, path string) (int, error) {
	var results []countResult
	if err := c.get(ctx, path, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return parseCount(results[0].Count), nil
}

// list fetches a citation-list endpoint.
func (c *Client) list(ctx context.Context, path string) ([]Citation, error) {
	var citations []Citation
	if err := c.get(ctx, path, &citations); err != nil {
		return nil, err
	}
	return citations, nil
}

// CitationCount returns the number of works citing the given DOI.
func (c *Client) CitationCount(ctx context.Context, doi string) (int, error) {
	return c.count(ctx, "/citation-count/"+NormalizeDOI(doi))
}

// Citations returns the citation edges whose cited work is the given DOI,
// i.e. the incoming citations of the work.
func (c *Client) Citations(ctx context.Context, doi string) ([]Citation, error) {
	return c.list(ctx, "/citations/"+NormalizeDOI(doi))
}

// ReferenceCount returns the number of works the given DOI cites.
func (c *Client) ReferenceCount(ctx context.Context, doi string) (int, error) {
	return c.count(ctx, "/reference-count/"+NormalizeDOI(doi))
}

// References returns the citation edges whose citing work is the given DOI,
// i.e. the outgoing references of the work.
func (c *Client) References(ctx context.Context, doi string) ([]Citation, error) {
	return c.list(ctx, "/references/"+NormalizeDOI(doi))
}

// Citation fetches a single citation edge by its OCI. A leading "oci:"
// prefix on the identifier is stripped. When the index has no edge for the
// OCI the result is nil and no error: an empty lookup is an absent value,
// not a failure.
func (c *Client) Citation(ctx context.Context, oci string) (*Citation, error) {
	var citations []Citation
	if err := c.get(ctx, "/citation/"+StripOCIPrefix(oci), &citations); err != nil {
		return nil, err
	}
	if len(citations) == 0 {
		return nil, nil
	}
	return &citations[0], nil
}

// VenueCitationCount returns the number of citations received by all works
// published in the venue with the given ISSN.
func (c *Client) VenueCitationCount(ctx context.Context, issn string) (int, error) {
	return c.count(ctx, "/venue-citation-count/"+NormalizeISSN(issn))
}

// parseCount parses the leading base-10 digits of s, ignoring any trailing
// non-numeric content. Returns 0 when s has no leading digits.
func parseCount(s string) int {
	n := 0
	i := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if i == 0 {
		return 0
	}
	return n
}
