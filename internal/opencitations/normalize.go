package opencitations

import "strings"

// Identifier normalization for the OpenCitations Index API. The v2 API wants
// prefixed identifiers (doi:..., issn:...) embedded in the request path,
// while OCIs are used bare. Normalization is pure prefix manipulation, never
// format validation, so it cannot fail.

// NormalizeDOI converts a raw DOI into the doi-prefixed form the API expects.
// A leading http://doi.org/ or https://doi.org/ is stripped first; the scheme
// is matched case-insensitively but the host must be exactly "doi.org"
// (lowercase). Idempotent.
func NormalizeDOI(raw string) string {
	doi := stripDOIURL(raw)
	if !strings.HasPrefix(doi, "doi:") {
		doi = "doi:" + doi
	}
	return doi
}

// NormalizeISSN converts a raw ISSN into the issn-prefixed form. Idempotent.
func NormalizeISSN(raw string) string {
	if !strings.HasPrefix(raw, "issn:") {
		return "issn:" + raw
	}
	return raw
}

// StripOCIPrefix removes one leading "oci:" prefix if present. OCIs carry no
// prefix on the wire, so this is the only canonicalization they get.
func StripOCIPrefix(raw string) string {
	return strings.TrimPrefix(raw, "oci:")
}

// stripDOIURL removes a leading doi.org URL from s, if present.
func stripDOIURL(s string) string {
	for _, scheme := range []string{"http://", "https://"} {
		if len(s) < len(scheme) || !strings.EqualFold(s[:len(scheme)], scheme) {
			continue
		}
		rest := s[len(scheme):]
		if strings.HasPrefix(rest, "doi.org/") {
			return rest[len("doi.org/"):]
		}
	}
	return s
}
