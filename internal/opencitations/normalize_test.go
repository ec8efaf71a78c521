package opencitations

import "testing"

func TestNormalizeDOI(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare DOI",
			raw:  "10.1186/1756-8722-6-59",
			want: "doi:10.1186/1756-8722-6-59",
		},
		{
			name: "already prefixed",
			raw:  "doi:10.1186/1756-8722-6-59",
			want: "doi:10.1186/1756-8722-6-59",
		},
		{
			name: "https doi.org URL",
			raw:  "https://doi.org/10.1/x",
			want: "doi:10.1/x",
		},
		{
			name: "http doi.org URL",
			raw:  "http://doi.org/10.1/x",
			want: "doi:10.1/x",
		},
		{
			name: "uppercase scheme",
			raw:  "HTTPS://doi.org/10.1/x",
			want: "doi:10.1/x",
		},
		{
			// Host matching is exact: DOI.ORG is not stripped, so the
			// whole URL gets the doi: prefix.
			name: "uppercase host not stripped",
			raw:  "http://DOI.ORG/10.1/x",
			want: "doi:http://DOI.ORG/10.1/x",
		},
		{
			name: "empty string",
			raw:  "",
			want: "doi:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDOI(tt.raw)
			if got != tt.want {
				t.Errorf("NormalizeDOI(%q) = %q, want %q", tt.raw, got, tt.want)
			}

			// Idempotence: normalizing twice must equal normalizing once.
			if again := NormalizeDOI(got); again != got {
				t.Errorf("NormalizeDOI(NormalizeDOI(%q)) = %q, want %q", tt.raw, again, got)
			}
		})
	}
}

func TestNormalizeISSN(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "bare ISSN", raw: "0138-9130", want: "issn:0138-9130"},
		{name: "already prefixed", raw: "issn:0138-9130", want: "issn:0138-9130"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeISSN(tt.raw)
			if got != tt.want {
				t.Errorf("NormalizeISSN(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			if again := NormalizeISSN(got); again != got {
				t.Errorf("NormalizeISSN(NormalizeISSN(%q)) = %q, want %q", tt.raw, again, got)
			}
		})
	}
}

func TestStripOCIPrefix(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"06101801781-06180334099", "06101801781-06180334099"},
		{"oci:06101801781-06180334099", "06101801781-06180334099"},
	}

	for _, tt := range tests {
		got := StripOCIPrefix(tt.raw)
		if got != tt.want {
			t.Errorf("StripOCIPrefix(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
