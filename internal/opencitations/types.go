package opencitations

// Citation represents one directed citation edge between two scholarly works
// as returned by the OpenCitations Index API. All fields are strings; the
// API guarantees they are present but possibly empty (never absent).
type Citation struct {
	// OCI is the Open Citation Identifier, the unique key for the edge,
	// of the form <digits>-<digits>.
	OCI string `json:"oci"`

	// Citing is the doi-prefixed identifier of the citing work.
	Citing string `json:"citing"`

	// Cited is the doi-prefixed identifier of the cited work.
	Cited string `json:"cited"`

	// Creation is the date the edge was established. May be empty.
	Creation string `json:"creation"`

	// Timespan is the duration between publication of the cited and citing
	// works. May be empty.
	Timespan string `json:"timespan"`

	// JournalSC is "yes" when the citing and cited works share a venue.
	JournalSC string `json:"journal_sc"`

	// AuthorSC is "yes" when the citing and cited works share an author.
	AuthorSC string `json:"author_sc"`
}

// countResult is one element of a count endpoint's response array. The count
// is a numeric string per the API contract.
type countResult struct {
	Count string `json:"count"`
}
