package opencitations

import (
	"fmt"
	"strings"
)

// NoCitationsMessage is returned by FormatCitationList for an empty list.
const NoCitationsMessage = "No citations found."

// FormatCitation renders a single citation edge as seven fixed-order lines.
// Empty creation and timespan fields render as N/A; empty self-citation
// flags render as no.
func FormatCitation(c Citation) string {
	return strings.Join([]string{
		"OCI: " + c.OCI,
		"Citing: " + c.Citing,
		"Cited: " + c.Cited,
		"Date: " + orDefault(c.Creation, "N/A"),
		"Timespan: " + orDefault(c.Timespan, "N/A"),
		"Journal self-citation: " + orDefault(c.JournalSC, "no"),
		"Author self-citation: " + orDefault(c.AuthorSC, "no"),
	}, "\n")
}

// FormatCitationList renders a list of citation edges as 1-indexed compact
// blocks separated by blank lines. Self-citation annotations appear only
// when the corresponding flag is "yes".
func FormatCitationList(citations []Citation) string {
	if len(citations) == 0 {
		return NoCitationsMessage
	}

	blocks := make([]string, len(citations))
	for i, c := range citations {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. OCI: %s\n", i+1, c.OCI)
		fmt.Fprintf(&b, "   Citing: %s\n", c.Citing)
		fmt.Fprintf(&b, "   Cited: %s\n", c.Cited)
		fmt.Fprintf(&b, "   Date: %s", orDefault(c.Creation, "N/A"))
		if c.JournalSC == "yes" {
			b.WriteString("\n   (Journal self-citation)")
		}
		if c.AuthorSC == "yes" {
			b.WriteString("\n   (Author self-citation)")
		}
		blocks[i] = b.String()
	}

	return strings.Join(blocks, "\n\n")
}

// orDefault returns s, or def when s is empty.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
