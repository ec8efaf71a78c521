package opencitations

import (
	"strings"
	"testing"
)

func TestFormatCitation(t *testing.T) {
	c := Citation{
		OCI:       "06101801781-06180334099",
		Citing:    "doi:10.1186/1756-8722-6-59",
		Cited:     "doi:10.1186/1756-8722-5-12",
		Creation:  "2013-09-05",
		Timespan:  "P1Y2M4D",
		JournalSC: "yes",
		AuthorSC:  "no",
	}

	want := strings.Join([]string{
		"OCI: 06101801781-06180334099",
		"Citing: doi:10.1186/1756-8722-6-59",
		"Cited: doi:10.1186/1756-8722-5-12",
		"Date: 2013-09-05",
		"Timespan: P1Y2M4D",
		"Journal self-citation: yes",
		"Author self-citation: no",
	}, "\n")

	if got := FormatCitation(c); got != want {
		t.Errorf("FormatCitation() =\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatCitationDefaults(t *testing.T) {
	c := Citation{
		OCI:    "1-2",
		Citing: "doi:10.1/a",
		Cited:  "doi:10.1/b",
		// creation, timespan, journal_sc, author_sc all empty
	}

	got := FormatCitation(c)
	lines := strings.Split(got, "\n")
	if len(lines) != 7 {
		t.Fatalf("FormatCitation() produced %d lines, want 7", len(lines))
	}

	wantSuffixes := map[int]string{
		3: "Date: N/A",
		4: "Timespan: N/A",
		5: "Journal self-citation: no",
		6: "Author self-citation: no",
	}
	for i, want := range wantSuffixes {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestFormatCitationListEmpty(t *testing.T) {
	if got := FormatCitationList(nil); got != "No citations found." {
		t.Errorf("FormatCitationList(nil) = %q, want %q", got, "No citations found.")
	}
	if got := FormatCitationList([]Citation{}); got != "No citations found." {
		t.Errorf("FormatCitationList([]) = %q, want %q", got, "No citations found.")
	}
}

func TestFormatCitationList(t *testing.T) {
	citations := []Citation{
		{
			OCI:      "1-2",
			Citing:   "doi:10.1/a",
			Cited:    "doi:10.1/b",
			Creation: "2020-01-15",
		},
		{
			OCI:       "3-4",
			Citing:    "doi:10.1/c",
			Cited:     "doi:10.1/d",
			JournalSC: "yes",
		},
	}

	got := FormatCitationList(citations)

	want := "1. OCI: 1-2\n" +
		"   Citing: doi:10.1/a\n" +
		"   Cited: doi:10.1/b\n" +
		"   Date: 2020-01-15\n" +
		"\n" +
		"2. OCI: 3-4\n" +
		"   Citing: doi:10.1/c\n" +
		"   Cited: doi:10.1/d\n" +
		"   Date: N/A\n" +
		"   (Journal self-citation)"

	if got != want {
		t.Errorf("FormatCitationList() =\n%s\nwant:\n%s", got, want)
	}

	// Exactly one journal annotation, attached to the second block.
	if n := strings.Count(got, "(Journal self-citation)"); n != 1 {
		t.Errorf("found %d journal self-citation annotations, want 1", n)
	}
	if strings.Contains(got, "(Author self-citation)") {
		t.Error("unexpected author self-citation annotation")
	}
}

func TestFormatCitationListAuthorAnnotation(t *testing.T) {
	citations := []Citation{
		{OCI: "1-2", Citing: "doi:10.1/a", Cited: "doi:10.1/b", JournalSC: "yes", AuthorSC: "yes"},
	}

	got := FormatCitationList(citations)
	if !strings.Contains(got, "   (Journal self-citation)\n   (Author self-citation)") {
		t.Errorf("FormatCitationList() missing stacked annotations:\n%s", got)
	}
}
