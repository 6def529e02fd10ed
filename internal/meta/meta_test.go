package meta

import (
	"testing"
)

func TestSummarize(t *testing.T) {
	md := Metadata{
		ID:    "doc-1",
		Title: "A Study",
		Authors: []Author{
			{Name: "Alice Johnson", Affiliation: "MIT"},
			{Name: "Bob Smith", Affiliation: "MIT"},
			{Name: "Carol White", Affiliation: "Stanford University"},
			{Name: "Dan Brown"},
		},
		PublicationDate: "2021-03",
		References:      []string{"a", "b", "c"},
		Keywords:        []string{"x", "y"},
	}
	conf := ConfidenceMap{"title": 0.8, "doi": 0.4}

	stats := Summarize(md, conf)
	if stats.AuthorCount != 4 {
		t.Errorf("author count = %d", stats.AuthorCount)
	}
	if stats.ReferenceCount != 3 {
		t.Errorf("reference count = %d", stats.ReferenceCount)
	}
	if stats.KeywordCount != 2 {
		t.Errorf("keyword count = %d", stats.KeywordCount)
	}
	if stats.PublicationYear != "2021" {
		t.Errorf("year = %q", stats.PublicationYear)
	}
	if len(stats.Affiliations) != 2 {
		t.Errorf("affiliations = %v, want deduplicated", stats.Affiliations)
	}
	if stats.Confidence.Average != 0.6 {
		t.Errorf("average = %v", stats.Confidence.Average)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(Metadata{ID: "doc-2"}, nil)
	if stats.AuthorCount != 0 || stats.ReferenceCount != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.PublicationYear != "" {
		t.Errorf("year = %q", stats.PublicationYear)
	}
	if stats.Confidence.Average != 0 {
		t.Errorf("average = %v", stats.Confidence.Average)
	}
}
