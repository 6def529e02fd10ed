// Package meta defines the bibliographic data model shared by the
// extraction pipeline, the verification builder and the export layer.
package meta

// Field names double as JSON keys in the API contract.
const (
	FieldTitle      = "title"
	FieldAuthors    = "authors"
	FieldJournal    = "journal"
	FieldConference = "conference"
	FieldCity       = "city"
	FieldDate       = "publicationDate"
	FieldAbstract   = "abstract"
	FieldFunding    = "funding"
	FieldReferences = "references"
	FieldKeywords   = "keywords"
	FieldDOI        = "doi"
)

// Author is one byline entry. Equality is by name; affiliation is
// best-effort and may be empty.
type Author struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation,omitempty"`
}

// Metadata is the assembled record for one document. Scalar fields are
// empty strings when extraction found nothing; the ConfidenceMap tells
// callers whether a field was attempted at all.
type Metadata struct {
	ID              string   `json:"id"`
	Title           string   `json:"title,omitempty"`
	Authors         []Author `json:"authors"`
	Journal         string   `json:"journal,omitempty"`
	Conference      string   `json:"conference,omitempty"`
	City            string   `json:"city,omitempty"`
	PublicationDate string   `json:"publicationDate,omitempty"`
	Abstract        string   `json:"abstract,omitempty"`
	Funding         string   `json:"funding,omitempty"`
	References      []string `json:"references"`
	Keywords        []string `json:"keywords"`
	DOI             string   `json:"doi,omitempty"`
}

// ConfidenceMap maps field name to a score in [0,1]. Fields that were
// attempted but produced no candidate have no entry.
type ConfidenceMap map[string]float64

// VerificationRecord bundles text evidence with confidence scores for
// human review. It is a pure projection of stored extraction output.
type VerificationRecord struct {
	RawTextSample string          `json:"raw_text_sample"`
	Confidence    ConfidenceMap   `json:"extraction_confidence"`
	Metadata      VerifiedSubset  `json:"metadata"`
}

// VerifiedSubset is the reduced metadata view shown during verification:
// only the fields subject to confidence scoring that reviewers check.
type VerifiedSubset struct {
	Title           string   `json:"title,omitempty"`
	Authors         []Author `json:"authors"`
	Journal         string   `json:"journal,omitempty"`
	PublicationDate string   `json:"publicationDate,omitempty"`
	Abstract        string   `json:"abstract,omitempty"`
	DOI             string   `json:"doi,omitempty"`
	Keywords        []string `json:"keywords"`
}

// Statistics summarizes an extraction result for reporting.
type Statistics struct {
	AuthorCount     int                 `json:"authorCount"`
	ReferenceCount  int                 `json:"referenceCount"`
	PublicationYear string              `json:"publicationYear,omitempty"`
	Affiliations    []string            `json:"affiliations"`
	KeywordCount    int                 `json:"keywordCount"`
	Confidence      ConfidenceSummary   `json:"extractionConfidence"`
}

// ConfidenceSummary is the aggregate view of a ConfidenceMap.
type ConfidenceSummary struct {
	Average float64       `json:"average"`
	ByField ConfidenceMap `json:"byField"`
}

// Summarize computes Statistics from an assembled record and its scores.
func Summarize(md Metadata, conf ConfidenceMap) Statistics {
	var year string
	if len(md.PublicationDate) >= 4 {
		year = md.PublicationDate[:4]
	}

	var affiliations []string
	seen := make(map[string]bool)
	for _, a := range md.Authors {
		if a.Affiliation == "" || seen[a.Affiliation] {
			continue
		}
		seen[a.Affiliation] = true
		affiliations = append(affiliations, a.Affiliation)
	}

	var sum float64
	for _, v := range conf {
		sum += v
	}
	avg := 0.0
	if len(conf) > 0 {
		avg = sum / float64(len(conf))
	}

	return Statistics{
		AuthorCount:     len(md.Authors),
		ReferenceCount:  len(md.References),
		PublicationYear: year,
		Affiliations:    affiliations,
		KeywordCount:    len(md.Keywords),
		Confidence: ConfidenceSummary{
			Average: avg,
			ByField: conf,
		},
	}
}
