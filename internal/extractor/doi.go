package extractor

import (
	"regexp"
	"strings"

	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/dgallion1/papermeta/internal/textnorm"
)

// DOIExtractor matches the DOI syntax anywhere in the text, preferring
// occurrences carrying an explicit "doi:" label or sitting in the
// header region.
type DOIExtractor struct{}

func (e *DOIExtractor) Field() string { return meta.FieldDOI }

var (
	doiRe        = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)
	labeledDOIRe = regexp.MustCompile(`(?i)(?:doi:?\s*|doi\.org/)(10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+)`)
)

func (e *DOIExtractor) Extract(doc *textnorm.Document) []meta.Candidate {
	headText := strings.Join(head(doc), "\n")
	var out []meta.Candidate

	if m := labeledDOIRe.FindStringSubmatch(doc.Text); m != nil {
		out = append(out, meta.ScalarCandidate(
			meta.FieldDOI, cleanDOI(m[1]), "doi-label", 1, positionOf(headText, m[0])))
	}

	if m := doiRe.FindString(doc.Text); m != "" {
		doi := cleanDOI(m)
		if len(doi) >= 10 {
			out = append(out, meta.ScalarCandidate(
				meta.FieldDOI, doi, "doi-pattern", 0.85, positionOf(headText, m)))
		}
	}
	return out
}

// cleanDOI drops trailing punctuation the regex drags in from prose.
func cleanDOI(s string) string {
	return strings.TrimRight(s, ".,;:)")
}
