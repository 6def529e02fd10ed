package extractor

import (
	"strings"
	"unicode"

	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/dgallion1/papermeta/internal/textnorm"
)

// TitleExtractor picks the longest typographically title-like line in
// the header region, with the first non-empty line as a fallback.
type TitleExtractor struct{}

func (e *TitleExtractor) Field() string { return meta.FieldTitle }

func (e *TitleExtractor) Extract(doc *textnorm.Document) []meta.Candidate {
	var out []meta.Candidate

	// Titles sit above the abstract; scanning past it would let long
	// abstract lines win on length.
	region := head(doc)
	if stop, _ := findMarkerLine(region, 0, "abstract", "keywords", "index terms"); stop > 0 {
		region = region[:stop]
	}

	best := ""
	for _, line := range region {
		line = strings.TrimSpace(line)
		if !looksLikeTitle(line) {
			continue
		}
		if len(line) > len(best) {
			best = line
		}
	}
	if best != "" {
		out = append(out, meta.ScalarCandidate(
			meta.FieldTitle, best, "typographic", 0.75, 1))
	}

	for _, line := range head(doc) {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, meta.ScalarCandidate(
				meta.FieldTitle, line, "first-line", 0.3, 1))
			break
		}
	}
	return out
}

// looksLikeTitle applies the typographic heuristics: mixed case, sane
// length, no sentence-ending punctuation, not a section heading or
// all-caps running header.
func looksLikeTitle(line string) bool {
	if len(line) < 15 || len(line) > 200 {
		return false
	}
	if strings.HasSuffix(line, ".") || strings.HasSuffix(line, ";") {
		return false
	}
	if isSectionHeading(line) {
		return false
	}
	var upper, lower int
	for _, r := range line {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}
	if lower == 0 {
		return false // all caps: running header or banner
	}
	if upper == 0 {
		return false
	}
	// Title lines start capitalized.
	first := []rune(line)[0]
	return unicode.IsUpper(first) || unicode.IsDigit(first)
}
