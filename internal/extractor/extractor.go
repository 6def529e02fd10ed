// Package extractor holds one heuristic strategy per metadata field.
// Every extractor is a pure function over the normalized document and
// returns zero or more candidates; absence of a field is never an
// error. Extractors are independent of each other, so the pipeline may
// run them in any order or in parallel.
package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/dgallion1/papermeta/internal/textnorm"
)

// Extractor proposes candidates for a single metadata field.
type Extractor interface {
	Field() string
	Extract(doc *textnorm.Document) []meta.Candidate
}

// All returns the extractors in priority order. The assembler breaks
// score ties by this listing order.
func All() []Extractor {
	return []Extractor{
		&TitleExtractor{},
		&AuthorsExtractor{},
		&VenueExtractor{},
		&DateExtractor{},
		&AbstractExtractor{},
		&FundingExtractor{},
		&ReferencesExtractor{},
		&KeywordsExtractor{},
		&DOIExtractor{},
	}
}

// headLines bounds the header region where title, byline, venue and
// labeled DOIs are expected.
const headLines = 40

// sectionHeadingRe matches lines that start a new section: either a
// bare well-known heading or a numbered one ("1. Introduction",
// "II. Related Work").
var sectionHeadingRe = regexp.MustCompile(
	`(?i)^(?:[0-9]+\.?|[IVX]+\.)?\s*` +
		`(introduction|related work|background|methods?|methodology|materials|` +
		`results|discussion|conclusions?|keywords?|index terms|references|` +
		`bibliography|acknowledg(?:e)?ments?|appendix)\b`,
)

// isSectionHeading reports whether a line opens a new document section.
// Headings are short; a sentence that merely begins with "Results" is
// not one.
func isSectionHeading(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || len(line) > 60 {
		return false
	}
	return sectionHeadingRe.MatchString(line)
}

// findMarkerLine locates the first line whose leading text matches one
// of the markers (case-insensitive), searching lines[from:]. The rune
// after the marker must be a delimiter (end of line, colon, dash, dot
// or space) so "Abstract" matches but "Abstracting" does not. Returns
// the line index and any text trailing the marker on the same line, or
// -1 when no marker is present.
func findMarkerLine(lines []string, from int, markers ...string) (int, string) {
	for i := from; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		lower := strings.ToLower(trimmed)
		for _, m := range markers {
			if !strings.HasPrefix(lower, m) {
				continue
			}
			rest := trimmed[len(m):]
			if rest != "" {
				first, _ := utf8.DecodeRuneInString(rest)
				if !strings.ContainsRune(":—–-. \t", first) {
					continue
				}
			}
			rest = strings.TrimLeft(rest, ":—–-. \t")
			return i, strings.TrimSpace(rest)
		}
	}
	return -1, ""
}

// collectBlock gathers lines[from:] into a paragraph until a section
// heading, a blank run or maxLines is reached.
func collectBlock(lines []string, from, maxLines int) (string, bool) {
	var block []string
	bounded := false
	for i := from; i < len(lines) && len(block) < maxLines; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if isSectionHeading(line) {
			bounded = true
			break
		}
		block = append(block, line)
	}
	return strings.Join(block, " "), bounded
}

func head(doc *textnorm.Document) []string {
	if len(doc.Lines) <= headLines {
		return doc.Lines
	}
	return doc.Lines[:headLines]
}
