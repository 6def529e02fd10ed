package extractor

import (
	"regexp"
	"strings"

	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/dgallion1/papermeta/internal/textnorm"
)

// AuthorsExtractor reads the byline region between the title and the
// abstract/keywords marker. Names are split on commas, semicolons and
// "and"; affiliations are resolved from numeric footnote markers or a
// trailing parenthetical.
type AuthorsExtractor struct{}

func (e *AuthorsExtractor) Field() string { return meta.FieldAuthors }

var (
	// personNameRe accepts "Ada Lovelace", "J. R. R. Tolkien",
	// "Jean-Luc Picard", "Liu Xiaobo": 2 to 4 capitalized tokens.
	personNameRe = regexp.MustCompile(
		`^[A-Z][\p{L}'’.\-]*(?:\s+(?:van|von|de|der|da|la|le)\b)?(?:\s+[A-Z][\p{L}'’.\-]*){1,3}$`)

	// footnoteMarkRe strips superscript-style markers that survive
	// text extraction as trailing digits or symbols.
	footnoteMarkRe = regexp.MustCompile(`[\d*†‡§]+$`)

	// affilLineRe matches footnote affiliation lines: "1 Dept. of ...".
	affilLineRe = regexp.MustCompile(`^(\d+)[.):]?\s+(.{4,})$`)

	parentheticalRe = regexp.MustCompile(`\(([^)]+)\)\s*$`)

	// bylineAndRe normalizes "and"/"&" separators to commas before
	// splitting.
	bylineAndRe = regexp.MustCompile(`\s+(?:\band\b|&)\s+`)
)

func (e *AuthorsExtractor) Extract(doc *textnorm.Document) []meta.Candidate {
	region := head(doc)
	if stop, _ := findMarkerLine(region, 0, "abstract", "keywords", "index terms"); stop > 0 {
		region = region[:stop]
	}

	affils := affiliationTable(region)

	var out []meta.Candidate
	started := false
	for i, line := range region {
		if i == 0 {
			continue // title line
		}
		// Footnote affiliation lines already feed the table; their
		// institution names must not be read as authors.
		if m := affilLineRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil && looksLikeAffiliation(m[2]) {
			continue
		}
		authors := parseBylineLine(line, affils)
		if len(authors) == 0 {
			// Bylines are contiguous; stop at the first miss after
			// the run began.
			if started {
				break
			}
			continue
		}
		started = true
		for _, a := range authors {
			strength := 0.6
			if a.Affiliation != "" {
				strength = 0.8
			}
			out = append(out, meta.AuthorCandidate(a, "byline", strength, 1))
		}
	}
	return out
}

// affiliationTable builds the footnote-marker cross-reference from
// numbered lines in the byline region.
func affiliationTable(lines []string) map[string]string {
	table := make(map[string]string)
	for _, line := range lines {
		m := affilLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		if looksLikeAffiliation(m[2]) {
			table[m[1]] = strings.TrimRight(strings.TrimSpace(m[2]), ".,;")
		}
	}
	return table
}

var affiliationWords = []string{
	"universit", "institut", "department", "laborator", "college",
	"school", "center", "centre", "academy", "faculty", "hospital",
	"research", "corporation", "inc", "labs",
}

func looksLikeAffiliation(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range affiliationWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// parseBylineLine splits one line into authors. Returns nil when the
// line does not look like a byline (most tokens fail the name shape).
func parseBylineLine(line string, affils map[string]string) []meta.Author {
	line = strings.TrimSpace(line)
	if line == "" || len(line) > 250 || isSectionHeading(line) {
		return nil
	}

	norm := strings.ReplaceAll(line, ";", ",")
	norm = bylineAndRe.ReplaceAllString(norm, ", ")

	var (
		authors []meta.Author
		total   int
	)
	for _, token := range strings.Split(norm, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		total++

		affiliation := ""
		if m := parentheticalRe.FindStringSubmatch(token); m != nil {
			affiliation = strings.TrimSpace(m[1])
			token = strings.TrimSpace(parentheticalRe.ReplaceAllString(token, ""))
		}

		marker := footnoteMarkRe.FindString(token)
		name := strings.TrimSpace(footnoteMarkRe.ReplaceAllString(token, ""))
		if !personNameRe.MatchString(name) {
			continue
		}
		if affiliation == "" && marker != "" {
			affiliation = affils[strings.Trim(marker, "*†‡§")]
		}
		authors = append(authors, meta.Author{Name: name, Affiliation: affiliation})
	}

	// Require most tokens to be names, or the line is prose.
	if total == 0 || len(authors)*2 < total {
		return nil
	}
	return authors
}
