package extractor

import (
	"regexp"
	"strings"

	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/dgallion1/papermeta/internal/textnorm"
)

// ReferencesExtractor parses the trailing bibliography section into
// one candidate per entry. Entries are recognized by leading "[N]" or
// "N." markers; continuation lines are folded into the open entry.
type ReferencesExtractor struct{}

func (e *ReferencesExtractor) Field() string { return meta.FieldReferences }

var (
	refHeadingRe = regexp.MustCompile(`(?i)^(?:[0-9]+\.?|[IVX]+\.)?\s*(references|bibliography)\s*$`)

	bracketEntryRe = regexp.MustCompile(`^\[(\d+)\]\s*(.+)$`)
	numberEntryRe  = regexp.MustCompile(`^(\d{1,3})\.\s+(.+)$`)
)

func (e *ReferencesExtractor) Extract(doc *textnorm.Document) []meta.Candidate {
	start := -1
	// The bibliography is trailing matter; take the last heading match.
	for i, line := range doc.Lines {
		if refHeadingRe.MatchString(strings.TrimSpace(line)) {
			start = i
		}
	}
	if start < 0 {
		return nil
	}

	type entry struct {
		text     string
		strength float64
	}
	var (
		entries []entry
		open    *entry
	)
	flush := func() {
		if open != nil && len(open.text) > 10 {
			entries = append(entries, *open)
		}
		open = nil
	}

	for _, line := range doc.Lines[start+1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isSectionHeading(line) && !refHeadingRe.MatchString(line) {
			break // appendix or similar trailing section
		}
		switch {
		case bracketEntryRe.MatchString(line):
			flush()
			m := bracketEntryRe.FindStringSubmatch(line)
			open = &entry{text: m[2], strength: 0.9}
		case numberEntryRe.MatchString(line):
			flush()
			m := numberEntryRe.FindStringSubmatch(line)
			open = &entry{text: m[2], strength: 0.7}
		case open != nil:
			open.text += " " + line
		default:
			// Unmarked bibliography: one line per entry.
			open = &entry{text: line, strength: 0.45}
			flush()
		}
	}
	flush()

	out := make([]meta.Candidate, 0, len(entries))
	for _, en := range entries {
		c := meta.ScalarCandidate(
			meta.FieldReferences, strings.TrimSpace(en.text), "bibliography", en.strength, 1)
		c.Kind = meta.KindReference
		out = append(out, c)
	}
	return out
}
