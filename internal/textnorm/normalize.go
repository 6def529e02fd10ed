// Package textnorm canonicalizes raw extracted text before field
// extraction: encoding repair, ligature and hyphenation fixes,
// whitespace collapse, and a page index for excerpting.
package textnorm

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dgallion1/papermeta/internal/meta"
)

// MinTextLength is the default threshold below which a document is
// considered unreadable (image-only scan or failed extraction).
const MinTextLength = 80

// Document is the normalized form consumed by all field extractors.
// Immutable after Normalize returns.
type Document struct {
	ID    string
	Text  string   // normalized text, pages joined by "\n"
	Lines []string // Text split by line, whitespace-collapsed
	// pageStarts[i] is the offset in Text where page i+1 begins.
	pageStarts []int
}

// ligatures maps typographic ligatures PDF extractors leave behind.
var ligatures = strings.NewReplacer(
	"ﬀ", "ff",
	"ﬁ", "fi",
	"ﬂ", "fl",
	"ﬃ", "ffi",
	"ﬄ", "ffl",
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
	" ", " ",
)

// Normalize cleans raw text and builds the page index. Pages in the
// input are separated by form feeds, the convention used by both
// ledongthuc/pdf output and pdftotext. Returns ErrUnreadableDocument
// when the cleaned text is shorter than minLen.
func Normalize(docID, raw string, minLen int) (*Document, error) {
	if minLen <= 0 {
		minLen = MinTextLength
	}

	pages := strings.Split(raw, "\f")
	var (
		sb         strings.Builder
		pageStarts []int
	)
	for _, page := range pages {
		cleaned := cleanPage(page)
		if cleaned == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		pageStarts = append(pageStarts, sb.Len())
		sb.WriteString(cleaned)
	}

	text := sb.String()
	if len(text) < minLen {
		return nil, fmt.Errorf("normalize %s: %d chars of usable text: %w",
			docID, len(text), meta.ErrUnreadableDocument)
	}

	return &Document{
		ID:         docID,
		Text:       text,
		Lines:      strings.Split(text, "\n"),
		pageStarts: pageStarts,
	}, nil
}

// cleanPage repairs one page of text: strips control characters and
// replacement runes, expands ligatures, rejoins hyphenated line
// breaks, and collapses intra-line whitespace.
func cleanPage(page string) string {
	page = ligatures.Replace(page)
	page = stripGarbage(page)
	page = repairHyphenation(page)

	lines := strings.Split(page, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// stripGarbage removes null bytes, control characters (except newline
// and tab), private-use-area runes and the Unicode replacement rune.
func stripGarbage(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		case r >= 0xe000 && r <= 0xf8ff:
			return -1
		case r == unicode.ReplacementChar:
			return -1
		}
		return r
	}, s)
}

// repairHyphenation rejoins words split across lines as "exam-\nple".
// Only lowercase continuations are joined; "X-\nray" style breaks with
// an uppercase continuation keep the hyphen.
func repairHyphenation(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '-' && i+1 < len(runes) && runes[i+1] == '\n' {
			j := i + 2
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
				j++
			}
			if j < len(runes) && unicode.IsLower(runes[j]) {
				i++ // skip the newline, drop the hyphen
				continue
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// PageAt maps an offset in the normalized text back to a 1-based page
// number. Used only for excerpting, not for field attribution.
func (d *Document) PageAt(offset int) int {
	if len(d.pageStarts) == 0 {
		return 1
	}
	page := 1
	for i, start := range d.pageStarts {
		if offset < start {
			break
		}
		page = i + 1
	}
	return page
}

// PageCount reports the number of non-empty pages.
func (d *Document) PageCount() int {
	if len(d.pageStarts) == 0 {
		return 1
	}
	return len(d.pageStarts)
}

// Sample returns the first max characters of the normalized text,
// without splitting a multi-byte rune.
func (d *Document) Sample(max int) string {
	if max <= 0 || len(d.Text) <= max {
		return d.Text
	}
	cut := max
	for cut > 0 && !utf8Start(d.Text[cut]) {
		cut--
	}
	return d.Text[:cut]
}

func utf8Start(b byte) bool { return b&0xc0 != 0x80 }
