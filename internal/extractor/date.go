package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/dgallion1/papermeta/internal/textnorm"
)

// DateExtractor recognizes ISO, "Month Day, Year", "Month Year" and
// bare-year forms, normalizing to ISO 8601 at whatever precision the
// source offers (date, month, or year only).
type DateExtractor struct{}

func (e *DateExtractor) Field() string { return meta.FieldDate }

var (
	isoDateRe = regexp.MustCompile(`\b((?:19|20)\d{2})-(\d{2})-(\d{2})\b`)

	monthNameRe = regexp.MustCompile(
		`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\.?\s+(?:(\d{1,2})(?:st|nd|rd|th)?,?\s+)?((?:19|20)\d{2})\b`)

	bareYearRe = regexp.MustCompile(
		`(?i)\b(?:published|accepted|received|copyright|©)\D{0,20}((?:19|20)\d{2})\b`)

	months = map[string]int{
		"january": 1, "february": 2, "march": 3, "april": 4,
		"may": 5, "june": 6, "july": 7, "august": 8,
		"september": 9, "october": 10, "november": 11, "december": 12,
	}
)

func (e *DateExtractor) Extract(doc *textnorm.Document) []meta.Candidate {
	// Dates on the first page carry the positional prior; the search
	// still covers the whole text for back-matter copyright lines.
	firstPage := doc.Text
	if len(doc.Lines) > headLines {
		firstPage = strings.Join(head(doc), "\n")
	}

	var out []meta.Candidate

	if m := isoDateRe.FindStringSubmatch(doc.Text); m != nil {
		pos := positionOf(firstPage, m[0])
		out = append(out, meta.ScalarCandidate(
			meta.FieldDate, fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3]), "iso-date", 0.95, pos))
	}

	if m := monthNameRe.FindStringSubmatch(doc.Text); m != nil {
		month := months[strings.ToLower(m[1])]
		value := fmt.Sprintf("%s-%02d", m[3], month)
		strength := 0.75
		if m[2] != "" {
			var day int
			fmt.Sscanf(m[2], "%d", &day)
			value = fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
			strength = 0.85
		}
		out = append(out, meta.ScalarCandidate(
			meta.FieldDate, value, "month-name", strength, positionOf(firstPage, m[0])))
	}

	if m := bareYearRe.FindStringSubmatch(doc.Text); m != nil {
		out = append(out, meta.ScalarCandidate(
			meta.FieldDate, m[1], "anchored-year", 0.5, positionOf(firstPage, m[0])))
	}

	return out
}

func positionOf(region, match string) float64 {
	if strings.Contains(region, match) {
		return 1
	}
	return 0
}
