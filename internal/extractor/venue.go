package extractor

import (
	"regexp"
	"strings"

	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/dgallion1/papermeta/internal/textnorm"
)

// VenueExtractor finds journal and conference names through anchored
// keyword search in the header and footer regions, and a best-effort
// city from the conference locality pattern.
type VenueExtractor struct{}

func (e *VenueExtractor) Field() string { return meta.FieldJournal }

var (
	journalRe = regexp.MustCompile(
		`\b((?:[A-Z][\w&'()\-]*\s+)*(?:Journal|Transactions|Letters|Review|Annals)(?:\s+(?:of|on|in)\s+[A-Z][\w&,'()\- ]*)?)`)

	conferenceRe = regexp.MustCompile(
		`\b((?:the\s+)?\d*(?:st|nd|rd|th)?\s*(?:International|Annual|IEEE|ACM)\s+(?:Conference|Symposium|Workshop|Congress)\s+(?:on|of)\s+[A-Z][\w&,'()\- ]*)`)

	proceedingsRe = regexp.MustCompile(`(?i)\bProceedings of\s+(.{5,120}?)(?:[,.]|$)`)

	// localityRe: "Vienna, Austria, 2019" or "Lisbon, 2021". The year
	// is mandatory; without it, venue name words masquerade as cities.
	localityRe = regexp.MustCompile(
		`\b([A-Z][a-z]+(?:[ -][A-Z][a-z]+)?),\s+(?:[A-Z][a-z]+(?:[ -][A-Z][a-z]+)?,\s+)?(?:19|20)\d{2}\b`)
)

func (e *VenueExtractor) Extract(doc *textnorm.Document) []meta.Candidate {
	var out []meta.Candidate

	// Header plus the trailing lines, where running titles and
	// copyright footers repeat the venue.
	region := head(doc)
	if n := len(doc.Lines); n > headLines {
		region = append(append([]string{}, region...), doc.Lines[n-10:]...)
	}

	for _, line := range region {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := proceedingsRe.FindStringSubmatch(line); m != nil {
			out = append(out, meta.ScalarCandidate(
				meta.FieldConference, strings.TrimSpace(m[1]), "proceedings-anchor", 0.85, 1))
		} else if m := conferenceRe.FindStringSubmatch(line); m != nil {
			out = append(out, meta.ScalarCandidate(
				meta.FieldConference, tidyVenue(m[1]), "conference-pattern", 0.7, 1))
		}

		if m := journalRe.FindStringSubmatch(line); m != nil {
			name := tidyVenue(m[1])
			// A single keyword word alone ("Journal") is noise.
			if strings.Contains(name, " ") {
				out = append(out, meta.ScalarCandidate(
					meta.FieldJournal, name, "journal-pattern", 0.7, 1))
			}
		}

		// City only makes sense next to a venue mention.
		if strings.Contains(strings.ToLower(line), "conference") ||
			strings.Contains(strings.ToLower(line), "proceedings") ||
			strings.Contains(strings.ToLower(line), "held in") {
			if m := localityRe.FindStringSubmatch(line); m != nil {
				out = append(out, meta.ScalarCandidate(
					meta.FieldCity, m[1], "locality-pattern", 0.4, 1))
			}
		}
	}
	return out
}

func tidyVenue(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimRight(s, " ,.;")
}
