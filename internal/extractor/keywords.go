package extractor

import (
	"strings"

	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/dgallion1/papermeta/internal/textnorm"
)

// KeywordsExtractor splits the delimited list following a "Keywords"
// or "Index Terms" marker.
type KeywordsExtractor struct{}

func (e *KeywordsExtractor) Field() string { return meta.FieldKeywords }

func (e *KeywordsExtractor) Extract(doc *textnorm.Document) []meta.Candidate {
	idx, inline := findMarkerLine(doc.Lines, 0, "keywords", "index terms", "key words")
	if idx < 0 {
		return nil
	}

	list := inline
	if list == "" && idx+1 < len(doc.Lines) {
		next := strings.TrimSpace(doc.Lines[idx+1])
		if !isSectionHeading(next) {
			list = next
		}
	}
	if list == "" {
		return nil
	}

	sep := ","
	if strings.Contains(list, ";") {
		sep = ";"
	} else if strings.Contains(list, "·") {
		sep = "·"
	}

	var out []meta.Candidate
	for _, kw := range strings.Split(list, sep) {
		kw = strings.Trim(strings.TrimSpace(kw), ".")
		if kw == "" || len(kw) > 60 {
			continue
		}
		c := meta.ScalarCandidate(meta.FieldKeywords, kw, "marker-list", 0.85, 1)
		c.Kind = meta.KindKeyword
		out = append(out, c)
	}
	return out
}
