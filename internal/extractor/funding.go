package extractor

import (
	"regexp"
	"strings"

	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/dgallion1/papermeta/internal/textnorm"
)

// FundingExtractor captures the acknowledgment/funding block, falling
// back to single "supported by ... grant" sentences anywhere in text.
type FundingExtractor struct{}

func (e *FundingExtractor) Field() string { return meta.FieldFunding }

var grantSentenceRe = regexp.MustCompile(
	`(?i)[^.]*\b(?:supported|funded|financed)\s+(?:in part\s+)?by\b[^.]*(?:grant|award|fellowship|foundation|contract)[^.]*\.`)

const maxFundingLines = 15

func (e *FundingExtractor) Extract(doc *textnorm.Document) []meta.Candidate {
	var out []meta.Candidate

	idx, inline := findMarkerLine(doc.Lines, 0,
		"acknowledgements", "acknowledgments", "acknowledgement", "acknowledgment", "funding")
	if idx >= 0 {
		block, _ := collectBlock(doc.Lines, idx+1, maxFundingLines)
		if inline != "" {
			block = strings.TrimSpace(inline + " " + block)
		}
		if len(block) >= 20 {
			out = append(out, meta.ScalarCandidate(
				meta.FieldFunding, block, "marker-block", 0.75, 1))
		}
	}

	if m := grantSentenceRe.FindString(doc.Text); m != "" {
		out = append(out, meta.ScalarCandidate(
			meta.FieldFunding, strings.TrimSpace(m), "grant-sentence", 0.55, 0))
	}
	return out
}
