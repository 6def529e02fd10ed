package extractor

import (
	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/dgallion1/papermeta/internal/textnorm"
)

// AbstractExtractor captures the block between an "Abstract" marker
// and the next section heading.
type AbstractExtractor struct{}

func (e *AbstractExtractor) Field() string { return meta.FieldAbstract }

const maxAbstractLines = 40

func (e *AbstractExtractor) Extract(doc *textnorm.Document) []meta.Candidate {
	idx, inline := findMarkerLine(doc.Lines, 0, "abstract")
	if idx < 0 {
		return nil
	}

	block, bounded := collectBlock(doc.Lines, idx+1, maxAbstractLines)
	if inline != "" {
		if block != "" {
			block = inline + " " + block
		} else {
			block = inline
		}
	}
	if len(block) < 40 {
		return nil
	}

	strength := 0.6
	if bounded {
		strength = 0.8 // both boundaries matched
	}
	position := 0.0
	if idx < headLines*2 {
		position = 1
	}
	return []meta.Candidate{
		meta.ScalarCandidate(meta.FieldAbstract, block, "marker-block", strength, position),
	}
}
