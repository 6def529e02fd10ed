// Package verify builds the human-review projection of an extraction
// result.
package verify

import "github.com/dgallion1/papermeta/internal/meta"

// Build assembles a VerificationRecord from the stored text sample,
// metadata and confidence map. Pure and idempotent: the same inputs
// always produce an identical record. The sample is assumed to be
// pre-capped by the pipeline; Build never re-reads the document.
func Build(sample string, md meta.Metadata, conf meta.ConfidenceMap) meta.VerificationRecord {
	if conf == nil {
		conf = meta.ConfidenceMap{}
	}
	return meta.VerificationRecord{
		RawTextSample: sample,
		Confidence:    conf,
		Metadata: meta.VerifiedSubset{
			Title:           md.Title,
			Authors:         md.Authors,
			Journal:         md.Journal,
			PublicationDate: md.PublicationDate,
			Abstract:        md.Abstract,
			DOI:             md.DOI,
			Keywords:        md.Keywords,
		},
	}
}
