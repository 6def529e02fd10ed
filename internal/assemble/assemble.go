// Package assemble merges field candidates into a single Metadata
// record per document.
package assemble

import (
	"strings"

	"github.com/dgallion1/papermeta/internal/meta"
)

// Assemble resolves one winning value per scalar field (highest
// Candidate.Preference, first-seen on ties so extractor priority order
// decides; the scorer resolves winners with the same key) and
// concatenates list fields in candidate order. Keywords are
// de-duplicated case-insensitively preserving first-seen casing;
// authors are de-duplicated by name.
func Assemble(docID string, candidates []meta.Candidate) meta.Metadata {
	md := meta.Metadata{
		ID:         docID,
		Authors:    []meta.Author{},
		References: []string{},
		Keywords:   []string{},
	}

	scalars := make(map[string]meta.Candidate)
	seenAuthor := make(map[string]bool)
	seenKeyword := make(map[string]bool)

	for _, c := range candidates {
		switch c.Kind {
		case meta.KindAuthor:
			if c.Author == nil || seenAuthor[c.Author.Name] {
				continue
			}
			seenAuthor[c.Author.Name] = true
			md.Authors = append(md.Authors, *c.Author)

		case meta.KindReference:
			md.References = append(md.References, c.Value)

		case meta.KindKeyword:
			key := strings.ToLower(c.Value)
			if seenKeyword[key] {
				continue
			}
			seenKeyword[key] = true
			md.Keywords = append(md.Keywords, c.Value)

		default:
			cur, ok := scalars[c.Field]
			if !ok || c.Preference() > cur.Preference() {
				scalars[c.Field] = c
			}
		}
	}

	md.Title = scalars[meta.FieldTitle].Value
	md.Journal = scalars[meta.FieldJournal].Value
	md.Conference = scalars[meta.FieldConference].Value
	md.City = scalars[meta.FieldCity].Value
	md.PublicationDate = scalars[meta.FieldDate].Value
	md.Abstract = scalars[meta.FieldAbstract].Value
	md.Funding = scalars[meta.FieldFunding].Value
	md.DOI = scalars[meta.FieldDOI].Value

	return md
}
