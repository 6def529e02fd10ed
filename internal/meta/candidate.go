package meta

// CandidateKind tags the payload variant of a Candidate so the
// assembler can dispatch without inspecting field names.
type CandidateKind int

const (
	KindScalar CandidateKind = iota
	KindAuthor
	KindReference
	KindKeyword
)

// Candidate is one extractor's proposed value for a field, with the
// signals the scorer needs. List-valued fields (authors, references,
// keywords) emit one candidate per element in document order.
type Candidate struct {
	Field    string
	Kind     CandidateKind
	Value    string  // scalar, reference or keyword payload
	Author   *Author // set only when Kind == KindAuthor
	Strategy string  // originating heuristic, for agreement scoring
	Strength float64 // pattern tightness in [0,1]
	Position float64 // 1 when found in the expected document region
}

// Preference ranks competing candidates for the same field: pattern
// strength weighted over the positional prior. The assembler and the
// confidence scorer both resolve winners with this key, so the stored
// value and its confidence entry always describe the same candidate.
func (c Candidate) Preference() float64 {
	return 0.45*c.Strength + 0.15*c.Position
}

// ScalarCandidate builds a scalar candidate.
func ScalarCandidate(field, value, strategy string, strength, position float64) Candidate {
	return Candidate{
		Field:    field,
		Kind:     KindScalar,
		Value:    value,
		Strategy: strategy,
		Strength: strength,
		Position: position,
	}
}

// AuthorCandidate builds an author candidate.
func AuthorCandidate(a Author, strategy string, strength, position float64) Candidate {
	return Candidate{
		Field:    FieldAuthors,
		Kind:     KindAuthor,
		Value:    a.Name,
		Author:   &a,
		Strategy: strategy,
		Strength: strength,
		Position: position,
	}
}
