package scorer

import (
	"testing"

	"github.com/dgallion1/papermeta/internal/assemble"
	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/stretchr/testify/require"
)

func TestScoreRange(t *testing.T) {
	cands := []meta.Candidate{
		meta.ScalarCandidate(meta.FieldTitle, "A Title", "typographic", 1, 1),
		meta.ScalarCandidate(meta.FieldTitle, "A Title", "first-line", 1, 1),
		meta.ScalarCandidate(meta.FieldDOI, "10.1/x", "doi-label", 0, 0),
	}
	conf := Score(cands)
	for field, score := range conf {
		require.GreaterOrEqual(t, score, 0.0, "field %s", field)
		require.LessOrEqual(t, score, 1.0, "field %s", field)
	}
}

func TestScoreAbsentWithoutCandidates(t *testing.T) {
	conf := Score([]meta.Candidate{
		meta.ScalarCandidate(meta.FieldTitle, "A Title", "typographic", 0.7, 1),
	})
	require.Contains(t, conf, meta.FieldTitle)
	require.NotContains(t, conf, meta.FieldReferences)
	require.NotContains(t, conf, meta.FieldDOI)
}

func TestScoreMonotonicInStrength(t *testing.T) {
	weak := Score([]meta.Candidate{
		meta.ScalarCandidate(meta.FieldAbstract, "text", "marker-block", 0.4, 1),
	})[meta.FieldAbstract]
	strong := Score([]meta.Candidate{
		meta.ScalarCandidate(meta.FieldAbstract, "text", "marker-block", 0.9, 1),
	})[meta.FieldAbstract]
	require.Greater(t, strong, weak)
}

func TestScoreMonotonicInPosition(t *testing.T) {
	out := Score([]meta.Candidate{
		meta.ScalarCandidate(meta.FieldDate, "2020", "anchored-year", 0.5, 0),
	})[meta.FieldDate]
	in := Score([]meta.Candidate{
		meta.ScalarCandidate(meta.FieldDate, "2020", "anchored-year", 0.5, 1),
	})[meta.FieldDate]
	require.Greater(t, in, out)
}

func TestAgreementStrictlyIncreasesScore(t *testing.T) {
	single := Score([]meta.Candidate{
		meta.ScalarCandidate(meta.FieldDOI, "10.1000/xyz", "doi-label", 0.8, 0),
	})[meta.FieldDOI]
	agreed := Score([]meta.Candidate{
		meta.ScalarCandidate(meta.FieldDOI, "10.1000/xyz", "doi-label", 0.8, 0),
		meta.ScalarCandidate(meta.FieldDOI, "10.1000/xyz", "doi-pattern", 0.6, 0),
	})[meta.FieldDOI]
	require.Greater(t, agreed, single)
}

func TestDisagreeingStrategiesDoNotStack(t *testing.T) {
	conf := Score([]meta.Candidate{
		meta.ScalarCandidate(meta.FieldTitle, "One Title", "typographic", 0.75, 1),
		meta.ScalarCandidate(meta.FieldTitle, "Another Line", "first-line", 0.3, 1),
	})
	// Winner has a single supporting strategy: base + strength + position.
	require.InDelta(t, 0.35+0.45*0.75+0.15, conf[meta.FieldTitle], 1e-9)
}

func TestExactDOIMatchScoresHigh(t *testing.T) {
	conf := Score([]meta.Candidate{
		meta.ScalarCandidate(meta.FieldDOI, "10.1000/xyz123", "doi-label", 1, 1),
	})
	require.Greater(t, conf[meta.FieldDOI], 0.7)
}

func TestBoundedAbstractScoresAboveMedium(t *testing.T) {
	conf := Score([]meta.Candidate{
		meta.ScalarCandidate(meta.FieldAbstract, "the abstract paragraph", "marker-block", 0.8, 1),
	})
	require.Greater(t, conf[meta.FieldAbstract], 0.4)
}

func TestScoreDescribesAssembledValue(t *testing.T) {
	// A stronger match outside the expected region loses to a weaker
	// one inside it. The score must follow the candidate whose value
	// the assembler stores, including its agreement bonus.
	cands := []meta.Candidate{
		meta.ScalarCandidate(meta.FieldDate, "2021-07-02", "iso-date", 0.95, 0),
		meta.ScalarCandidate(meta.FieldDate, "2021-03", "month-name", 0.85, 1),
		meta.ScalarCandidate(meta.FieldDate, "2021-03", "anchored-year", 0.5, 1),
	}

	md := assemble.Assemble("doc-1", cands)
	require.Equal(t, "2021-03", md.PublicationDate)

	conf := Score(cands)
	require.InDelta(t, 0.35+0.45*0.85+0.15+0.10, conf[meta.FieldDate], 1e-9)
}

func TestScoreCapsAtOne(t *testing.T) {
	conf := Score([]meta.Candidate{
		meta.ScalarCandidate(meta.FieldDOI, "10.1/x", "a", 1, 1),
		meta.ScalarCandidate(meta.FieldDOI, "10.1/x", "b", 1, 1),
		meta.ScalarCandidate(meta.FieldDOI, "10.1/x", "c", 1, 1),
	})
	require.Equal(t, 1.0, conf[meta.FieldDOI])
}
