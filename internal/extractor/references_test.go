package extractor

import (
	"testing"

	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/stretchr/testify/require"
)

func TestReferencesBracketEntries(t *testing.T) {
	cands := candidatesFor(t, &ReferencesExtractor{}, samplePaper)
	require.Len(t, cands, 2)
	require.Equal(t, meta.KindReference, cands[0].Kind)
	require.Contains(t, cands[0].Value, "AlphaFold")
	require.Contains(t, cands[1].Value, "Attention is all you need")
	require.Equal(t, 0.9, cands[0].Strength)
}

func TestReferencesFoldsContinuationLines(t *testing.T) {
	text := "A Title Line For The Test Document Here\nfiller body text\n" +
		"References\n" +
		"[1] A. Author. A very long reference title that\n" +
		"wraps onto the following line. Journal, 2020.\n" +
		"[2] B. Author. Short one. 2021."
	cands := candidatesFor(t, &ReferencesExtractor{}, text)
	require.Len(t, cands, 2)
	require.Equal(t,
		"A. Author. A very long reference title that wraps onto the following line. Journal, 2020.",
		cands[0].Value)
}

func TestReferencesNumberedEntries(t *testing.T) {
	text := "Numbered Bibliography Style Document Title\n" +
		"Bibliography\n" +
		"1. First entry with enough text to keep. 1999.\n" +
		"2. Second entry with enough text to keep. 2001."
	cands := candidatesFor(t, &ReferencesExtractor{}, text)
	require.Len(t, cands, 2)
	require.Equal(t, 0.7, cands[0].Strength)
}

func TestReferencesNoHeadingYieldsNothing(t *testing.T) {
	cands := candidatesFor(t, &ReferencesExtractor{},
		"A document that cites [1] and [2] inline but has no trailing reference section at all")
	require.Empty(t, cands)
}

func TestReferencesStopAtNextSection(t *testing.T) {
	text := "Doc Title That Is Long Enough To Matter\n" +
		"References\n" +
		"[1] Only entry kept here. 2020.\n" +
		"Appendix\n" +
		"Tables and figures that are not references."
	cands := candidatesFor(t, &ReferencesExtractor{}, text)
	require.Len(t, cands, 1)
}
