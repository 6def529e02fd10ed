package extractor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDateISOForm(t *testing.T) {
	cands := candidatesFor(t, &DateExtractor{}, "Received 2021-03-15; accepted later that spring")
	require.NotEmpty(t, cands)
	require.Equal(t, "iso-date", cands[0].Strategy)
	require.Equal(t, "2021-03-15", cands[0].Value)
}

func TestDateMonthNameForms(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Published in March 2021 by the society", "2021-03"},
		{"Published May 14, 2020 in the proceedings", "2020-05-14"},
		{"appeared in December 1999 somewhere", "1999-12"},
	}
	for _, tt := range tests {
		cands := candidatesFor(t, &DateExtractor{}, tt.text)
		require.NotEmpty(t, cands, "text %q", tt.text)
		found := false
		for _, c := range cands {
			if c.Strategy == "month-name" {
				require.Equal(t, tt.want, c.Value, "text %q", tt.text)
				found = true
			}
		}
		require.True(t, found, "no month-name candidate for %q", tt.text)
	}
}

func TestDateAnchoredYearOnly(t *testing.T) {
	cands := candidatesFor(t, &DateExtractor{}, "Copyright © 2018 The Authors. All rights reserved.")
	require.NotEmpty(t, cands)
	require.Equal(t, "anchored-year", cands[0].Strategy)
	require.Equal(t, "2018", cands[0].Value)
}

func TestDateUnanchoredYearIgnored(t *testing.T) {
	// A bare number that merely looks like a year is not a date.
	cands := candidatesFor(t, &DateExtractor{}, "the sample contained 2000 records in total")
	require.Empty(t, cands)
}
