package export

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/stretchr/testify/require"
)

func sampleMetadata() meta.Metadata {
	return meta.Metadata{
		ID:    "doc-1",
		Title: "A Study of Things",
		Authors: []meta.Author{
			{Name: "Alice Johnson", Affiliation: "MIT"},
			{Name: "Bob Smith"},
		},
		Journal:         "Journal of Things",
		PublicationDate: "2021-03",
		Abstract:        "We study things at length.",
		References:      []string{"[1] Prior work. 2019.", "[2] Earlier work. 2017."},
		Keywords:        []string{"things", "studies"},
		DOI:             "10.1234/things.2021",
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"Xml", FormatXML},
		{"txt", FormatTXT},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}
}

func TestParseFormatUnsupported(t *testing.T) {
	for _, in := range []string{"", "csv", "pdf", "yaml"} {
		_, err := ParseFormat(in)
		require.Error(t, err, in)
		require.True(t, errors.Is(err, meta.ErrUnsupportedFormat), in)
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	md := sampleMetadata()
	body, err := Render(md, FormatJSON)
	require.NoError(t, err)

	var back meta.Metadata
	require.NoError(t, json.Unmarshal(body, &back))
	require.Equal(t, md, back)
}

func TestRenderJSONOmitsUnsetScalarsKeepsLists(t *testing.T) {
	body, err := Render(meta.Metadata{
		ID:         "doc-2",
		Authors:    []meta.Author{},
		References: []string{},
		Keywords:   []string{},
	}, FormatJSON)
	require.NoError(t, err)

	s := string(body)
	require.NotContains(t, s, `"title"`)
	require.NotContains(t, s, `"doi"`)
	require.NotContains(t, s, "null")
	require.Contains(t, s, `"authors": []`)
	require.Contains(t, s, `"references": []`)
	require.Contains(t, s, `"keywords": []`)
}

func TestRenderXML(t *testing.T) {
	body, err := Render(sampleMetadata(), FormatXML)
	require.NoError(t, err)

	s := string(body)
	require.True(t, strings.HasPrefix(s, "<?xml"))
	require.Contains(t, s, "<metadata>")
	require.Contains(t, s, "<title>A Study of Things</title>")
	require.Contains(t, s, "<author>")
	require.Contains(t, s, "<name>Alice Johnson</name>")
	require.Contains(t, s, "<affiliation>MIT</affiliation>")
	require.Contains(t, s, "<reference>[1] Prior work. 2019.</reference>")
	require.Contains(t, s, "<keyword>things</keyword>")
}

func TestRenderTXT(t *testing.T) {
	body, err := Render(sampleMetadata(), FormatTXT)
	require.NoError(t, err)

	s := string(body)
	require.Contains(t, s, "Title: A Study of Things\n")
	require.Contains(t, s, "  - Alice Johnson (MIT)\n")
	require.Contains(t, s, "  - Bob Smith\n")
	require.Contains(t, s, "DOI: 10.1234/things.2021\n")
	require.Contains(t, s, "  1. [1] Prior work. 2019.\n")
}

func TestRenderTXTPlaceholders(t *testing.T) {
	body, err := Render(meta.Metadata{ID: "doc-3"}, FormatTXT)
	require.NoError(t, err)
	require.Contains(t, string(body), "Title: n/a\n")
	require.Contains(t, string(body), "DOI: n/a\n")
}

func TestFormatMetadata(t *testing.T) {
	require.Equal(t, "application/json", FormatJSON.MIMEType())
	require.Equal(t, "application/xml", FormatXML.MIMEType())
	require.Equal(t, "text/plain; charset=utf-8", FormatTXT.MIMEType())
	require.Equal(t, "metadata.json", FormatJSON.Filename())
	require.Equal(t, "metadata.xml", FormatXML.Filename())
}
