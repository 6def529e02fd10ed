// Package export renders assembled metadata into downloadable
// representations. Serialization is a pure function of the record and
// the requested format; confidence and verification data never appear
// in exports.
package export

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/dgallion1/papermeta/internal/meta"
)

// Format is one of the recognized export formats.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatTXT  Format = "txt"
)

// ParseFormat validates a format parameter, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatXML:
		return FormatXML, nil
	case FormatTXT:
		return FormatTXT, nil
	default:
		return "", fmt.Errorf("%q: %w", s, meta.ErrUnsupportedFormat)
	}
}

// MIMEType returns the content type to serve the format with.
func (f Format) MIMEType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatXML:
		return "application/xml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Filename returns the download name for the format.
func (f Format) Filename() string {
	return "metadata." + string(f)
}

// Render serializes md into the requested format. Unset scalar fields
// are omitted from JSON output (not serialized as null); list fields
// always serialize, as empty arrays when nothing was extracted.
func Render(md meta.Metadata, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(md, "", "  ")
	case FormatXML:
		return renderXML(md)
	case FormatTXT:
		return renderTXT(md), nil
	default:
		return nil, fmt.Errorf("%q: %w", format, meta.ErrUnsupportedFormat)
	}
}

type xmlAuthor struct {
	Name        string `xml:"name"`
	Affiliation string `xml:"affiliation,omitempty"`
}

type xmlMetadata struct {
	XMLName         xml.Name    `xml:"metadata"`
	ID              string      `xml:"id"`
	Title           string      `xml:"title,omitempty"`
	Authors         []xmlAuthor `xml:"authors>author"`
	Journal         string      `xml:"journal,omitempty"`
	Conference      string      `xml:"conference,omitempty"`
	City            string      `xml:"city,omitempty"`
	PublicationDate string      `xml:"publicationDate,omitempty"`
	Abstract        string      `xml:"abstract,omitempty"`
	Funding         string      `xml:"funding,omitempty"`
	References      []string    `xml:"references>reference"`
	Keywords        []string    `xml:"keywords>keyword"`
	DOI             string      `xml:"doi,omitempty"`
}

func renderXML(md meta.Metadata) ([]byte, error) {
	rec := xmlMetadata{
		ID:              md.ID,
		Title:           md.Title,
		Journal:         md.Journal,
		Conference:      md.Conference,
		City:            md.City,
		PublicationDate: md.PublicationDate,
		Abstract:        md.Abstract,
		Funding:         md.Funding,
		References:      md.References,
		Keywords:        md.Keywords,
		DOI:             md.DOI,
	}
	for _, a := range md.Authors {
		rec.Authors = append(rec.Authors, xmlAuthor{Name: a.Name, Affiliation: a.Affiliation})
	}

	body, err := xml.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal xml: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func renderTXT(md meta.Metadata) []byte {
	var sb strings.Builder

	writeScalar := func(label, value string) {
		if value == "" {
			value = "n/a"
		}
		fmt.Fprintf(&sb, "%s: %s\n", label, value)
	}

	writeScalar("Title", md.Title)

	sb.WriteString("Authors:\n")
	for _, a := range md.Authors {
		if a.Affiliation != "" {
			fmt.Fprintf(&sb, "  - %s (%s)\n", a.Name, a.Affiliation)
		} else {
			fmt.Fprintf(&sb, "  - %s\n", a.Name)
		}
	}

	writeScalar("Journal", md.Journal)
	writeScalar("Conference", md.Conference)
	writeScalar("City", md.City)
	writeScalar("Publication date", md.PublicationDate)
	writeScalar("DOI", md.DOI)

	sb.WriteString("\nAbstract:\n")
	if md.Abstract != "" {
		sb.WriteString(md.Abstract + "\n")
	}

	sb.WriteString("\nFunding:\n")
	if md.Funding != "" {
		sb.WriteString(md.Funding + "\n")
	}

	sb.WriteString("\nKeywords:\n")
	for _, kw := range md.Keywords {
		fmt.Fprintf(&sb, "  - %s\n", kw)
	}

	sb.WriteString("\nReferences:\n")
	for i, ref := range md.References {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, ref)
	}

	return []byte(sb.String())
}
