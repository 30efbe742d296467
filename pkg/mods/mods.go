// Package mods decodes the MODS document produced by the MARC stylesheet
// into a typed representation and selects the canonical bibliographic entry.
package mods

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/libforms/bibdata-api/pkg/isxn"
)

// Entry is one bibliographic description from the transformed document.
type Entry struct {
	TitleInfos  []TitleInfo  `xml:"titleInfo"`
	Names       []Name       `xml:"name"`
	OriginInfo  OriginInfo   `xml:"originInfo"`
	Identifiers []Identifier `xml:"identifier"`
}

// Name holds the name parts of one author/contributor.
type Name struct {
	NameParts []string `xml:"namePart"`
}

// Identifier is a typed identifier element, e.g. type="isbn".
type Identifier struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

type OriginInfo struct {
	Places     []Place `xml:"place"`
	Publisher  string  `xml:"publisher"`
	DateIssued string  `xml:"dateIssued"`
	Edition    string  `xml:"edition"`
}

type Place struct {
	Terms []PlaceTerm `xml:"placeTerm"`
}

type PlaceTerm struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

// TitleInfo preserves its child elements as an ordered key/value list. Order
// matters: title assembly keeps the first occurrence of each subfield key
// across all titleInfo blocks, so the decoder must not lose document order
// the way a plain struct mapping would.
type TitleInfo struct {
	Subfields []Subfield
}

// Subfield is one child element of a titleInfo block, e.g. {title, "Moby Dick"}.
type Subfield struct {
	Key   string
	Value string
}

// UnmarshalXML collects every child element of titleInfo in document order.
func (ti *TitleInfo) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			ti.Subfields = append(ti.Subfields, Subfield{
				Key:   t.Name.Local,
				Value: strings.TrimSpace(value),
			})
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

// document matches any root element carrying mods children, which covers
// both modsCollection and unwrapped output.
type document struct {
	Entries []Entry `xml:"mods"`
}

// Crosswalk parses the transformed document and returns the canonical entry:
// the first mods child, by policy. The search is expected to return exactly
// one relevant description per query; later entries are ignored on purpose.
func Crosswalk(doc []byte) (*Entry, error) {
	var parsed document
	if err := xml.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse MODS document: %w", err)
	}
	if len(parsed.Entries) == 0 {
		return nil, fmt.Errorf("no mods entry in transformed document")
	}
	return &parsed.Entries[0], nil
}

// ISXN returns the entry's cleaned identifiers of the given kind ("isbn" or
// "issn"). A record with no identifiers of that kind yields nil.
func (e *Entry) ISXN(kind string) []string {
	var raw []string
	for _, id := range e.Identifiers {
		if id.Type == kind {
			raw = append(raw, strings.TrimSpace(id.Value))
		}
	}
	return isxn.Clean(raw)
}

// Author returns the first name part of the first name element, or "" when
// the record carries no name.
func (e *Entry) Author() string {
	for _, n := range e.Names {
		for _, p := range n.NameParts {
			return p
		}
	}
	return ""
}
