package record

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// Output representations. FormatNative is the historical "php" mode: the
// record as an in-memory mapping, for in-process consumers.
const (
	FormatNative = "php"
	FormatJSON   = "json"
	FormatXML    = "xml"
)

// field pairs a FlatRecord field name with its value for representations
// that need a stable field order.
type field struct {
	name  string
	value any
}

func (r *FlatRecord) fields() []field {
	return []field{
		{"title", r.Title},
		{"location", r.Location},
		{"callNumber", r.CallNumber},
		{"callNumberPrefix", r.CallNumberPrefix},
		{"copyNumber", r.CopyNumber},
		{"volumeNumber", r.VolumeNumber},
		{"author", r.Author},
		{"bibId", r.BibID},
		{"barcode", r.Barcode},
		{"publisher", r.Publisher},
		{"placePublished", r.PlacePublished},
		{"dateIssued", r.DateIssued},
		{"edition", r.Edition},
		{"issn", r.ISSN},
		{"isbn", r.ISBN},
	}
}

// Native returns the record as a mapping from field name to scalar, array,
// or nil.
func (r *FlatRecord) Native() map[string]any {
	m := make(map[string]any, 15)
	for _, f := range r.fields() {
		switch v := f.value.(type) {
		case string:
			m[f.name] = v
		case *string:
			if v == nil {
				m[f.name] = nil
			} else {
				m[f.name] = *v
			}
		case []string:
			if v == nil {
				m[f.name] = nil
			} else {
				m[f.name] = v
			}
		}
	}
	return m
}

// XML renders the record as a <record> document. Each field becomes a child
// element; array values become <value> children carrying a key attribute that
// preserves their position; null fields become empty elements. Text content
// is entity-escaped by the serializer.
func (r *FlatRecord) XML() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("record")

	for _, f := range r.fields() {
		child := root.CreateElement(f.name)
		switch v := f.value.(type) {
		case string:
			child.SetText(v)
		case *string:
			if v != nil {
				child.SetText(*v)
			}
		case []string:
			for i, item := range v {
				value := child.CreateElement("value")
				value.CreateAttr("key", strconv.Itoa(i))
				value.SetText(item)
			}
		}
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize record xml: %w", err)
	}
	return out, nil
}

// Render serializes the record for the HTTP edge and picks the response
// content type. The native mode has no wire form of its own, so its mapping
// is rendered as JSON; in-process consumers call Format directly instead.
func Render(r *FlatRecord, mode string) (contentType string, body []byte, err error) {
	out, err := Format(r, mode)
	if err != nil {
		return "", nil, err
	}
	switch v := out.(type) {
	case []byte:
		if mode == FormatXML {
			return "application/xml; charset=utf-8", v, nil
		}
		return "application/json; charset=utf-8", v, nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", nil, fmt.Errorf("failed to serialize record: %w", err)
		}
		return "application/json; charset=utf-8", b, nil
	}
}

// Format renders the record in the requested mode. JSON and XML modes return
// []byte; native (and any unrecognized mode) returns the field mapping.
func Format(r *FlatRecord, mode string) (any, error) {
	switch mode {
	case FormatJSON:
		out, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize record json: %w", err)
		}
		return out, nil
	case FormatXML:
		return r.XML()
	default:
		return r.Native(), nil
	}
}
