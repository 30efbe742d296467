package record

import (
	"strings"

	"github.com/libforms/bibdata-api/pkg/mods"
	"github.com/libforms/bibdata-api/pkg/opac"
)

// FlatRecord is the normalized, service-agnostic record handed to request
// forms. Pointer fields are null when the source record does not carry the
// value; circulation-sourced fields are null whenever no circulation entry
// was correlated. A FlatRecord is built once per request and never mutated
// afterwards.
type FlatRecord struct {
	Title            string   `json:"title"`
	Location         *string  `json:"location"`
	CallNumber       *string  `json:"callNumber"`
	CallNumberPrefix *string  `json:"callNumberPrefix"`
	CopyNumber       *string  `json:"copyNumber"`
	VolumeNumber     *string  `json:"volumeNumber"`
	Author           *string  `json:"author"`
	BibID            string   `json:"bibId"`
	Barcode          *string  `json:"barcode"`
	Publisher        *string  `json:"publisher"`
	PlacePublished   *string  `json:"placePublished"`
	DateIssued       *string  `json:"dateIssued"`
	Edition          *string  `json:"edition"`
	ISSN             []string `json:"issn"`
	ISBN             []string `json:"isbn"`
}

// Normalize derives the flat record from the crosswalked bibliographic entry
// and the (possibly absent) circulation data.
func Normalize(entry *mods.Entry, circ *opac.CircData, req Request) *FlatRecord {
	rec := &FlatRecord{
		Title: assembleTitle(entry.TitleInfos),
		BibID: req.Bib,
	}

	if req.Barcode != "" {
		rec.Barcode = ptr(req.Barcode)
	}
	if author := entry.Author(); author != "" {
		rec.Author = ptr(author)
	}
	if entry.OriginInfo.Publisher != "" {
		rec.Publisher = ptr(entry.OriginInfo.Publisher)
	}
	if len(entry.OriginInfo.Places) > 0 {
		rec.PlacePublished = ptr(placePublished("text", entry.OriginInfo.Places))
	}
	if entry.OriginInfo.DateIssued != "" {
		// Catalog dates carry open-range hyphens ("1994-", "-2003-"); only
		// those are stripped, not whitespace.
		rec.DateIssued = ptr(strings.Trim(entry.OriginInfo.DateIssued, "-"))
	}
	if entry.OriginInfo.Edition != "" {
		rec.Edition = ptr(entry.OriginInfo.Edition)
	}

	rec.ISSN = entry.ISXN("issn")
	rec.ISBN = entry.ISXN("isbn")

	if circ != nil {
		rec.Location = ptr(circ.ShelvingLocation)
		rec.CallNumber = ptr(strings.Join(circ.CallNumbers, ""))
		rec.CallNumberPrefix = ptr(circ.CallNumberPrefix)
		rec.CopyNumber = ptr(strings.Join(circ.CopyNumbers, ""))
		rec.VolumeNumber = ptr(circ.VolumeNumber)
	}

	return rec
}

// assembleTitle flattens the record's titleInfo blocks into one string. Title
// subfields repeat across blocks; the first occurrence of each subfield key
// wins and later duplicates are discarded, not merged. Kept values join with
// a single space in document order.
func assembleTitle(infos []mods.TitleInfo) string {
	seen := make(map[string]bool)
	var parts []string
	for _, info := range infos {
		for _, sf := range info.Subfields {
			if seen[sf.Key] {
				continue
			}
			seen[sf.Key] = true
			parts = append(parts, sf.Value)
		}
	}
	return strings.Join(parts, " ")
}

// placePublished concatenates every place term of the given type, in document
// order, with no separator. MODS repeats the place element per vocabulary
// ("code" and "text" terms); forms want only the text ones.
func placePublished(termType string, places []mods.Place) string {
	var b strings.Builder
	for _, place := range places {
		for _, term := range place.Terms {
			if term.Type == termType {
				b.WriteString(term.Value)
			}
		}
	}
	return b.String()
}

func ptr(s string) *string {
	return &s
}
