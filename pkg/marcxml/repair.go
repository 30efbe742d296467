// Package marcxml contains helpers for raw MARC21-slim payloads as returned
// by the SRU backend, before any transformation runs.
package marcxml

import (
	"regexp"
	"strings"
)

// Namespace is the MARC21-slim XML namespace expected by the MODS stylesheet.
const Namespace = "http://www.loc.gov/MARC21/slim"

const (
	openTag  = `<collection xmlns="` + Namespace + `">`
	closeTag = `</collection>`
)

// recordOpen matches an opening record element but not longer element names
// like records or recordData.
var recordOpen = regexp.MustCompile(`<record[\s>]`)

// RepairEnvelope wraps the record element of a raw payload in a MARC
// collection element when the backend omitted it. One deployment of the SRU
// service returns bare <record> elements while another wraps them; the MODS
// stylesheet requires the wrapper, so both shapes are normalized here. The
// check is presence-based, which makes the repair idempotent.
func RepairEnvelope(raw string) string {
	if strings.Contains(raw, "<collection") {
		return raw
	}
	loc := recordOpen.FindStringIndex(raw)
	if loc == nil {
		return raw
	}
	open := loc[0]
	close := strings.LastIndex(raw, "</record>")
	if close < open {
		return raw
	}
	close += len("</record>")
	return raw[:open] + openTag + raw[open:close] + closeTag + raw[close:]
}
