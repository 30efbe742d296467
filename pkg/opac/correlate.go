// Package opac correlates holdings and circulation data in the raw,
// untransformed OPAC document with a requested item barcode.
package opac

import (
	"errors"
	"fmt"
	"strings"

	xmlpath "gopkg.in/xmlpath.v2"
)

var (
	// ErrBarcodeNotFound reports that circulation entries exist but none
	// matches the requested barcode. Callers fall back to a bib-only record
	// instead of guessing an index.
	ErrBarcodeNotFound = errors.New("no circulation entry matches barcode")

	// ErrMisaligned reports that the positionally-aligned lists extracted
	// from the document disagree in length, so index-based correlation would
	// return data for the wrong copy.
	ErrMisaligned = errors.New("circulation and volume lists are misaligned")
)

var (
	circulationPath = xmlpath.MustCompile("//circulation")
	itemIDPath      = xmlpath.MustCompile("itemId")
	volumePath      = xmlpath.MustCompile("//volume")
	enumerationPath = xmlpath.MustCompile("enumeration")
	prefixPath      = xmlpath.MustCompile("//shelvingData")
	holdingPath     = xmlpath.MustCompile("//holding")
	holdingItemPath = xmlpath.MustCompile("circulations/circulation/itemId")

	receiptPath     = xmlpath.MustCompile("receiptAcqStatus")
	localLocPath    = xmlpath.MustCompile("localLocation")
	shelvingLocPath = xmlpath.MustCompile("shelvingLocation")
	callNumberPath  = xmlpath.MustCompile("callNumber")
	copyNumberPath  = xmlpath.MustCompile("copyNumber")
)

// CircData is the holdings and circulation metadata for one physical copy.
type CircData struct {
	ReceiptAcqStatus string
	LocalLocation    string
	ShelvingLocation string
	CallNumbers      []string
	CopyNumbers      []string
	VolumeNumber     string
	CallNumberPrefix string
}

// Correlate locates the circulation entry whose itemId equals barcode and
// assembles the copy's metadata.
//
// Volume enumerations and shelving prefixes have no key relationship to
// circulation entries in the source schema; they are parallel lists aligned
// by position. Correlate verifies that alignment (volume list must match the
// circulation list in length, the prefix list may be absent entirely) and
// fails with ErrMisaligned instead of indexing past mismatched data. The
// holding-level fields use a second, value-keyed lookup: the holding that
// contains the matched entry. Both strategies read the same logical holding
// and both are needed.
//
// A document with no circulation entries at all yields (nil, nil): the bib
// record simply has no holdings attached.
func Correlate(raw string, barcode string) (*CircData, error) {
	root, err := xmlpath.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OPAC document: %w", err)
	}

	itemIDs := collect(circulationPath, itemIDPath, root)
	if len(itemIDs) == 0 {
		return nil, nil
	}

	volumes := collect(volumePath, enumerationPath, root)
	prefixes := values(prefixPath, root)

	if len(volumes) != len(itemIDs) {
		return nil, fmt.Errorf("%w: %d circulations, %d volumes", ErrMisaligned, len(itemIDs), len(volumes))
	}
	if len(prefixes) > 0 && len(prefixes) != len(itemIDs) {
		return nil, fmt.Errorf("%w: %d circulations, %d shelving prefixes", ErrMisaligned, len(itemIDs), len(prefixes))
	}

	match := -1
	for i, id := range itemIDs {
		if id == barcode {
			match = i
			break
		}
	}
	if match < 0 {
		return nil, fmt.Errorf("%w: %q", ErrBarcodeNotFound, barcode)
	}

	data := &CircData{
		VolumeNumber: volumes[match],
	}
	if len(prefixes) > 0 {
		data.CallNumberPrefix = prefixes[match]
	}

	// Second lookup, keyed by barcode value rather than list position: the
	// holding element that contains the matched circulation entry.
	holdings := holdingPath.Iter(root)
	for holdings.Next() {
		holding := holdings.Node()
		if !containsItem(holding, barcode) {
			continue
		}
		data.ReceiptAcqStatus = text(receiptPath, holding)
		data.LocalLocation = text(localLocPath, holding)
		data.ShelvingLocation = text(shelvingLocPath, holding)
		data.CallNumbers = values(callNumberPath, holding)
		data.CopyNumbers = values(copyNumberPath, holding)
		break
	}

	return data, nil
}

// collect extracts one child value per outer node, in document order.
func collect(outer, inner *xmlpath.Path, root *xmlpath.Node) []string {
	var out []string
	iter := outer.Iter(root)
	for iter.Next() {
		out = append(out, text(inner, iter.Node()))
	}
	return out
}

// values returns the string value of every node matched by path.
func values(path *xmlpath.Path, node *xmlpath.Node) []string {
	var out []string
	iter := path.Iter(node)
	for iter.Next() {
		out = append(out, strings.TrimSpace(iter.Node().String()))
	}
	return out
}

func text(path *xmlpath.Path, node *xmlpath.Node) string {
	if v, ok := path.String(node); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func containsItem(holding *xmlpath.Node, barcode string) bool {
	iter := holdingItemPath.Iter(holding)
	for iter.Next() {
		if strings.TrimSpace(iter.Node().String()) == barcode {
			return true
		}
	}
	return false
}
