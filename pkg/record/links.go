package record

import (
	"fmt"
	"strings"

	"github.com/libforms/bibdata-api/pkg/isxn"
)

// Form paths for the DLL storage request service, keyed by the request's
// type parameter.
const (
	dllLawForm     = "DLL_storagerequest.php"
	dllStorageForm = "paging.php"
	dllDefaultForm = "search-template.php"
)

// RelaisSearch builds the search fragment appended to queries against the
// Relais resource-sharing service (BorrowDirect/UBorrow). Identifier searches
// beat keyword searches, so ISBN wins, then ISSN, then quoted title/author.
// ISBN-10s are sent in their ISBN-13 form when convertible.
func RelaisSearch(rec *FlatRecord) string {
	if len(rec.ISBN) > 0 {
		n := strings.ReplaceAll(rec.ISBN[0], "-", "")
		if c := isxn.To13(n); c != "" {
			n = c
		}
		return "isbn=" + n
	}
	if len(rec.ISSN) > 0 {
		return "issn=" + rec.ISSN[0]
	}
	search := fmt.Sprintf("ti=%q", rec.Title)
	if rec.Author != nil {
		search += fmt.Sprintf(" and au=%q", *rec.Author)
	}
	return search
}

// DLLFormPath maps the request's type parameter to the DLL storage form that
// should receive the record.
func DLLFormPath(requestType string) string {
	switch requestType {
	case "law":
		return dllLawForm
	case "stor":
		return dllStorageForm
	default:
		return dllDefaultForm
	}
}
