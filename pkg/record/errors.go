package record

import "errors"

// Error kinds surfaced by the assembly pipeline. All are terminal for the
// current request; nothing is retried and no partial record is produced.
var (
	// ErrFetch covers network or service failure reaching the SRU backend.
	ErrFetch = errors.New("record fetch failed")

	// ErrMalformedDocument covers raw or transformed XML that cannot be
	// parsed, including misaligned holdings data.
	ErrMalformedDocument = errors.New("malformed record document")

	// ErrTransform covers rejection of the document by the stylesheet engine.
	ErrTransform = errors.New("stylesheet transform failed")
)
