package record

// Request carries one inbound request's parameters through the pipeline as an
// immutable value. Nothing about a request is stored on the service, so
// concurrent requests never share state.
type Request struct {
	// Bib is the catalog record identifier. Required.
	Bib string

	// Barcode selects a specific physical copy. Optional; when empty no
	// circulation correlation runs and the record is bib-only.
	Barcode string

	// Format is the requested output representation: php, json, or xml.
	// Anything else falls back to the native representation.
	Format string

	// Genre and Type are passed through for downstream request forms (Aeon,
	// DLL storage); they do not affect record assembly.
	Genre string
	Type  string

	// Database selects the SRU endpoint; "testing" routes to the testing
	// backend, anything else to production.
	Database string
}

// Testing reports whether the request targets the testing SRU endpoint.
func (r Request) Testing() bool {
	return r.Database == "testing"
}
