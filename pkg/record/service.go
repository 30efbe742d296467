// Package record assembles normalized bibliographic records: it fetches the
// raw OPAC document, repairs and transforms it, crosswalks the canonical
// entry, correlates circulation data for a requested barcode, and flattens
// everything into a FlatRecord.
package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/libforms/bibdata-api/pkg/marcxml"
	"github.com/libforms/bibdata-api/pkg/mods"
	"github.com/libforms/bibdata-api/pkg/opac"
	"github.com/libforms/bibdata-api/pkg/sru"
	"github.com/libforms/bibdata-api/pkg/xslt"
)

// Service runs the record assembly pipeline. It holds only the two
// collaborators shared across requests; per-request state travels in Request.
type Service struct {
	fetcher     sru.Fetcher
	transformer xslt.Transformer
}

func NewService(fetcher sru.Fetcher, transformer xslt.Transformer) *Service {
	return &Service{
		fetcher:     fetcher,
		transformer: transformer,
	}
}

// Assemble produces the flat record for one request. Every stage failure is
// terminal: a record is either complete or absent, never partial. The one
// soft condition is a supplied barcode matching no circulation entry; the
// result is then a bib-only record with circulation fields null.
func (s *Service) Assemble(ctx context.Context, req Request) (*FlatRecord, error) {
	raw, err := s.fetcher.FetchRecord(ctx, req.Bib, req.Testing())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	repaired := marcxml.RepairEnvelope(raw)

	transformed, err := s.transformer.Transform([]byte(repaired))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransform, err)
	}

	entry, err := mods.Crosswalk(transformed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	var circ *opac.CircData
	if req.Barcode != "" {
		circ, err = opac.Correlate(repaired, req.Barcode)
		switch {
		case errors.Is(err, opac.ErrBarcodeNotFound):
			// The bib record is still usable; the correlated fields stay
			// null rather than silently carrying another copy's data.
			slog.Warn("barcode matched no circulation entry", "bib", req.Bib, "barcode", req.Barcode)
			circ = nil
		case err != nil:
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}

	return Normalize(entry, circ, req), nil
}
