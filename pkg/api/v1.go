package routing

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/libforms/bibdata-api/pkg/record"
)

type PlainOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type RecordInput struct {
	Bib      string `query:"bib" required:"true" doc:"Bibliographic record identifier to retrieve"`
	Barcode  string `query:"barcode" doc:"Item barcode selecting a specific physical copy"`
	Format   string `query:"format" enum:"php,json,xml" default:"php" doc:"Output representation; php returns the native record rendered as JSON"`
	Genre    string `query:"genre" doc:"Passed through to Aeon request forms (monograph or manuscript); unused during assembly"`
	Type     string `query:"type" doc:"DLL storage request type (law or stor); unused during assembly"`
	Database string `query:"database" enum:"production,testing" default:"production" doc:"SRU backend to query"`
}

type LinksInput struct {
	Bib      string `query:"bib" required:"true" doc:"Bibliographic record identifier"`
	Barcode  string `query:"barcode" doc:"Item barcode selecting a specific physical copy"`
	Type     string `query:"type" doc:"DLL storage request type (law or stor)"`
	Database string `query:"database" enum:"production,testing" default:"production" doc:"SRU backend to query"`
}

type LinksOutput struct {
	Body struct {
		RelaisSearch string `json:"relaisSearch" doc:"Search fragment for the Relais resource-sharing service"`
		DLLFormPath  string `json:"dllFormPath" doc:"DLL storage form that should receive the record"`
	}
}

// assembleError maps pipeline failures onto HTTP errors. Upstream trouble
// (the SRU backend or its payload) is a bad gateway; anything else is ours.
func assembleError(err error) error {
	switch {
	case errors.Is(err, record.ErrFetch):
		return huma.Error502BadGateway("failed to fetch record from SRU backend", err)
	case errors.Is(err, record.ErrTransform), errors.Is(err, record.ErrMalformedDocument):
		return huma.Error502BadGateway("SRU backend returned an unusable record", err)
	default:
		return huma.Error500InternalServerError("failed to assemble record", err)
	}
}

func Setup(api huma.API, svc *record.Service) {
	api.UseMiddleware(authMiddleware(api))

	huma.Register(api, huma.Operation{
		OperationID: "HealthCheck",
		Method:      "GET",
		Path:        "/healthz",
		Summary:     "Health check",
		Description: "Check if the API is running",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*PlainOutput, error) {
		return &PlainOutput{
			ContentType: "text/plain",
			Body:        []byte("OK"),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "GetRecord",
		Method:      "GET",
		Path:        "/v1/record",
		Summary:     "Get a record",
		Description: "Fetch a bibliographic record from the SRU backend, normalize it, and correlate holdings data for the given barcode",
		Tags:        []string{"Records"},
	}, func(ctx context.Context, input *RecordInput) (*PlainOutput, error) {
		req := record.Request{
			Bib:      input.Bib,
			Barcode:  input.Barcode,
			Format:   input.Format,
			Genre:    input.Genre,
			Type:     input.Type,
			Database: input.Database,
		}

		rec, err := svc.Assemble(ctx, req)
		if err != nil {
			return nil, assembleError(err)
		}

		contentType, body, err := record.Render(rec, req.Format)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to serialize record", err)
		}
		return &PlainOutput{
			ContentType: contentType,
			Body:        body,
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "GetRecordLinks",
		Method:      "GET",
		Path:        "/v1/record/links",
		Summary:     "Get service links",
		Description: "Derive the conditional service-link targets (Relais search fragment, DLL form path) for a record",
		Tags:        []string{"Records"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *LinksInput) (*LinksOutput, error) {
		rec, err := svc.Assemble(ctx, record.Request{
			Bib:      input.Bib,
			Barcode:  input.Barcode,
			Type:     input.Type,
			Database: input.Database,
		})
		if err != nil {
			return nil, assembleError(err)
		}

		resp := &LinksOutput{}
		resp.Body.RelaisSearch = record.RelaisSearch(rec)
		resp.Body.DLLFormPath = record.DLLFormPath(input.Type)
		return resp, nil
	})
}
