package sheets

import (
	"context"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

//go:generate counterfeiter . ValuesAPI

type ValuesAPI interface {
	Get(ctx context.Context, spreadsheetID, rng string) ([][]interface{}, error)
	Append(ctx context.Context, spreadsheetID, rng string, rows [][]interface{}) error
}

type serviceValues struct {
	service *gsheets.Service
}

// NewValuesAPI talks to the Sheets API. Extra options (endpoints, http
// clients) are passed through to the generated client.
func NewValuesAPI(ctx context.Context, opts ...option.ClientOption) (ValuesAPI, error) {
	opts = append([]option.ClientOption{option.WithScopes(gsheets.SpreadsheetsScope)}, opts...)

	service, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &serviceValues{service: service}, nil
}

func NewValuesAPIFromCredentials(ctx context.Context, credentialsFile string) (ValuesAPI, error) {
	return NewValuesAPI(ctx, option.WithCredentialsFile(credentialsFile))
}

func (s *serviceValues) Get(ctx context.Context, spreadsheetID, rng string) ([][]interface{}, error) {
	resp, err := s.service.Spreadsheets.Values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return resp.Values, nil
}

func (s *serviceValues) Append(ctx context.Context, spreadsheetID, rng string, rows [][]interface{}) error {
	_, err := s.service.Spreadsheets.Values.Append(spreadsheetID, rng, &gsheets.ValueRange{Values: rows}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()

	return err
}
