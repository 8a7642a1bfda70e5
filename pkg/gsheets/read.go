package gsheets

import (
	"context"

	"gsheet-reader/pkg/reader"
)

// ReadRows performs a single typed range read: build a client from the
// credentials, fetch the range, convert. One blocking fetch per call,
// nothing cached across calls.
func ReadRows(ctx context.Context, spreadsheetID, rangeExpr string, cols reader.Columns, creds Credentials) ([]reader.Row, error) {
	client, err := NewClient(ctx, creds)
	if err != nil {
		return nil, err
	}
	return reader.New(client).ReadRows(ctx, spreadsheetID, rangeExpr, cols)
}

// ReadTable is ReadRows with the result wrapped into a labeled table.
func ReadTable(ctx context.Context, spreadsheetID, rangeExpr string, cols reader.Columns, creds Credentials) (*reader.Table, error) {
	client, err := NewClient(ctx, creds)
	if err != nil {
		return nil, err
	}
	return reader.New(client).ReadTable(ctx, spreadsheetID, rangeExpr, cols)
}
