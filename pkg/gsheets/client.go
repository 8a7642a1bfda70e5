package gsheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ErrAuthorization reports a fetch the Sheets API rejected as
// unauthenticated or forbidden.
var ErrAuthorization = errors.New("sheets authorization failed")

// Client reads cell values from the Google Sheets API.
type Client struct {
	svc *sheets.Service
}

// NewClient builds a read-only Sheets client from the given credentials.
func NewClient(ctx context.Context, creds Credentials) (*Client, error) {
	payload, err := creds.payload()
	if err != nil {
		return nil, err
	}

	opts := []option.ClientOption{
		option.WithCredentialsJSON(payload),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		slog.Error("Failed to create Sheets client", "error", err)
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Values fetches the raw cell grid for one range of a spreadsheet. Cells
// come back as formatted text; trailing empty cells of a row are omitted by
// the API, so rows may be shorter than the requested span.
func (c *Client) Values(ctx context.Context, spreadsheetID, rangeExpr string) ([][]string, error) {
	slog.Debug("Sheets API request", "spreadsheet_id", spreadsheetID, "range", rangeExpr)
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, rangeExpr).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden) {
			slog.Error("Sheets API rejected request", "spreadsheet_id", spreadsheetID, "status", apiErr.Code)
			return nil, fmt.Errorf("%w: %v", ErrAuthorization, err)
		}
		slog.Error("Sheets API request failed", "spreadsheet_id", spreadsheetID, "range", rangeExpr, "error", err)
		return nil, fmt.Errorf("get values: %w", err)
	}

	rows := make([][]string, len(resp.Values))
	for i, rawRow := range resp.Values {
		row := make([]string, len(rawRow))
		for j, cell := range rawRow {
			if s, ok := cell.(string); ok {
				row[j] = s
			} else if cell != nil {
				row[j] = fmt.Sprintf("%v", cell)
			}
		}
		rows[i] = row
	}
	slog.Debug("Sheets API response", "spreadsheet_id", spreadsheetID, "rows", len(rows))
	return rows, nil
}
