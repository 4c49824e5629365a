package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/jwalitptl/receptionist-dashboard/internal/config"
	apperrors "github.com/jwalitptl/receptionist-dashboard/pkg/errors"
)

// Row is one spreadsheet record, keyed by the trimmed header cells.
type Row map[string]string

// Client fetches tabs from the scheduling spreadsheet through the Google
// Sheets values API.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

func NewClient(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: cfg.SpreadsheetID}, nil
}

// FetchTab reads the full A:Z range of a tab and maps every row after the
// header onto the header's column names. Fetch failures are returned to the
// caller; a tab with no header or no data rows is an empty result, not an
// error.
func (c *Client) FetchTab(ctx context.Context, tab string) ([]Row, error) {
	rng := fmt.Sprintf("%s!A:Z", tab)

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		log.Error().Err(err).Str("tab", tab).Msg("sheet fetch failed")
		return nil, apperrors.Upstream("spreadsheet", err)
	}

	rows := MapRows(resp.Values)
	log.Debug().Str("tab", tab).Int("rows", len(rows)).Msg("sheet tab fetched")
	return rows, nil
}

// MapRows turns raw value-range rows into header-keyed records. The first
// row is the header; cells past the end of a data row map to "".
func MapRows(values [][]interface{}) []Row {
	if len(values) < 2 {
		return nil
	}

	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		header[i] = strings.TrimSpace(cellString(cell))
	}

	rows := make([]Row, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := make(Row, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(raw) {
				row[key] = cellString(raw[i])
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
