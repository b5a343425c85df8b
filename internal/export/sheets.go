package export

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/basile/kvitto/internal/parsing"
)

// Sheets publishes to Google Sheets, either updating a tab of an existing
// spreadsheet or creating a whole new spreadsheet.
type Sheets struct {
	service *sheets.Service

	// update mode
	spreadsheetID string
	sheetName     string

	// create mode, used when spreadsheetID is empty
	title string
}

// NewSheetsService builds the Sheets API client from an authenticated HTTP
// client.
func NewSheetsService(ctx context.Context, client *http.Client, opts ...option.ClientOption) (*sheets.Service, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}
	return service, nil
}

// NewSheetsUpdate creates a sink that writes into the named tab of an
// existing spreadsheet, creating the tab first if it does not exist.
func NewSheetsUpdate(service *sheets.Service, spreadsheetID, sheetName string) *Sheets {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	return &Sheets{service: service, spreadsheetID: spreadsheetID, sheetName: sheetName}
}

// NewSheetsCreate creates a sink that makes a new spreadsheet with the given
// title and writes into its "Receipt Items" tab.
func NewSheetsCreate(service *sheets.Service, title string) *Sheets {
	return &Sheets{service: service, title: title}
}

// Export publishes the expense-split layout
func (s *Sheets) Export(pairs []parsing.Pair, fields parsing.ScalarFields) error {
	if s.spreadsheetID == "" {
		return s.create(pairs, fields)
	}
	return s.update(pairs, fields)
}

func (s *Sheets) update(pairs []parsing.Pair, fields parsing.ScalarFields) error {
	spreadsheet, err := s.service.Spreadsheets.Get(s.spreadsheetID).Do()
	if err != nil {
		return fmt.Errorf("fetching spreadsheet: %w", err)
	}

	exists := false
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == s.sheetName {
			exists = true
			break
		}
	}
	if !exists {
		request := &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: s.sheetName},
				},
			}},
		}
		if _, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, request).Do(); err != nil {
			return fmt.Errorf("creating sheet %q: %w", s.sheetName, err)
		}
		slog.Info("Created new sheet", "name", s.sheetName)
	}

	// Clear whatever the tab held before writing the new values.
	clearRange := fmt.Sprintf("%s!A:Z", s.sheetName)
	if _, err := s.service.Spreadsheets.Values.Clear(s.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Do(); err != nil {
		return fmt.Errorf("clearing sheet %q: %w", s.sheetName, err)
	}

	if err := s.writeValues(s.spreadsheetID, s.sheetName, pairs, fields); err != nil {
		return err
	}

	slog.Info("Updated sheet", "name", s.sheetName, "items", len(pairs))
	return nil
}

func (s *Sheets) create(pairs []parsing.Pair, fields parsing.ScalarFields) error {
	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: s.title},
		Sheets: []*sheets.Sheet{{
			Properties: &sheets.SheetProperties{Title: DefaultSheetName},
		}},
	}

	created, err := s.service.Spreadsheets.Create(spreadsheet).Do()
	if err != nil {
		return fmt.Errorf("creating spreadsheet: %w", err)
	}

	if err := s.writeValues(created.SpreadsheetId, DefaultSheetName, pairs, fields); err != nil {
		return err
	}

	slog.Info("Created spreadsheet",
		"title", s.title,
		"id", created.SpreadsheetId,
		"url", fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", created.SpreadsheetId),
	)
	return nil
}

func (s *Sheets) writeValues(spreadsheetID, sheetName string, pairs []parsing.Pair, fields parsing.ScalarFields) error {
	values := &sheets.ValueRange{Values: buildSheetValues(pairs, fields.PaidTotal)}
	_, err := s.service.Spreadsheets.Values.
		Update(spreadsheetID, fmt.Sprintf("%s!A1", sheetName), values).
		ValueInputOption("USER_ENTERED").
		Do()
	if err != nil {
		return fmt.Errorf("writing values to %q: %w", sheetName, err)
	}
	return nil
}
