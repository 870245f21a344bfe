package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"espoch-directory/docentes/internal/constants"
	"espoch-directory/docentes/internal/models/dtos"
)

const (
	// DefaultBaseURL is the Google Sheets values API endpoint.
	DefaultBaseURL = "https://sheets.googleapis.com/v4"

	// HeaderRange covers the header row of a tab.
	HeaderRange = "A1:Z1"

	// DataRange covers the data rows; it starts at row 2 so the header row
	// never leaks into projected records.
	DataRange = "A2:P1000"
)

// SheetsClient fetches tab lists, header rows and data rows from the Google
// Sheets API using a per-faculty spreadsheet id and API key.
type SheetsClient struct {
	BaseURL string
	Client  *http.Client
}

func NewSheetsClient() *SheetsClient {
	return &SheetsClient{
		BaseURL: DefaultBaseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// UpstreamError describes a failed interaction with the spreadsheet API.
type UpstreamError struct {
	Code   string
	Status int
	Body   string
	Err    error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", constants.GetErrorMessage(e.Code), e.Err)
	case e.Status != 0:
		return fmt.Sprintf("spreadsheet API returned status %d: %s", e.Status, e.Body)
	}
	return constants.GetErrorMessage(e.Code)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Transient reports whether a retry could plausibly succeed. HTTP and
// network failures are transient; empty or malformed payloads are not.
func (e *UpstreamError) Transient() bool {
	return e.Code == constants.ErrCodeUpstreamError || e.Code == constants.ErrCodeNetworkError
}

// spreadsheetResponse is the document metadata shape.
type spreadsheetResponse struct {
	Sheets []struct {
		Properties struct {
			SheetID int64  `json:"sheetId"`
			Title   string `json:"title"`
		} `json:"properties"`
	} `json:"sheets"`
}

// valuesResponse is the values-range shape.
type valuesResponse struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// ListSheets returns the tabs of a spreadsheet document.
func (c *SheetsClient) ListSheets(ctx context.Context, spreadsheetID, apiKey string) ([]dtos.SheetRef, error) {
	endpoint := fmt.Sprintf("%s/spreadsheets/%s?key=%s&fields=sheets.properties",
		c.BaseURL, url.PathEscape(spreadsheetID), url.QueryEscape(apiKey))

	var resp spreadsheetResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	if len(resp.Sheets) == 0 {
		return nil, &UpstreamError{Code: constants.ErrCodeEmptyResult}
	}

	sheets := make([]dtos.SheetRef, len(resp.Sheets))
	for i, sheet := range resp.Sheets {
		sheets[i] = dtos.SheetRef{
			Title:   sheet.Properties.Title,
			SheetID: sheet.Properties.SheetID,
		}
	}
	return sheets, nil
}

// FetchHeaderRow reads the first row of a tab. Blank header cells are named
// "Column <n>" (1-based) so the admin panel always has something to show.
func (c *SheetsClient) FetchHeaderRow(ctx context.Context, spreadsheetID, apiKey, sheetTitle string) ([]dtos.HeaderColumn, error) {
	values, err := c.fetchValues(ctx, spreadsheetID, apiKey, sheetTitle, HeaderRange)
	if err != nil {
		return nil, err
	}

	header := values[0]
	columns := make([]dtos.HeaderColumn, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Column %d", i+1)
		}
		columns[i] = dtos.HeaderColumn{Index: i, Name: name}
	}
	return columns, nil
}

// FetchRows reads the data rows of a tab. The range convention starts at
// row 2, so the returned rows never include the header.
func (c *SheetsClient) FetchRows(ctx context.Context, spreadsheetID, apiKey, sheetTitle, rangeSpec string) ([][]string, error) {
	if rangeSpec == "" {
		rangeSpec = DataRange
	}
	return c.fetchValues(ctx, spreadsheetID, apiKey, sheetTitle, rangeSpec)
}

func (c *SheetsClient) fetchValues(ctx context.Context, spreadsheetID, apiKey, sheetTitle, rangeSpec string) ([][]string, error) {
	fullRange := rangeSpec
	if sheetTitle != "" {
		fullRange = sheetTitle + "!" + rangeSpec
	}
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s?key=%s",
		c.BaseURL, url.PathEscape(spreadsheetID), url.PathEscape(fullRange), url.QueryEscape(apiKey))

	var resp valuesResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	if len(resp.Values) == 0 {
		return nil, &UpstreamError{Code: constants.ErrCodeEmptyResult}
	}
	return resp.Values, nil
}

// getJSON executes a GET and decodes the body into target, classifying
// transport, HTTP and payload failures.
func (c *SheetsClient) getJSON(ctx context.Context, endpoint string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return &UpstreamError{
			Code: constants.ErrCodeNetworkError,
			Err:  err,
		}
	}
	defer resp.Body.Close()

	if err := c.handleHTTPError(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &UpstreamError{
			Code: constants.ErrCodeInvalidDataFormat,
			Err:  err,
		}
	}
	return nil
}

// handleHTTPError converts non-2xx responses to UpstreamError, carrying the
// response body as diagnostic.
func (c *SheetsClient) handleHTTPError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	return &UpstreamError{
		Code:   constants.ErrCodeUpstreamError,
		Status: resp.StatusCode,
		Body:   string(body),
	}
}
