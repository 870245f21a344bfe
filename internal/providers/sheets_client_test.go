package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"espoch-directory/docentes/internal/constants"
)

func testClient(serverURL string) *SheetsClient {
	return &SheetsClient{
		BaseURL: serverURL,
		Client:  &http.Client{},
	}
}

func TestSheetsClient_FetchRows_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("Expected key query param, got %q", r.URL.Query().Get("key"))
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"range": "Docentes!A2:P1000", "values": [["001", "Ana"], ["002", "Luis"]]}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	rows, err := client.FetchRows(context.Background(), "spreadsheet-1", "test-key", "Docentes", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[1][1] != "Luis" {
		t.Errorf("Expected Luis, got %q", rows[1][1])
	}
}

func TestSheetsClient_FetchRows_EmptyValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"range": "Docentes!A2:P1000"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.FetchRows(context.Background(), "spreadsheet-1", "key", "Docentes", "")

	var upstream *UpstreamError
	if !errors.As(err, &upstream) || upstream.Code != constants.ErrCodeEmptyResult {
		t.Fatalf("Expected EMPTY_RESULT, got %v", err)
	}
	if upstream.Transient() {
		t.Error("Empty result must not be transient")
	}
}

func TestSheetsClient_FetchRows_HTTPErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"message": "API key invalid"}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.FetchRows(context.Background(), "spreadsheet-1", "bad-key", "Docentes", "")

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Expected UpstreamError, got %v", err)
	}
	if upstream.Code != constants.ErrCodeUpstreamError {
		t.Errorf("Expected UPSTREAM_ERROR, got %s", upstream.Code)
	}
	if upstream.Status != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", upstream.Status)
	}
	if !upstream.Transient() {
		t.Error("HTTP failure should be transient")
	}
}

func TestSheetsClient_FetchRows_NetworkError(t *testing.T) {
	client := testClient("http://127.0.0.1:1") // nothing listens here

	_, err := client.FetchRows(context.Background(), "spreadsheet-1", "key", "Docentes", "")

	var upstream *UpstreamError
	if !errors.As(err, &upstream) || upstream.Code != constants.ErrCodeNetworkError {
		t.Fatalf("Expected NETWORK_ERROR, got %v", err)
	}
	if !upstream.Transient() {
		t.Error("Network failure should be transient")
	}
}

func TestSheetsClient_FetchRows_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.FetchRows(context.Background(), "spreadsheet-1", "key", "Docentes", "")

	var upstream *UpstreamError
	if !errors.As(err, &upstream) || upstream.Code != constants.ErrCodeInvalidDataFormat {
		t.Fatalf("Expected INVALID_DATA_FORMAT, got %v", err)
	}
	if upstream.Transient() {
		t.Error("Malformed payload must not be transient")
	}
}

func TestSheetsClient_FetchHeaderRow_NamesBlankColumns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"values": [["Cedula", "", "Apellidos"]]}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	columns, err := client.FetchHeaderRow(context.Background(), "spreadsheet-1", "key", "Docentes")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(columns) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(columns))
	}
	if columns[1].Name != "Column 2" {
		t.Errorf("Expected blank header to become Column 2, got %q", columns[1].Name)
	}
	if columns[2].Index != 2 {
		t.Errorf("Expected index 2, got %d", columns[2].Index)
	}
}

func TestSheetsClient_ListSheets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fields") != "sheets.properties" {
			t.Errorf("Expected fields=sheets.properties, got %q", r.URL.Query().Get("fields"))
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"sheets": [{"properties": {"sheetId": 0, "title": "Docentes"}}, {"properties": {"sheetId": 12, "title": "Archivo"}}]}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	sheets, err := client.ListSheets(context.Background(), "spreadsheet-1", "key")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(sheets))
	}
	if sheets[1].Title != "Archivo" || sheets[1].SheetID != 12 {
		t.Errorf("Unexpected sheet: %+v", sheets[1])
	}
}

func TestSheetsClient_ListSheets_NoTabs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"sheets": []}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.ListSheets(context.Background(), "spreadsheet-1", "key")

	var upstream *UpstreamError
	if !errors.As(err, &upstream) || upstream.Code != constants.ErrCodeEmptyResult {
		t.Fatalf("Expected EMPTY_RESULT, got %v", err)
	}
}
