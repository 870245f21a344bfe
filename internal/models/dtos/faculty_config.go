package dtos

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// DisplayLocation is a presentation surface where a mapped field may appear.
type DisplayLocation string

const (
	DisplayCard   DisplayLocation = "card"
	DisplayDetail DisplayLocation = "detail"
	DisplayList   DisplayLocation = "list"
)

var AllDisplayLocations = []DisplayLocation{DisplayCard, DisplayDetail, DisplayList}

func (d DisplayLocation) Valid() bool {
	for _, loc := range AllDisplayLocations {
		if d == loc {
			return true
		}
	}
	return false
}

// SelectedSheet identifies the tab of the spreadsheet that holds the
// faculty's professor data.
type SelectedSheet struct {
	Title   string `json:"title"`
	SheetID string `json:"sheetId"`
}

// ColumnIndex is a nullable, loosely-typed column position. Admin clients
// have historically sent it as a number, a numeric string, an empty string
// or null, so decoding is tolerant: anything that does not parse to an
// integer is treated as unset rather than rejected.
type ColumnIndex struct {
	Set   bool
	Value int
}

// NewColumnIndex returns a set column index.
func NewColumnIndex(v int) ColumnIndex {
	return ColumnIndex{Set: true, Value: v}
}

// Usable reports whether the index can address a spreadsheet column.
func (c ColumnIndex) Usable() bool {
	return c.Set && c.Value >= 0
}

func (c ColumnIndex) MarshalJSON() ([]byte, error) {
	if !c.Set {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

func (c *ColumnIndex) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*c = ColumnIndex{}
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*c = ColumnIndex{}
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			// Non-numeric input maps to "no index", mirroring parseInt
			// tolerance in older admin clients.
			*c = ColumnIndex{}
			return nil
		}
		*c = ColumnIndex{Set: true, Value: n}
		return nil
	}

	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		*c = ColumnIndex{}
		return nil
	}
	*c = ColumnIndex{Set: true, Value: int(f)}
	return nil
}

// FieldMappingConfig associates a canonical field key with a spreadsheet
// column and the surfaces it is displayed on.
type FieldMappingConfig struct {
	Label       string            `json:"label"`
	ColumnIndex ColumnIndex       `json:"columnIndex"`
	DisplayIn   []DisplayLocation `json:"displayIn"`
}

// FacultyConfig is the application-format view of a faculty's stored
// configuration, as consumed by the record fetch pipeline.
type FacultyConfig struct {
	Name          string                        `json:"name"`
	SpreadsheetID string                        `json:"spreadsheetId"`
	APIKey        string                        `json:"apiKey"`
	SelectedSheet *SelectedSheet                `json:"selectedSheet"`
	FieldMappings map[string]FieldMappingConfig `json:"fieldMappings"`
	Logo          string                        `json:"logo"`
	PrimaryColor  string                        `json:"primaryColor"`
}

// Complete reports whether the essential fields needed to reach the
// spreadsheet are all present.
func (c *FacultyConfig) Complete() bool {
	return c != nil &&
		c.SpreadsheetID != "" &&
		c.APIKey != "" &&
		c.SelectedSheet != nil &&
		c.SelectedSheet.Title != ""
}

// ProfessorRecord is one projected spreadsheet row. Every known field key is
// present, defaulting to the empty string. Records are ephemeral: rebuilt on
// every fetch, never persisted.
type ProfessorRecord map[string]string
