package dtos

import "encoding/json"

// SaveFacultyRequest is the POST /faculties payload. The operation is an
// upsert by canonical name; the admin UI does not know whether the faculty
// already exists.
type SaveFacultyRequest struct {
	Name          string         `json:"name"`
	SpreadsheetID string         `json:"spreadsheetId"`
	APIKey        string         `json:"apiKey"`
	SelectedSheet *SelectedSheet `json:"selectedSheet"`
}

// UpdateFacultyRequest is the PUT /faculties/{id} payload. FieldMappings,
// when present, fully replaces the stored mapping set.
type UpdateFacultyRequest struct {
	Name          string                        `json:"name"`
	SpreadsheetID string                        `json:"spreadsheetId"`
	APIKey        string                        `json:"apiKey"`
	SelectedSheet *SelectedSheet                `json:"selectedSheet"`
	Logo          string                        `json:"logo"`
	PrimaryColor  string                        `json:"primaryColor"`
	FieldMappings map[string]FieldMappingConfig `json:"fieldMappings"`
}

// ReplaceMappingsRequest is the PUT /faculties/{id}/mappings payload.
// FieldMappings is kept raw so the handler can reject non-collection
// payloads with a 400 before any decoding of entries.
type ReplaceMappingsRequest struct {
	FieldMappings json.RawMessage `json:"fieldMappings"`
}

// FieldMappingEntry is one element of a replace-all mappings payload.
type FieldMappingEntry struct {
	FieldKey    string            `json:"fieldKey"`
	Label       string            `json:"label"`
	ColumnIndex ColumnIndex       `json:"columnIndex"`
	DisplayIn   []DisplayLocation `json:"displayIn"`
}
