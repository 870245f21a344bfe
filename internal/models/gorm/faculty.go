package gorm

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"espoch-directory/docentes/internal/models/dtos"
)

// Faculty is the persisted per-faculty configuration. Name is stored in its
// canonical upper-case form, so the unique index gives case-insensitive
// uniqueness.
type Faculty struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Name          string    `gorm:"column:name;uniqueIndex" json:"name"`
	SpreadsheetID string    `gorm:"column:spreadsheet_id" json:"spreadsheetId"`
	APIKey        string    `gorm:"column:api_key" json:"apiKey"`
	SheetTitle    string    `gorm:"column:sheet_title" json:"sheetTitle"`
	SheetID       string    `gorm:"column:sheet_id" json:"sheetId"`
	Logo          string    `gorm:"column:logo" json:"logo"`
	PrimaryColor  string    `gorm:"column:primary_color" json:"primaryColor"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relationships
	FieldMappings []FieldMapping `gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE" json:"fieldMappings"`
}

// TableName specifies the table name for GORM
func (Faculty) TableName() string {
	return "faculties"
}

func (f *Faculty) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// FieldMapping associates one canonical field key of a faculty with a
// spreadsheet column index and its display locations. DisplayIn is stored as
// a JSON-serialized string column; the typed form never leaves this adapter.
type FieldMapping struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	FacultyID   string    `gorm:"column:faculty_id;uniqueIndex:idx_faculty_field" json:"facultyId"`
	FieldKey    string    `gorm:"column:field_key;uniqueIndex:idx_faculty_field" json:"fieldKey"`
	Label       string    `gorm:"column:label" json:"label"`
	ColumnIndex *int      `gorm:"column:column_index" json:"columnIndex"`
	DisplayIn   string    `gorm:"column:display_in" json:"displayIn"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (FieldMapping) TableName() string {
	return "field_mappings"
}

func (m *FieldMapping) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// DisplayLocations decodes the serialized display_in column. Unknown or
// malformed entries are dropped rather than surfaced to the domain layer.
func (m *FieldMapping) DisplayLocations() []dtos.DisplayLocation {
	if m.DisplayIn == "" {
		return []dtos.DisplayLocation{}
	}
	var raw []string
	if err := json.Unmarshal([]byte(m.DisplayIn), &raw); err != nil {
		return []dtos.DisplayLocation{}
	}
	locations := make([]dtos.DisplayLocation, 0, len(raw))
	for _, entry := range raw {
		loc := dtos.DisplayLocation(entry)
		if loc.Valid() {
			locations = append(locations, loc)
		}
	}
	return locations
}

// SetDisplayLocations encodes the typed display locations into the
// serialized column form.
func (m *FieldMapping) SetDisplayLocations(locations []dtos.DisplayLocation) {
	if locations == nil {
		locations = []dtos.DisplayLocation{}
	}
	encoded, err := json.Marshal(locations)
	if err != nil {
		m.DisplayIn = "[]"
		return
	}
	m.DisplayIn = string(encoded)
}

// MappingConfig converts the row into its application-format view.
func (m *FieldMapping) MappingConfig() dtos.FieldMappingConfig {
	cfg := dtos.FieldMappingConfig{
		Label:     m.Label,
		DisplayIn: m.DisplayLocations(),
	}
	if m.ColumnIndex != nil {
		cfg.ColumnIndex = dtos.NewColumnIndex(*m.ColumnIndex)
	}
	return cfg
}
