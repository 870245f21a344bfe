package gorm

import (
	"testing"

	"espoch-directory/docentes/internal/models/dtos"
)

func TestFieldMapping_DisplayLocationsRoundTrip(t *testing.T) {
	m := &FieldMapping{}
	m.SetDisplayLocations([]dtos.DisplayLocation{dtos.DisplayCard, dtos.DisplayDetail})

	if m.DisplayIn != `["card","detail"]` {
		t.Errorf("Unexpected serialized column: %q", m.DisplayIn)
	}

	locations := m.DisplayLocations()
	if len(locations) != 2 || locations[0] != dtos.DisplayCard || locations[1] != dtos.DisplayDetail {
		t.Errorf("Round trip lost locations: %v", locations)
	}
}

func TestFieldMapping_DisplayLocationsDropsUnknown(t *testing.T) {
	m := &FieldMapping{DisplayIn: `["card","banner"]`}

	locations := m.DisplayLocations()
	if len(locations) != 1 || locations[0] != dtos.DisplayCard {
		t.Errorf("Expected unknown location to be dropped, got %v", locations)
	}
}

func TestFieldMapping_DisplayLocationsMalformed(t *testing.T) {
	m := &FieldMapping{DisplayIn: `not json`}

	if locations := m.DisplayLocations(); len(locations) != 0 {
		t.Errorf("Expected empty slice for malformed column, got %v", locations)
	}
}

func TestFieldMapping_MappingConfig(t *testing.T) {
	idx := 4
	m := &FieldMapping{
		Label:       "Nombres",
		ColumnIndex: &idx,
		DisplayIn:   `["list"]`,
	}

	cfg := m.MappingConfig()
	if cfg.Label != "Nombres" {
		t.Errorf("Expected label Nombres, got %q", cfg.Label)
	}
	if !cfg.ColumnIndex.Usable() || cfg.ColumnIndex.Value != 4 {
		t.Errorf("Expected usable index 4, got %+v", cfg.ColumnIndex)
	}

	unset := &FieldMapping{}
	if unset.MappingConfig().ColumnIndex.Usable() {
		t.Error("Expected nil column to map to an unset index")
	}
}
