package dtos

import (
	"encoding/json"
	"testing"
)

func TestColumnIndex_TolerantDecoding(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  ColumnIndex
	}{
		{"number", `3`, ColumnIndex{Set: true, Value: 3}},
		{"zero", `0`, ColumnIndex{Set: true, Value: 0}},
		{"numeric string", `"7"`, ColumnIndex{Set: true, Value: 7}},
		{"empty string", `""`, ColumnIndex{}},
		{"null", `null`, ColumnIndex{}},
		{"non-numeric string", `"abc"`, ColumnIndex{}},
		{"padded string", `" 4 "`, ColumnIndex{Set: true, Value: 4}},
	}

	for _, tc := range cases {
		var got ColumnIndex
		if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestColumnIndex_MarshalRoundTrip(t *testing.T) {
	set, err := json.Marshal(NewColumnIndex(5))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(set) != "5" {
		t.Errorf("Expected 5, got %s", set)
	}

	unset, err := json.Marshal(ColumnIndex{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(unset) != "null" {
		t.Errorf("Expected null, got %s", unset)
	}
}

func TestFacultyConfig_Complete(t *testing.T) {
	config := &FacultyConfig{
		SpreadsheetID: "s",
		APIKey:        "k",
		SelectedSheet: &SelectedSheet{Title: "Docentes"},
	}
	if !config.Complete() {
		t.Error("Expected config to be complete")
	}

	config.SelectedSheet = nil
	if config.Complete() {
		t.Error("Expected config without a sheet to be incomplete")
	}

	config.SelectedSheet = &SelectedSheet{}
	if config.Complete() {
		t.Error("Expected config with an untitled sheet to be incomplete")
	}
}

func TestBootstrapConfig(t *testing.T) {
	fie := BootstrapConfig("FIE")
	if fie == nil {
		t.Fatal("Expected FIE bootstrap config")
	}
	if !fie.FieldMappings["cedula"].ColumnIndex.Usable() {
		t.Error("Expected FIE mappings to carry column indices")
	}

	frn := BootstrapConfig("FRN")
	if frn == nil {
		t.Fatal("Expected FRN bootstrap config")
	}
	if frn.FieldMappings["cedula"].ColumnIndex.Usable() {
		t.Error("Expected FRN mappings to have no column indices")
	}

	if BootstrapConfig("OTHER") != nil {
		t.Error("Expected nil for non-bootstrap faculty")
	}
}
