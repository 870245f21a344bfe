package dtos

import "espoch-directory/docentes/internal/constants"

// detailOnly marks the fields that are hidden from the compact card view by
// default.
var detailOnly = map[string]bool{
	constants.FieldRelacionLaboral:    true,
	constants.FieldDedicacion:         true,
	constants.FieldPresentacion:       true,
	constants.FieldDocencia:           true,
	constants.FieldPublicaciones:      true,
	constants.FieldGrupoInvestigacion: true,
}

// DefaultFieldMappings returns the full field vocabulary with default labels
// and display locations but no column indices. A fresh copy is built on each
// call so callers may mutate the result.
func DefaultFieldMappings() map[string]FieldMappingConfig {
	mappings := make(map[string]FieldMappingConfig, len(constants.KnownFieldKeys))
	for _, key := range constants.KnownFieldKeys {
		displayIn := []DisplayLocation{DisplayCard, DisplayDetail}
		if detailOnly[key] {
			displayIn = []DisplayLocation{DisplayDetail}
		}
		mappings[key] = FieldMappingConfig{
			Label:     constants.DefaultFieldLabels[key],
			DisplayIn: displayIn,
		}
	}
	return mappings
}

// DefaultFacultyConfig returns the fallback configuration for a faculty with
// no stored record. Credentials are intentionally empty; the admin panel has
// to fill them in before the fetch pipeline will accept the faculty.
func DefaultFacultyConfig(name string) *FacultyConfig {
	return &FacultyConfig{
		Name:          name,
		SpreadsheetID: "",
		APIKey:        "",
		SelectedSheet: &SelectedSheet{Title: "Sheet1", SheetID: "0"},
		FieldMappings: DefaultFieldMappings(),
		Logo:          "",
		PrimaryColor:  "#234e94",
	}
}

// BootstrapConfig returns the hard-coded configuration for the faculties the
// directory ships with, or nil if the name is not a bootstrap faculty. The
// FIE sheet layout is known, so its mappings carry column indices matching
// the historical spreadsheet column order.
func BootstrapConfig(name string) *FacultyConfig {
	switch name {
	case constants.BootstrapFacultyFIE:
		cfg := DefaultFacultyConfig(name)
		for i, key := range constants.KnownFieldKeys {
			m := cfg.FieldMappings[key]
			m.ColumnIndex = NewColumnIndex(i)
			cfg.FieldMappings[key] = m
		}
		return cfg
	case constants.BootstrapFacultyFRN:
		return DefaultFacultyConfig(name)
	}
	return nil
}
