package services

import (
	"espoch-directory/docentes/internal/constants"
	"espoch-directory/docentes/internal/models/dtos"
)

// HasUsableMapping reports whether at least one field mapping carries a
// column index that can address a spreadsheet column. The fetch pipeline
// gates on this before any network call.
func HasUsableMapping(mappings map[string]dtos.FieldMappingConfig) bool {
	for _, m := range mappings {
		if m.ColumnIndex.Usable() {
			return true
		}
	}
	return false
}

// ProjectRows projects raw sheet rows into professor records using the
// faculty's field mappings. Pure and deterministic: no I/O, inputs are not
// mutated, output order matches row order.
//
// Every record contains every known field key plus any extra configured
// keys, defaulting to "". A mapping whose index falls outside the row's
// bounds contributes "" rather than an error; sparse upstream rows are
// routine, not exceptional.
func ProjectRows(rows [][]string, mappings map[string]dtos.FieldMappingConfig) []dtos.ProfessorRecord {
	records := make([]dtos.ProfessorRecord, 0, len(rows))

	for _, row := range rows {
		record := make(dtos.ProfessorRecord, len(constants.KnownFieldKeys))

		for _, key := range constants.KnownFieldKeys {
			record[key] = ""
		}
		for key := range mappings {
			if _, ok := record[key]; !ok {
				record[key] = ""
			}
		}

		for key, m := range mappings {
			if !m.ColumnIndex.Usable() {
				continue
			}
			if idx := m.ColumnIndex.Value; idx < len(row) {
				record[key] = row[idx]
			}
		}

		// Identity fields are part of the known vocabulary, but guard them
		// anyway so a shrunken vocabulary can never drop them.
		for _, key := range constants.IdentityFieldKeys {
			if _, ok := record[key]; !ok {
				record[key] = ""
			}
		}

		records = append(records, record)
	}

	return records
}
