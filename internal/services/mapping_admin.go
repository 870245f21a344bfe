package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"espoch-directory/docentes/internal/constants"
	"espoch-directory/docentes/internal/db/repositories"
	"espoch-directory/docentes/internal/logging"
	"espoch-directory/docentes/internal/models/dtos"
	gormModels "espoch-directory/docentes/internal/models/gorm"
)

// MappingAdminService is the write path: it validates and persists faculty
// configuration and field mappings, and publishes a config-change event
// after every successful write.
type MappingAdminService struct {
	repo     *repositories.FacultyRepository
	notifier *ConfigNotifier
}

func NewMappingAdminService(repo *repositories.FacultyRepository, notifier *ConfigNotifier) *MappingAdminService {
	return &MappingAdminService{
		repo:     repo,
		notifier: notifier,
	}
}

// ListFaculties returns all faculties ordered by name.
func (s *MappingAdminService) ListFaculties(ctx context.Context) ([]gormModels.Faculty, error) {
	return s.repo.List(ctx)
}

// GetFacultyConfig loads one faculty's configuration in application format.
// Returns (nil, nil) when the faculty does not exist.
func (s *MappingAdminService) GetFacultyConfig(ctx context.Context, name string) (*dtos.FacultyConfigResponse, error) {
	faculty, err := s.repo.GetByName(ctx, NormalizeFacultyID(name))
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, nil
	}

	return &dtos.FacultyConfigResponse{
		ID:            faculty.ID,
		FacultyConfig: *repositories.ToFacultyConfig(faculty),
	}, nil
}

// SaveFaculty is the upsert-by-name write behind POST /faculties: when a
// faculty with the same canonical name exists its configuration fields are
// updated, otherwise a new faculty is created. The admin UI never has to
// know which case applies. Returns the faculty and whether it was created.
func (s *MappingAdminService) SaveFaculty(ctx context.Context, req *dtos.SaveFacultyRequest) (*gormModels.Faculty, bool, error) {
	name := NormalizeFacultyID(req.Name)
	if name == "" {
		return nil, false, &DirectoryError{
			Code:    constants.ErrCodeInvalidRequest,
			Message: "Faculty name is required",
		}
	}

	sheetTitle, sheetID := "", ""
	if req.SelectedSheet != nil {
		sheetTitle = req.SelectedSheet.Title
		sheetID = req.SelectedSheet.SheetID
	}

	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		existing.SpreadsheetID = req.SpreadsheetID
		existing.APIKey = req.APIKey
		existing.SheetTitle = sheetTitle
		existing.SheetID = sheetID

		if err := s.repo.UpdateFields(ctx, existing); err != nil {
			return nil, false, err
		}

		s.notifier.Publish(ConfigChange{FacultyName: name, Action: ConfigActionUpdated})
		return existing, false, nil
	}

	faculty := &gormModels.Faculty{
		Name:          name,
		SpreadsheetID: req.SpreadsheetID,
		APIKey:        req.APIKey,
		SheetTitle:    sheetTitle,
		SheetID:       sheetID,
	}
	if err := s.repo.Create(ctx, faculty); err != nil {
		return nil, false, err
	}

	logging.Info("Faculty created", "faculty", name)
	s.notifier.Publish(ConfigChange{FacultyName: name, Action: ConfigActionCreated})
	return faculty, true, nil
}

// CreateFaculty is the strict create path used by bootstrap seeding: unlike
// SaveFaculty it refuses to touch an existing record.
func (s *MappingAdminService) CreateFaculty(ctx context.Context, config *dtos.FacultyConfig) (*gormModels.Faculty, error) {
	name := NormalizeFacultyID(config.Name)
	if name == "" {
		return nil, &DirectoryError{
			Code:    constants.ErrCodeInvalidRequest,
			Message: "Faculty name is required",
		}
	}

	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &DirectoryError{
			Code:    constants.ErrCodeDuplicateFaculty,
			Message: fmt.Sprintf("Faculty %s already exists", name),
		}
	}

	faculty := &gormModels.Faculty{
		Name:          name,
		SpreadsheetID: config.SpreadsheetID,
		APIKey:        config.APIKey,
		Logo:          config.Logo,
		PrimaryColor:  config.PrimaryColor,
	}
	if config.SelectedSheet != nil {
		faculty.SheetTitle = config.SelectedSheet.Title
		faculty.SheetID = config.SelectedSheet.SheetID
	}
	for key, m := range config.FieldMappings {
		row := gormModels.FieldMapping{
			FieldKey: key,
			Label:    m.Label,
		}
		if m.ColumnIndex.Usable() {
			idx := m.ColumnIndex.Value
			row.ColumnIndex = &idx
		}
		row.SetDisplayLocations(m.DisplayIn)
		faculty.FieldMappings = append(faculty.FieldMappings, row)
	}

	if err := s.repo.Create(ctx, faculty); err != nil {
		return nil, err
	}

	s.notifier.Publish(ConfigChange{FacultyName: name, Action: ConfigActionCreated})
	return faculty, nil
}

// UpdateFaculty is the full update behind PUT /faculties/{id}: scalar fields
// and the complete mapping set are replaced together.
func (s *MappingAdminService) UpdateFaculty(ctx context.Context, id string, req *dtos.UpdateFacultyRequest) (*gormModels.Faculty, error) {
	faculty, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, &DirectoryError{Code: constants.ErrCodeFacultyNotFound}
	}

	if req.Name != "" {
		faculty.Name = NormalizeFacultyID(req.Name)
	}
	faculty.SpreadsheetID = req.SpreadsheetID
	faculty.APIKey = req.APIKey
	if req.SelectedSheet != nil {
		faculty.SheetTitle = req.SelectedSheet.Title
		faculty.SheetID = req.SelectedSheet.SheetID
	} else {
		faculty.SheetTitle = ""
		faculty.SheetID = ""
	}
	if req.Logo != "" {
		faculty.Logo = req.Logo
	}
	if req.PrimaryColor != "" {
		faculty.PrimaryColor = req.PrimaryColor
	}

	if err := s.repo.UpdateFields(ctx, faculty); err != nil {
		return nil, err
	}

	entries := make([]dtos.FieldMappingEntry, 0, len(req.FieldMappings))
	for key, m := range req.FieldMappings {
		entries = append(entries, dtos.FieldMappingEntry{
			FieldKey:    key,
			Label:       m.Label,
			ColumnIndex: m.ColumnIndex,
			DisplayIn:   m.DisplayIn,
		})
	}
	if err := s.replaceMappings(ctx, faculty.ID, entries); err != nil {
		return nil, err
	}

	s.notifier.Publish(ConfigChange{FacultyName: faculty.Name, Action: ConfigActionUpdated})
	return s.repo.GetByID(ctx, id)
}

// ReplaceMappingsRaw is the PUT /faculties/{id}/mappings write. The payload
// must be a JSON array of mapping entries; anything else, including an
// explicit null, is rejected with INVALID_MAPPING before any persistence
// happens.
func (s *MappingAdminService) ReplaceMappingsRaw(ctx context.Context, facultyID string, raw json.RawMessage) ([]gormModels.FieldMapping, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, &DirectoryError{Code: constants.ErrCodeInvalidMapping}
	}

	var entries []dtos.FieldMappingEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &DirectoryError{Code: constants.ErrCodeInvalidMapping, Err: err}
	}

	faculty, err := s.repo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, &DirectoryError{Code: constants.ErrCodeFacultyNotFound}
	}

	if err := s.replaceMappings(ctx, facultyID, entries); err != nil {
		return nil, err
	}

	s.notifier.Publish(ConfigChange{FacultyName: faculty.Name, Action: ConfigActionMappingsReplaced})

	updated, err := s.repo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	return updated.FieldMappings, nil
}

// replaceMappings validates the entries and atomically supersedes the
// faculty's mapping set. Replace, never merge: stale column indices must not
// survive a spreadsheet restructure.
func (s *MappingAdminService) replaceMappings(ctx context.Context, facultyID string, entries []dtos.FieldMappingEntry) error {
	rows := make([]gormModels.FieldMapping, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for i, entry := range entries {
		if entry.FieldKey == "" {
			return &DirectoryError{
				Code:    constants.ErrCodeInvalidMapping,
				Message: fmt.Sprintf("mapping[%d]: fieldKey is required", i),
			}
		}
		if seen[entry.FieldKey] {
			return &DirectoryError{
				Code:    constants.ErrCodeInvalidMapping,
				Message: fmt.Sprintf("mapping[%d]: duplicate fieldKey %q", i, entry.FieldKey),
			}
		}
		seen[entry.FieldKey] = true

		if entry.ColumnIndex.Set && entry.ColumnIndex.Value < 0 {
			return &DirectoryError{
				Code:    constants.ErrCodeInvalidMapping,
				Message: fmt.Sprintf("mapping[%d]: columnIndex must be a non-negative integer", i),
			}
		}
		for _, loc := range entry.DisplayIn {
			if !loc.Valid() {
				return &DirectoryError{
					Code:    constants.ErrCodeInvalidMapping,
					Message: fmt.Sprintf("mapping[%d]: unknown display location %q", i, loc),
				}
			}
		}

		label := entry.Label
		if label == "" {
			if constants.IsKnownFieldKey(entry.FieldKey) {
				label = constants.DefaultFieldLabels[entry.FieldKey]
			} else {
				label = entry.FieldKey
			}
		}

		row := gormModels.FieldMapping{
			FieldKey: entry.FieldKey,
			Label:    label,
		}
		if entry.ColumnIndex.Set {
			idx := entry.ColumnIndex.Value
			row.ColumnIndex = &idx
		}
		row.SetDisplayLocations(entry.DisplayIn)
		rows = append(rows, row)
	}

	return s.repo.ReplaceMappings(ctx, facultyID, rows)
}

// DeleteFaculty removes a faculty and its mappings.
func (s *MappingAdminService) DeleteFaculty(ctx context.Context, id string) error {
	faculty, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if faculty == nil {
		return &DirectoryError{Code: constants.ErrCodeFacultyNotFound}
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &DirectoryError{Code: constants.ErrCodeFacultyNotFound}
	}

	logging.Info("Faculty deleted", "faculty", faculty.Name)
	s.notifier.Publish(ConfigChange{FacultyName: faculty.Name, Action: ConfigActionDeleted})
	return nil
}

// SeedBootstrapFaculties creates the shipped faculty configurations when
// they are absent. Existing records are never overwritten.
func (s *MappingAdminService) SeedBootstrapFaculties(ctx context.Context) error {
	for _, name := range []string{constants.BootstrapFacultyFIE, constants.BootstrapFacultyFRN} {
		config := dtos.BootstrapConfig(name)
		if config == nil {
			continue
		}

		if _, err := s.CreateFaculty(ctx, config); err != nil {
			if ErrorCode(err) == constants.ErrCodeDuplicateFaculty {
				continue
			}
			return fmt.Errorf("failed to seed faculty %s: %w", name, err)
		}
		logging.Info("Bootstrap faculty seeded", "faculty", name)
	}
	return nil
}
