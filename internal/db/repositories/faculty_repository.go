package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"espoch-directory/docentes/internal/models/dtos"
	gormModels "espoch-directory/docentes/internal/models/gorm"
)

// FacultyRepository is the configuration store. Faculty names are expected
// in canonical (upper-case) form at this boundary; callers normalize.
type FacultyRepository struct {
	db *gorm.DB
}

func NewFacultyRepository(db *gorm.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// GetByName fetches a faculty with its mappings by canonical name.
// Returns (nil, nil) when no record exists.
func (r *FacultyRepository) GetByName(ctx context.Context, name string) (*gormModels.Faculty, error) {
	var faculty gormModels.Faculty

	err := r.db.WithContext(ctx).
		Preload("FieldMappings").
		Where("name = ?", name).
		First(&faculty).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch faculty %q: %w", name, err)
	}

	return &faculty, nil
}

// GetByID fetches a faculty with its mappings by primary key.
// Returns (nil, nil) when no record exists.
func (r *FacultyRepository) GetByID(ctx context.Context, id string) (*gormModels.Faculty, error) {
	var faculty gormModels.Faculty

	err := r.db.WithContext(ctx).
		Preload("FieldMappings").
		Where("id = ?", id).
		First(&faculty).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch faculty %s: %w", id, err)
	}

	return &faculty, nil
}

// List returns all faculties ordered by name.
func (r *FacultyRepository) List(ctx context.Context) ([]gormModels.Faculty, error) {
	var faculties []gormModels.Faculty

	err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&faculties).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list faculties: %w", err)
	}

	return faculties, nil
}

// Create inserts a new faculty row.
func (r *FacultyRepository) Create(ctx context.Context, faculty *gormModels.Faculty) error {
	if err := r.db.WithContext(ctx).Create(faculty).Error; err != nil {
		return fmt.Errorf("failed to create faculty: %w", err)
	}
	return nil
}

// UpdateFields persists the scalar configuration columns of a faculty.
// Mappings are untouched; ReplaceMappings owns those.
func (r *FacultyRepository) UpdateFields(ctx context.Context, faculty *gormModels.Faculty) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.Faculty{}).
		Where("id = ?", faculty.ID).
		Updates(map[string]interface{}{
			"name":           faculty.Name,
			"spreadsheet_id": faculty.SpreadsheetID,
			"api_key":        faculty.APIKey,
			"sheet_title":    faculty.SheetTitle,
			"sheet_id":       faculty.SheetID,
			"logo":           faculty.Logo,
			"primary_color":  faculty.PrimaryColor,
		}).Error

	if err != nil {
		return fmt.Errorf("failed to update faculty %s: %w", faculty.ID, err)
	}
	return nil
}

// ReplaceMappings atomically supersedes the faculty's mapping set. Existing
// rows are deleted first so stale column indices never survive a spreadsheet
// restructure; the two steps share one transaction.
func (r *FacultyRepository) ReplaceMappings(ctx context.Context, facultyID string, mappings []gormModels.FieldMapping) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("faculty_id = ?", facultyID).Delete(&gormModels.FieldMapping{}).Error; err != nil {
			return err
		}

		if len(mappings) == 0 {
			return nil
		}

		for i := range mappings {
			mappings[i].FacultyID = facultyID
			mappings[i].ID = ""
		}
		return tx.Create(&mappings).Error
	})

	if err != nil {
		return fmt.Errorf("failed to replace mappings for faculty %s: %w", facultyID, err)
	}
	return nil
}

// Delete removes a faculty and cascades its mappings. The mapping delete is
// explicit so the cascade holds on drivers without FK enforcement (SQLite in
// tests). Returns false when no faculty matched.
func (r *FacultyRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("faculty_id = ?", id).Delete(&gormModels.FieldMapping{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&gormModels.Faculty{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})

	if err != nil {
		return false, fmt.Errorf("failed to delete faculty %s: %w", id, err)
	}
	return deleted, nil
}

// GetConfigByName fetches a faculty and converts it to application format.
// Returns (nil, nil) when no record exists.
func (r *FacultyRepository) GetConfigByName(ctx context.Context, name string) (*dtos.FacultyConfig, error) {
	faculty, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, nil
	}
	return ToFacultyConfig(faculty), nil
}

// ToFacultyConfig converts a stored faculty row into the application-format
// configuration the pipeline consumes. SelectedSheet is nil when no sheet
// has been chosen yet, which the resolver reports as incomplete.
func ToFacultyConfig(faculty *gormModels.Faculty) *dtos.FacultyConfig {
	config := &dtos.FacultyConfig{
		Name:          faculty.Name,
		SpreadsheetID: faculty.SpreadsheetID,
		APIKey:        faculty.APIKey,
		FieldMappings: make(map[string]dtos.FieldMappingConfig, len(faculty.FieldMappings)),
		Logo:          faculty.Logo,
		PrimaryColor:  faculty.PrimaryColor,
	}

	if faculty.SheetTitle != "" {
		config.SelectedSheet = &dtos.SelectedSheet{
			Title:   faculty.SheetTitle,
			SheetID: faculty.SheetID,
		}
	}

	for i := range faculty.FieldMappings {
		m := &faculty.FieldMappings[i]
		config.FieldMappings[m.FieldKey] = m.MappingConfig()
	}

	return config
}
