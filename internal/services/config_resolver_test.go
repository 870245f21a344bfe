package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"espoch-directory/docentes/internal/common"
	"espoch-directory/docentes/internal/constants"
	"espoch-directory/docentes/internal/models/dtos"
)

// Mock ConfigStore
type mockConfigStore struct {
	getConfigFunc func(ctx context.Context, name string) (*dtos.FacultyConfig, error)
	calls         []string
}

func (m *mockConfigStore) GetConfigByName(ctx context.Context, name string) (*dtos.FacultyConfig, error) {
	m.calls = append(m.calls, name)
	return m.getConfigFunc(ctx, name)
}

func completeConfig(name string) *dtos.FacultyConfig {
	return &dtos.FacultyConfig{
		Name:          name,
		SpreadsheetID: "sheet-id",
		APIKey:        "api-key",
		SelectedSheet: &dtos.SelectedSheet{Title: "Docentes", SheetID: "0"},
		FieldMappings: map[string]dtos.FieldMappingConfig{
			constants.FieldNombres: {ColumnIndex: dtos.NewColumnIndex(1)},
		},
	}
}

func TestNormalizeFacultyID(t *testing.T) {
	if got := NormalizeFacultyID("  fie "); got != "FIE" {
		t.Errorf("Expected FIE, got %q", got)
	}
	// Idempotent on already-canonical input
	if got := NormalizeFacultyID(NormalizeFacultyID("Ciencias")); got != "CIENCIAS" {
		t.Errorf("Expected CIENCIAS, got %q", got)
	}
}

func TestResolve_StoreHitCachesWriteThrough(t *testing.T) {
	store := &mockConfigStore{
		getConfigFunc: func(ctx context.Context, name string) (*dtos.FacultyConfig, error) {
			return completeConfig(name), nil
		},
	}
	cache := common.NewCacheService(60, 120)
	resolver := NewFacultyConfigResolver(store, cache, time.Minute, nil)

	config, err := resolver.Resolve(context.Background(), "mecanica")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if config.Name != "MECANICA" {
		t.Errorf("Expected canonical name MECANICA, got %q", config.Name)
	}
	if store.calls[0] != "MECANICA" {
		t.Errorf("Expected store lookup by canonical name, got %q", store.calls[0])
	}

	if _, found := cache.Get(configCacheKey("MECANICA")); !found {
		t.Error("Expected resolved config to be cached write-through")
	}
}

func TestResolve_StoreErrorServesCachedCopy(t *testing.T) {
	healthy := &mockConfigStore{
		getConfigFunc: func(ctx context.Context, name string) (*dtos.FacultyConfig, error) {
			return completeConfig(name), nil
		},
	}
	cache := common.NewCacheService(60, 120)
	resolver := NewFacultyConfigResolver(healthy, cache, time.Minute, nil)

	if _, err := resolver.Resolve(context.Background(), "MECANICA"); err != nil {
		t.Fatalf("Priming resolve failed: %v", err)
	}

	// Same cache, store now failing
	failing := &mockConfigStore{
		getConfigFunc: func(ctx context.Context, name string) (*dtos.FacultyConfig, error) {
			return nil, errors.New("connection refused")
		},
	}
	resolver = NewFacultyConfigResolver(failing, cache, time.Minute, nil)

	config, err := resolver.Resolve(context.Background(), "MECANICA")
	if err != nil {
		t.Fatalf("Expected cached fallback, got error %v", err)
	}
	if config.SpreadsheetID != "sheet-id" {
		t.Errorf("Expected cached config, got %+v", config)
	}
}

func TestResolve_StoreErrorWithoutCacheIsStoreUnavailable(t *testing.T) {
	failing := &mockConfigStore{
		getConfigFunc: func(ctx context.Context, name string) (*dtos.FacultyConfig, error) {
			return nil, errors.New("connection refused")
		},
	}
	resolver := NewFacultyConfigResolver(failing, common.NewCacheService(60, 120), time.Minute, nil)

	_, err := resolver.Resolve(context.Background(), "MECANICA")
	if ErrorCode(err) != constants.ErrCodeStoreUnavailable {
		t.Errorf("Expected STORE_UNAVAILABLE, got %v", err)
	}
}

func TestResolve_UnknownFacultyIsNotFound(t *testing.T) {
	store := &mockConfigStore{
		getConfigFunc: func(ctx context.Context, name string) (*dtos.FacultyConfig, error) {
			return nil, nil
		},
	}
	resolver := NewFacultyConfigResolver(store, common.NewCacheService(60, 120), time.Minute, nil)

	_, err := resolver.Resolve(context.Background(), "NOPE")
	if ErrorCode(err) != constants.ErrCodeFacultyNotFound {
		t.Errorf("Expected FACULTY_NOT_FOUND, got %v", err)
	}

	_, err = resolver.Resolve(context.Background(), "   ")
	if ErrorCode(err) != constants.ErrCodeFacultyNotFound {
		t.Errorf("Expected FACULTY_NOT_FOUND for blank name, got %v", err)
	}
}

func TestResolve_IncompleteConfigNotCached(t *testing.T) {
	store := &mockConfigStore{
		getConfigFunc: func(ctx context.Context, name string) (*dtos.FacultyConfig, error) {
			cfg := completeConfig(name)
			cfg.APIKey = ""
			return cfg, nil
		},
	}
	cache := common.NewCacheService(60, 120)
	resolver := NewFacultyConfigResolver(store, cache, time.Minute, nil)

	_, err := resolver.Resolve(context.Background(), "MECANICA")
	if ErrorCode(err) != constants.ErrCodeConfigIncomplete {
		t.Errorf("Expected CONFIG_INCOMPLETE, got %v", err)
	}
	if _, found := cache.Get(configCacheKey("MECANICA")); found {
		t.Error("Incomplete config must not be cached")
	}
}

func TestResolve_BootstrapDefaultsWhenNoRecord(t *testing.T) {
	store := &mockConfigStore{
		getConfigFunc: func(ctx context.Context, name string) (*dtos.FacultyConfig, error) {
			return nil, nil
		},
	}
	resolver := NewFacultyConfigResolver(store, common.NewCacheService(60, 120), time.Minute, nil)

	// The shipped FIE defaults have no credentials, so resolution reports
	// them incomplete instead of inventing a reachable config.
	_, err := resolver.Resolve(context.Background(), constants.BootstrapFacultyFIE)
	if ErrorCode(err) != constants.ErrCodeConfigIncomplete {
		t.Errorf("Expected CONFIG_INCOMPLETE for bootstrap faculty, got %v", err)
	}
}

func TestResolve_NotifierEvictsCache(t *testing.T) {
	store := &mockConfigStore{
		getConfigFunc: func(ctx context.Context, name string) (*dtos.FacultyConfig, error) {
			return completeConfig(name), nil
		},
	}
	cache := common.NewCacheService(60, 120)
	notifier := NewConfigNotifier()
	resolver := NewFacultyConfigResolver(store, cache, time.Minute, notifier)

	if _, err := resolver.Resolve(context.Background(), "MECANICA"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	notifier.Publish(ConfigChange{FacultyName: "mecanica", Action: ConfigActionUpdated})

	if _, found := cache.Get(configCacheKey("MECANICA")); found {
		t.Error("Expected cache entry to be evicted after config change")
	}
}
