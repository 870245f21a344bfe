package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"espoch-directory/docentes/internal/common"
	"espoch-directory/docentes/internal/constants"
	"espoch-directory/docentes/internal/logging"
	"espoch-directory/docentes/internal/models/dtos"
)

// ConfigStore is the durable tier the resolver reads from. Implementations
// return (nil, nil) when no record exists for the canonical name.
type ConfigStore interface {
	GetConfigByName(ctx context.Context, name string) (*dtos.FacultyConfig, error)
}

// NormalizeFacultyID canonicalizes a faculty identifier. Every lookup and
// storage operation keys on this form.
func NormalizeFacultyID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

func configCacheKey(name string) string {
	return string(constants.CachePrefixFacultyConfig) + name
}

// FacultyConfigResolver loads a faculty's configuration with a fixed
// precedence: the durable store is authoritative; the local cache serves
// reads only while the store is unreachable; hard-coded bootstrap defaults
// apply only when no stored record exists at all.
type FacultyConfigResolver struct {
	store    ConfigStore
	cache    common.CacheInterface
	cacheTTL time.Duration
}

func NewFacultyConfigResolver(store ConfigStore, cache common.CacheInterface, cacheTTL time.Duration, notifier *ConfigNotifier) *FacultyConfigResolver {
	r := &FacultyConfigResolver{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
	}

	if notifier != nil {
		notifier.Subscribe(func(change ConfigChange) {
			r.cache.Delete(configCacheKey(NormalizeFacultyID(change.FacultyName)))
		})
	}

	return r
}

// Resolve returns the faculty's configuration or a DirectoryError with code
// FACULTY_NOT_FOUND, CONFIG_INCOMPLETE or STORE_UNAVAILABLE. Resolution has
// no side effect beyond refreshing the cache and is safe to call repeatedly.
func (r *FacultyConfigResolver) Resolve(ctx context.Context, facultyID string) (*dtos.FacultyConfig, error) {
	name := NormalizeFacultyID(facultyID)
	if name == "" {
		return nil, &DirectoryError{Code: constants.ErrCodeFacultyNotFound}
	}

	config, err := r.store.GetConfigByName(ctx, name)
	if err != nil {
		return r.resolveFallback(name, err)
	}

	if config == nil {
		if def := dtos.BootstrapConfig(name); def != nil {
			return r.checkComplete(name, def)
		}
		return nil, &DirectoryError{
			Code:    constants.ErrCodeFacultyNotFound,
			Message: fmt.Sprintf("No configuration found for faculty: %s", name),
		}
	}

	checked, cerr := r.checkComplete(name, config)
	if cerr != nil {
		// Incomplete records are never cached; the cache tier only ever
		// serves configurations the pipeline can act on.
		return nil, cerr
	}

	// Write-through refresh: the whole entry is overwritten per faculty
	// key, never merged.
	r.cache.Set(configCacheKey(name), checked, r.cacheTTL)

	return checked, nil
}

// resolveFallback serves a read while the durable store is unreachable:
// cached copy first, then bootstrap defaults, then the store error.
func (r *FacultyConfigResolver) resolveFallback(name string, storeErr error) (*dtos.FacultyConfig, error) {
	logging.Warn("Config store unreachable, falling back",
		"faculty", name,
		"error", storeErr.Error(),
	)

	if raw, found := r.cache.Get(configCacheKey(name)); found {
		if cached, ok := common.DecodeCached[dtos.FacultyConfig](raw); ok {
			return cached, nil
		}
	}

	if def := dtos.BootstrapConfig(name); def != nil {
		return r.checkComplete(name, def)
	}

	return nil, &DirectoryError{
		Code: constants.ErrCodeStoreUnavailable,
		Err:  storeErr,
	}
}

func (r *FacultyConfigResolver) checkComplete(name string, config *dtos.FacultyConfig) (*dtos.FacultyConfig, error) {
	if !config.Complete() {
		return nil, &DirectoryError{
			Code:    constants.ErrCodeConfigIncomplete,
			Message: fmt.Sprintf("Incomplete configuration for faculty: %s. Please configure the spreadsheet ID, API key and select a sheet", name),
		}
	}
	return config, nil
}
