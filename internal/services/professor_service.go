package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"espoch-directory/docentes/internal/constants"
	"espoch-directory/docentes/internal/logging"
	"espoch-directory/docentes/internal/metrics"
	"espoch-directory/docentes/internal/models/dtos"
	"espoch-directory/docentes/internal/providers"
)

const (
	defaultMaxFetchAttempts = 3
	defaultRetryDelay       = 1 * time.Second
)

// ConfigResolver is the resolution tier the pipeline depends on.
type ConfigResolver interface {
	Resolve(ctx context.Context, facultyID string) (*dtos.FacultyConfig, error)
}

// SheetRowFetcher is the slice of the sheet client the pipeline needs.
type SheetRowFetcher interface {
	FetchRows(ctx context.Context, spreadsheetID, apiKey, sheetTitle, rangeSpec string) ([][]string, error)
}

// ProfessorService is the record fetch pipeline: resolve configuration,
// validate that a usable mapping exists, fetch sheet rows with bounded
// retry, project rows into professor records.
type ProfessorService struct {
	resolver ConfigResolver
	sheets   SheetRowFetcher
	metrics  *metrics.MetricsRegistry

	group singleflight.Group

	maxAttempts int
	retryDelay  time.Duration
}

func NewProfessorService(resolver ConfigResolver, sheets SheetRowFetcher, metricsReg *metrics.MetricsRegistry) *ProfessorService {
	return &ProfessorService{
		resolver:    resolver,
		sheets:      sheets,
		metrics:     metricsReg,
		maxAttempts: defaultMaxFetchAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

// FetchProfessors produces the professor records for a faculty. Concurrent
// calls for the same faculty are coalesced into a single upstream fetch;
// calls for different faculties run fully independently.
func (s *ProfessorService) FetchProfessors(ctx context.Context, facultyID string) ([]dtos.ProfessorRecord, error) {
	name := NormalizeFacultyID(facultyID)

	v, err, _ := s.group.Do(name, func() (interface{}, error) {
		return s.fetchProfessors(ctx, name)
	})
	if err != nil {
		s.countFetch(name, ErrorCode(err))
		return nil, err
	}

	s.countFetch(name, "ok")
	return v.([]dtos.ProfessorRecord), nil
}

func (s *ProfessorService) fetchProfessors(ctx context.Context, name string) ([]dtos.ProfessorRecord, error) {
	start := time.Now()

	// Resolving. Configuration failures are fatal, never retried.
	config, err := s.resolver.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	// Validating. No network call happens unless at least one mapping can
	// address a column.
	if !HasUsableMapping(config.FieldMappings) {
		return nil, &DirectoryError{Code: constants.ErrCodeNoColumnsConfigured}
	}

	// Fetching, with bounded retry on transient upstream failures.
	rows, err := s.fetchRowsWithRetry(ctx, name, config)
	if err != nil {
		return nil, err
	}

	// Projecting. Cannot fail: the usable-mapping gate already held.
	records := ProjectRows(rows, config.FieldMappings)

	if s.metrics != nil {
		s.metrics.SheetFetchDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		s.metrics.ProfessorsProjected.WithLabelValues(name).Add(float64(len(records)))
	}

	logging.Debug("Professor fetch completed",
		"faculty", name,
		"rows", strconv.Itoa(len(rows)),
		"records", strconv.Itoa(len(records)),
	)

	return records, nil
}

func (s *ProfessorService) fetchRowsWithRetry(ctx context.Context, name string, config *dtos.FacultyConfig) ([][]string, error) {
	var lastErr error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		rows, err := s.sheets.FetchRows(ctx, config.SpreadsheetID, config.APIKey, config.SelectedSheet.Title, providers.DataRange)
		if err == nil {
			return rows, nil
		}
		lastErr = err

		var upstream *providers.UpstreamError
		if !errors.As(err, &upstream) || !upstream.Transient() {
			return nil, s.classifyFatal(name, err)
		}

		logging.Warn("Sheet fetch attempt failed",
			"faculty", name,
			"attempt", attempt,
			"error", err.Error(),
		)

		if attempt == s.maxAttempts {
			break
		}

		if s.metrics != nil {
			s.metrics.SheetFetchRetriesTotal.WithLabelValues(name).Inc()
		}

		// Timed suspension between attempts, abandoned if the caller goes
		// away.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.retryDelay):
		}
	}

	return nil, &DirectoryError{
		Code: constants.ErrCodeFetchFailed,
		Err:  lastErr,
	}
}

// classifyFatal maps a non-retryable upstream failure onto the directory
// error taxonomy.
func (s *ProfessorService) classifyFatal(name string, err error) error {
	var upstream *providers.UpstreamError
	if errors.As(err, &upstream) {
		switch upstream.Code {
		case constants.ErrCodeEmptyResult:
			return &DirectoryError{Code: constants.ErrCodeEmptyResult, Err: err}
		case constants.ErrCodeInvalidDataFormat:
			return &DirectoryError{Code: constants.ErrCodeInvalidDataFormat, Err: err}
		}
	}
	logging.Error("Unclassified sheet fetch failure", "faculty", name, "error", err.Error())
	return &DirectoryError{Code: constants.ErrCodeFetchFailed, Err: err}
}

func (s *ProfessorService) countFetch(name, outcome string) {
	if s.metrics == nil {
		return
	}
	if outcome == "" {
		outcome = "error"
	}
	s.metrics.SheetFetchTotal.WithLabelValues(name, outcome).Inc()
}
