package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"espoch-directory/docentes/internal/common"
	"espoch-directory/docentes/internal/constants"
	"espoch-directory/docentes/internal/logging"
	"espoch-directory/docentes/internal/models/dtos"
	"espoch-directory/docentes/internal/providers"
	"espoch-directory/docentes/internal/services"
)

// SheetBrowser is the slice of the sheet client the admin endpoints use to
// inspect a configured spreadsheet.
type SheetBrowser interface {
	ListSheets(ctx context.Context, spreadsheetID, apiKey string) ([]dtos.SheetRef, error)
	FetchHeaderRow(ctx context.Context, spreadsheetID, apiKey, sheetTitle string) ([]dtos.HeaderColumn, error)
}

// ListFacultySheetsHandler handles GET /faculties/{name}/sheets: lists the
// tabs of the faculty's configured spreadsheet so the admin panel can offer
// a tab picker.
func ListFacultySheetsHandler(admin *services.MappingAdminService, browser SheetBrowser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, ok := facultyCredentials(w, r, admin)
		if !ok {
			return
		}

		sheets, err := browser.ListSheets(r.Context(), config.SpreadsheetID, config.APIKey)
		if err != nil {
			respondUpstreamError(w, config.Name, err)
			return
		}

		common.RespondJSON(w, http.StatusOK, sheets)
	}
}

// GetSheetHeadersHandler handles GET /faculties/{name}/headers: reads the
// header row of the selected tab (or of the tab named by ?sheet=) so the
// admin panel can map columns by name instead of by raw index.
func GetSheetHeadersHandler(admin *services.MappingAdminService, browser SheetBrowser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, ok := facultyCredentials(w, r, admin)
		if !ok {
			return
		}

		sheetTitle := r.URL.Query().Get("sheet")
		if sheetTitle == "" && config.SelectedSheet != nil {
			sheetTitle = config.SelectedSheet.Title
		}
		if sheetTitle == "" {
			common.RespondError(w, http.StatusBadRequest, "No sheet selected for faculty")
			return
		}

		headers, err := browser.FetchHeaderRow(r.Context(), config.SpreadsheetID, config.APIKey, sheetTitle)
		if err != nil {
			respondUpstreamError(w, config.Name, err)
			return
		}

		common.RespondJSON(w, http.StatusOK, headers)
	}
}

// facultyCredentials loads the faculty named in the route and verifies it
// carries spreadsheet credentials. Writes the error response itself when the
// lookup fails.
func facultyCredentials(w http.ResponseWriter, r *http.Request, admin *services.MappingAdminService) (*dtos.FacultyConfigResponse, bool) {
	name := chi.URLParam(r, "faculty")

	config, err := admin.GetFacultyConfig(r.Context(), name)
	if err != nil {
		logging.Error("Failed to load faculty config", "faculty", name, "error", err.Error())
		respondServiceError(w, err)
		return nil, false
	}
	if config == nil {
		common.RespondError(w, http.StatusNotFound, "Faculty not found")
		return nil, false
	}
	if config.SpreadsheetID == "" || config.APIKey == "" {
		common.RespondError(w, http.StatusBadRequest, "Faculty has no spreadsheet credentials configured")
		return nil, false
	}
	return config, true
}

// respondUpstreamError maps a failed spreadsheet API call onto the REST
// surface: transient upstream failures become 502, empty documents 404,
// everything else 500.
func respondUpstreamError(w http.ResponseWriter, faculty string, err error) {
	logging.Warn("Spreadsheet inspection failed", "faculty", faculty, "error", err.Error())

	var upstream *providers.UpstreamError
	if errors.As(err, &upstream) {
		switch {
		case upstream.Code == constants.ErrCodeEmptyResult:
			common.RespondError(w, http.StatusNotFound, constants.GetErrorMessage(upstream.Code))
		case upstream.Transient():
			common.RespondError(w, http.StatusBadGateway, constants.GetErrorMessage(upstream.Code))
		default:
			common.RespondError(w, http.StatusInternalServerError, constants.GetErrorMessage(upstream.Code))
		}
		return
	}

	common.RespondError(w, http.StatusInternalServerError, err.Error())
}
