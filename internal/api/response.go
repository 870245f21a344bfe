package api

import (
	"errors"
	"net/http"

	"espoch-directory/docentes/internal/common"
	"espoch-directory/docentes/internal/constants"
	"espoch-directory/docentes/internal/services"
)

// statusForCode maps directory error codes onto the REST status classes.
func statusForCode(code string) int {
	switch code {
	case constants.ErrCodeFacultyNotFound:
		return http.StatusNotFound
	case constants.ErrCodeInvalidMapping, constants.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case constants.ErrCodeDuplicateFaculty:
		return http.StatusConflict
	case constants.ErrCodeFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes the {"error": message} body for a failed
// service call.
func respondServiceError(w http.ResponseWriter, err error) {
	var dirErr *services.DirectoryError
	if errors.As(err, &dirErr) {
		common.RespondError(w, statusForCode(dirErr.Code), dirErr.UserMessage())
		return
	}
	common.RespondError(w, http.StatusInternalServerError, err.Error())
}
