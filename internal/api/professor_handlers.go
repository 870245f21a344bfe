package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"espoch-directory/docentes/internal/common"
	"espoch-directory/docentes/internal/logging"
	"espoch-directory/docentes/internal/middleware"
	"espoch-directory/docentes/internal/services"
)

// GetProfessorsHandler handles GET /faculties/{name}/professors: the full
// read pipeline from configuration resolution to projected records.
func GetProfessorsHandler(professors *services.ProfessorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "faculty")
		requestID, _ := r.Context().Value(middleware.RequestIDKey).(string)
		log := logging.WithFaculty(requestID, name, r.URL.Path)

		records, err := professors.FetchProfessors(r.Context(), name)
		if err != nil {
			log.Warnw("Professor fetch failed", "error", err.Error())
			respondServiceError(w, err)
			return
		}

		log.Debugw("Professor fetch served", "records", len(records))
		common.RespondJSON(w, http.StatusOK, records)
	}
}
