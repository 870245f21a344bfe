package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"espoch-directory/docentes/internal/common"
	"espoch-directory/docentes/internal/logging"
	"espoch-directory/docentes/internal/models/dtos"
	"espoch-directory/docentes/internal/services"
)

// ListFacultiesHandler handles GET /faculties.
func ListFacultiesHandler(admin *services.MappingAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		faculties, err := admin.ListFaculties(r.Context())
		if err != nil {
			logging.Error("Failed to list faculties", "error", err.Error())
			respondServiceError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, faculties)
	}
}

// SaveFacultyHandler handles POST /faculties: upsert by canonical name.
// Responds 201 when a new faculty was created, 200 when an existing one was
// updated.
func SaveFacultyHandler(admin *services.MappingAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.SaveFacultyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		faculty, created, err := admin.SaveFaculty(r.Context(), &req)
		if err != nil {
			logging.Error("Failed to save faculty", "faculty", req.Name, "error", err.Error())
			respondServiceError(w, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		common.RespondJSON(w, status, faculty)
	}
}

// GetFacultyHandler handles GET /faculties/{name}.
func GetFacultyHandler(admin *services.MappingAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "faculty")

		config, err := admin.GetFacultyConfig(r.Context(), name)
		if err != nil {
			logging.Error("Failed to load faculty config", "faculty", name, "error", err.Error())
			respondServiceError(w, err)
			return
		}
		if config == nil {
			common.RespondError(w, http.StatusNotFound, "Faculty not found")
			return
		}

		common.RespondJSON(w, http.StatusOK, config)
	}
}

// UpdateFacultyHandler handles PUT /faculties/{id}: scalar configuration and
// the full mapping set are replaced together.
func UpdateFacultyHandler(admin *services.MappingAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "faculty")

		var req dtos.UpdateFacultyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		faculty, err := admin.UpdateFaculty(r.Context(), id, &req)
		if err != nil {
			logging.Error("Failed to update faculty", "id", id, "error", err.Error())
			respondServiceError(w, err)
			return
		}

		common.RespondJSON(w, http.StatusOK, faculty)
	}
}

// ReplaceMappingsHandler handles PUT /faculties/{id}/mappings. The stored
// mapping set is fully superseded by the payload; it is never merged.
func ReplaceMappingsHandler(admin *services.MappingAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "faculty")

		var req dtos.ReplaceMappingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		mappings, err := admin.ReplaceMappingsRaw(r.Context(), id, req.FieldMappings)
		if err != nil {
			logging.Error("Failed to replace mappings", "id", id, "error", err.Error())
			respondServiceError(w, err)
			return
		}

		common.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"message":       "Field mappings updated",
			"fieldMappings": mappings,
		})
	}
}

// DeleteFacultyHandler handles DELETE /faculties/{id}.
func DeleteFacultyHandler(admin *services.MappingAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "faculty")

		if err := admin.DeleteFaculty(r.Context(), id); err != nil {
			logging.Error("Failed to delete faculty", "id", id, "error", err.Error())
			respondServiceError(w, err)
			return
		}

		common.RespondJSON(w, http.StatusOK, map[string]string{
			"message": "Faculty deleted",
		})
	}
}
