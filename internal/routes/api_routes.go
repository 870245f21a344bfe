package routes

import (
	"github.com/go-chi/chi/v5"

	"espoch-directory/docentes/internal/api"
	"espoch-directory/docentes/internal/services"
)

// RegisterAPIRoutes mounts the faculty admin surface and the public
// professor read path.
func RegisterAPIRoutes(
	r chi.Router,
	adminSvc *services.MappingAdminService,
	professorSvc *services.ProfessorService,
	browser api.SheetBrowser,
) {
	// The {faculty} segment carries the faculty name on read routes and the
	// record id on write routes; chi requires one wildcard name per segment.
	r.Route("/faculties", func(r chi.Router) {
		r.Get("/", api.ListFacultiesHandler(adminSvc))
		r.Post("/", api.SaveFacultyHandler(adminSvc))

		r.Get("/{faculty}", api.GetFacultyHandler(adminSvc))
		r.Get("/{faculty}/professors", api.GetProfessorsHandler(professorSvc))
		r.Get("/{faculty}/sheets", api.ListFacultySheetsHandler(adminSvc, browser))
		r.Get("/{faculty}/headers", api.GetSheetHeadersHandler(adminSvc, browser))

		r.Put("/{faculty}", api.UpdateFacultyHandler(adminSvc))
		r.Put("/{faculty}/mappings", api.ReplaceMappingsHandler(adminSvc))
		r.Delete("/{faculty}", api.DeleteFacultyHandler(adminSvc))
	})
}
