package api

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"espoch-directory/docentes/internal/common"
	"espoch-directory/docentes/internal/models/entities"
)

// HealthCheckHandler reports the liveness of the service and its database.
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)
		overall := "ok"

		dbStatus := entities.ServiceStatus{Status: "ok"}
		if db == nil {
			dbStatus = entities.ServiceStatus{Status: "down", Details: "not connected"}
			overall = "degraded"
		} else if err := db.PingContext(r.Context()); err != nil {
			dbStatus = entities.ServiceStatus{Status: "down", Details: err.Error()}
			overall = "degraded"
		}
		services["postgres"] = dbStatus

		common.RespondJSON(w, http.StatusOK, entities.HealthCheckResponse{
			Status:   overall,
			Services: services,
			UpSince:  upSince,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		})
	}
}
