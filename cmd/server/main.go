package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"espoch-directory/docentes/internal/config"
	"espoch-directory/docentes/internal/db"
	"espoch-directory/docentes/internal/db/repositories"
	"espoch-directory/docentes/internal/logging"
	"espoch-directory/docentes/internal/routes"
	"espoch-directory/docentes/internal/services"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Directory backend starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx
	if err := db.InitPostgres(); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("❌ Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM
	if _, err := db.InitPostgresORM(db.DSN()); err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("❌ Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	// Seed shipped faculty configurations unless disabled
	if cfg.SeedBootstrapFaculties {
		seeder := services.NewMappingAdminService(
			repositories.NewFacultyRepository(db.PgDB),
			services.NewConfigNotifier(),
		)
		if err := seeder.SeedBootstrapFaculties(context.Background()); err != nil {
			logging.Error("Failed to seed bootstrap faculties", "error", err.Error())
			log.Fatalf("❌ Failed to seed bootstrap faculties: %v", err)
		}
	}

	upSince := time.Now()

	// Initialize router with Chi
	// Note: metricsReg is created in RegisterRoutes and applied as global middleware
	router := routes.RegisterRoutes(cfg, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router) // Mount Chi router at root
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := ":" + cfg.ServerPort
	logging.Info("Server starting",
		"port", cfg.ServerPort,
		"environment", cfg.AppEnv,
	)

	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
