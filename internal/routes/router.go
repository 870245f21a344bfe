package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"espoch-directory/docentes/internal/api"
	"espoch-directory/docentes/internal/common"
	"espoch-directory/docentes/internal/config"
	"espoch-directory/docentes/internal/db"
	"espoch-directory/docentes/internal/db/repositories"
	"espoch-directory/docentes/internal/logging"
	"espoch-directory/docentes/internal/metrics"
	"espoch-directory/docentes/internal/middleware"
	"espoch-directory/docentes/internal/providers"
	"espoch-directory/docentes/internal/services"
)

// RegisterRoutes wires the full dependency graph and returns the HTTP
// handler for the directory backend.
func RegisterRoutes(cfg *config.Config, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:5173", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	// cache tier behind the config resolver
	cacheSvc := newCache(cfg)

	repo := repositories.NewFacultyRepository(db.PgDB)
	notifier := services.NewConfigNotifier()
	resolver := services.NewFacultyConfigResolver(
		repo,
		cacheSvc,
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
		notifier,
	)

	sheetsClient := providers.NewSheetsClient()
	if cfg.SheetsBaseURL != "" {
		sheetsClient.BaseURL = cfg.SheetsBaseURL
	}

	adminSvc := services.NewMappingAdminService(repo, notifier)
	professorSvc := services.NewProfessorService(resolver, sheetsClient, metricsReg)

	RegisterAPIRoutes(r, adminSvc, professorSvc, sheetsClient)

	return r
}

// newCache selects the resolver's cache backend. Redis failures fall back to
// the in-memory cache so a missing Redis never blocks startup.
func newCache(cfg *config.Config) common.CacheInterface {
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService()
		if err == nil {
			logging.Info("Config cache backend: redis")
			return redisCache
		}
		logging.Warn("Redis unavailable, using in-memory cache", "error", err.Error())
	}
	return common.NewCacheService(cfg.CacheTTLSeconds, cfg.CacheTTLSeconds*2)
}
