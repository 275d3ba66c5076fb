package api

import (
	"net/http"
	"paintvault_server/api/admin"
	"paintvault_server/api/auth"
	"paintvault_server/api/health"
	"paintvault_server/api/locales"
	"paintvault_server/api/middleware"
	"paintvault_server/api/productlines"
	"paintvault_server/api/products"
	"paintvault_server/api/taxonomy"
	"paintvault_server/api/variants"
	"paintvault_server/api/vendors"
	"paintvault_server/config"
	"paintvault_server/services"
	"paintvault_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App(cfg *structs.Config, sm *services.ServiceManager) chi.Router {
	r := chi.NewRouter()

	// create loggers
	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger, sm.CacheService, sm.AuthService)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(10 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(gecho.Handlers.CreateLoggingMiddleware(mwLogger))
	r.Use(middleware.MetricsMiddleware)

	// CORS (must be before auth)
	r.Use(mw.SetupCORS().Handler)

	// Rate limiting backed by Redis, fails open on cache errors
	r.Use(mw.RateLimitMiddleware())

	// Claims for requests that carry a token; admin routes still
	// enforce their own auth
	r.Use(mw.OptionalAuthMiddleware)

	// Health and metrics stay at the root, outside the API prefix
	health.NewHealthRoutesManager(sm.HealthService).RegisterRoutes(r)

	// Register all API routes under the configured prefix
	rm := NewRouterManager(
		vendors.NewVendorRoutesManager(standardLogger, sm.VendorService, mw),
		productlines.NewProductLineRoutesManager(standardLogger, sm.ProductLineService, mw),
		products.NewProductRoutesManager(standardLogger, sm.ProductService, mw),
		variants.NewVariantRoutesManager(standardLogger, sm.VariantService, mw),
		locales.NewLocaleRoutesManager(standardLogger, sm.LocaleService, mw),
		taxonomy.NewTaxonomyRoutesManager(standardLogger, sm.TaxonomyService, mw),
		auth.NewAuthRoutesManager(standardLogger, sm.AuthService),
		admin.NewAdminRoutesManager(standardLogger, sm.IngestService, sm.CacheService, cfg, mw),
	)
	if prefix := cfg.Server.APIPrefix; prefix != "" && prefix != "/" {
		r.Route(prefix, rm.RegisterRoutes)
	} else {
		rm.RegisterRoutes(r)
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithMessage("Welcome to the PaintVault API"),
			gecho.Send(),
		)
	})

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
