package admin

import (
	"paintvault_server/api/middleware"
	"paintvault_server/services"
	"paintvault_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger        *gecho.Logger
	ingestService *services.IngestService
	cacheService  *services.CacheService
	cfg           *structs.Config
	mw            *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	ingestService *services.IngestService,
	cacheService *services.CacheService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:        logger,
		ingestService: ingestService,
		cacheService:  cacheService,
		cfg:           cfg,
		mw:            mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(arm.mw.AdminAuthMiddleware)

		r.Post("/ingest", arm.RunIngest)

		r.Post("/cache/clear", arm.ClearCache)
		r.Get("/cache/stats", arm.CacheStats)
	})
}
