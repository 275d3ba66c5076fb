package taxonomy

import (
	"paintvault_server/api/middleware"
	"paintvault_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type TaxonomyRoutesManager struct {
	logger          *gecho.Logger
	taxonomyService *services.TaxonomyService
	mw              *middleware.Middleware
}

func NewTaxonomyRoutesManager(
	logger *gecho.Logger,
	taxonomyService *services.TaxonomyService,
	mw *middleware.Middleware,
) *TaxonomyRoutesManager {
	return &TaxonomyRoutesManager{
		logger:          logger,
		taxonomyService: taxonomyService,
		mw:              mw,
	}
}

func (trm *TaxonomyRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/tags", func(r chi.Router) {
		r.Get("/", trm.ListTags)
		r.Group(func(r chi.Router) {
			r.Use(trm.mw.AdminAuthMiddleware)
			r.Post("/", trm.CreateTag)
			r.Delete("/{id}", trm.DeleteTag)
		})
	})

	r.Route("/analogous", func(r chi.Router) {
		r.Get("/", trm.ListAnalogous)
		r.Group(func(r chi.Router) {
			r.Use(trm.mw.AdminAuthMiddleware)
			r.Post("/", trm.CreateAnalogous)
			r.Delete("/{id}", trm.DeleteAnalogous)
		})
	})

	// Fixed vocabularies, read only
	r.Get("/color-ranges", trm.ListColorRanges)
	r.Get("/product-types", trm.ListProductTypes)
}
