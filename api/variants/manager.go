package variants

import (
	"paintvault_server/api/middleware"
	"paintvault_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type VariantRoutesManager struct {
	logger         *gecho.Logger
	variantService *services.VariantService
	mw             *middleware.Middleware
}

func NewVariantRoutesManager(
	logger *gecho.Logger,
	variantService *services.VariantService,
	mw *middleware.Middleware,
) *VariantRoutesManager {
	return &VariantRoutesManager{
		logger:         logger,
		variantService: variantService,
		mw:             mw,
	}
}

func (vrm *VariantRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/products/{id}/variants", vrm.ListVariants)
	r.With(vrm.mw.AdminAuthMiddleware).Post("/products/{id}/variants", vrm.CreateVariant)

	r.Route("/variants", func(r chi.Router) {
		r.Get("/{id}", vrm.GetVariant)

		r.Group(func(r chi.Router) {
			r.Use(vrm.mw.AdminAuthMiddleware)
			r.Patch("/{id}", vrm.UpdateVariant)
			r.Delete("/{id}", vrm.DeleteVariant)
			r.Post("/{id}/restore", vrm.RestoreVariant)
		})
	})
}
