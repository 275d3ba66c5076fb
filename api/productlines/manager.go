package productlines

import (
	"paintvault_server/api/middleware"
	"paintvault_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductLineRoutesManager struct {
	logger             *gecho.Logger
	productLineService *services.ProductLineService
	mw                 *middleware.Middleware
}

func NewProductLineRoutesManager(
	logger *gecho.Logger,
	productLineService *services.ProductLineService,
	mw *middleware.Middleware,
) *ProductLineRoutesManager {
	return &ProductLineRoutesManager{
		logger:             logger,
		productLineService: productLineService,
		mw:                 mw,
	}
}

func (plm *ProductLineRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/product-lines", func(r chi.Router) {
		r.Get("/", plm.ListProductLines)
		r.Get("/{id}", plm.GetProductLine)

		r.Group(func(r chi.Router) {
			r.Use(plm.mw.AdminAuthMiddleware)
			r.Post("/", plm.CreateProductLine)
			r.Patch("/{id}", plm.UpdateProductLine)
			r.Delete("/{id}", plm.DeleteProductLine)
			r.Post("/{id}/restore", plm.RestoreProductLine)
		})
	})
}
