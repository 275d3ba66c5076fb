package products

import (
	"paintvault_server/api/middleware"
	"paintvault_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
	mw             *middleware.Middleware
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	mw *middleware.Middleware,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
		mw:             mw,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", prm.FetchAllProducts)
		r.Get("/{id}", prm.FetchProductByID)
		r.Get("/{id}/swatch", prm.GetSwatch)

		r.Group(func(r chi.Router) {
			r.Use(prm.mw.AdminAuthMiddleware)
			r.Post("/", prm.CreateProduct)
			r.Patch("/{id}", prm.UpdateProduct)
			r.Delete("/{id}", prm.DeleteProduct)
			r.Post("/{id}/restore", prm.RestoreProduct)
			r.Put("/{id}/swatch", prm.UpsertSwatch)
			r.Delete("/{id}/swatch", prm.DeleteSwatch)
			r.Post("/{id}/tags", prm.AttachTag)
		})
	})
}
