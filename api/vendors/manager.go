package vendors

import (
	"paintvault_server/api/middleware"
	"paintvault_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type VendorRoutesManager struct {
	logger        *gecho.Logger
	vendorService *services.VendorService
	mw            *middleware.Middleware
}

func NewVendorRoutesManager(
	logger *gecho.Logger,
	vendorService *services.VendorService,
	mw *middleware.Middleware,
) *VendorRoutesManager {
	return &VendorRoutesManager{
		logger:        logger,
		vendorService: vendorService,
		mw:            mw,
	}
}

func (vrm *VendorRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/vendors", func(r chi.Router) {
		r.Get("/", vrm.ListVendors)
		r.Get("/{id}", vrm.GetVendor)

		// Write surface requires the admin token
		r.Group(func(r chi.Router) {
			r.Use(vrm.mw.AdminAuthMiddleware)
			r.Post("/", vrm.CreateVendor)
			r.Patch("/{id}", vrm.UpdateVendor)
			r.Delete("/{id}", vrm.DeleteVendor)
			r.Post("/{id}/restore", vrm.RestoreVendor)
		})
	})
}
