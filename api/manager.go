package api

import (
	"paintvault_server/api/admin"
	"paintvault_server/api/auth"
	"paintvault_server/api/locales"
	"paintvault_server/api/productlines"
	"paintvault_server/api/products"
	"paintvault_server/api/taxonomy"
	"paintvault_server/api/variants"
	"paintvault_server/api/vendors"

	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	vendorRoutes      *vendors.VendorRoutesManager
	productLineRoutes *productlines.ProductLineRoutesManager
	productRoutes     *products.ProductRoutesManager
	variantRoutes     *variants.VariantRoutesManager
	localeRoutes      *locales.LocaleRoutesManager
	taxonomyRoutes    *taxonomy.TaxonomyRoutesManager
	authRoutes        *auth.AuthRoutesManager
	adminRoutes       *admin.AdminRoutesManager
}

func NewRouterManager(
	vendorRoutes *vendors.VendorRoutesManager,
	productLineRoutes *productlines.ProductLineRoutesManager,
	productRoutes *products.ProductRoutesManager,
	variantRoutes *variants.VariantRoutesManager,
	localeRoutes *locales.LocaleRoutesManager,
	taxonomyRoutes *taxonomy.TaxonomyRoutesManager,
	authRoutes *auth.AuthRoutesManager,
	adminRoutes *admin.AdminRoutesManager,
) *routerManager {
	return &routerManager{
		vendorRoutes:      vendorRoutes,
		productLineRoutes: productLineRoutes,
		productRoutes:     productRoutes,
		variantRoutes:     variantRoutes,
		localeRoutes:      localeRoutes,
		taxonomyRoutes:    taxonomyRoutes,
		authRoutes:        authRoutes,
		adminRoutes:       adminRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.vendorRoutes.RegisterRoutes(r)
	rm.productLineRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.variantRoutes.RegisterRoutes(r)
	rm.localeRoutes.RegisterRoutes(r)
	rm.taxonomyRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
}
