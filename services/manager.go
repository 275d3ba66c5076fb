package services

import (
	"paintvault_server/database"
	"paintvault_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService        *AuthService
	CacheService       *CacheService
	HealthService      *HealthService
	LocaleService      *LocaleService
	TaxonomyService    *TaxonomyService
	VendorService      *VendorService
	ProductLineService *ProductLineService
	ProductService     *ProductService
	VariantService     *VariantService
	IngestService      *IngestService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	authService := NewAuthService(cfg, logger)
	cacheService := NewCacheService(logger, cfg)
	healthService := NewHealthService(logger, cfg, db)
	localeService := NewLocaleService(logger, db)
	taxonomyService := NewTaxonomyService(logger, db)
	vendorService := NewVendorService(logger, db)
	productLineService := NewProductLineService(logger, db)
	productService := NewProductService(logger, db, cacheService, taxonomyService)
	variantService := NewVariantService(logger, db, localeService)
	ingestService := NewIngestService(logger, db, localeService, taxonomyService, cacheService)

	return &ServiceManager{
		AuthService:        authService,
		CacheService:       cacheService,
		HealthService:      healthService,
		LocaleService:      localeService,
		TaxonomyService:    taxonomyService,
		VendorService:      vendorService,
		ProductLineService: productLineService,
		ProductService:     productService,
		VariantService:     variantService,
		IngestService:      ingestService,
	}
}
