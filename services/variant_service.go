package services

import (
	"context"
	"fmt"
	"paintvault_server/database"
	"paintvault_server/lib"
	"paintvault_server/structs"
	"paintvault_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// VariantService manages the locale-specific SKUs of each product
type VariantService struct {
	logger        *gecho.Logger
	db            *database.DB
	localeService *LocaleService
}

func NewVariantService(logger *gecho.Logger, db *database.DB, localeService *LocaleService) *VariantService {
	return &VariantService{
		logger:        logger,
		db:            db,
		localeService: localeService,
	}
}

// List returns a page of variants for a product
func (vs *VariantService) List(ctx context.Context, productID uuid.UUID, includeDeleted bool, limit, offset int) (structs.Page[tables.ProductVariant], error) {
	q := database.Query[tables.ProductVariant](vs.db).Where("product_id", productID)
	if !includeDeleted {
		q = q.ExcludeDeleted()
	}
	q = q.Relation("Locale").OrderBy("sku", database.ASC).OrderBy("id", database.ASC)
	return database.ListAndCount(ctx, q, limit, offset)
}

// Get returns a single variant with its locale preloaded
func (vs *VariantService) Get(ctx context.Context, id uuid.UUID) (*tables.ProductVariant, error) {
	variant, err := database.Query[tables.ProductVariant](vs.db).
		Where("id", id).
		ExcludeDeleted().
		Relation("Locale").
		First(ctx)
	if err != nil {
		vs.logger.Error("Failed to fetch variant", gecho.Field("id", id), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}
	if variant == nil {
		return nil, lib.NewNotFound("variant not found")
	}
	return variant, nil
}

// Create registers a variant under an existing product. The locale
// must already be registered; unknown pairs are rejected with the SKU
// in the error detail.
func (vs *VariantService) Create(ctx context.Context, req *structs.VariantCreate) (*tables.ProductVariant, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, lib.NewValidation("invalid product_id", nil)
	}

	product, err := database.Query[tables.Product](vs.db).Where("id", productID).ExcludeDeleted().First(ctx)
	if err != nil {
		return nil, lib.NewInternal(err)
	}
	if product == nil {
		return nil, lib.NewNotFound("product not found")
	}

	locale, err := vs.localeService.Resolve(req.LanguageCode, req.CountryCode, req.SKU)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	variant := &tables.ProductVariant{
		ID:                uuid.Must(uuid.NewV7()),
		ProductID:         productID,
		LocaleID:          locale.ID,
		DisplayName:       req.DisplayName,
		MarketingName:     req.MarketingName,
		SKU:               req.SKU,
		ImageURL:          req.ImageURL,
		Packaging:         lib.ParseEnum(req.Packaging, structs.Packagings(), structs.PackagingUnknown),
		Price:             req.Price,
		ProductURL:        req.ProductURL,
		VolumeML:          req.VolumeML,
		VolumeOz:          req.VolumeOz,
		Opacity:           lib.ParseEnum(req.Opacity, structs.Opacities(), structs.OpacityUnknown),
		Viscosity:         lib.ParseEnum(req.Viscosity, structs.Viscosities(), structs.ViscosityUnknown),
		ApplicationMethod: lib.ParseEnum(req.ApplicationMethod, structs.ApplicationMethods(), structs.ApplicationUnknown),
		Discontinued:      req.Discontinued,
		VendorProductID:   req.VendorProductID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	variant, err = database.Create(vs.db, ctx, variant)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			return nil, lib.NewDuplicateKey(fmt.Sprintf("variant %s already exists for this product and locale", req.SKU))
		}
		vs.logger.Error("Failed to create variant", gecho.Field("sku", req.SKU), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}

	vs.logger.Info("Variant created", gecho.Field("id", variant.ID), gecho.Field("sku", variant.SKU))
	return variant, nil
}

// Update applies a partial patch to a variant
func (vs *VariantService) Update(ctx context.Context, id uuid.UUID, req *structs.VariantPatch) (*tables.ProductVariant, error) {
	updateData := map[string]any{"updated_at": time.Now().UTC()}
	if req.DisplayName != nil {
		updateData["display_name"] = *req.DisplayName
	}
	if req.MarketingName != nil {
		updateData["marketing_name"] = *req.MarketingName
	}
	if req.ImageURL != nil {
		updateData["image_url"] = *req.ImageURL
	}
	if req.Packaging != nil {
		parsed, ok := lib.ParseEnumStrict(*req.Packaging, structs.Packagings())
		if !ok {
			return nil, lib.NewValidation(fmt.Sprintf("unknown packaging %q", *req.Packaging), nil)
		}
		updateData["packaging"] = parsed
	}
	if req.Price != nil {
		updateData["price"] = *req.Price
	}
	if req.ProductURL != nil {
		updateData["product_url"] = *req.ProductURL
	}
	if req.VolumeML != nil {
		updateData["volume_ml"] = *req.VolumeML
	}
	if req.VolumeOz != nil {
		updateData["volume_oz"] = *req.VolumeOz
	}
	if req.Opacity != nil {
		parsed, ok := lib.ParseEnumStrict(*req.Opacity, structs.Opacities())
		if !ok {
			return nil, lib.NewValidation(fmt.Sprintf("unknown opacity %q", *req.Opacity), nil)
		}
		updateData["opacity"] = parsed
	}
	if req.Viscosity != nil {
		parsed, ok := lib.ParseEnumStrict(*req.Viscosity, structs.Viscosities())
		if !ok {
			return nil, lib.NewValidation(fmt.Sprintf("unknown viscosity %q", *req.Viscosity), nil)
		}
		updateData["viscosity"] = parsed
	}
	if req.ApplicationMethod != nil {
		parsed, ok := lib.ParseEnumStrict(*req.ApplicationMethod, structs.ApplicationMethods())
		if !ok {
			return nil, lib.NewValidation(fmt.Sprintf("unknown application_method %q", *req.ApplicationMethod), nil)
		}
		updateData["application_method"] = parsed
	}
	if req.Discontinued != nil {
		updateData["discontinued"] = *req.Discontinued
	}

	rows, err := database.Query[tables.ProductVariant](vs.db).
		Where("id", id).
		ExcludeDeleted().
		UpdateReturning(ctx, updateData)
	if err != nil {
		vs.logger.Error("Failed to update variant", gecho.Field("id", id), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}
	if len(rows) == 0 {
		return nil, lib.NewNotFound("variant not found")
	}
	return &rows[0], nil
}

// Delete soft-deletes a variant
func (vs *VariantService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := database.SoftDelete[tables.ProductVariant](vs.db, ctx, id)
	if err != nil {
		vs.logger.Error("Failed to delete variant", gecho.Field("id", id), gecho.Field("error", err))
		return lib.NewInternal(err)
	}
	if affected == 0 {
		return lib.NewNotFound("variant not found")
	}

	vs.logger.Info("Variant soft-deleted", gecho.Field("id", id))
	return nil
}

// Restore reverses a soft delete
func (vs *VariantService) Restore(ctx context.Context, id uuid.UUID) error {
	affected, err := database.Restore[tables.ProductVariant](vs.db, ctx, id)
	if err != nil {
		return lib.NewInternal(err)
	}
	if affected == 0 {
		return lib.NewNotFound("variant not found")
	}
	return nil
}
