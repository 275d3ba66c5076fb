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
	"github.com/uptrace/bun"
)

// VendorService manages paint vendors
type VendorService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewVendorService(logger *gecho.Logger, db *database.DB) *VendorService {
	return &VendorService{logger: logger, db: db}
}

// List returns a page of vendors. Soft-deleted rows are excluded
// unless includeDeleted is set.
func (vs *VendorService) List(ctx context.Context, name, platform, slug string, includeDeleted bool, limit, offset int) (structs.Page[tables.Vendor], error) {
	q := database.Query[tables.Vendor](vs.db)
	if !includeDeleted {
		q = q.ExcludeDeleted()
	}
	if name != "" {
		q = q.WhereILike("name", name)
	}
	if platform != "" {
		q = q.WhereILike("platform", platform)
	}
	if slug != "" {
		q = q.Where("slug", slug)
	}
	q = q.OrderBy("name", database.ASC).OrderBy("id", database.ASC)
	return database.ListAndCount(ctx, q, limit, offset)
}

// Get returns a single vendor with its product lines preloaded
func (vs *VendorService) Get(ctx context.Context, id uuid.UUID) (*tables.Vendor, error) {
	vendor, err := database.Query[tables.Vendor](vs.db).
		Where("id", id).
		ExcludeDeleted().
		Relation("ProductLines").
		First(ctx)
	if err != nil {
		vs.logger.Error("Failed to fetch vendor", gecho.Field("id", id), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}
	if vendor == nil {
		return nil, lib.NewNotFound("vendor not found")
	}
	return vendor, nil
}

// GetBySlug resolves a vendor by its slug
func (vs *VendorService) GetBySlug(ctx context.Context, slug string) (*tables.Vendor, error) {
	vendor, err := database.Query[tables.Vendor](vs.db).
		Where("slug", slug).
		ExcludeDeleted().
		First(ctx)
	if err != nil {
		return nil, lib.NewInternal(err)
	}
	if vendor == nil {
		return nil, lib.NewNotFound("vendor not found")
	}
	return vendor, nil
}

// Create registers a new vendor
func (vs *VendorService) Create(ctx context.Context, req *structs.VendorCreate) (*tables.Vendor, error) {
	now := time.Now().UTC()
	vendor := &tables.Vendor{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        req.Name,
		Slug:        lib.UniqueHash(req.Name, req.Slug),
		URL:         req.URL,
		Platform:    req.Platform,
		Description: req.Description,
		PDPSlug:     req.PDPSlug,
		PLPSlug:     req.PLPSlug,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	vendor, err := database.Create(vs.db, ctx, vendor)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			return nil, lib.NewDuplicateKey(fmt.Sprintf("vendor %q already exists", req.Name))
		}
		vs.logger.Error("Failed to create vendor", gecho.Field("name", req.Name), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}

	vs.logger.Info("Vendor created", gecho.Field("id", vendor.ID), gecho.Field("slug", vendor.Slug))
	return vendor, nil
}

// Update applies a partial patch; absent fields stay untouched
func (vs *VendorService) Update(ctx context.Context, id uuid.UUID, req *structs.VendorPatch) (*tables.Vendor, error) {
	updateData := map[string]any{"updated_at": time.Now().UTC()}
	if req.Name != nil {
		updateData["name"] = *req.Name
	}
	if req.URL != nil {
		updateData["url"] = *req.URL
	}
	if req.Platform != nil {
		updateData["platform"] = *req.Platform
	}
	if req.Description != nil {
		updateData["description"] = *req.Description
	}
	if req.PDPSlug != nil {
		updateData["pdp_slug"] = *req.PDPSlug
	}
	if req.PLPSlug != nil {
		updateData["plp_slug"] = *req.PLPSlug
	}

	rows, err := database.Query[tables.Vendor](vs.db).
		Where("id", id).
		ExcludeDeleted().
		UpdateReturning(ctx, updateData)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			return nil, lib.NewDuplicateKey("vendor name already taken")
		}
		vs.logger.Error("Failed to update vendor", gecho.Field("id", id), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}
	if len(rows) == 0 {
		return nil, lib.NewNotFound("vendor not found")
	}
	return &rows[0], nil
}

// vendorLines selects the product lines owned by a vendor
func vendorLines(db bun.IDB, vendorID uuid.UUID) *database.QueryBuilder[tables.ProductLine] {
	return database.Query[tables.ProductLine](db).Where("vendor_id", vendorID)
}

// vendorProducts selects the products under any of a vendor's lines
func vendorProducts(db bun.IDB, vendorID uuid.UUID) *database.QueryBuilder[tables.Product] {
	return database.Query[tables.Product](db).
		WhereRaw("product_line_id IN (SELECT id FROM product_lines WHERE vendor_id = ?)", vendorID)
}

// vendorVariants selects the variants under any of a vendor's products
func vendorVariants(db bun.IDB, vendorID uuid.UUID) *database.QueryBuilder[tables.ProductVariant] {
	return database.Query[tables.ProductVariant](db).
		WhereRaw("product_id IN (SELECT p.id FROM products p JOIN product_lines pl ON pl.id = p.product_line_id WHERE pl.vendor_id = ?)", vendorID)
}

// Delete soft-deletes a vendor and cascades the flag down its product
// lines, products and variants in one transaction, so nothing of a
// deleted vendor surfaces in default reads.
func (vs *VendorService) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		affected, err := database.SoftDelete[tables.Vendor](tx, ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return lib.NewNotFound("vendor not found")
		}

		now := time.Now().UTC()
		deleted := map[string]any{"is_deleted": true, "deleted_at": now, "updated_at": now}
		if _, err := vendorLines(tx, id).WhereRaw("is_deleted = FALSE").Update(ctx, deleted); err != nil {
			return err
		}
		if _, err := vendorProducts(tx, id).WhereRaw("is_deleted = FALSE").Update(ctx, deleted); err != nil {
			return err
		}
		_, err = vendorVariants(tx, id).WhereRaw("is_deleted = FALSE").Update(ctx, deleted)
		return err
	})
	if err != nil {
		if _, ok := lib.AsAppError(err); ok {
			return err
		}
		vs.logger.Error("Failed to delete vendor", gecho.Field("id", id), gecho.Field("error", err))
		return lib.NewInternal(err)
	}

	vs.logger.Info("Vendor soft-deleted", gecho.Field("id", id))
	return nil
}

// Restore reverses a soft delete, descendants included
func (vs *VendorService) Restore(ctx context.Context, id uuid.UUID) error {
	err := database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		affected, err := database.Restore[tables.Vendor](tx, ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return lib.NewNotFound("vendor not found")
		}

		restored := map[string]any{"is_deleted": false, "deleted_at": nil, "updated_at": time.Now().UTC()}
		if _, err := vendorLines(tx, id).Update(ctx, restored); err != nil {
			return err
		}
		if _, err := vendorProducts(tx, id).Update(ctx, restored); err != nil {
			return err
		}
		_, err = vendorVariants(tx, id).Update(ctx, restored)
		return err
	})
	if err != nil {
		if _, ok := lib.AsAppError(err); ok {
			return err
		}
		return lib.NewInternal(err)
	}
	return nil
}
