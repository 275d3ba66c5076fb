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

// ProductLineService manages the sub-brands under each vendor
type ProductLineService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewProductLineService(logger *gecho.Logger, db *database.DB) *ProductLineService {
	return &ProductLineService{logger: logger, db: db}
}

// List returns a page of product lines, optionally scoped to a vendor
func (pls *ProductLineService) List(ctx context.Context, vendorID *uuid.UUID, name string, includeDeleted bool, limit, offset int) (structs.Page[tables.ProductLine], error) {
	q := database.Query[tables.ProductLine](pls.db)
	if !includeDeleted {
		q = q.ExcludeDeleted()
	}
	if vendorID != nil {
		q = q.Where("vendor_id", *vendorID)
	}
	if name != "" {
		q = q.WhereILike("name", name)
	}
	q = q.OrderBy("name", database.ASC).OrderBy("id", database.ASC)
	return database.ListAndCount(ctx, q, limit, offset)
}

// Get returns a single product line with its vendor preloaded
func (pls *ProductLineService) Get(ctx context.Context, id uuid.UUID) (*tables.ProductLine, error) {
	line, err := database.Query[tables.ProductLine](pls.db).
		Where("id", id).
		ExcludeDeleted().
		Relation("Vendor").
		First(ctx)
	if err != nil {
		pls.logger.Error("Failed to fetch product line", gecho.Field("id", id), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}
	if line == nil {
		return nil, lib.NewNotFound("product line not found")
	}
	return line, nil
}

// Create registers a new product line under an existing vendor
func (pls *ProductLineService) Create(ctx context.Context, req *structs.ProductLineCreate) (*tables.ProductLine, error) {
	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return nil, lib.NewValidation("invalid vendor_id", nil)
	}

	vendor, err := database.Query[tables.Vendor](pls.db).Where("id", vendorID).ExcludeDeleted().First(ctx)
	if err != nil {
		return nil, lib.NewInternal(err)
	}
	if vendor == nil {
		return nil, lib.NewNotFound("vendor not found")
	}

	now := time.Now().UTC()
	line := &tables.ProductLine{
		ID:              uuid.Must(uuid.NewV7()),
		VendorID:        vendorID,
		Name:            req.Name,
		MarketingName:   req.MarketingName,
		Slug:            lib.UniqueHash(req.Name, req.Slug),
		VendorSlug:      req.VendorSlug,
		ProductLineType: lib.ParseEnum(req.ProductLineType, structs.ProductLineTypes(), structs.ProductLineMixed),
		Description:     req.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	line, err = database.Create(pls.db, ctx, line)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			return nil, lib.NewDuplicateKey(fmt.Sprintf("product line %q already exists", req.Name))
		}
		pls.logger.Error("Failed to create product line", gecho.Field("name", req.Name), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}

	pls.logger.Info("Product line created", gecho.Field("id", line.ID), gecho.Field("slug", line.Slug))
	return line, nil
}

// Update applies a partial patch to a product line
func (pls *ProductLineService) Update(ctx context.Context, id uuid.UUID, req *structs.ProductLinePatch) (*tables.ProductLine, error) {
	updateData := map[string]any{"updated_at": time.Now().UTC()}
	if req.Name != nil {
		updateData["name"] = *req.Name
	}
	if req.MarketingName != nil {
		updateData["marketing_name"] = *req.MarketingName
	}
	if req.VendorSlug != nil {
		updateData["vendor_slug"] = *req.VendorSlug
	}
	if req.ProductLineType != nil {
		parsed, ok := lib.ParseEnumStrict(*req.ProductLineType, structs.ProductLineTypes())
		if !ok {
			return nil, lib.NewValidation(fmt.Sprintf("unknown product_line_type %q", *req.ProductLineType), nil)
		}
		updateData["product_line_type"] = parsed
	}
	if req.Description != nil {
		updateData["description"] = *req.Description
	}

	rows, err := database.Query[tables.ProductLine](pls.db).
		Where("id", id).
		ExcludeDeleted().
		UpdateReturning(ctx, updateData)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			return nil, lib.NewDuplicateKey("product line name already taken")
		}
		pls.logger.Error("Failed to update product line", gecho.Field("id", id), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}
	if len(rows) == 0 {
		return nil, lib.NewNotFound("product line not found")
	}
	return &rows[0], nil
}

// lineProducts selects the products owned by a product line
func lineProducts(db bun.IDB, lineID uuid.UUID) *database.QueryBuilder[tables.Product] {
	return database.Query[tables.Product](db).Where("product_line_id", lineID)
}

// lineVariants selects the variants under any of a line's products
func lineVariants(db bun.IDB, lineID uuid.UUID) *database.QueryBuilder[tables.ProductVariant] {
	return database.Query[tables.ProductVariant](db).
		WhereRaw("product_id IN (SELECT id FROM products WHERE product_line_id = ?)", lineID)
}

// Delete soft-deletes a product line and cascades the flag down its
// products and variants in one transaction.
func (pls *ProductLineService) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		affected, err := database.SoftDelete[tables.ProductLine](tx, ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return lib.NewNotFound("product line not found")
		}

		now := time.Now().UTC()
		deleted := map[string]any{"is_deleted": true, "deleted_at": now, "updated_at": now}
		if _, err := lineProducts(tx, id).WhereRaw("is_deleted = FALSE").Update(ctx, deleted); err != nil {
			return err
		}
		_, err = lineVariants(tx, id).WhereRaw("is_deleted = FALSE").Update(ctx, deleted)
		return err
	})
	if err != nil {
		if _, ok := lib.AsAppError(err); ok {
			return err
		}
		pls.logger.Error("Failed to delete product line", gecho.Field("id", id), gecho.Field("error", err))
		return lib.NewInternal(err)
	}

	pls.logger.Info("Product line soft-deleted", gecho.Field("id", id))
	return nil
}

// Restore reverses a soft delete, descendants included
func (pls *ProductLineService) Restore(ctx context.Context, id uuid.UUID) error {
	err := database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		affected, err := database.Restore[tables.ProductLine](tx, ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return lib.NewNotFound("product line not found")
		}

		restored := map[string]any{"is_deleted": false, "deleted_at": nil, "updated_at": time.Now().UTC()}
		if _, err := lineProducts(tx, id).Update(ctx, restored); err != nil {
			return err
		}
		_, err = lineVariants(tx, id).Update(ctx, restored)
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
