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

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
	taxonomy     *TaxonomyService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService, taxonomy *TaxonomyService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
		taxonomy:     taxonomy,
	}
}

// ProductListOptions contains filtering and pagination options for product queries
type ProductListOptions struct {
	// Filters
	ID              *uuid.UUID `json:"id,omitempty"`
	Name            string     `json:"name,omitempty"`              // substring, case-insensitive
	Slug            string     `json:"slug,omitempty"`              // substring, case-insensitive
	ISCCNBSCategory string     `json:"iscc_nbs_category,omitempty"` // substring, case-insensitive
	ColorRange      string     `json:"color_range,omitempty"`       // exact vocabulary name
	ProductType     string     `json:"product_type,omitempty"`      // exact vocabulary name
	Tag             string     `json:"tag,omitempty"`               // tag slug
	Analogous       string     `json:"analogous,omitempty"`         // analogous slug
	ProductLineID   *uuid.UUID `json:"product_line_id,omitempty"`
	IncludeDeleted  bool       `json:"include_deleted,omitempty"`

	// Pagination
	Limit  int `json:"limit"`
	Offset int `json:"offset"`

	// Performance
	Timeout time.Duration `json:"-"`
}

// cacheKey normalizes the filter set into a stable key for the page cache
func (opts *ProductListOptions) cacheKey() string {
	var id, lineID string
	if opts.ID != nil {
		id = opts.ID.String()
	}
	if opts.ProductLineID != nil {
		lineID = opts.ProductLineID.String()
	}
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s|%s|%s|%d|%d",
		id, lineID, opts.Name, opts.Slug, opts.ISCCNBSCategory,
		opts.ColorRange, opts.ProductType, opts.Tag, opts.Analogous,
		opts.Limit, opts.Offset)
}

// GetAllProducts retrieves a page of products with swatch and taxonomy
// relations preloaded. Ordering is stable: name, then id.
func (ps *ProductService) GetAllProducts(ctx context.Context, opts *ProductListOptions) (structs.Page[tables.Product], error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	if err := ps.validateOptions(opts); err != nil {
		return structs.Page[tables.Product]{}, err
	}

	// Read-through page cache; administrative reads stay out of it
	filterKey := opts.cacheKey()
	if !opts.IncludeDeleted {
		if cached, err := ps.cacheService.GetProductPage(filterKey); err == nil && cached != nil {
			ps.logger.Debug("Product page served from cache",
				gecho.Field("key", filterKey),
				gecho.Field("duration", time.Since(startTime)))
			return *cached, nil
		}
	}

	query := database.Query[tables.Product](ps.db).Timeout(opts.Timeout)
	query = ps.applyFilters(query, opts)
	query = query.
		Relation("Swatch").
		Relation("Tags").
		Relation("Analogous").
		Relation("ColorRanges").
		Relation("ProductTypes").
		OrderBy("name", database.ASC).
		OrderBy("id", database.ASC)

	page, err := database.ListAndCount(ctx, query, opts.Limit, opts.Offset)
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("limit", opts.Limit),
			gecho.Field("offset", opts.Offset),
			gecho.Field("duration", time.Since(startTime)))
		return structs.Page[tables.Product]{}, lib.NewInternal(err)
	}

	if !opts.IncludeDeleted {
		go func() {
			if err := ps.cacheService.SetProductPage(filterKey, &page); err != nil {
				ps.logger.Warn("Failed to cache product page", gecho.Field("error", err), gecho.Field("key", filterKey))
			}
		}()
	}

	ps.logger.Debug("Products fetched",
		gecho.Field("count", len(page.Items)),
		gecho.Field("total", page.Total),
		gecho.Field("duration", time.Since(startTime)),
	)
	return page, nil
}

// GetProductByID retrieves a single product with all relations,
// serving from cache when possible. Administrative reads set
// includeDeleted, which bypasses the cache and the soft-delete filter.
func (ps *ProductService) GetProductByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*tables.Product, error) {
	startTime := time.Now()

	if !includeDeleted {
		cached, err := ps.cacheService.GetProductByID(id)
		if err != nil {
			ps.logger.Warn("Failed to get product from cache", gecho.Field("error", err), gecho.Field("id", id))
		} else if cached != nil {
			ps.logger.Debug("Product retrieved from cache", gecho.Field("id", id), gecho.Field("duration", time.Since(startTime)))
			return cached, nil
		}
	}

	query := database.Query[tables.Product](ps.db).Where("id", id)
	if !includeDeleted {
		query = query.ExcludeDeleted()
	}
	product, err := query.
		Relation("ProductLine").
		Relation("Swatch").
		Relation("Variants").
		Relation("Tags").
		Relation("Analogous").
		Relation("ColorRanges").
		Relation("ProductTypes").
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		ps.logger.Error("Failed to fetch product by ID",
			gecho.Field("id", id),
			gecho.Field("error", err),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, lib.NewInternal(err)
	}
	if product == nil {
		return nil, lib.NewNotFound("product not found")
	}

	// Cache asynchronously; administrative reads stay out of the cache
	if !includeDeleted {
		go func() {
			if err := ps.cacheService.SetProductByID(product); err != nil {
				ps.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("id", id))
			}
		}()
	}

	return product, nil
}

// CreateProduct registers a product under an existing product line
func (ps *ProductService) CreateProduct(ctx context.Context, req *structs.ProductCreate) (*tables.Product, error) {
	lineID, err := uuid.Parse(req.ProductLineID)
	if err != nil {
		return nil, lib.NewValidation("invalid product_line_id", nil)
	}

	line, err := database.Query[tables.ProductLine](ps.db).Where("id", lineID).ExcludeDeleted().First(ctx)
	if err != nil {
		return nil, lib.NewInternal(err)
	}
	if line == nil {
		return nil, lib.NewNotFound("product line not found")
	}

	now := time.Now().UTC()
	product := &tables.Product{
		ID:              uuid.Must(uuid.NewV7()),
		ProductLineID:   lineID,
		Name:            req.Name,
		Slug:            lib.UniqueHash(req.Name, req.Slug),
		ISCCNBSCategory: req.ISCCNBSCategory,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	product, err = database.Create(ps.db, ctx, product)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			return nil, lib.NewDuplicateKey(fmt.Sprintf("product %q already exists", req.Name))
		}
		ps.logger.Error("Failed to create product", gecho.Field("name", req.Name), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}

	ps.invalidateAsync(product.ID)
	ps.logger.Info("Product created", gecho.Field("id", product.ID), gecho.Field("slug", product.Slug))
	return product, nil
}

// UpdateProduct applies a partial patch
func (ps *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *structs.ProductPatch) (*tables.Product, error) {
	updateData := map[string]any{"updated_at": time.Now().UTC()}
	if req.Name != nil {
		updateData["name"] = *req.Name
	}
	if req.ISCCNBSCategory != nil {
		updateData["iscc_nbs_category"] = *req.ISCCNBSCategory
	}

	rows, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		ExcludeDeleted().
		UpdateReturning(ctx, updateData)
	if err != nil {
		ps.logger.Error("Failed to update product", gecho.Field("id", id), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}
	if len(rows) == 0 {
		return nil, lib.NewNotFound("product not found")
	}

	ps.invalidateAsync(id)
	return &rows[0], nil
}

// DeleteProduct soft-deletes a product; variants follow in the same
// transaction so a restored product comes back whole
func (ps *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		affected, err := database.SoftDelete[tables.Product](tx, ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return lib.NewNotFound("product not found")
		}

		now := time.Now().UTC()
		_, err = database.Query[tables.ProductVariant](tx).
			Where("product_id", id).
			WhereRaw("is_deleted = FALSE").
			Update(ctx, map[string]any{"is_deleted": true, "deleted_at": now, "updated_at": now})
		return err
	})
	if err != nil {
		if _, ok := lib.AsAppError(err); ok {
			return err
		}
		ps.logger.Error("Failed to delete product", gecho.Field("id", id), gecho.Field("error", err))
		return lib.NewInternal(err)
	}

	ps.invalidateAsync(id)
	ps.logger.Info("Product soft-deleted", gecho.Field("id", id))
	return nil
}

// RestoreProduct reverses a soft delete, variants included
func (ps *ProductService) RestoreProduct(ctx context.Context, id uuid.UUID) error {
	err := database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		affected, err := database.Restore[tables.Product](tx, ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return lib.NewNotFound("product not found")
		}

		_, err = database.Query[tables.ProductVariant](tx).
			Where("product_id", id).
			Update(ctx, map[string]any{"is_deleted": false, "deleted_at": nil, "updated_at": time.Now().UTC()})
		return err
	})
	if err != nil {
		if _, ok := lib.AsAppError(err); ok {
			return err
		}
		return lib.NewInternal(err)
	}

	ps.invalidateAsync(id)
	return nil
}

// UpsertSwatch writes the one swatch a product can have. An existing
// row is replaced field for field.
func (ps *ProductService) UpsertSwatch(ctx context.Context, req *structs.SwatchCreate) (*tables.ProductSwatch, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, lib.NewValidation("invalid product_id", nil)
	}

	product, err := database.Query[tables.Product](ps.db).Where("id", productID).ExcludeDeleted().First(ctx)
	if err != nil {
		return nil, lib.NewInternal(err)
	}
	if product == nil {
		return nil, lib.NewNotFound("product not found")
	}

	swatch, err := buildSwatch(productID, req)
	if err != nil {
		return nil, err
	}

	err = database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		existing, err := database.Query[tables.ProductSwatch](tx).Where("product_id", productID).First(ctx)
		if err != nil {
			return err
		}
		if existing != nil {
			swatch.ID = existing.ID
			_, err = database.Query[tables.ProductSwatch](tx).Where("id", existing.ID).Update(ctx, map[string]any{
				"hex_color":      swatch.HexColor,
				"rgb_color":      swatch.RGBColor,
				"oklch_color":    swatch.OKLCHColor,
				"gradient_start": swatch.GradientStart,
				"gradient_end":   swatch.GradientEnd,
				"overlay":        swatch.Overlay,
			})
			return err
		}
		_, err = database.Create(tx, ctx, swatch)
		return err
	})
	if err != nil {
		ps.logger.Error("Failed to upsert swatch", gecho.Field("product_id", productID), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}

	ps.invalidateAsync(productID)
	return swatch, nil
}

// GetSwatch returns the swatch for a product
func (ps *ProductService) GetSwatch(ctx context.Context, productID uuid.UUID) (*tables.ProductSwatch, error) {
	swatch, err := database.Query[tables.ProductSwatch](ps.db).Where("product_id", productID).First(ctx)
	if err != nil {
		return nil, lib.NewInternal(err)
	}
	if swatch == nil {
		return nil, lib.NewNotFound("swatch not found")
	}
	return swatch, nil
}

// DeleteSwatch removes a product's swatch outright
func (ps *ProductService) DeleteSwatch(ctx context.Context, productID uuid.UUID) error {
	affected, err := database.Query[tables.ProductSwatch](ps.db).Where("product_id", productID).Delete(ctx)
	if err != nil {
		return lib.NewInternal(err)
	}
	if affected == 0 {
		return lib.NewNotFound("swatch not found")
	}
	ps.invalidateAsync(productID)
	return nil
}

// AttachTag links an existing tag by slug, creating the term if needed
func (ps *ProductService) AttachTag(ctx context.Context, productID uuid.UUID, name string) error {
	product, err := database.Query[tables.Product](ps.db).Where("id", productID).ExcludeDeleted().First(ctx)
	if err != nil {
		return lib.NewInternal(err)
	}
	if product == nil {
		return lib.NewNotFound("product not found")
	}

	tag, err := ps.taxonomy.UpsertTag(ctx, ps.db, name)
	if err != nil {
		return lib.NewInternal(err)
	}
	if err := ps.taxonomy.AttachTag(ctx, ps.db, productID, tag.ID); err != nil {
		return lib.NewInternal(err)
	}

	ps.invalidateAsync(productID)
	return nil
}

// validateOptions rejects filter values outside the closed vocabularies
func (ps *ProductService) validateOptions(opts *ProductListOptions) error {
	if opts.ColorRange != "" {
		if _, ok := lib.ParseEnumStrict(opts.ColorRange, structs.ColorRangeNames()); !ok {
			return lib.NewValidation(fmt.Sprintf("unknown color_range %q", opts.ColorRange), nil)
		}
	}
	if opts.ProductType != "" {
		if _, ok := lib.ParseEnumStrict(opts.ProductType, structs.ProductTypeNames()); !ok {
			return lib.NewValidation(fmt.Sprintf("unknown product_type %q", opts.ProductType), nil)
		}
	}
	return nil
}

// applyFilters applies all filter conditions to the query
func (ps *ProductService) applyFilters(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	if !opts.IncludeDeleted {
		query = query.ExcludeDeleted()
	}

	if opts.ID != nil {
		query = query.Where("id", *opts.ID)
	}
	if opts.ProductLineID != nil {
		query = query.Where("product_line_id", *opts.ProductLineID)
	}

	// Substring filters
	if opts.Name != "" {
		query = query.WhereILike("name", opts.Name)
	}
	if opts.Slug != "" {
		query = query.WhereILike("slug", opts.Slug)
	}
	if opts.ISCCNBSCategory != "" {
		query = query.WhereILike("iscc_nbs_category", opts.ISCCNBSCategory)
	}

	// Taxonomy filters run as EXISTS subqueries against the join
	// tables; the vocabulary ones match the coerced name exactly.
	if opts.ColorRange != "" {
		name, _ := lib.ParseEnumStrict(opts.ColorRange, structs.ColorRangeNames())
		query = query.WhereRaw(
			"EXISTS (SELECT 1 FROM product_color_ranges pcr JOIN color_ranges cr ON cr.id = pcr.color_range_id WHERE pcr.product_id = p.id AND cr.name = ?)",
			string(name),
		)
	}
	if opts.ProductType != "" {
		name, _ := lib.ParseEnumStrict(opts.ProductType, structs.ProductTypeNames())
		query = query.WhereRaw(
			"EXISTS (SELECT 1 FROM product_product_types ppt JOIN product_types pt ON pt.id = ppt.product_type_id WHERE ppt.product_id = p.id AND pt.name = ?)",
			string(name),
		)
	}
	if opts.Tag != "" {
		query = query.WhereRaw(
			"EXISTS (SELECT 1 FROM product_tags ptg JOIN tags t ON t.id = ptg.tag_id WHERE ptg.product_id = p.id AND t.slug = ?)",
			lib.Slugify(opts.Tag),
		)
	}
	if opts.Analogous != "" {
		query = query.WhereRaw(
			"EXISTS (SELECT 1 FROM product_analogous pa JOIN analogous a ON a.id = pa.analogous_id WHERE pa.product_id = p.id AND a.slug = ?)",
			lib.Slugify(opts.Analogous),
		)
	}

	return query
}

func (ps *ProductService) invalidateAsync(productID uuid.UUID) {
	go func() {
		if err := ps.cacheService.InvalidateProductCaches(productID); err != nil {
			ps.logger.Warn("Failed to invalidate product caches",
				gecho.Field("error", err),
				gecho.Field("product_id", productID),
			)
		}
	}()
}
