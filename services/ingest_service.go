package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"paintvault_server/database"
	"paintvault_server/lib"
	"paintvault_server/structs"
	"paintvault_server/structs/tables"
	"path/filepath"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// IngestService loads vendor catalog dumps. Each vendor document runs
// in its own transaction: one bad product rolls back that vendor and
// leaves every other vendor's data intact. Re-running the same dump is
// a no-op apart from refreshed mutable fields.
type IngestService struct {
	logger        *gecho.Logger
	db            *database.DB
	localeService *LocaleService
	taxonomy      *TaxonomyService
	cacheService  *CacheService
}

func NewIngestService(logger *gecho.Logger, db *database.DB, localeService *LocaleService, taxonomy *TaxonomyService, cacheService *CacheService) *IngestService {
	return &IngestService{
		logger:        logger,
		db:            db,
		localeService: localeService,
		taxonomy:      taxonomy,
		cacheService:  cacheService,
	}
}

// IngestResult summarizes one vendor document's outcome
type IngestResult struct {
	Vendor       string        `json:"vendor"`
	ProductLines int           `json:"product_lines"`
	Products     int           `json:"products"`
	Variants     int           `json:"variants"`
	Duration     time.Duration `json:"duration_ns"`
	Err          error         `json:"-"`
	Error        string        `json:"error,omitempty"`
}

// IngestFile reads a dump file holding a single vendor document or an
// array of them and ingests each document
func (is *IngestService) IngestFile(ctx context.Context, path string) ([]IngestResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dump %s: %w", path, err)
	}

	docs, err := decodeVendorDocuments(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode dump %s: %w", path, err)
	}

	results := make([]IngestResult, 0, len(docs))
	for i := range docs {
		results = append(results, is.IngestVendor(ctx, &docs[i]))
	}
	return results, nil
}

// IngestDir ingests every .json file in a directory, in name order
func (is *IngestService) IngestDir(ctx context.Context, dir string) ([]IngestResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read dump directory %s: %w", dir, err)
	}

	var results []IngestResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		fileResults, err := is.IngestFile(ctx, filepath.Join(dir, entry.Name()))
		if err != nil {
			return results, err
		}
		results = append(results, fileResults...)
	}
	return results, nil
}

// IngestVendor runs one vendor document in a single transaction
func (is *IngestService) IngestVendor(ctx context.Context, doc *structs.VendorDocument) IngestResult {
	startTime := time.Now()
	result := IngestResult{Vendor: doc.VendorName}

	err := database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		vendor, err := is.upsertVendor(ctx, tx, doc)
		if err != nil {
			return err
		}

		for i := range doc.ProductLines {
			lineInput := &doc.ProductLines[i]
			line, err := is.upsertProductLine(ctx, tx, vendor, lineInput)
			if err != nil {
				return err
			}
			result.ProductLines++

			for j := range lineInput.Products {
				variants, err := is.ingestProduct(ctx, tx, line, &lineInput.Products[j])
				if err != nil {
					return err
				}
				result.Products++
				result.Variants += variants
			}
		}
		return nil
	})

	result.Duration = time.Since(startTime)
	if err != nil {
		result.Err = err
		result.Error = err.Error()
		is.logger.Error("Vendor ingest rolled back",
			gecho.Field("vendor", doc.VendorName),
			gecho.Field("error", err),
			gecho.Field("duration", result.Duration),
		)
		return result
	}

	// Listing caches may hold pre-ingest pages
	go func() {
		if err := is.cacheService.InvalidateAllProductCaches(); err != nil {
			is.logger.Warn("Failed to invalidate product caches after ingest", gecho.Field("error", err))
		}
	}()

	is.logger.Info("Vendor ingested",
		gecho.Field("vendor", doc.VendorName),
		gecho.Field("product_lines", result.ProductLines),
		gecho.Field("products", result.Products),
		gecho.Field("variants", result.Variants),
		gecho.Field("duration", result.Duration),
	)
	return result
}

// upsertVendor finds a vendor by slug or creates it; mutable metadata
// refreshes on every run
func (is *IngestService) upsertVendor(ctx context.Context, tx bun.Tx, doc *structs.VendorDocument) (*tables.Vendor, error) {
	slug := lib.UniqueHash(doc.VendorName, doc.Slug)

	vendor, err := database.Query[tables.Vendor](tx).Where("slug", slug).First(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if vendor == nil {
		vendor = &tables.Vendor{
			ID:          uuid.Must(uuid.NewV7()),
			Name:        doc.VendorName,
			Slug:        slug,
			URL:         doc.VendorURL,
			Platform:    doc.Platform,
			Description: doc.Description,
			PDPSlug:     doc.PDPSlug,
			PLPSlug:     doc.PLPSlug,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return database.Create(tx, ctx, vendor)
	}

	_, err = database.Query[tables.Vendor](tx).Where("id", vendor.ID).Update(ctx, map[string]any{
		"name":        doc.VendorName,
		"url":         doc.VendorURL,
		"platform":    doc.Platform,
		"description": doc.Description,
		"pdp_slug":    doc.PDPSlug,
		"plp_slug":    doc.PLPSlug,
		"updated_at":  now,
	})
	if err != nil {
		return nil, err
	}
	return vendor, nil
}

// upsertProductLine finds a line by vendor and slug or creates it
func (is *IngestService) upsertProductLine(ctx context.Context, tx bun.Tx, vendor *tables.Vendor, in *structs.ProductLineInput) (*tables.ProductLine, error) {
	slug := lib.UniqueHash(in.ProductLineName, in.Slug)

	line, err := database.Query[tables.ProductLine](tx).
		Where("vendor_id", vendor.ID).
		Where("slug", slug).
		First(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if line == nil {
		line = &tables.ProductLine{
			ID:              uuid.Must(uuid.NewV7()),
			VendorID:        vendor.ID,
			Name:            in.ProductLineName,
			MarketingName:   in.MarketingName,
			Slug:            slug,
			VendorSlug:      in.VendorSlug,
			ProductLineType: lib.ParseEnum(in.ProductLineType, structs.ProductLineTypes(), structs.ProductLineMixed),
			Description:     in.Description,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		return database.Create(tx, ctx, line)
	}

	_, err = database.Query[tables.ProductLine](tx).Where("id", line.ID).Update(ctx, map[string]any{
		"name":              in.ProductLineName,
		"marketing_name":    in.MarketingName,
		"vendor_slug":       in.VendorSlug,
		"product_line_type": lib.ParseEnum(in.ProductLineType, structs.ProductLineTypes(), structs.ProductLineMixed),
		"description":       in.Description,
		"updated_at":        now,
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// ingestProduct upserts one product with its swatch, taxonomy
// attachments and variants. Returns the number of variants written.
func (is *IngestService) ingestProduct(ctx context.Context, tx bun.Tx, line *tables.ProductLine, in *structs.ProductInput) (int, error) {
	colorRanges, productTypes, err := coerceProductVocabularies(in)
	if err != nil {
		return 0, err
	}

	product, err := is.upsertProduct(ctx, tx, line, in)
	if err != nil {
		return 0, err
	}

	if in.Swatch != nil {
		if err := is.upsertSwatch(ctx, tx, product.ID, in.Swatch); err != nil {
			return 0, err
		}
	}

	for _, name := range in.Tags {
		tag, err := is.taxonomy.UpsertTag(ctx, tx, name)
		if err != nil {
			return 0, err
		}
		if err := is.taxonomy.AttachTag(ctx, tx, product.ID, tag.ID); err != nil {
			return 0, err
		}
	}

	for _, name := range in.Analogous {
		term, err := is.taxonomy.UpsertAnalogous(ctx, tx, name)
		if err != nil {
			return 0, err
		}
		if err := is.taxonomy.AttachAnalogous(ctx, tx, product.ID, term.ID); err != nil {
			return 0, err
		}
	}

	for _, name := range colorRanges {
		cr, err := is.taxonomy.FindColorRange(ctx, tx, name)
		if err != nil {
			return 0, err
		}
		if err := is.taxonomy.AttachColorRange(ctx, tx, product.ID, cr.ID); err != nil {
			return 0, err
		}
	}

	for _, name := range productTypes {
		pt, err := is.taxonomy.FindProductType(ctx, tx, name)
		if err != nil {
			return 0, err
		}
		if err := is.taxonomy.AttachProductType(ctx, tx, product.ID, pt.ID); err != nil {
			return 0, err
		}
	}

	variants := 0
	for i := range in.Variants {
		if err := is.upsertVariant(ctx, tx, product.ID, &in.Variants[i]); err != nil {
			return variants, err
		}
		variants++
	}
	return variants, nil
}

// coerceProductVocabularies maps the vendor's free-form labels onto
// the closed vocabularies. Unknown color ranges are dropped; a product
// left with none is invalid and fails the vendor. Unknown product
// types are dropped too, but an empty result defaults to Acrylic.
func coerceProductVocabularies(in *structs.ProductInput) ([]structs.ColorRangeName, []structs.ProductTypeName, error) {
	var colorRanges []structs.ColorRangeName
	for _, raw := range in.ColorRange {
		if name, ok := lib.ParseEnumStrict(raw, structs.ColorRangeNames()); ok {
			colorRanges = appendUniqueEnum(colorRanges, name)
		}
	}
	if len(colorRanges) == 0 {
		return nil, nil, lib.NewInvalidProduct(in.Name)
	}

	var productTypes []structs.ProductTypeName
	for _, raw := range in.ProductType {
		if name, ok := lib.ParseEnumStrict(raw, structs.ProductTypeNames()); ok {
			productTypes = appendUniqueEnum(productTypes, name)
		}
	}
	if len(productTypes) == 0 {
		productTypes = []structs.ProductTypeName{structs.ProductTypeAcrylic}
	}

	return colorRanges, productTypes, nil
}

// lineProductLookup keys the product upsert by (product_line_id, slug).
// A slug collision with another line's product is left to the global
// unique index, which fails the insert and rolls back the vendor.
func lineProductLookup(db bun.IDB, lineID uuid.UUID, slug string) *database.QueryBuilder[tables.Product] {
	return database.Query[tables.Product](db).
		Where("product_line_id", lineID).
		Where("slug", slug)
}

func (is *IngestService) upsertProduct(ctx context.Context, tx bun.Tx, line *tables.ProductLine, in *structs.ProductInput) (*tables.Product, error) {
	slug := lib.UniqueHash(in.Name, in.Slug)

	product, err := lineProductLookup(tx, line.ID, slug).First(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if product == nil {
		product = &tables.Product{
			ID:              uuid.Must(uuid.NewV7()),
			ProductLineID:   line.ID,
			Name:            in.Name,
			Slug:            slug,
			ISCCNBSCategory: in.ISCCNBSCategory,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		return database.Create(tx, ctx, product)
	}

	_, err = database.Query[tables.Product](tx).Where("id", product.ID).Update(ctx, map[string]any{
		"name":              in.Name,
		"iscc_nbs_category": in.ISCCNBSCategory,
		"updated_at":        now,
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (is *IngestService) upsertSwatch(ctx context.Context, tx bun.Tx, productID uuid.UUID, in *structs.SwatchInput) error {
	swatch, err := swatchFromInput(productID, in)
	if err != nil {
		return err
	}

	existing, err := database.Query[tables.ProductSwatch](tx).Where("product_id", productID).First(ctx)
	if err != nil {
		return err
	}
	if existing == nil {
		_, err = database.Create(tx, ctx, swatch)
		return err
	}

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

// upsertVariant writes a variant keyed by (product, locale, sku). On
// re-ingest the vendor's raw color-range and product-type labels merge
// as a set union, so labels never disappear between dumps.
func (is *IngestService) upsertVariant(ctx context.Context, tx bun.Tx, productID uuid.UUID, in *structs.VariantInput) error {
	locale, err := is.localeService.Resolve(in.LanguageCode, in.CountryCode, in.SKU)
	if err != nil {
		return err
	}

	existing, err := database.Query[tables.ProductVariant](tx).
		Where("product_id", productID).
		Where("locale_id", locale.ID).
		Where("sku", in.SKU).
		First(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if existing == nil {
		variant := &tables.ProductVariant{
			ID:                 uuid.Must(uuid.NewV7()),
			ProductID:          productID,
			LocaleID:           locale.ID,
			DisplayName:        in.DisplayName,
			MarketingName:      in.MarketingName,
			SKU:                in.SKU,
			ImageURL:           in.ImageURL,
			Packaging:          lib.ParseEnum(in.Packaging, structs.Packagings(), structs.PackagingUnknown),
			Price:              in.Price,
			ProductURL:         in.ProductURL,
			VolumeML:           in.VolumeML,
			VolumeOz:           in.VolumeOz,
			Opacity:            lib.ParseEnum(in.Opacity, structs.Opacities(), structs.OpacityUnknown),
			Viscosity:          lib.ParseEnum(in.Viscosity, structs.Viscosities(), structs.ViscosityUnknown),
			ApplicationMethod:  lib.ParseEnum(in.ApplicationMethod, structs.ApplicationMethods(), structs.ApplicationUnknown),
			Discontinued:       in.Discontinued,
			VendorProductID:    in.VendorProductID,
			VendorColorRanges:  in.VendorColorRange,
			VendorProductTypes: in.VendorProductType,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		_, err = database.Create(tx, ctx, variant)
		return err
	}

	_, err = database.Query[tables.ProductVariant](tx).Where("id", existing.ID).Update(ctx, map[string]any{
		"display_name":         in.DisplayName,
		"marketing_name":       in.MarketingName,
		"image_url":            in.ImageURL,
		"packaging":            lib.ParseEnum(in.Packaging, structs.Packagings(), structs.PackagingUnknown),
		"price":                in.Price,
		"product_url":          in.ProductURL,
		"volume_ml":            in.VolumeML,
		"volume_oz":            in.VolumeOz,
		"opacity":              lib.ParseEnum(in.Opacity, structs.Opacities(), structs.OpacityUnknown),
		"viscosity":            lib.ParseEnum(in.Viscosity, structs.Viscosities(), structs.ViscosityUnknown),
		"application_method":   lib.ParseEnum(in.ApplicationMethod, structs.ApplicationMethods(), structs.ApplicationUnknown),
		"discontinued":         in.Discontinued,
		"vendor_product_id":    in.VendorProductID,
		"vendor_color_ranges":  unionStrings(existing.VendorColorRanges, in.VendorColorRange),
		"vendor_product_types": unionStrings(existing.VendorProductTypes, in.VendorProductType),
		"is_deleted":           false,
		"deleted_at":           nil,
		"updated_at":           now,
	})
	return err
}

// decodeVendorDocuments accepts either a single JSON object or an
// array of them
func decodeVendorDocuments(data []byte) ([]structs.VendorDocument, error) {
	trimmed := strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	if strings.HasPrefix(trimmed, "[") {
		var docs []structs.VendorDocument
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, err
		}
		return docs, nil
	}

	var doc structs.VendorDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return []structs.VendorDocument{doc}, nil
}

// unionStrings merges two label sets, keeping first-seen order
func unionStrings(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, s := range existing {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	for _, s := range incoming {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	return merged
}

func appendUniqueEnum[T comparable](values []T, v T) []T {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}
