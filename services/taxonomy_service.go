package services

import (
	"context"
	"fmt"
	"paintvault_server/database"
	"paintvault_server/lib"
	"paintvault_server/structs"
	"paintvault_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TaxonomyService manages the shared vocabulary tables (tags,
// analogous colors, color ranges, product types) and their product
// attachments. All upserts are keyed by slug so re-ingesting the same
// vendor dump never duplicates a term.
type TaxonomyService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewTaxonomyService(logger *gecho.Logger, db *database.DB) *TaxonomyService {
	return &TaxonomyService{logger: logger, db: db}
}

// SeedVocabularies inserts the closed color-range and product-type
// vocabularies. Existing rows are left untouched.
func (ts *TaxonomyService) SeedVocabularies(ctx context.Context) error {
	for _, name := range structs.ColorRangeNames() {
		cr := &tables.ColorRange{
			ID:   uuid.Must(uuid.NewV7()),
			Name: string(name),
			Slug: lib.Slugify(string(name)),
		}
		if err := database.UpsertIgnore(ts.db, ctx, cr, "name"); err != nil {
			return fmt.Errorf("failed to seed color range %s: %w", name, err)
		}
	}

	for _, name := range structs.ProductTypeNames() {
		pt := &tables.ProductType{
			ID:   uuid.Must(uuid.NewV7()),
			Name: string(name),
			Slug: lib.Slugify(string(name)),
		}
		if err := database.UpsertIgnore(ts.db, ctx, pt, "name"); err != nil {
			return fmt.Errorf("failed to seed product type %s: %w", name, err)
		}
	}

	ts.logger.Info("Taxonomy vocabularies seeded",
		gecho.Field("color_ranges", len(structs.ColorRangeNames())),
		gecho.Field("product_types", len(structs.ProductTypeNames())),
	)
	return nil
}

// UpsertTag finds or creates a tag by its slug. A lost insert race
// falls back to a re-read, so concurrent ingests converge on one row.
func (ts *TaxonomyService) UpsertTag(ctx context.Context, db bun.IDB, name string) (*tables.Tag, error) {
	slug := lib.UniqueHash(name, "")

	existing, err := database.Query[tables.Tag](db).Where("slug", slug).First(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	tag := &tables.Tag{ID: uuid.Must(uuid.NewV7()), Name: name, Slug: slug}
	if err := database.UpsertIgnore(db, ctx, tag, "slug"); err != nil {
		return nil, err
	}

	// The insert may have been skipped if another transaction won;
	// the re-read returns whichever row survived.
	return database.Query[tables.Tag](db).Where("slug", slug).First(ctx)
}

// UpsertAnalogous finds or creates an analogous-color term by slug
func (ts *TaxonomyService) UpsertAnalogous(ctx context.Context, db bun.IDB, name string) (*tables.Analogous, error) {
	slug := lib.UniqueHash(name, "")

	existing, err := database.Query[tables.Analogous](db).Where("slug", slug).First(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	term := &tables.Analogous{ID: uuid.Must(uuid.NewV7()), Name: name, Slug: slug}
	if err := database.UpsertIgnore(db, ctx, term, "slug"); err != nil {
		return nil, err
	}

	return database.Query[tables.Analogous](db).Where("slug", slug).First(ctx)
}

// FindColorRange resolves a coerced color-range name to its seeded row
func (ts *TaxonomyService) FindColorRange(ctx context.Context, db bun.IDB, name structs.ColorRangeName) (*tables.ColorRange, error) {
	cr, err := database.Query[tables.ColorRange](db).Where("name", string(name)).First(ctx)
	if err != nil {
		return nil, err
	}
	if cr == nil {
		return nil, lib.NewNotFound(fmt.Sprintf("color range %s is not seeded", name))
	}
	return cr, nil
}

// FindProductType resolves a coerced product-type name to its seeded row
func (ts *TaxonomyService) FindProductType(ctx context.Context, db bun.IDB, name structs.ProductTypeName) (*tables.ProductType, error) {
	pt, err := database.Query[tables.ProductType](db).Where("name", string(name)).First(ctx)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, lib.NewNotFound(fmt.Sprintf("product type %s is not seeded", name))
	}
	return pt, nil
}

// Attachment writers. ON CONFLICT DO NOTHING keeps them idempotent
// across re-ingests.

func (ts *TaxonomyService) AttachTag(ctx context.Context, db bun.IDB, productID, tagID uuid.UUID) error {
	join := &tables.ProductTag{ProductID: productID, TagID: tagID}
	return database.UpsertIgnore(db, ctx, join, "product_id, tag_id")
}

func (ts *TaxonomyService) AttachAnalogous(ctx context.Context, db bun.IDB, productID, analogousID uuid.UUID) error {
	join := &tables.ProductAnalogous{ProductID: productID, AnalogousID: analogousID}
	return database.UpsertIgnore(db, ctx, join, "product_id, analogous_id")
}

func (ts *TaxonomyService) AttachColorRange(ctx context.Context, db bun.IDB, productID, colorRangeID uuid.UUID) error {
	join := &tables.ProductColorRange{ProductID: productID, ColorRangeID: colorRangeID}
	return database.UpsertIgnore(db, ctx, join, "product_id, color_range_id")
}

func (ts *TaxonomyService) AttachProductType(ctx context.Context, db bun.IDB, productID, productTypeID uuid.UUID) error {
	join := &tables.ProductProductType{ProductID: productID, ProductTypeID: productTypeID}
	return database.UpsertIgnore(db, ctx, join, "product_id, product_type_id")
}

// ListTags returns a page of tags, optionally filtered by substring
func (ts *TaxonomyService) ListTags(ctx context.Context, name string, limit, offset int) (structs.Page[tables.Tag], error) {
	q := database.Query[tables.Tag](ts.db)
	if name != "" {
		q = q.WhereILike("name", name)
	}
	q = q.OrderBy("name", database.ASC).OrderBy("id", database.ASC)
	return database.ListAndCount(ctx, q, limit, offset)
}

// ListAnalogous returns a page of analogous-color terms
func (ts *TaxonomyService) ListAnalogous(ctx context.Context, name string, limit, offset int) (structs.Page[tables.Analogous], error) {
	q := database.Query[tables.Analogous](ts.db)
	if name != "" {
		q = q.WhereILike("name", name)
	}
	q = q.OrderBy("name", database.ASC).OrderBy("id", database.ASC)
	return database.ListAndCount(ctx, q, limit, offset)
}

// ListColorRanges returns the full color-range vocabulary
func (ts *TaxonomyService) ListColorRanges(ctx context.Context) ([]tables.ColorRange, error) {
	return database.Query[tables.ColorRange](ts.db).OrderBy("name", database.ASC).All(ctx)
}

// ListProductTypes returns the full product-type vocabulary
func (ts *TaxonomyService) ListProductTypes(ctx context.Context) ([]tables.ProductType, error) {
	return database.Query[tables.ProductType](ts.db).OrderBy("name", database.ASC).All(ctx)
}

// CreateTag registers a free-form tag through the CRUD surface
func (ts *TaxonomyService) CreateTag(ctx context.Context, req *structs.TermCreate) (*tables.Tag, error) {
	tag := &tables.Tag{
		ID:   uuid.Must(uuid.NewV7()),
		Name: req.Name,
		Slug: lib.UniqueHash(req.Name, req.Slug),
		Type: req.Type,
	}

	tag, err := database.Create(ts.db, ctx, tag)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			return nil, lib.NewDuplicateKey(fmt.Sprintf("tag %q already exists", req.Name))
		}
		ts.logger.Error("Failed to create tag", gecho.Field("name", req.Name), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}
	return tag, nil
}

// CreateAnalogous registers an analogous-color term through the CRUD surface
func (ts *TaxonomyService) CreateAnalogous(ctx context.Context, req *structs.TermCreate) (*tables.Analogous, error) {
	term := &tables.Analogous{
		ID:   uuid.Must(uuid.NewV7()),
		Name: req.Name,
		Slug: lib.UniqueHash(req.Name, req.Slug),
	}

	term, err := database.Create(ts.db, ctx, term)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			return nil, lib.NewDuplicateKey(fmt.Sprintf("analogous term %q already exists", req.Name))
		}
		ts.logger.Error("Failed to create analogous term", gecho.Field("name", req.Name), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}
	return term, nil
}

// DeleteTag removes a tag and its product attachments
func (ts *TaxonomyService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := database.Query[tables.ProductTag](tx).Where("tag_id", id).Delete(ctx); err != nil {
			return err
		}
		affected, err := database.HardDelete[tables.Tag](tx, ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return lib.NewNotFound("tag not found")
		}
		return nil
	})
}

// DeleteAnalogous removes an analogous term and its attachments
func (ts *TaxonomyService) DeleteAnalogous(ctx context.Context, id uuid.UUID) error {
	return database.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := database.Query[tables.ProductAnalogous](tx).Where("analogous_id", id).Delete(ctx); err != nil {
			return err
		}
		affected, err := database.HardDelete[tables.Analogous](tx, ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return lib.NewNotFound("analogous term not found")
		}
		return nil
	})
}
