package services

import (
	"database/sql"
	"paintvault_server/structs/tables"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// renderDB builds a bun handle that never connects; queries are only
// rendered to SQL for predicate assertions.
func renderDB() *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN("postgres://localhost:5432/render?sslmode=disable")))
	db := bun.NewDB(sqldb, pgdialect.New())
	db.RegisterModel(
		(*tables.ProductTag)(nil),
		(*tables.ProductAnalogous)(nil),
		(*tables.ProductColorRange)(nil),
		(*tables.ProductProductType)(nil),
	)
	return db
}

func TestLineProductLookupKeyedByLineAndSlug(t *testing.T) {
	db := renderDB()
	lineID := uuid.Must(uuid.NewV7())

	rendered := lineProductLookup(db, lineID, "red-ink").String()
	assert.Contains(t, rendered, "product_line_id = '"+lineID.String()+"'")
	assert.Contains(t, rendered, "slug = 'red-ink'")
}

func TestVendorCascadeScopes(t *testing.T) {
	db := renderDB()
	id := uuid.Must(uuid.NewV7())

	assert.Contains(t, vendorLines(db, id).String(),
		"vendor_id = '"+id.String()+"'")
	assert.Contains(t, vendorProducts(db, id).String(),
		"product_line_id IN (SELECT id FROM product_lines WHERE vendor_id = '"+id.String()+"')")
	assert.Contains(t, vendorVariants(db, id).String(),
		"pl.vendor_id = '"+id.String()+"'")
}

func TestProductLineCascadeScopes(t *testing.T) {
	db := renderDB()
	id := uuid.Must(uuid.NewV7())

	assert.Contains(t, lineProducts(db, id).String(),
		"product_line_id = '"+id.String()+"'")
	assert.Contains(t, lineVariants(db, id).String(),
		"product_id IN (SELECT id FROM products WHERE product_line_id = '"+id.String()+"')")
}
