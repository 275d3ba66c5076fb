package tables

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Schema DDL is derived from the bun tags, so the uniqueness rules
// live or die by them.
func TestVariantUniqueKeyDeclared(t *testing.T) {
	typ := reflect.TypeOf(ProductVariant{})
	for _, name := range []string{"ProductID", "LocaleID", "SKU"} {
		field, ok := typ.FieldByName(name)
		require.True(t, ok, name)
		assert.Contains(t, field.Tag.Get("bun"), "unique:product_locale_sku", name)
	}
}

func TestSlugColumnsUnique(t *testing.T) {
	for _, model := range []any{Vendor{}, ProductLine{}, Product{}} {
		typ := reflect.TypeOf(model)
		field, ok := typ.FieldByName("Slug")
		require.True(t, ok, typ.Name())
		assert.Contains(t, field.Tag.Get("bun"), "unique", typ.Name())
	}
}
