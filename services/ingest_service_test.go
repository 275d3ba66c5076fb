package services

import (
	"paintvault_server/lib"
	"paintvault_server/structs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVendorDocuments(t *testing.T) {
	t.Run("single object", func(t *testing.T) {
		docs, err := decodeVendorDocuments([]byte(`{"vendor_name": "Citadel"}`))
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Citadel", docs[0].VendorName)
	})

	t.Run("array of objects", func(t *testing.T) {
		docs, err := decodeVendorDocuments([]byte(`[{"vendor_name": "Citadel"}, {"vendor_name": "Vallejo"}]`))
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "Citadel", docs[0].VendorName)
		assert.Equal(t, "Vallejo", docs[1].VendorName)
	})

	t.Run("leading whitespace before array", func(t *testing.T) {
		docs, err := decodeVendorDocuments([]byte("\n\t [{\"vendor_name\": \"AK Interactive\"}]"))
		require.NoError(t, err)
		require.Len(t, docs, 1)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := decodeVendorDocuments([]byte(`{"vendor_name":`))
		assert.Error(t, err)
	})
}

func TestCoerceProductVocabularies(t *testing.T) {
	t.Run("labels coerce to the closed vocabulary", func(t *testing.T) {
		in := &structs.ProductInput{
			Name:        "Mephiston Red",
			ColorRange:  []string{"red", "RED", "dark crimson"},
			ProductType: []string{"base paint", "acrylic"},
		}

		colorRanges, productTypes, err := coerceProductVocabularies(in)
		require.NoError(t, err)
		assert.Equal(t, []structs.ColorRangeName{structs.ColorRangeRed}, colorRanges, "duplicates and unknowns drop")
		assert.Equal(t, []structs.ProductTypeName{structs.ProductTypeAcrylic}, productTypes)
	})

	t.Run("no valid color range fails the product", func(t *testing.T) {
		in := &structs.ProductInput{
			Name:       "Mystery Paint",
			ColorRange: []string{"dark crimson", "vermillion-ish"},
		}

		_, _, err := coerceProductVocabularies(in)
		require.Error(t, err)

		appErr, ok := lib.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, lib.CodeInvalidProduct, appErr.Code)
	})

	t.Run("empty product types default to acrylic", func(t *testing.T) {
		in := &structs.ProductInput{
			Name:       "Ultramarine Blue",
			ColorRange: []string{"blue"},
		}

		_, productTypes, err := coerceProductVocabularies(in)
		require.NoError(t, err)
		assert.Equal(t, []structs.ProductTypeName{structs.ProductTypeAcrylic}, productTypes)
	})
}

func TestUnionStrings(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		incoming []string
		want     []string
	}{
		{name: "disjoint sets append", existing: []string{"red"}, incoming: []string{"blue"}, want: []string{"red", "blue"}},
		{name: "duplicates collapse", existing: []string{"red", "blue"}, incoming: []string{"blue", "red"}, want: []string{"red", "blue"}},
		{name: "empty existing", existing: nil, incoming: []string{"red"}, want: []string{"red"}},
		{name: "empty incoming keeps existing", existing: []string{"red"}, incoming: nil, want: []string{"red"}},
		{name: "first seen order wins", existing: []string{"b", "a"}, incoming: []string{"a", "c"}, want: []string{"b", "a", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unionStrings(tt.existing, tt.incoming))
		})
	}
}
