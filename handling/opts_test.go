package handling

import (
	"context"
	"net/http"
	"net/http/httptest"
	"paintvault_server/api/middleware"
	"paintvault_server/structs"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asAdmin attaches admin claims the way the auth middleware does
func asAdmin(r *http.Request) *http.Request {
	claims := &structs.AuthClaims{Role: "admin"}
	return r.WithContext(context.WithValue(r.Context(), middleware.ClaimsContextKey, claims))
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{name: "defaults", query: "", wantLimit: structs.DefaultLimit, wantOffset: 0},
		{name: "explicit values", query: "limit=10&offset=30", wantLimit: 10, wantOffset: 30},
		{name: "limit above max clamps", query: "limit=500", wantLimit: structs.MaxLimit},
		{name: "zero limit defaults", query: "limit=0", wantLimit: structs.DefaultLimit},
		{name: "negative offset resets", query: "offset=-5", wantLimit: structs.DefaultLimit, wantOffset: 0},
		{name: "non-numeric limit", query: "limit=abc", wantErr: true},
		{name: "non-numeric offset", query: "offset=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/products?"+tt.query, nil)

			limit, offset, err := ParsePagination(r)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParseProductListOptions(t *testing.T) {
	t.Run("empty query returns defaults", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/products", nil)

		opts, err := ParseProductListOptions(r)
		require.NoError(t, err)
		assert.Equal(t, structs.DefaultLimit, opts.Limit)
		assert.Equal(t, 0, opts.Offset)
		assert.Nil(t, opts.ID)
		assert.False(t, opts.IncludeDeleted)
	})

	t.Run("all filters parse", func(t *testing.T) {
		lineID := uuid.Must(uuid.NewV7())
		r := asAdmin(httptest.NewRequest("GET",
			"/products?product_line_id="+lineID.String()+
				"&name=red&slug=mephiston&iscc_nbs_category=vivid"+
				"&color_range=Red&product_type=Acrylic&tag=base&analogous=crimson"+
				"&limit=5&offset=10&include_deleted=true", nil))

		opts, err := ParseProductListOptions(r)
		require.NoError(t, err)
		require.NotNil(t, opts.ProductLineID)
		assert.Equal(t, lineID, *opts.ProductLineID)
		assert.Equal(t, "red", opts.Name)
		assert.Equal(t, "mephiston", opts.Slug)
		assert.Equal(t, "vivid", opts.ISCCNBSCategory)
		assert.Equal(t, "Red", opts.ColorRange)
		assert.Equal(t, "Acrylic", opts.ProductType)
		assert.Equal(t, "base", opts.Tag)
		assert.Equal(t, "crimson", opts.Analogous)
		assert.Equal(t, 5, opts.Limit)
		assert.Equal(t, 10, opts.Offset)
		assert.True(t, opts.IncludeDeleted)
	})

	t.Run("invalid uuid filter errors", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/products?id=not-a-uuid", nil)

		_, err := ParseProductListOptions(r)
		assert.Error(t, err)
	})

	t.Run("invalid include_deleted errors", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/products?include_deleted=maybe", nil)

		_, err := ParseProductListOptions(r)
		assert.Error(t, err)
	})

	t.Run("include_deleted needs an admin token", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/products?include_deleted=true", nil)

		opts, err := ParseProductListOptions(r)
		require.NoError(t, err)
		assert.False(t, opts.IncludeDeleted)
	})
}

func TestIncludeDeleted(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		admin   bool
		want    bool
		wantErr bool
	}{
		{name: "absent", query: ""},
		{name: "false", query: "include_deleted=false"},
		{name: "true without token", query: "include_deleted=true"},
		{name: "true with admin token", query: "include_deleted=true", admin: true, want: true},
		{name: "false with admin token", query: "include_deleted=false", admin: true},
		{name: "invalid value", query: "include_deleted=maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/vendors?"+tt.query, nil)
			if tt.admin {
				r = asAdmin(r)
			}

			got, err := IncludeDeleted(r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
