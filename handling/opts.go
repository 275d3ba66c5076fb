package handling

import (
	"net/http"
	"paintvault_server/api/middleware"
	"paintvault_server/services"
	"paintvault_server/structs"
	"strconv"

	"github.com/google/uuid"
)

// IncludeDeleted reports whether soft-deleted rows should be visible
// for this request. The bypass is an administrative read: the flag
// only takes effect when the request carries an admin token.
func IncludeDeleted(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get("include_deleted")
	if raw == "" {
		return false, nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil || !val {
		return false, err
	}
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	return ok && claims.Role == "admin", nil
}

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	opts := &services.ProductListOptions{
		Limit: structs.DefaultLimit,
	}

	// Early return if no query params
	if len(query) == 0 {
		return opts, nil
	}

	if idStr := query.Get("id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, err
		}
		opts.ID = &id
	}

	if lineIDStr := query.Get("product_line_id"); lineIDStr != "" {
		lineID, err := uuid.Parse(lineIDStr)
		if err != nil {
			return nil, err
		}
		opts.ProductLineID = &lineID
	}

	// Substring filters
	opts.Name = query.Get("name")
	opts.Slug = query.Get("slug")
	opts.ISCCNBSCategory = query.Get("iscc_nbs_category")

	// Taxonomy filters
	opts.ColorRange = query.Get("color_range")
	opts.ProductType = query.Get("product_type")
	opts.Tag = query.Get("tag")
	opts.Analogous = query.Get("analogous")

	limit, offset, err := ParsePagination(r)
	if err != nil {
		return nil, err
	}
	opts.Limit = limit
	opts.Offset = offset

	includeDeleted, err := IncludeDeleted(r)
	if err != nil {
		return nil, err
	}
	opts.IncludeDeleted = includeDeleted

	return opts, nil
}

// ParsePagination reads limit/offset query parameters, clamping the
// limit into the supported window
func ParsePagination(r *http.Request) (limit, offset int, err error) {
	query := r.URL.Query()
	limit = structs.DefaultLimit

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			return 0, 0, err
		}
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			return 0, 0, err
		}
	}

	limit = structs.ClampLimit(limit)
	if offset < 0 {
		offset = 0
	}
	return limit, offset, nil
}
