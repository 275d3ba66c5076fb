package structs

// Pagination bounds for list endpoints
const (
	DefaultLimit = 20
	MaxLimit     = 50
)

// Page is the envelope every list endpoint returns
type Page[T any] struct {
	Items    []T  `json:"items"`
	Total    int  `json:"total"`
	Page     int  `json:"page"`
	Limit    int  `json:"limit"`
	Offset   int  `json:"offset"`
	Next     *int `json:"next,omitempty"`
	Previous *int `json:"previous,omitempty"`
}

// NewPage computes the envelope metadata from a result set. Page
// numbers are 1-based; Next/Previous are absent at the edges.
func NewPage[T any](items []T, total, limit, offset int) Page[T] {
	if items == nil {
		items = []T{}
	}
	limit = ClampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	page := offset/limit + 1
	pages := (total + limit - 1) / limit

	p := Page[T]{
		Items:  items,
		Total:  total,
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
	if page < pages {
		next := page + 1
		p.Next = &next
	}
	if page > 1 {
		prev := page - 1
		p.Previous = &prev
	}
	return p
}

// ClampLimit forces a requested page size into [1, MaxLimit],
// defaulting when unset
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
