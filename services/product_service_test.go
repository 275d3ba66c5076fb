package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProductListCacheKey(t *testing.T) {
	t.Run("stable for equal filters", func(t *testing.T) {
		a := &ProductListOptions{Name: "red", Limit: 20}
		b := &ProductListOptions{Name: "red", Limit: 20}
		assert.Equal(t, a.cacheKey(), b.cacheKey())
	})

	t.Run("distinguishes pagination", func(t *testing.T) {
		a := &ProductListOptions{Name: "red", Limit: 20}
		b := &ProductListOptions{Name: "red", Limit: 20, Offset: 20}
		assert.NotEqual(t, a.cacheKey(), b.cacheKey())
	})

	t.Run("distinguishes filter columns", func(t *testing.T) {
		byName := &ProductListOptions{Name: "red", Limit: 20}
		bySlug := &ProductListOptions{Slug: "red", Limit: 20}
		assert.NotEqual(t, byName.cacheKey(), bySlug.cacheKey())
	})

	t.Run("carries uuid filters", func(t *testing.T) {
		lineID := uuid.Must(uuid.NewV7())
		opts := &ProductListOptions{ProductLineID: &lineID, Limit: 20}
		assert.Contains(t, opts.cacheKey(), lineID.String())
	})
}
