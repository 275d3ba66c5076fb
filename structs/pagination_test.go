package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{name: "zero defaults", input: 0, want: DefaultLimit},
		{name: "negative defaults", input: -5, want: DefaultLimit},
		{name: "minimum allowed", input: 1, want: 1},
		{name: "in range", input: 30, want: 30},
		{name: "maximum allowed", input: MaxLimit, want: MaxLimit},
		{name: "over maximum clamps", input: 500, want: MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampLimit(tt.input))
		})
	}
}

func TestNewPage(t *testing.T) {
	items := []string{"a", "b", "c"}

	t.Run("first page of many", func(t *testing.T) {
		p := NewPage(items, 25, 10, 0)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 25, p.Total)
		assert.Equal(t, 10, p.Limit)
		assert.Equal(t, 0, p.Offset)
		require.NotNil(t, p.Next)
		assert.Equal(t, 2, *p.Next)
		assert.Nil(t, p.Previous)
	})

	t.Run("middle page", func(t *testing.T) {
		p := NewPage(items, 25, 10, 10)
		assert.Equal(t, 2, p.Page)
		require.NotNil(t, p.Next)
		assert.Equal(t, 3, *p.Next)
		require.NotNil(t, p.Previous)
		assert.Equal(t, 1, *p.Previous)
	})

	t.Run("last page", func(t *testing.T) {
		p := NewPage(items, 25, 10, 20)
		assert.Equal(t, 3, p.Page)
		assert.Nil(t, p.Next)
		require.NotNil(t, p.Previous)
		assert.Equal(t, 2, *p.Previous)
	})

	t.Run("single page has no links", func(t *testing.T) {
		p := NewPage(items, 3, 10, 0)
		assert.Nil(t, p.Next)
		assert.Nil(t, p.Previous)
	})

	t.Run("empty result", func(t *testing.T) {
		p := NewPage[string](nil, 0, 10, 0)
		assert.NotNil(t, p.Items, "items must serialize as [] not null")
		assert.Empty(t, p.Items)
		assert.Equal(t, 1, p.Page)
		assert.Nil(t, p.Next)
		assert.Nil(t, p.Previous)
	})

	t.Run("limit and offset are sanitized", func(t *testing.T) {
		p := NewPage(items, 100, 0, -10)
		assert.Equal(t, DefaultLimit, p.Limit)
		assert.Equal(t, 0, p.Offset)
		assert.Equal(t, 1, p.Page)
	})
}
