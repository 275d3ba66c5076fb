package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple name", input: "Citadel", want: "citadel"},
		{name: "spaces become hyphens", input: "The Army Painter", want: "the-army-painter"},
		{name: "punctuation collapses", input: "P3 / Formula: Ink!", want: "p3-formula-ink"},
		{name: "underscores survive", input: "speed_paint 2.0", want: "speed_paint-2-0"},
		{name: "leading and trailing junk trimmed", input: "  --Vallejo--  ", want: "vallejo"},
		{name: "consecutive separators collapse", input: "a   -  b", want: "a-b"},
		{name: "empty", input: "", want: ""},
		{name: "only junk", input: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input)
			assert.Equal(t, tt.want, got)

			// Slugify must be idempotent
			assert.Equal(t, got, Slugify(got))
		})
	}
}

func TestUniqueHash(t *testing.T) {
	assert.Equal(t, "my-slug", UniqueHash("Some Name", "my-slug"), "explicit slug wins")
	assert.Equal(t, "some-name", UniqueHash("Some Name", ""), "slug derives from name when absent")
	assert.Equal(t, "", UniqueHash("", ""))
}
