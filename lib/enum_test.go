package lib

import (
	"paintvault_server/structs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnum(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  structs.Packaging
	}{
		{name: "exact match", input: "SprayCan", want: structs.PackagingSprayCan},
		{name: "lowercase", input: "spraycan", want: structs.PackagingSprayCan},
		{name: "snake case", input: "spray_can", want: structs.PackagingSprayCan},
		{name: "spaced", input: "Spray Can", want: structs.PackagingSprayCan},
		{name: "hyphenated", input: "dropper-bottle", want: structs.PackagingDropperBottle},
		{name: "surrounding whitespace", input: "  jar ", want: structs.PackagingJar},
		{name: "unknown falls back", input: "bucket", want: structs.PackagingUnknown},
		{name: "empty falls back", input: "", want: structs.PackagingUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEnum(tt.input, structs.Packagings(), structs.PackagingUnknown)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEnumStrict(t *testing.T) {
	got, ok := ParseEnumStrict("turquoise", structs.ColorRangeNames())
	assert.True(t, ok)
	assert.Equal(t, structs.ColorRangeTurquoise, got)

	_, ok = ParseEnumStrict("chartreuse", structs.ColorRangeNames())
	assert.False(t, ok, "values outside the vocabulary must not coerce")

	_, ok = ParseEnumStrict("", structs.ColorRangeNames())
	assert.False(t, ok)
}
