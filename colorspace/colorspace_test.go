package colorspace

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      RGBA
		wantAlpha bool
		wantErr   bool
	}{
		{name: "full form", input: "#7b868e", want: RGBA{R: 123, G: 134, B: 142, A: 1}},
		{name: "uppercase", input: "#7B868E", want: RGBA{R: 123, G: 134, B: 142, A: 1}},
		{name: "short form expands by duplication", input: "#f0a", want: RGBA{R: 0xff, G: 0x00, B: 0xaa, A: 1}},
		{name: "short form with alpha", input: "#f0a8", want: RGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0.533}, wantAlpha: true},
		{name: "full form with alpha", input: "#7b868e80", want: RGBA{R: 123, G: 134, B: 142, A: 0.501}, wantAlpha: true},
		{name: "opaque alpha", input: "#000000ff", want: RGBA{R: 0, G: 0, B: 0, A: 1}, wantAlpha: true},
		{name: "missing hash", input: "7b868e", wantErr: true},
		{name: "bad length", input: "#7b868", wantErr: true},
		{name: "bad digit", input: "#7b868g", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hasAlpha, err := ParseHex(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidColorFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantAlpha, hasAlpha)
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Sample the channel space rather than brute-forcing 16M combinations
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				c := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				parsed, hasAlpha, err := ParseHex(c.Hex())
				require.NoError(t, err)
				assert.False(t, hasAlpha)
				assert.Equal(t, c, parsed.RGB())
			}
		}
	}
}

func TestHexRoundTripAlpha(t *testing.T) {
	for a := 0; a <= 255; a++ {
		c := RGBA{R: 12, G: 200, B: 99, A: math.Trunc(float64(a)/255*1000) / 1000}
		parsed, hasAlpha, err := ParseHex(c.Hex())
		require.NoError(t, err)
		assert.True(t, hasAlpha)
		assert.Equal(t, c, parsed, "alpha byte %d", a)
	}
}

func TestOKLCHKnownValue(t *testing.T) {
	// #7b868e is Leadbelcher's swatch color
	c, _, err := ParseHex("#7b868e")
	require.NoError(t, err)
	require.Equal(t, RGB{R: 123, G: 134, B: 142}, c.RGB())

	lch := c.RGB().OKLCH()
	assert.InDelta(t, 0.6137, lch.L, 0.0005)
	assert.InDelta(t, 0.0177, lch.C, 0.0005)
	assert.InDelta(t, 239.29, lch.H, 0.01)
}

func TestOKLCHHueRange(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				lch := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}.OKLCH()
				assert.GreaterOrEqual(t, lch.H, 0.0)
				assert.Less(t, lch.H, 360.0)
			}
		}
	}
}

func TestOKLCHAchromatic(t *testing.T) {
	// Greys carry zero chroma, hue pins to 0
	lch := RGB{R: 0, G: 0, B: 0}.OKLCH()
	assert.Zero(t, lch.C)
	assert.Zero(t, lch.H)

	lch = RGB{R: 255, G: 255, B: 255}.OKLCH()
	assert.InDelta(t, 1.0, lch.L, 1e-6)
	assert.Less(t, lch.C, 1e-6)
}

func TestLabLCHRoundTrip(t *testing.T) {
	colors := []RGB{
		{R: 123, G: 134, B: 142},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 128, B: 255},
		{R: 250, G: 250, B: 5},
	}
	for _, c := range colors {
		t.Run(c.Hex(), func(t *testing.T) {
			lab := c.XYZ().Lab()
			back := lab.LCH().Lab()
			assert.InDelta(t, lab.L, back.L, 1e-9)
			assert.InDelta(t, lab.A, back.A, 1e-9)
			assert.InDelta(t, lab.B, back.B, 1e-9)

			xyz := lab.XYZ()
			assert.Equal(t, c, xyz.RGB())
		})
	}
}

func TestDistanceSymmetryAndIdentity(t *testing.T) {
	pairs := [][2]string{
		{"#000000", "#ffffff"},
		{"#7b868e", "#808080"},
		{"#ff0000", "#00ff00"},
	}
	for _, p := range pairs {
		t.Run(fmt.Sprintf("%s-%s", p[0], p[1]), func(t *testing.T) {
			d1, err := GetDistance(p[0], p[1])
			require.NoError(t, err)
			d2, err := GetDistance(p[1], p[0])
			require.NoError(t, err)
			assert.Equal(t, d1, d2)
		})
	}

	self, err := GetDistance("#7b868e", "#7b868e")
	require.NoError(t, err)
	assert.Zero(t, self)
}

func TestDistanceOrdering(t *testing.T) {
	far, err := GetDistance("#000000", "#ffffff")
	require.NoError(t, err)
	near, err := GetDistance("#7b868e", "#808080")
	require.NoError(t, err)
	assert.Greater(t, far, near)

	// Black to white is a pure lightness delta of 1 under weight 2
	assert.InDelta(t, math.Sqrt2, far, 1e-6)
}

func TestDistanceBadInput(t *testing.T) {
	_, err := GetDistance("not-a-color", "#ffffff")
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
	_, err = GetDistance("#ffffff", "og")
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}
