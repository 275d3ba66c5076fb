package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidColorFormat is returned when a hex string cannot be parsed
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB is an 8-bit sRGB color
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBA is an 8-bit sRGB color with a decimal alpha in [0,1]
type RGBA struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// XYZ is a CIE XYZ tristimulus value (D65 white point)
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIELAB color
type Lab struct {
	L, A, B float64
}

// LCH is the cylindrical form of Lab; H is in degrees [0,360)
type LCH struct {
	L, C, H float64
}

// OKLab is a color in the OKLab perceptual space
type OKLab struct {
	L, A, B float64
}

// OKLCH is the cylindrical form of OKLab; H is in degrees [0,360)
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// ParseHex parses #RGB, #RRGGBB, #RGBA and #RRGGBBAA strings.
// Short forms expand by channel duplication. The returned bool reports
// whether the input carried an alpha channel; alpha is truncated to
// three decimals toward zero.
func ParseHex(s string) (RGBA, bool, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return RGBA{}, false, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	switch len(raw) {
	case 3, 4:
		expanded := make([]byte, 0, 8)
		for i := 0; i < len(raw); i++ {
			expanded = append(expanded, raw[i], raw[i])
		}
		raw = string(expanded)
	case 6, 8:
		// already full form
	default:
		return RGBA{}, false, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	channels := make([]uint8, 0, 4)
	for i := 0; i < len(raw); i += 2 {
		hi, ok1 := hexDigit(raw[i])
		lo, ok2 := hexDigit(raw[i+1])
		if !ok1 || !ok2 {
			return RGBA{}, false, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
		channels = append(channels, hi<<4|lo)
	}

	c := RGBA{R: channels[0], G: channels[1], B: channels[2], A: 1}
	if len(channels) == 4 {
		// three-decimal truncation toward zero
		c.A = math.Trunc(float64(channels[3])/255*1000) / 1000
		return c, true, nil
	}
	return c, false, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Hex returns the canonical lowercase #rrggbb form
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Hex returns the canonical lowercase #rrggbbaa form; alpha is
// encoded as round(a*255)
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, uint8(math.Round(c.A*255)))
}

// RGB drops the alpha channel
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}
