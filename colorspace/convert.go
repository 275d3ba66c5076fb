package colorspace

import "math"

// D65 reference white
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// Linear returns the gamma-decoded channels, clamped to [0,1].
// Decode uses the sRGB piecewise function.
func (c RGB) Linear() (r, g, b float64) {
	return srgbDecode(float64(c.R) / 255),
		srgbDecode(float64(c.G) / 255),
		srgbDecode(float64(c.B) / 255)
}

func srgbDecode(v float64) float64 {
	if v <= 0.04045 {
		v = v / 12.92
	} else {
		v = math.Pow((v+0.055)/1.055, 2.4)
	}
	return clamp01(v)
}

func srgbEncode(v float64) float64 {
	v = clamp01(v)
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// XYZ converts to CIE XYZ (D65)
func (c RGB) XYZ() XYZ {
	r, g, b := c.Linear()
	return XYZ{
		X: 0.4124564*r + 0.3575761*g + 0.1804375*b,
		Y: 0.2126729*r + 0.7151522*g + 0.0721750*b,
		Z: 0.0193339*r + 0.1191920*g + 0.9503041*b,
	}
}

// RGB converts linear XYZ back to 8-bit sRGB, clamping out-of-gamut values
func (x XYZ) RGB() RGB {
	r := 3.2404542*x.X - 1.5371385*x.Y - 0.4985314*x.Z
	g := -0.9692660*x.X + 1.8760108*x.Y + 0.0415560*x.Z
	b := 0.0556434*x.X - 0.2040259*x.Y + 1.0572252*x.Z
	return RGB{
		R: uint8(math.Round(srgbEncode(r) * 255)),
		G: uint8(math.Round(srgbEncode(g) * 255)),
		B: uint8(math.Round(srgbEncode(b) * 255)),
	}
}

// Lab converts to CIELAB
func (x XYZ) Lab() Lab {
	fx := labF(x.X / whiteX)
	fy := labF(x.Y / whiteY)
	fz := labF(x.Z / whiteZ)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(t float64) float64 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}

// XYZ converts CIELAB back to XYZ (D65)
func (l Lab) XYZ() XYZ {
	fy := (l.L + 16) / 116
	fx := fy + l.A/500
	fz := fy - l.B/200
	return XYZ{
		X: labFInv(fx) * whiteX,
		Y: labFInv(fy) * whiteY,
		Z: labFInv(fz) * whiteZ,
	}
}

// LCH converts Lab to its cylindrical form
func (l Lab) LCH() LCH {
	return LCH{
		L: l.L,
		C: math.Hypot(l.A, l.B),
		H: hueDegrees(l.A, l.B),
	}
}

// Lab converts LCH back to Lab
func (l LCH) Lab() Lab {
	rad := l.H * math.Pi / 180
	return Lab{
		L: l.L,
		A: l.C * math.Cos(rad),
		B: l.C * math.Sin(rad),
	}
}

// OKLab converts via the published LMS matrix with cube-root compression
func (c RGB) OKLab() OKLab {
	r, g, b := c.Linear()

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return OKLab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// OKLCH converts OKLab to its cylindrical form; achromatic colors get H = 0
func (o OKLab) OKLCH() OKLCH {
	c := math.Hypot(o.A, o.B)
	if c == 0 {
		return OKLCH{L: o.L, C: 0, H: 0}
	}
	return OKLCH{L: o.L, C: c, H: hueDegrees(o.A, o.B)}
}

// OKLCH converts straight from sRGB
func (c RGB) OKLCH() OKLCH {
	return c.OKLab().OKLCH()
}

// hueDegrees normalizes atan2 output to the right-open range [0,360)
func hueDegrees(a, b float64) float64 {
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}
