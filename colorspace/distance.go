package colorspace

import "math"

// Distance weights. These are load-bearing: stored distances are only
// comparable to distances computed with the same weights.
const (
	weightL = 2.0
	weightA = 4.0
	weightB = 4.0
	weightC = 3.0
)

// Distance is a weighted Euclidean distance between two OKLab colors.
// Chroma is included as its own weighted term so that saturation
// differences between near-greys rank higher than raw a/b deltas alone.
func Distance(p, q OKLab) float64 {
	dL := p.L - q.L
	dA := p.A - q.A
	dB := p.B - q.B
	dC := math.Hypot(p.A, p.B) - math.Hypot(q.A, q.B)

	return math.Sqrt(weightL*dL*dL + weightA*dA*dA + weightB*dB*dB + weightC*dC*dC)
}

// GetDistance parses two hex colors and returns their perceptual distance
func GetDistance(c1, c2 string) (float64, error) {
	p, _, err := ParseHex(c1)
	if err != nil {
		return 0, err
	}
	q, _, err := ParseHex(c2)
	if err != nil {
		return 0, err
	}
	return Distance(p.RGB().OKLab(), q.RGB().OKLab()), nil
}

// GetDistanceRGB returns the perceptual distance between two sRGB colors
func GetDistanceRGB(c1, c2 RGB) float64 {
	return Distance(c1.OKLab(), c2.OKLab())
}
