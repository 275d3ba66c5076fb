package services

import (
	"fmt"
	"paintvault_server/colorspace"
	"paintvault_server/lib"
	"paintvault_server/structs"
	"paintvault_server/structs/tables"

	"github.com/google/uuid"
)

// buildSwatch normalizes a swatch request into a row. The hex color is
// authoritative: RGB and OKLCH are derived from it when absent, so
// partial payloads still produce a complete swatch.
func buildSwatch(productID uuid.UUID, req *structs.SwatchCreate) (*tables.ProductSwatch, error) {
	return normalizeSwatch(productID, req.HexColor, req.RGBColor, req.OKLCHColor, req.GradientStart, req.GradientEnd, req.Overlay)
}

// swatchFromInput builds a swatch row from a vendor dump entry
func swatchFromInput(productID uuid.UUID, in *structs.SwatchInput) (*tables.ProductSwatch, error) {
	return normalizeSwatch(productID, in.HexColor, in.RGBColor, in.OKLCHColor, in.GradientStart, in.GradientEnd, in.Overlay)
}

func normalizeSwatch(productID uuid.UUID, hex string, rgb []int64, oklch, gradStart, gradEnd []float64, overlay string) (*tables.ProductSwatch, error) {
	rgba, _, err := colorspace.ParseHex(hex)
	if err != nil {
		return nil, lib.NewValidation(fmt.Sprintf("invalid hex color %q", hex), nil)
	}
	base := rgba.RGB()

	if len(rgb) != 3 {
		rgb = []int64{int64(base.R), int64(base.G), int64(base.B)}
	}
	if len(oklch) != 3 {
		lch := base.OKLCH()
		oklch = []float64{lch.L, lch.C, lch.H}
	}

	return &tables.ProductSwatch{
		ID:            uuid.Must(uuid.NewV7()),
		ProductID:     productID,
		HexColor:      base.Hex(),
		RGBColor:      rgb,
		OKLCHColor:    oklch,
		GradientStart: gradStart,
		GradientEnd:   gradEnd,
		Overlay:       lib.ParseEnum(overlay, structs.Overlays(), structs.OverlayUnknown),
	}, nil
}
