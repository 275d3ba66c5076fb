package services

import (
	"paintvault_server/structs"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSwatchDerivesMissingCoordinates(t *testing.T) {
	productID := uuid.Must(uuid.NewV7())

	swatch, err := normalizeSwatch(productID, "#7B868E", nil, nil, nil, nil, "")
	require.NoError(t, err)

	assert.Equal(t, productID, swatch.ProductID)
	assert.Equal(t, "#7b868e", swatch.HexColor, "hex normalizes to lowercase")
	assert.Equal(t, []int64{123, 134, 142}, swatch.RGBColor, "rgb derives from hex")
	require.Len(t, swatch.OKLCHColor, 3, "oklch derives from hex")
	assert.InDelta(t, 0.62, swatch.OKLCHColor[0], 0.05)
	assert.Equal(t, structs.OverlayUnknown, swatch.Overlay)
	assert.NotEqual(t, uuid.Nil, swatch.ID)
}

func TestNormalizeSwatchKeepsProvidedCoordinates(t *testing.T) {
	productID := uuid.Must(uuid.NewV7())
	rgb := []int64{120, 130, 140}
	oklch := []float64{0.6, 0.02, 240}

	swatch, err := normalizeSwatch(productID, "#7b868e", rgb, oklch, []float64{0.5, 0.1, 200}, []float64{0.7, 0.1, 260}, "matte")
	require.NoError(t, err)

	assert.Equal(t, rgb, swatch.RGBColor, "explicit rgb wins over derivation")
	assert.Equal(t, oklch, swatch.OKLCHColor, "explicit oklch wins over derivation")
	assert.Equal(t, []float64{0.5, 0.1, 200}, swatch.GradientStart)
	assert.Equal(t, []float64{0.7, 0.1, 260}, swatch.GradientEnd)
	assert.Equal(t, structs.OverlayMatte, swatch.Overlay)
}

func TestNormalizeSwatchRejectsBadHex(t *testing.T) {
	_, err := normalizeSwatch(uuid.Must(uuid.NewV7()), "not-a-color", nil, nil, nil, nil, "")
	assert.Error(t, err)
}

func TestBuildSwatchFromRequest(t *testing.T) {
	productID := uuid.Must(uuid.NewV7())
	req := &structs.SwatchCreate{HexColor: "#ff0000"}

	swatch, err := buildSwatch(productID, req)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", swatch.HexColor)
	assert.Equal(t, []int64{255, 0, 0}, swatch.RGBColor)
}
