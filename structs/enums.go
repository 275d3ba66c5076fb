package structs

// ProductLineType classifies a product line within a vendor
type ProductLineType string

const (
	ProductLineAir        ProductLineType = "Air"
	ProductLineContrast   ProductLineType = "Contrast"
	ProductLineEffect     ProductLineType = "Effect"
	ProductLineFlorescent ProductLineType = "Florescent"
	ProductLineInk        ProductLineType = "Ink"
	ProductLineMedium     ProductLineType = "Medium"
	ProductLineMetallic   ProductLineType = "Metallic"
	ProductLineMixed      ProductLineType = "Mixed"
	ProductLinePrimer     ProductLineType = "Primer"
	ProductLineWash       ProductLineType = "Wash"
)

func ProductLineTypes() []ProductLineType {
	return []ProductLineType{
		ProductLineAir, ProductLineContrast, ProductLineEffect, ProductLineFlorescent,
		ProductLineInk, ProductLineMedium, ProductLineMetallic, ProductLineMixed,
		ProductLinePrimer, ProductLineWash,
	}
}

// Overlay is the finish rendered over a swatch
type Overlay string

const (
	OverlayCrackle     Overlay = "Crackle"
	OverlayChrome      Overlay = "Chrome"
	OverlayGlossy      Overlay = "Glossy"
	OverlayGlow        Overlay = "Glow"
	OverlayGrunge      Overlay = "Grunge"
	OverlayLiquid      Overlay = "Liquid"
	OverlayMatte       Overlay = "Matte"
	OverlayTopographic Overlay = "Topographic"
	OverlayUnknown     Overlay = "Unknown"
)

func Overlays() []Overlay {
	return []Overlay{
		OverlayCrackle, OverlayChrome, OverlayGlossy, OverlayGlow,
		OverlayGrunge, OverlayLiquid, OverlayMatte, OverlayTopographic, OverlayUnknown,
	}
}

// Packaging is the physical container of a variant
type Packaging string

const (
	PackagingBottle        Packaging = "Bottle"
	PackagingDropperBottle Packaging = "DropperBottle"
	PackagingJar           Packaging = "Jar"
	PackagingPot           Packaging = "Pot"
	PackagingSprayCan      Packaging = "SprayCan"
	PackagingTube          Packaging = "Tube"
	PackagingUnknown       Packaging = "Unknown"
)

func Packagings() []Packaging {
	return []Packaging{
		PackagingBottle, PackagingDropperBottle, PackagingJar, PackagingPot,
		PackagingSprayCan, PackagingTube, PackagingUnknown,
	}
}

// Opacity describes paint coverage
type Opacity string

const (
	OpacityOpaque          Opacity = "Opaque"
	OpacitySemiOpaque      Opacity = "SemiOpaque"
	OpacitySemiTransparent Opacity = "SemiTransparent"
	OpacityTransparent     Opacity = "Transparent"
	OpacityUnknown         Opacity = "Unknown"
)

func Opacities() []Opacity {
	return []Opacity{OpacityOpaque, OpacitySemiOpaque, OpacitySemiTransparent, OpacityTransparent, OpacityUnknown}
}

// Viscosity describes paint thickness
type Viscosity string

const (
	ViscosityLow        Viscosity = "Low"
	ViscosityLowMedium  Viscosity = "LowMedium"
	ViscosityMedium     Viscosity = "Medium"
	ViscosityMediumHigh Viscosity = "MediumHigh"
	ViscosityHigh       Viscosity = "High"
	ViscosityUnknown    Viscosity = "Unknown"
)

func Viscosities() []Viscosity {
	return []Viscosity{ViscosityLow, ViscosityLowMedium, ViscosityMedium, ViscosityMediumHigh, ViscosityHigh, ViscosityUnknown}
}

// ApplicationMethod describes how a variant is applied
type ApplicationMethod string

const (
	ApplicationAirbrush ApplicationMethod = "Airbrush"
	ApplicationDryBrush ApplicationMethod = "DryBrush"
	ApplicationSpray    ApplicationMethod = "Spray"
	ApplicationUnknown  ApplicationMethod = "Unknown"
)

func ApplicationMethods() []ApplicationMethod {
	return []ApplicationMethod{ApplicationAirbrush, ApplicationDryBrush, ApplicationSpray, ApplicationUnknown}
}

// ColorRangeName is the closed color-range vocabulary. Unknown vendor
// labels are dropped during ingestion, never coerced.
type ColorRangeName string

const (
	ColorRangeBlack     ColorRangeName = "Black"
	ColorRangeBlue      ColorRangeName = "Blue"
	ColorRangeBone      ColorRangeName = "Bone"
	ColorRangeBrass     ColorRangeName = "Brass"
	ColorRangeBronze    ColorRangeName = "Bronze"
	ColorRangeBrown     ColorRangeName = "Brown"
	ColorRangeCopper    ColorRangeName = "Copper"
	ColorRangeGold      ColorRangeName = "Gold"
	ColorRangeGreen     ColorRangeName = "Green"
	ColorRangeGrey      ColorRangeName = "Grey"
	ColorRangeIvory     ColorRangeName = "Ivory"
	ColorRangeMetallic  ColorRangeName = "Metallic"
	ColorRangeOrange    ColorRangeName = "Orange"
	ColorRangePink      ColorRangeName = "Pink"
	ColorRangePurple    ColorRangeName = "Purple"
	ColorRangeRainbow   ColorRangeName = "Rainbow"
	ColorRangeRed       ColorRangeName = "Red"
	ColorRangeSilver    ColorRangeName = "Silver"
	ColorRangeTurquoise ColorRangeName = "Turquoise"
	ColorRangeWhite     ColorRangeName = "White"
	ColorRangeYellow    ColorRangeName = "Yellow"
)

func ColorRangeNames() []ColorRangeName {
	return []ColorRangeName{
		ColorRangeBlack, ColorRangeBlue, ColorRangeBone, ColorRangeBrass, ColorRangeBronze,
		ColorRangeBrown, ColorRangeCopper, ColorRangeGold, ColorRangeGreen, ColorRangeGrey,
		ColorRangeIvory, ColorRangeMetallic, ColorRangeOrange, ColorRangePink, ColorRangePurple,
		ColorRangeRainbow, ColorRangeRed, ColorRangeSilver, ColorRangeTurquoise,
		ColorRangeWhite, ColorRangeYellow,
	}
}

// ProductTypeName is the closed product-type vocabulary. A product
// with no valid product type defaults to Acrylic.
type ProductTypeName string

const (
	ProductTypeAcrylic   ProductTypeName = "Acrylic"
	ProductTypeAirType   ProductTypeName = "Air"
	ProductTypeContrast  ProductTypeName = "Contrast"
	ProductTypeEffect    ProductTypeName = "Effect"
	ProductTypeEnamel    ProductTypeName = "Enamel"
	ProductTypeInk       ProductTypeName = "Ink"
	ProductTypeMedium    ProductTypeName = "Medium"
	ProductTypeMetallic  ProductTypeName = "Metallic"
	ProductTypePrimer    ProductTypeName = "Primer"
	ProductTypeShade     ProductTypeName = "Shade"
	ProductTypeTechnical ProductTypeName = "Technical"
	ProductTypeTexture   ProductTypeName = "Texture"
	ProductTypeWash      ProductTypeName = "Wash"
)

func ProductTypeNames() []ProductTypeName {
	return []ProductTypeName{
		ProductTypeAcrylic, ProductTypeAirType, ProductTypeContrast, ProductTypeEffect,
		ProductTypeEnamel, ProductTypeInk, ProductTypeMedium, ProductTypeMetallic,
		ProductTypePrimer, ProductTypeShade, ProductTypeTechnical, ProductTypeTexture,
		ProductTypeWash,
	}
}
