package structs

// Vendor JSON dump shapes. One document per vendor; a dump file may
// hold a single document or an array of them.

type VendorDocument struct {
	VendorName   string             `json:"vendor_name" validate:"required,max=255"`
	VendorURL    string             `json:"vendor_url"`
	Slug         string             `json:"slug"`
	Platform     string             `json:"platform"`
	Description  string             `json:"description"`
	PDPSlug      string             `json:"pdp_slug"`
	PLPSlug      string             `json:"plp_slug"`
	ProductLines []ProductLineInput `json:"product_lines"`
}

type ProductLineInput struct {
	ProductLineName string         `json:"product_line_name" validate:"required"`
	MarketingName   string         `json:"marketing_name"`
	Slug            string         `json:"slug"`
	VendorSlug      string         `json:"vendor_slug"`
	ProductLineType string         `json:"product_line_type"`
	Description     string         `json:"description"`
	Products        []ProductInput `json:"products"`
}

type ProductInput struct {
	Name            string         `json:"name" validate:"required"`
	Slug            string         `json:"slug"`
	ISCCNBSCategory string         `json:"iscc_nbs_category"`
	Description     string         `json:"description"`
	ProductType     []string       `json:"product_type"`
	ColorRange      []string       `json:"color_range"`
	Tags            []string       `json:"tags"`
	Analogous       []string       `json:"analogous"`
	Swatch          *SwatchInput   `json:"swatch"`
	Variants        []VariantInput `json:"variants"`
}

type SwatchInput struct {
	HexColor      string    `json:"hex_color"`
	RGBColor      []int64   `json:"rgb_color"`
	OKLCHColor    []float64 `json:"oklch_color"`
	GradientStart []float64 `json:"gradient_start"`
	GradientEnd   []float64 `json:"gradient_end"`
	Overlay       string    `json:"overlay"`
}

type VariantInput struct {
	DisplayName       string   `json:"display_name"`
	MarketingName     string   `json:"marketing_name"`
	SKU               string   `json:"sku" validate:"required"`
	VendorColorRange  []string `json:"vendor_color_range"`
	VendorProductType []string `json:"vendor_product_type"`
	Opacity           string   `json:"opacity"`
	Viscosity         string   `json:"viscosity"`
	Discontinued      bool     `json:"discontinued"`
	ImageURL          string   `json:"image_url"`
	Packaging         string   `json:"packaging"`
	VolumeML          *float64 `json:"volume_ml"`
	VolumeOz          *float64 `json:"volume_oz"`
	Price             int64    `json:"price"`
	CurrencyCode      string   `json:"currency_code"`
	CurrencySymbol    string   `json:"currency_symbol"`
	CountryCode       string   `json:"country_code"`
	ProductURL        string   `json:"product_url"`
	LanguageCode      string   `json:"language_code"`
	ApplicationMethod string   `json:"application_method"`
	VendorProductID   *string  `json:"vendor_product_id"`
}
