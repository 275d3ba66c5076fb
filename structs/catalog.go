package structs

// Request bodies for the CRUD surface. Create shapes validate required
// fields; Patch shapes are all-pointer so absent fields stay untouched.

type VendorCreate struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug,omitempty"`
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
	Platform    string `json:"platform,omitempty"`
	Description string `json:"description,omitempty"`
	PDPSlug     string `json:"pdp_slug,omitempty"`
	PLPSlug     string `json:"plp_slug,omitempty"`
}

type VendorPatch struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	URL         *string `json:"url,omitempty" validate:"omitempty,url"`
	Platform    *string `json:"platform,omitempty"`
	Description *string `json:"description,omitempty"`
	PDPSlug     *string `json:"pdp_slug,omitempty"`
	PLPSlug     *string `json:"plp_slug,omitempty"`
}

type ProductLineCreate struct {
	VendorID        string `json:"vendor_id" validate:"required,uuid"`
	Name            string `json:"name" validate:"required,max=255"`
	MarketingName   string `json:"marketing_name,omitempty"`
	Slug            string `json:"slug,omitempty"`
	VendorSlug      string `json:"vendor_slug,omitempty"`
	ProductLineType string `json:"product_line_type,omitempty"`
	Description     string `json:"description,omitempty"`
}

type ProductLinePatch struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,max=255"`
	MarketingName   *string `json:"marketing_name,omitempty"`
	VendorSlug      *string `json:"vendor_slug,omitempty"`
	ProductLineType *string `json:"product_line_type,omitempty"`
	Description     *string `json:"description,omitempty"`
}

type ProductCreate struct {
	ProductLineID   string `json:"product_line_id" validate:"required,uuid"`
	Name            string `json:"name" validate:"required,max=255"`
	Slug            string `json:"slug,omitempty"`
	ISCCNBSCategory string `json:"iscc_nbs_category,omitempty"`
}

type ProductPatch struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,max=255"`
	ISCCNBSCategory *string `json:"iscc_nbs_category,omitempty"`
}

type SwatchCreate struct {
	// Filled from the URL when the swatch is written through
	// /products/{id}/swatch
	ProductID     string    `json:"product_id,omitempty" validate:"omitempty,uuid"`
	HexColor      string    `json:"hex_color" validate:"required"`
	RGBColor      []int64   `json:"rgb_color,omitempty" validate:"omitempty,len=3,dive,gte=0,lte=255"`
	OKLCHColor    []float64 `json:"oklch_color,omitempty" validate:"omitempty,len=3"`
	GradientStart []float64 `json:"gradient_start,omitempty" validate:"omitempty,len=3"`
	GradientEnd   []float64 `json:"gradient_end,omitempty" validate:"omitempty,len=3"`
	Overlay       string    `json:"overlay,omitempty"`
}

type SwatchPatch struct {
	HexColor      *string   `json:"hex_color,omitempty"`
	RGBColor      []int64   `json:"rgb_color,omitempty" validate:"omitempty,len=3,dive,gte=0,lte=255"`
	OKLCHColor    []float64 `json:"oklch_color,omitempty" validate:"omitempty,len=3"`
	GradientStart []float64 `json:"gradient_start,omitempty" validate:"omitempty,len=3"`
	GradientEnd   []float64 `json:"gradient_end,omitempty" validate:"omitempty,len=3"`
	Overlay       *string   `json:"overlay,omitempty"`
}

type VariantCreate struct {
	ProductID         string   `json:"product_id,omitempty" validate:"omitempty,uuid"`
	LanguageCode      string   `json:"language_code" validate:"required,len=2"`
	CountryCode       string   `json:"country_code" validate:"required,len=2"`
	DisplayName       string   `json:"display_name,omitempty"`
	MarketingName     string   `json:"marketing_name,omitempty"`
	SKU               string   `json:"sku" validate:"required"`
	ImageURL          string   `json:"image_url,omitempty" validate:"omitempty,url"`
	Packaging         string   `json:"packaging,omitempty"`
	Price             int64    `json:"price" validate:"gte=0"`
	ProductURL        string   `json:"product_url,omitempty" validate:"omitempty,url"`
	VolumeML          *float64 `json:"volume_ml,omitempty"`
	VolumeOz          *float64 `json:"volume_oz,omitempty"`
	Opacity           string   `json:"opacity,omitempty"`
	Viscosity         string   `json:"viscosity,omitempty"`
	ApplicationMethod string   `json:"application_method,omitempty"`
	Discontinued      bool     `json:"discontinued,omitempty"`
	VendorProductID   *string  `json:"vendor_product_id,omitempty"`
}

type VariantPatch struct {
	DisplayName       *string  `json:"display_name,omitempty"`
	MarketingName     *string  `json:"marketing_name,omitempty"`
	ImageURL          *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Packaging         *string  `json:"packaging,omitempty"`
	Price             *int64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	ProductURL        *string  `json:"product_url,omitempty" validate:"omitempty,url"`
	VolumeML          *float64 `json:"volume_ml,omitempty"`
	VolumeOz          *float64 `json:"volume_oz,omitempty"`
	Opacity           *string  `json:"opacity,omitempty"`
	Viscosity         *string  `json:"viscosity,omitempty"`
	ApplicationMethod *string  `json:"application_method,omitempty"`
	Discontinued      *bool    `json:"discontinued,omitempty"`
}

type LocaleCreate struct {
	LanguageCode          string `json:"language_code" validate:"required,len=2"`
	CountryCode           string `json:"country_code" validate:"required,iso3166_1_alpha2"`
	CurrencyCode          string `json:"currency_code" validate:"required,len=3"`
	CurrencySymbol        string `json:"currency_symbol" validate:"required"`
	CurrencyDecimalSpaces int    `json:"currency_decimal_spaces" validate:"gte=0,lte=4"`
}

type TermCreate struct {
	Name string  `json:"name" validate:"required,max=255"`
	Slug string  `json:"slug,omitempty"`
	Type *string `json:"type,omitempty"`
}

type TermPatch struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Type *string `json:"type,omitempty"`
}
