package tables

import (
	"paintvault_server/structs"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Vendor is a paint manufacturer or retailer
type Vendor struct {
	bun.BaseModel `bun:"table:vendors,alias:v"`

	ID          uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Name        string     `bun:"name,notnull,unique" json:"name"`
	Slug        string     `bun:"slug,notnull,unique" json:"slug"`
	URL         string     `bun:"url" json:"url,omitempty"`
	Platform    string     `bun:"platform" json:"platform,omitempty"`
	Description string     `bun:"description" json:"description,omitempty"`
	PDPSlug     string     `bun:"pdp_slug" json:"pdp_slug,omitempty"`
	PLPSlug     string     `bun:"plp_slug" json:"plp_slug,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	IsDeleted   bool       `bun:"is_deleted,notnull,default:false" json:"is_deleted"`
	DeletedAt   *time.Time `bun:"deleted_at" json:"deleted_at,omitempty"`

	ProductLines []*ProductLine `bun:"rel:has-many,join:id=vendor_id" json:"product_lines,omitempty"`
}

// ProductLine is a named sub-brand within a vendor
type ProductLine struct {
	bun.BaseModel `bun:"table:product_lines,alias:pl"`

	ID              uuid.UUID               `bun:"id,pk,type:uuid" json:"id"`
	VendorID        uuid.UUID               `bun:"vendor_id,notnull,type:uuid" json:"vendor_id"`
	Name            string                  `bun:"name,notnull" json:"name"`
	MarketingName   string                  `bun:"marketing_name" json:"marketing_name,omitempty"`
	Slug            string                  `bun:"slug,notnull,unique" json:"slug"`
	VendorSlug      string                  `bun:"vendor_slug" json:"vendor_slug,omitempty"`
	ProductLineType structs.ProductLineType `bun:"product_line_type,notnull" json:"product_line_type"`
	Description     string                  `bun:"description" json:"description,omitempty"`
	CreatedAt       time.Time               `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt       time.Time               `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	IsDeleted       bool                    `bun:"is_deleted,notnull,default:false" json:"is_deleted"`
	DeletedAt       *time.Time              `bun:"deleted_at" json:"deleted_at,omitempty"`

	Vendor   *Vendor    `bun:"rel:belongs-to,join:vendor_id=id" json:"vendor,omitempty"`
	Products []*Product `bun:"rel:has-many,join:id=product_line_id" json:"products,omitempty"`
}

// Product is a named color within a product line
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID              uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	ProductLineID   uuid.UUID  `bun:"product_line_id,notnull,type:uuid" json:"product_line_id"`
	Name            string     `bun:"name,notnull" json:"name"`
	Slug            string     `bun:"slug,notnull,unique" json:"slug"`
	ISCCNBSCategory string     `bun:"iscc_nbs_category" json:"iscc_nbs_category,omitempty"`
	CreatedAt       time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt       time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	IsDeleted       bool       `bun:"is_deleted,notnull,default:false" json:"is_deleted"`
	DeletedAt       *time.Time `bun:"deleted_at" json:"deleted_at,omitempty"`

	ProductLine  *ProductLine      `bun:"rel:belongs-to,join:product_line_id=id" json:"product_line,omitempty"`
	Swatch       *ProductSwatch    `bun:"rel:has-one,join:id=product_id" json:"swatch,omitempty"`
	Variants     []*ProductVariant `bun:"rel:has-many,join:id=product_id" json:"variants,omitempty"`
	Tags         []*Tag            `bun:"m2m:product_tags,join:Product=Tag" json:"tags,omitempty"`
	Analogous    []*Analogous      `bun:"m2m:product_analogous,join:Product=Analogous" json:"analogous,omitempty"`
	ColorRanges  []*ColorRange     `bun:"m2m:product_color_ranges,join:Product=ColorRange" json:"color_ranges,omitempty"`
	ProductTypes []*ProductType    `bun:"m2m:product_product_types,join:Product=ProductType" json:"product_types,omitempty"`
}

// ProductSwatch is the canonical, locale-independent color of a product
type ProductSwatch struct {
	bun.BaseModel `bun:"table:product_swatches,alias:ps"`

	ID            uuid.UUID       `bun:"id,pk,type:uuid" json:"id"`
	ProductID     uuid.UUID       `bun:"product_id,notnull,unique,type:uuid" json:"product_id"`
	HexColor      string          `bun:"hex_color,notnull" json:"hex_color"`
	RGBColor      []int64         `bun:"rgb_color,array" json:"rgb_color"`
	OKLCHColor    []float64       `bun:"oklch_color,array" json:"oklch_color"`
	GradientStart []float64       `bun:"gradient_start,array" json:"gradient_start"`
	GradientEnd   []float64       `bun:"gradient_end,array" json:"gradient_end"`
	Overlay       structs.Overlay `bun:"overlay,notnull" json:"overlay"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
}

// ProductVariant is a locale-specific SKU of a product
type ProductVariant struct {
	bun.BaseModel `bun:"table:product_variants,alias:pv"`

	ID                 uuid.UUID                 `bun:"id,pk,type:uuid" json:"id"`
	ProductID          uuid.UUID                 `bun:"product_id,notnull,type:uuid,unique:product_locale_sku" json:"product_id"`
	LocaleID           uuid.UUID                 `bun:"locale_id,notnull,type:uuid,unique:product_locale_sku" json:"locale_id"`
	DisplayName        string                    `bun:"display_name" json:"display_name,omitempty"`
	MarketingName      string                    `bun:"marketing_name" json:"marketing_name,omitempty"`
	SKU                string                    `bun:"sku,notnull,unique:product_locale_sku" json:"sku"`
	ImageURL           string                    `bun:"image_url" json:"image_url,omitempty"`
	Packaging          structs.Packaging         `bun:"packaging,notnull" json:"packaging"`
	Price              int64                     `bun:"price,notnull" json:"price"` // minor currency units
	ProductURL         string                    `bun:"product_url" json:"product_url,omitempty"`
	VolumeML           *float64                  `bun:"volume_ml" json:"volume_ml,omitempty"`
	VolumeOz           *float64                  `bun:"volume_oz" json:"volume_oz,omitempty"`
	Opacity            structs.Opacity           `bun:"opacity,notnull" json:"opacity"`
	Viscosity          structs.Viscosity         `bun:"viscosity,notnull" json:"viscosity"`
	ApplicationMethod  structs.ApplicationMethod `bun:"application_method,notnull" json:"application_method"`
	Discontinued       bool                      `bun:"discontinued,notnull,default:false" json:"discontinued"`
	VendorProductID    *string                   `bun:"vendor_product_id" json:"vendor_product_id,omitempty"`
	VendorColorRanges  []string                  `bun:"vendor_color_ranges,array" json:"vendor_color_ranges,omitempty"`
	VendorProductTypes []string                  `bun:"vendor_product_types,array" json:"vendor_product_types,omitempty"`
	CreatedAt          time.Time                 `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt          time.Time                 `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	IsDeleted          bool                      `bun:"is_deleted,notnull,default:false" json:"is_deleted"`
	DeletedAt          *time.Time                `bun:"deleted_at" json:"deleted_at,omitempty"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
	Locale  *Locale  `bun:"rel:belongs-to,join:locale_id=id" json:"locale,omitempty"`
}
