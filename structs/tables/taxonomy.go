package tables

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Tag is a free-form taxonomy term shared across products
type Tag struct {
	bun.BaseModel `bun:"table:tags,alias:t"`

	ID   uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name string    `bun:"name,notnull,unique" json:"name"`
	Slug string    `bun:"slug,notnull,unique" json:"slug"`
	Type *string   `bun:"type" json:"type,omitempty"`

	Products []*Product `bun:"m2m:product_tags,join:Tag=Product" json:"products,omitempty"`
}

// Analogous is an analogous-color taxonomy term shared across products
type Analogous struct {
	bun.BaseModel `bun:"table:analogous,alias:a"`

	ID   uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name string    `bun:"name,notnull,unique" json:"name"`
	Slug string    `bun:"slug,notnull,unique" json:"slug"`

	Products []*Product `bun:"m2m:product_analogous,join:Analogous=Product" json:"products,omitempty"`
}

// ColorRange is an enumerated color-range category
type ColorRange struct {
	bun.BaseModel `bun:"table:color_ranges,alias:cr"`

	ID   uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name string    `bun:"name,notnull,unique" json:"name"`
	Slug string    `bun:"slug,notnull" json:"slug"`

	Products []*Product `bun:"m2m:product_color_ranges,join:ColorRange=Product" json:"products,omitempty"`
}

// ProductType is an enumerated product-type category
type ProductType struct {
	bun.BaseModel `bun:"table:product_types,alias:pt"`

	ID   uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name string    `bun:"name,notnull,unique" json:"name"`
	Slug string    `bun:"slug,notnull" json:"slug"`

	Products []*Product `bun:"m2m:product_product_types,join:ProductType=Product" json:"products,omitempty"`
}

// Join tables. Bun needs these registered before any m2m relation is
// queried; database.Initialize does that.

type ProductTag struct {
	bun.BaseModel `bun:"table:product_tags,alias:ptg"`

	ProductID uuid.UUID `bun:"product_id,pk,type:uuid" json:"product_id"`
	TagID     uuid.UUID `bun:"tag_id,pk,type:uuid" json:"tag_id"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"-"`
	Tag     *Tag     `bun:"rel:belongs-to,join:tag_id=id" json:"-"`
}

type ProductAnalogous struct {
	bun.BaseModel `bun:"table:product_analogous,alias:pa"`

	ProductID   uuid.UUID `bun:"product_id,pk,type:uuid" json:"product_id"`
	AnalogousID uuid.UUID `bun:"analogous_id,pk,type:uuid" json:"analogous_id"`

	Product   *Product   `bun:"rel:belongs-to,join:product_id=id" json:"-"`
	Analogous *Analogous `bun:"rel:belongs-to,join:analogous_id=id" json:"-"`
}

type ProductColorRange struct {
	bun.BaseModel `bun:"table:product_color_ranges,alias:pcr"`

	ProductID    uuid.UUID `bun:"product_id,pk,type:uuid" json:"product_id"`
	ColorRangeID uuid.UUID `bun:"color_range_id,pk,type:uuid" json:"color_range_id"`

	Product    *Product    `bun:"rel:belongs-to,join:product_id=id" json:"-"`
	ColorRange *ColorRange `bun:"rel:belongs-to,join:color_range_id=id" json:"-"`
}

type ProductProductType struct {
	bun.BaseModel `bun:"table:product_product_types,alias:ppt"`

	ProductID     uuid.UUID `bun:"product_id,pk,type:uuid" json:"product_id"`
	ProductTypeID uuid.UUID `bun:"product_type_id,pk,type:uuid" json:"product_type_id"`

	Product     *Product     `bun:"rel:belongs-to,join:product_id=id" json:"-"`
	ProductType *ProductType `bun:"rel:belongs-to,join:product_type_id=id" json:"-"`
}
