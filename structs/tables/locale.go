package tables

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Locale is a language/country/currency tuple. The registry is seeded
// at startup and read-only afterward.
type Locale struct {
	bun.BaseModel `bun:"table:locales,alias:l"`

	ID                    uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	LanguageCode          string    `bun:"language_code,notnull" json:"language_code"`
	CountryCode           string    `bun:"country_code,notnull" json:"country_code"`
	CurrencyCode          string    `bun:"currency_code,notnull" json:"currency_code"`
	CurrencySymbol        string    `bun:"currency_symbol,notnull" json:"currency_symbol"`
	CurrencyDecimalSpaces int       `bun:"currency_decimal_spaces,notnull" json:"currency_decimal_spaces"`
	Locale                string    `bun:"locale,notnull,unique" json:"locale"` // "lang-COUNTRY"

	Variants []*ProductVariant `bun:"rel:has-many,join:id=locale_id" json:"variants,omitempty"`
}
