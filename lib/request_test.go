package lib

import (
	"net/http/httptest"
	"paintvault_server/structs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAndValidateBody(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/vendors", strings.NewReader(`{"name": "Citadel"}`))

		body, err := ExtractAndValidateBody[structs.VendorCreate](r)
		require.NoError(t, err)
		assert.Equal(t, "Citadel", body.Name)
	})

	t.Run("missing required field", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/vendors", strings.NewReader(`{"url": "https://example.com"}`))

		_, err := ExtractAndValidateBody[structs.VendorCreate](r)
		require.Error(t, err)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		require.NotEmpty(t, ve.Errors)
		assert.Equal(t, "name", ve.Errors[0].Field)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/vendors", strings.NewReader(`{"name": "Citadel", "bogus": 1}`))

		_, err := ExtractAndValidateBody[structs.VendorCreate](r)
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/vendors", strings.NewReader(`{"name":`))

		_, err := ExtractAndValidateBody[structs.VendorCreate](r)
		assert.Error(t, err)
	})
}

func TestLocaleCreateCountryCode(t *testing.T) {
	body := func(country string) string {
		return `{"language_code": "en", "country_code": "` + country + `",` +
			` "currency_code": "USD", "currency_symbol": "$", "currency_decimal_spaces": 2}`
	}

	t.Run("assigned code passes", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/locales", strings.NewReader(body("US")))

		locale, err := ExtractAndValidateBody[structs.LocaleCreate](r)
		require.NoError(t, err)
		assert.Equal(t, "US", locale.CountryCode)
	})

	t.Run("unassigned code rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/locales", strings.NewReader(body("ZZ")))

		_, err := ExtractAndValidateBody[structs.LocaleCreate](r)
		require.Error(t, err)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		require.NotEmpty(t, ve.Errors)
		assert.Equal(t, "countrycode", ve.Errors[0].Field)
	})

	t.Run("lowercase rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/locales", strings.NewReader(body("us")))

		_, err := ExtractAndValidateBody[structs.LocaleCreate](r)
		assert.Error(t, err)
	})
}
