package services

import (
	"context"
	"fmt"
	"paintvault_server/database"
	"paintvault_server/lib"
	"paintvault_server/structs/tables"
	"sort"
	"strings"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// seedLocales is the bootstrap registry. Rows are inserted on startup
// when missing; existing rows are never modified.
var seedLocales = []tables.Locale{
	{LanguageCode: "da", CountryCode: "DK", CurrencyCode: "DKK", CurrencySymbol: "kr.", CurrencyDecimalSpaces: 2},
	{LanguageCode: "de", CountryCode: "DE", CurrencyCode: "EUR", CurrencySymbol: "€", CurrencyDecimalSpaces: 2},
	{LanguageCode: "en", CountryCode: "AU", CurrencyCode: "AUD", CurrencySymbol: "$", CurrencyDecimalSpaces: 2},
	{LanguageCode: "en", CountryCode: "GB", CurrencyCode: "GBP", CurrencySymbol: "£", CurrencyDecimalSpaces: 2},
	{LanguageCode: "en", CountryCode: "US", CurrencyCode: "USD", CurrencySymbol: "$", CurrencyDecimalSpaces: 2},
	{LanguageCode: "es", CountryCode: "ES", CurrencyCode: "EUR", CurrencySymbol: "€", CurrencyDecimalSpaces: 2},
	{LanguageCode: "fr", CountryCode: "FR", CurrencyCode: "EUR", CurrencySymbol: "€", CurrencyDecimalSpaces: 2},
	{LanguageCode: "it", CountryCode: "IT", CurrencyCode: "EUR", CurrencySymbol: "€", CurrencyDecimalSpaces: 2},
	{LanguageCode: "ja", CountryCode: "JP", CurrencyCode: "JPY", CurrencySymbol: "¥", CurrencyDecimalSpaces: 0},
	{LanguageCode: "nl", CountryCode: "NL", CurrencyCode: "EUR", CurrencySymbol: "€", CurrencyDecimalSpaces: 2},
	{LanguageCode: "pl", CountryCode: "PL", CurrencyCode: "PLN", CurrencySymbol: "zł", CurrencyDecimalSpaces: 2},
	{LanguageCode: "sv", CountryCode: "SE", CurrencyCode: "SEK", CurrencySymbol: "kr", CurrencyDecimalSpaces: 2},
}

// LocaleService keeps the locale registry in memory, keyed by the
// "lang-COUNTRY" identifier. Lookups never hit the database; writes
// keep the table and the map in sync.
type LocaleService struct {
	logger *gecho.Logger
	db     *database.DB

	mu     sync.RWMutex
	byCode map[string]*tables.Locale
}

func NewLocaleService(logger *gecho.Logger, db *database.DB) *LocaleService {
	return &LocaleService{
		logger: logger,
		db:     db,
		byCode: make(map[string]*tables.Locale),
	}
}

// LocaleKey builds the canonical "lang-COUNTRY" identifier
func LocaleKey(languageCode, countryCode string) string {
	return fmt.Sprintf("%s-%s", strings.ToLower(languageCode), strings.ToUpper(countryCode))
}

// Seed inserts any missing bootstrap locales and loads the full
// registry into memory. Called once on startup, before the server
// accepts traffic.
func (ls *LocaleService) Seed(ctx context.Context) error {
	for i := range seedLocales {
		loc := seedLocales[i]
		loc.ID = uuid.Must(uuid.NewV7())
		loc.Locale = LocaleKey(loc.LanguageCode, loc.CountryCode)

		if err := database.UpsertIgnore(ls.db, ctx, &loc, "locale"); err != nil {
			return fmt.Errorf("failed to seed locale %s: %w", loc.Locale, err)
		}
	}

	return ls.Reload(ctx)
}

// Reload replaces the in-memory registry with the table contents
func (ls *LocaleService) Reload(ctx context.Context) error {
	locales, err := database.Query[tables.Locale](ls.db).OrderBy("locale", database.ASC).All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load locales: %w", err)
	}

	byCode := make(map[string]*tables.Locale, len(locales))
	for i := range locales {
		byCode[locales[i].Locale] = &locales[i]
	}

	ls.mu.Lock()
	ls.byCode = byCode
	ls.mu.Unlock()

	ls.logger.Info("Locale registry loaded", gecho.Field("count", len(locales)))
	return nil
}

// Lookup resolves a language/country pair to a registered locale
func (ls *LocaleService) Lookup(languageCode, countryCode string) (*tables.Locale, bool) {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	loc, ok := ls.byCode[LocaleKey(languageCode, countryCode)]
	return loc, ok
}

// Resolve is Lookup with the ingestion error contract: an unregistered
// pair yields an unknown_locale error carrying the variant's SKU.
func (ls *LocaleService) Resolve(languageCode, countryCode, sku string) (*tables.Locale, error) {
	loc, ok := ls.Lookup(languageCode, countryCode)
	if !ok {
		return nil, lib.NewUnknownLocale(languageCode, countryCode, sku)
	}
	return loc, nil
}

// List returns every registered locale, ordered by identifier
func (ls *LocaleService) List() []*tables.Locale {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	locales := make([]*tables.Locale, 0, len(ls.byCode))
	for _, loc := range ls.byCode {
		locales = append(locales, loc)
	}
	sort.Slice(locales, func(i, j int) bool { return locales[i].Locale < locales[j].Locale })
	return locales
}

// Create registers a new locale and refreshes the in-memory map
func (ls *LocaleService) Create(ctx context.Context, languageCode, countryCode, currencyCode, currencySymbol string, decimalSpaces int) (*tables.Locale, error) {
	key := LocaleKey(languageCode, countryCode)
	if _, exists := ls.Lookup(languageCode, countryCode); exists {
		return nil, lib.NewDuplicateKey(fmt.Sprintf("locale %s already registered", key))
	}

	loc := &tables.Locale{
		ID:                    uuid.Must(uuid.NewV7()),
		LanguageCode:          strings.ToLower(languageCode),
		CountryCode:           strings.ToUpper(countryCode),
		CurrencyCode:          strings.ToUpper(currencyCode),
		CurrencySymbol:        currencySymbol,
		CurrencyDecimalSpaces: decimalSpaces,
		Locale:                key,
	}

	loc, err := database.Create(ls.db, ctx, loc)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			return nil, lib.NewDuplicateKey(fmt.Sprintf("locale %s already registered", key))
		}
		ls.logger.Error("Failed to create locale", gecho.Field("locale", key), gecho.Field("error", err))
		return nil, lib.NewInternal(err)
	}

	ls.mu.Lock()
	ls.byCode[key] = loc
	ls.mu.Unlock()

	ls.logger.Info("Locale registered", gecho.Field("locale", key))
	return loc, nil
}
