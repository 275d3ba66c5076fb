package locales

import (
	"net/http"
	"paintvault_server/api/middleware"
	"paintvault_server/handling"
	"paintvault_server/lib"
	"paintvault_server/services"
	"paintvault_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type LocaleRoutesManager struct {
	logger        *gecho.Logger
	localeService *services.LocaleService
	mw            *middleware.Middleware
}

func NewLocaleRoutesManager(
	logger *gecho.Logger,
	localeService *services.LocaleService,
	mw *middleware.Middleware,
) *LocaleRoutesManager {
	return &LocaleRoutesManager{
		logger:        logger,
		localeService: localeService,
		mw:            mw,
	}
}

func (lrm *LocaleRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/locales", func(r chi.Router) {
		r.Get("/", lrm.ListLocales)
		r.With(lrm.mw.AdminAuthMiddleware).Post("/", lrm.CreateLocale)
	})
}

// ListLocales handles GET /locales. The registry is small and served
// from memory, so no pagination.
func (lrm *LocaleRoutesManager) ListLocales(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(lrm.localeService.List()),
		gecho.Send(),
	)
}

// CreateLocale handles POST /locales
func (lrm *LocaleRoutesManager) CreateLocale(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LocaleCreate](r)
	if err != nil {
		lrm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, lrm.logger, err)
		return
	}

	locale, err := lrm.localeService.Create(
		r.Context(),
		body.LanguageCode,
		body.CountryCode,
		body.CurrencyCode,
		body.CurrencySymbol,
		body.CurrencyDecimalSpaces,
	)
	if err != nil {
		handling.RespondError(w, lrm.logger, err)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Locale registered successfully"),
		gecho.WithData(locale),
		gecho.Send(),
	)
}
