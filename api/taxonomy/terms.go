package taxonomy

import (
	"net/http"
	"paintvault_server/handling"
	"paintvault_server/lib"
	"paintvault_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListTags handles GET /tags with name filtering and pagination
func (trm *TaxonomyRoutesManager) ListTags(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := handling.ParsePagination(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid pagination parameters"), gecho.Send())
		return
	}

	page, err := trm.taxonomyService.ListTags(r.Context(), r.URL.Query().Get("name"), limit, offset)
	if err != nil {
		handling.RespondError(w, trm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}

// CreateTag handles POST /tags
func (trm *TaxonomyRoutesManager) CreateTag(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.TermCreate](r)
	if err != nil {
		trm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, trm.logger, err)
		return
	}

	tag, err := trm.taxonomyService.CreateTag(r.Context(), body)
	if err != nil {
		handling.RespondError(w, trm.logger, err)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Tag created successfully"),
		gecho.WithData(tag),
		gecho.Send(),
	)
}

// DeleteTag handles DELETE /tags/{id}. Product links are removed in
// the same transaction.
func (trm *TaxonomyRoutesManager) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid tag ID format"), gecho.Send())
		return
	}

	if err := trm.taxonomyService.DeleteTag(r.Context(), id); err != nil {
		handling.RespondError(w, trm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Tag deleted successfully"),
		gecho.Send(),
	)
}

// ListAnalogous handles GET /analogous with name filtering and pagination
func (trm *TaxonomyRoutesManager) ListAnalogous(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := handling.ParsePagination(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid pagination parameters"), gecho.Send())
		return
	}

	page, err := trm.taxonomyService.ListAnalogous(r.Context(), r.URL.Query().Get("name"), limit, offset)
	if err != nil {
		handling.RespondError(w, trm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}

// CreateAnalogous handles POST /analogous
func (trm *TaxonomyRoutesManager) CreateAnalogous(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.TermCreate](r)
	if err != nil {
		trm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, trm.logger, err)
		return
	}

	term, err := trm.taxonomyService.CreateAnalogous(r.Context(), body)
	if err != nil {
		handling.RespondError(w, trm.logger, err)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Analogous color created successfully"),
		gecho.WithData(term),
		gecho.Send(),
	)
}

// DeleteAnalogous handles DELETE /analogous/{id}
func (trm *TaxonomyRoutesManager) DeleteAnalogous(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid analogous ID format"), gecho.Send())
		return
	}

	if err := trm.taxonomyService.DeleteAnalogous(r.Context(), id); err != nil {
		handling.RespondError(w, trm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Analogous color deleted successfully"),
		gecho.Send(),
	)
}

// ListColorRanges handles GET /color-ranges
func (trm *TaxonomyRoutesManager) ListColorRanges(w http.ResponseWriter, r *http.Request) {
	ranges, err := trm.taxonomyService.ListColorRanges(r.Context())
	if err != nil {
		handling.RespondError(w, trm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(ranges),
		gecho.Send(),
	)
}

// ListProductTypes handles GET /product-types
func (trm *TaxonomyRoutesManager) ListProductTypes(w http.ResponseWriter, r *http.Request) {
	types, err := trm.taxonomyService.ListProductTypes(r.Context())
	if err != nil {
		handling.RespondError(w, trm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(types),
		gecho.Send(),
	)
}
