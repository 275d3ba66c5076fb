package variants

import (
	"net/http"
	"paintvault_server/handling"
	"paintvault_server/lib"
	"paintvault_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListVariants handles GET /products/{id}/variants
func (vrm *VariantRoutesManager) ListVariants(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID format"), gecho.Send())
		return
	}

	limit, offset, err := handling.ParsePagination(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid pagination parameters"), gecho.Send())
		return
	}

	includeDeleted, err := handling.IncludeDeleted(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid include_deleted parameter"), gecho.Send())
		return
	}

	page, err := vrm.variantService.List(r.Context(), productID, includeDeleted, limit, offset)
	if err != nil {
		handling.RespondError(w, vrm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}

// GetVariant handles GET /variants/{id}
func (vrm *VariantRoutesManager) GetVariant(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid variant ID format"), gecho.Send())
		return
	}

	variant, err := vrm.variantService.Get(r.Context(), id)
	if err != nil {
		handling.RespondError(w, vrm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(variant),
		gecho.Send(),
	)
}

// CreateVariant handles POST /products/{id}/variants. The locale pair
// in the body must already be registered.
func (vrm *VariantRoutesManager) CreateVariant(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID format"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.VariantCreate](r)
	if err != nil {
		vrm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, vrm.logger, err)
		return
	}
	body.ProductID = productID.String()

	variant, err := vrm.variantService.Create(r.Context(), body)
	if err != nil {
		handling.RespondError(w, vrm.logger, err)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Variant created successfully"),
		gecho.WithData(variant),
		gecho.Send(),
	)
}

// UpdateVariant handles PATCH /variants/{id}
func (vrm *VariantRoutesManager) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid variant ID format"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.VariantPatch](r)
	if err != nil {
		vrm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, vrm.logger, err)
		return
	}

	variant, err := vrm.variantService.Update(r.Context(), id, body)
	if err != nil {
		handling.RespondError(w, vrm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Variant updated successfully"),
		gecho.WithData(variant),
		gecho.Send(),
	)
}

// DeleteVariant handles DELETE /variants/{id}
func (vrm *VariantRoutesManager) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid variant ID format"), gecho.Send())
		return
	}

	if err := vrm.variantService.Delete(r.Context(), id); err != nil {
		handling.RespondError(w, vrm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Variant deleted successfully"),
		gecho.Send(),
	)
}

// RestoreVariant handles POST /variants/{id}/restore
func (vrm *VariantRoutesManager) RestoreVariant(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid variant ID format"), gecho.Send())
		return
	}

	if err := vrm.variantService.Restore(r.Context(), id); err != nil {
		handling.RespondError(w, vrm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Variant restored successfully"),
		gecho.Send(),
	)
}
