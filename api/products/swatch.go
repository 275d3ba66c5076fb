package products

import (
	"net/http"
	"paintvault_server/handling"
	"paintvault_server/lib"
	"paintvault_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UpsertSwatch handles PUT /products/{id}/swatch. RGB and OKLCH
// coordinates are derived from the hex color when the body omits them.
func (prm *ProductRoutesManager) UpsertSwatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID format"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.SwatchCreate](r)
	if err != nil {
		prm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, prm.logger, err)
		return
	}
	body.ProductID = id.String()

	swatch, err := prm.productService.UpsertSwatch(r.Context(), body)
	if err != nil {
		handling.RespondError(w, prm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Swatch saved successfully"),
		gecho.WithData(swatch),
		gecho.Send(),
	)
}

// DeleteSwatch handles DELETE /products/{id}/swatch
func (prm *ProductRoutesManager) DeleteSwatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID format"), gecho.Send())
		return
	}

	if err := prm.productService.DeleteSwatch(r.Context(), id); err != nil {
		handling.RespondError(w, prm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Swatch deleted successfully"),
		gecho.Send(),
	)
}
