package productlines

import (
	"net/http"
	"paintvault_server/handling"
	"paintvault_server/lib"
	"paintvault_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListProductLines handles GET /product-lines with vendor and name
// filtering plus pagination
func (plm *ProductLineRoutesManager) ListProductLines(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := handling.ParsePagination(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid pagination parameters"), gecho.Send())
		return
	}

	var vendorID *uuid.UUID
	if raw := r.URL.Query().Get("vendor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			gecho.BadRequest(w, gecho.WithMessage("Invalid vendor_id format"), gecho.Send())
			return
		}
		vendorID = &id
	}

	name := r.URL.Query().Get("name")
	includeDeleted, err := handling.IncludeDeleted(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid include_deleted parameter"), gecho.Send())
		return
	}

	page, err := plm.productLineService.List(r.Context(), vendorID, name, includeDeleted, limit, offset)
	if err != nil {
		handling.RespondError(w, plm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}

// GetProductLine handles GET /product-lines/{id}
func (plm *ProductLineRoutesManager) GetProductLine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product line ID format"), gecho.Send())
		return
	}

	line, err := plm.productLineService.Get(r.Context(), id)
	if err != nil {
		handling.RespondError(w, plm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(line),
		gecho.Send(),
	)
}

// CreateProductLine handles POST /product-lines
func (plm *ProductLineRoutesManager) CreateProductLine(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ProductLineCreate](r)
	if err != nil {
		plm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, plm.logger, err)
		return
	}

	line, err := plm.productLineService.Create(r.Context(), body)
	if err != nil {
		handling.RespondError(w, plm.logger, err)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Product line created successfully"),
		gecho.WithData(line),
		gecho.Send(),
	)
}

// UpdateProductLine handles PATCH /product-lines/{id}
func (plm *ProductLineRoutesManager) UpdateProductLine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product line ID format"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProductLinePatch](r)
	if err != nil {
		plm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, plm.logger, err)
		return
	}

	line, err := plm.productLineService.Update(r.Context(), id, body)
	if err != nil {
		handling.RespondError(w, plm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product line updated successfully"),
		gecho.WithData(line),
		gecho.Send(),
	)
}

// DeleteProductLine handles DELETE /product-lines/{id}
func (plm *ProductLineRoutesManager) DeleteProductLine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product line ID format"), gecho.Send())
		return
	}

	if err := plm.productLineService.Delete(r.Context(), id); err != nil {
		handling.RespondError(w, plm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product line deleted successfully"),
		gecho.Send(),
	)
}

// RestoreProductLine handles POST /product-lines/{id}/restore
func (plm *ProductLineRoutesManager) RestoreProductLine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product line ID format"), gecho.Send())
		return
	}

	if err := plm.productLineService.Restore(r.Context(), id); err != nil {
		handling.RespondError(w, plm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product line restored successfully"),
		gecho.Send(),
	)
}
