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

// CreateProduct handles POST /products
func (prm *ProductRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ProductCreate](r)
	if err != nil {
		prm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, prm.logger, err)
		return
	}

	product, err := prm.productService.CreateProduct(r.Context(), body)
	if err != nil {
		handling.RespondError(w, prm.logger, err)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Product created successfully"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

// UpdateProduct handles PATCH /products/{id}
func (prm *ProductRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID format"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProductPatch](r)
	if err != nil {
		prm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, prm.logger, err)
		return
	}

	product, err := prm.productService.UpdateProduct(r.Context(), id, body)
	if err != nil {
		handling.RespondError(w, prm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated successfully"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

// DeleteProduct handles DELETE /products/{id}. Variants are soft
// deleted along with the product.
func (prm *ProductRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID format"), gecho.Send())
		return
	}

	if err := prm.productService.DeleteProduct(r.Context(), id); err != nil {
		handling.RespondError(w, prm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted successfully"),
		gecho.Send(),
	)
}

// RestoreProduct handles POST /products/{id}/restore
func (prm *ProductRoutesManager) RestoreProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID format"), gecho.Send())
		return
	}

	if err := prm.productService.RestoreProduct(r.Context(), id); err != nil {
		handling.RespondError(w, prm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product restored successfully"),
		gecho.Send(),
	)
}

// AttachTag handles POST /products/{id}/tags. The tag is created on
// first use and linked to the product.
func (prm *ProductRoutesManager) AttachTag(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID format"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.TermCreate](r)
	if err != nil {
		prm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, prm.logger, err)
		return
	}

	if err := prm.productService.AttachTag(r.Context(), id, body.Name); err != nil {
		handling.RespondError(w, prm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Tag attached successfully"),
		gecho.Send(),
	)
}
