package products

import (
	"net/http"
	"paintvault_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchAllProducts handles GET /products with filtering and pagination
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse query parameters into options
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		prm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	prm.logger.Debug("Fetching products",
		gecho.Field("limit", opts.Limit),
		gecho.Field("offset", opts.Offset),
	)

	page, err := prm.productService.GetAllProducts(ctx, opts)
	if err != nil {
		handling.RespondError(w, prm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /products/{id} to fetch a single product
// with its swatch, variants, and vocabulary relations
func (prm *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID format"), gecho.Send())
		return
	}

	includeDeleted, err := handling.IncludeDeleted(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid include_deleted parameter"), gecho.Send())
		return
	}

	product, err := prm.productService.GetProductByID(r.Context(), id, includeDeleted)
	if err != nil {
		handling.RespondError(w, prm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}

// GetSwatch handles GET /products/{id}/swatch
func (prm *ProductRoutesManager) GetSwatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID format"), gecho.Send())
		return
	}

	swatch, err := prm.productService.GetSwatch(r.Context(), id)
	if err != nil {
		handling.RespondError(w, prm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(swatch),
		gecho.Send(),
	)
}
