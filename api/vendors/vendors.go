package vendors

import (
	"net/http"
	"paintvault_server/handling"
	"paintvault_server/lib"
	"paintvault_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListVendors handles GET /vendors with name, platform and slug filtering
func (vrm *VendorRoutesManager) ListVendors(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := handling.ParsePagination(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid pagination parameters"), gecho.Send())
		return
	}

	name := r.URL.Query().Get("name")
	platform := r.URL.Query().Get("platform")
	slug := r.URL.Query().Get("slug")
	includeDeleted, err := handling.IncludeDeleted(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid include_deleted parameter"), gecho.Send())
		return
	}

	page, err := vrm.vendorService.List(r.Context(), name, platform, slug, includeDeleted, limit, offset)
	if err != nil {
		handling.RespondError(w, vrm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}

// GetVendor handles GET /vendors/{id}
func (vrm *VendorRoutesManager) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid vendor ID format"), gecho.Send())
		return
	}

	vendor, err := vrm.vendorService.Get(r.Context(), id)
	if err != nil {
		handling.RespondError(w, vrm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(vendor),
		gecho.Send(),
	)
}

// CreateVendor handles POST /vendors
func (vrm *VendorRoutesManager) CreateVendor(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.VendorCreate](r)
	if err != nil {
		vrm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, vrm.logger, err)
		return
	}

	vendor, err := vrm.vendorService.Create(r.Context(), body)
	if err != nil {
		handling.RespondError(w, vrm.logger, err)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Vendor created successfully"),
		gecho.WithData(vendor),
		gecho.Send(),
	)
}

// UpdateVendor handles PATCH /vendors/{id}
func (vrm *VendorRoutesManager) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid vendor ID format"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.VendorPatch](r)
	if err != nil {
		vrm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, vrm.logger, err)
		return
	}

	vendor, err := vrm.vendorService.Update(r.Context(), id, body)
	if err != nil {
		handling.RespondError(w, vrm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Vendor updated successfully"),
		gecho.WithData(vendor),
		gecho.Send(),
	)
}

// DeleteVendor handles DELETE /vendors/{id}. The row is soft deleted
// and disappears from default listings.
func (vrm *VendorRoutesManager) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid vendor ID format"), gecho.Send())
		return
	}

	if err := vrm.vendorService.Delete(r.Context(), id); err != nil {
		handling.RespondError(w, vrm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Vendor deleted successfully"),
		gecho.Send(),
	)
}

// RestoreVendor handles POST /vendors/{id}/restore
func (vrm *VendorRoutesManager) RestoreVendor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid vendor ID format"), gecho.Send())
		return
	}

	if err := vrm.vendorService.Restore(r.Context(), id); err != nil {
		handling.RespondError(w, vrm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Vendor restored successfully"),
		gecho.Send(),
	)
}
