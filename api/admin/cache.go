package admin

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ClearCache handles POST /admin/cache/clear
func (arm *AdminRoutesManager) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := arm.cacheService.ClearAll(); err != nil {
		arm.logger.Error("Failed to clear cache", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to clear cache"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cache cleared"),
		gecho.Send(),
	)
}

// CacheStats handles GET /admin/cache/stats
func (arm *AdminRoutesManager) CacheStats(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(arm.cacheService.GetConnectionStats()),
		gecho.Send(),
	)
}
