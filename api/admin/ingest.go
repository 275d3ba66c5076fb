package admin

import (
	"errors"
	"io"
	"net/http"
	"os"
	"paintvault_server/handling"
	"paintvault_server/lib"
	"paintvault_server/services"

	"github.com/MonkyMars/gecho"
)

type ingestRequest struct {
	// File or directory of vendor dumps. Defaults to the configured
	// dump directory when empty.
	Path string `json:"path,omitempty"`
}

// RunIngest handles POST /admin/ingest. Each vendor document runs in
// its own transaction, so one bad vendor never blocks the rest.
func (arm *AdminRoutesManager) RunIngest(w http.ResponseWriter, r *http.Request) {
	// An empty body means "use the configured dump directory"
	body, err := lib.ExtractAndValidateBody[ingestRequest](r)
	if err != nil && !errors.Is(err, io.EOF) {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		handling.RespondError(w, arm.logger, err)
		return
	}

	var path string
	if body != nil {
		path = body.Path
	}
	if path == "" {
		path = arm.cfg.Ingest.DumpDir
	}

	info, err := os.Stat(path)
	if err != nil {
		arm.logger.Warn("Ingest path not found", gecho.Field("path", path), gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Ingest path does not exist"), gecho.Send())
		return
	}

	var results []services.IngestResult
	if info.IsDir() {
		results, err = arm.ingestService.IngestDir(r.Context(), path)
	} else {
		results, err = arm.ingestService.IngestFile(r.Context(), path)
	}
	if err != nil {
		handling.RespondError(w, arm.logger, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Ingest completed"),
		gecho.WithData(results),
		gecho.Send(),
	)
}
