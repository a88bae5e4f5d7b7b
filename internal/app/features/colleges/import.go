// internal/app/features/colleges/import.go
package colleges

import (
	"context"
	"net/http"

	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/app/system/csvutil"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// importResult summarizes one CSV import run.
type importResult struct {
	Imported int               `json:"imported"`
	Failed   int               `json:"failed"`
	Errors   []csvutil.RowError `json:"errors,omitempty"`
}

// HandleImport handles POST /colleges/import: bulk-loads colleges from an
// uploaded CSV ("csv" form field, columns name,location). Rows upsert by
// name, so re-running the same file is safe.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, csvutil.MaxUploadSize)
	if err := r.ParseMultipartForm(csvutil.MaxUploadSize); err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "a CSV file upload is required"))
		return
	}
	file, _, err := r.FormFile("csv")
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "a CSV file upload is required"))
		return
	}
	defer file.Close()

	rows, rowErrs, err := csvutil.PreScanCollegesCSV(file)
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "could not parse CSV"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	result := importResult{Errors: rowErrs, Failed: len(rowErrs)}
	for _, row := range rows {
		if err := h.Colleges.UpsertByName(ctx, row.Name, row.Location); err != nil {
			h.Log.Warn("college import row failed",
				zap.String("name", row.Name),
				zap.Error(err))
			result.Failed++
			continue
		}
		result.Imported++
	}

	h.Log.Info("college import finished",
		zap.Int("imported", result.Imported),
		zap.Int("failed", result.Failed))
	apiutil.Respond(w, http.StatusOK, result, "import finished")
}
