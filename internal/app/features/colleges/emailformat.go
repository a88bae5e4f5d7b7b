// internal/app/features/colleges/emailformat.go
package colleges

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	collegestore "github.com/dalemusser/campushub/internal/app/store/colleges"
	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
)

type emailFormatRequest struct {
	College     string `json:"college"`
	EmailFormat string `json:"email_format"`
}

// HandleAddEmailFormat handles POST /colleges/email-format: registers an
// accepted email-domain suffix on a college. Re-adding an existing suffix
// is an idempotent success, not an error.
func (h *Handler) HandleAddEmailFormat(w http.ResponseWriter, r *http.Request) {
	var req emailFormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "invalid request body"))
		return
	}
	if strings.TrimSpace(req.College) == "" || strings.TrimSpace(req.EmailFormat) == "" {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "college and email format are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	college, err := h.Colleges.ResolveNameOrID(ctx, req.College)
	if err != nil {
		h.writeCollegeError(w, err)
		return
	}

	if _, err := h.Colleges.AddEmailFormat(ctx, college.ID, req.EmailFormat); err != nil {
		h.writeCollegeError(w, err)
		return
	}

	updated, err := h.Colleges.GetByID(ctx, college.ID)
	if err != nil {
		h.writeCollegeError(w, err)
		return
	}
	apiutil.Respond(w, http.StatusOK, updated, "email format registered")
}

// HandleGetEmailFormats handles GET /colleges/email-format?college=...:
// returns the accepted suffixes for a college.
func (h *Handler) HandleGetEmailFormats(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("college"))
	if name == "" {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "college is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	college, err := h.Colleges.ResolveNameOrID(ctx, name)
	if err != nil {
		h.writeCollegeError(w, err)
		return
	}
	apiutil.Respond(w, http.StatusOK, college.EmailFormats, "accepted email formats")
}

func (h *Handler) writeCollegeError(w http.ResponseWriter, err error) {
	if errors.Is(err, collegestore.ErrCollegeNotFound) {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.NotFound, "college not found"))
		return
	}
	apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "college lookup failed", err))
}
