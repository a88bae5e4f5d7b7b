// internal/app/features/colleges/orgs.go
package colleges

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
)

type collegeOrgsRequest struct {
	College string `json:"college"`
}

// HandleOrgs handles POST /colleges/orgs: lists the organizations
// registered under a college.
func (h *Handler) HandleOrgs(w http.ResponseWriter, r *http.Request) {
	var req collegeOrgsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "invalid request body"))
		return
	}
	if strings.TrimSpace(req.College) == "" {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "college is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	college, err := h.Colleges.ResolveNameOrID(ctx, req.College)
	if err != nil {
		h.writeCollegeError(w, err)
		return
	}

	orgs, err := h.Orgs.ListByCollege(ctx, college.ID)
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "could not load organizations", err))
		return
	}
	apiutil.Respond(w, http.StatusOK, orgs, "organizations for the college")
}
