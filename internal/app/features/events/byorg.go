// internal/app/features/events/byorg.go
package events

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type byOrgRequest struct {
	OrgID string `json:"org_id"`
}

// HandleByOrg handles POST /events/by-org: lists an organization's events
// ordered by start time.
func (h *Handler) HandleByOrg(w http.ResponseWriter, r *http.Request) {
	var req byOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "invalid request body"))
		return
	}
	orgID, err := primitive.ObjectIDFromHex(req.OrgID)
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "a valid org_id is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	events, err := h.Events.ListByOrg(ctx, orgID)
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "could not load events", err))
		return
	}
	apiutil.Respond(w, http.StatusOK, events, "events for the society")
}
