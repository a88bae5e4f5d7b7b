// internal/app/features/societies/toggle.go
package societies

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	organizationstore "github.com/dalemusser/campushub/internal/app/store/organizations"
	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type toggleRequest struct {
	OrgID string `json:"org_id"`
}

type toggleResponse struct {
	Member bool `json:"member"`
}

// HandleToggleMembership handles POST /societies/toggle-membership:
// members leave (losing admin rights), non-members join. The sole
// remaining member may not leave; the society must be dissolved through a
// separate path instead.
func (h *Handler) HandleToggleMembership(w http.ResponseWriter, r *http.Request) {
	acct, _ := auth.CurrentAccount(r)

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "invalid request body"))
		return
	}
	orgID, err := primitive.ObjectIDFromHex(req.OrgID)
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "a valid org_id is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	member, err := h.Orgs.ToggleMembership(ctx, orgID, acct.ID)
	if err != nil {
		switch {
		case errors.Is(err, organizationstore.ErrSoleMember):
			apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Conflict, "the last member cannot leave; dissolve the society instead"))
		case errors.Is(err, organizationstore.ErrOrganizationNotFound):
			apiutil.WriteError(w, h.Log, apiutil.E(apiutil.NotFound, "society not found"))
		default:
			apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "could not toggle membership", err))
		}
		return
	}

	// Mirror onto the account's membership set; degraded on failure.
	var mirrorErr error
	if member {
		mirrorErr = h.Accounts.AddSociety(ctx, acct.ID, orgID)
	} else {
		mirrorErr = h.Accounts.RemoveSociety(ctx, acct.ID, orgID)
	}
	if mirrorErr != nil {
		h.Log.Warn("failed to mirror membership onto account",
			zap.String("org_id", orgID.Hex()),
			zap.String("account_id", acct.ID.Hex()),
			zap.Bool("member", member),
			zap.Error(mirrorErr))
	}

	msg := "left the society"
	if member {
		msg = "joined the society"
	}
	apiutil.Respond(w, http.StatusOK, toggleResponse{Member: member}, msg)
}
