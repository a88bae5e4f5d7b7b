// internal/app/features/societies/addadmin.go
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

type addAdminRequest struct {
	OrgID     string `json:"org_id"`
	AccountID string `json:"account_id"`
}

// HandleAddAdmin handles POST /societies/add-admin: grants admin rights
// to an account. Only existing admins may grant; the grant implies
// membership, so admin ⊆ member holds by construction. Promoting an
// existing admin is an idempotent success.
func (h *Handler) HandleAddAdmin(w http.ResponseWriter, r *http.Request) {
	acct, _ := auth.CurrentAccount(r)

	var req addAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "invalid request body"))
		return
	}
	orgID, err := primitive.ObjectIDFromHex(req.OrgID)
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "a valid org_id is required"))
		return
	}
	targetID, err := primitive.ObjectIDFromHex(req.AccountID)
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "a valid account_id is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, err := h.Orgs.GetByID(ctx, orgID)
	if err != nil {
		h.writeOrgError(w, err)
		return
	}
	if !org.IsAdmin(acct.ID) {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Authorization, "only society admins can add admins"))
		return
	}

	exists, err := h.Accounts.Exists(ctx, targetID)
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "could not look up account", err))
		return
	}
	if !exists {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.NotFound, "account not found"))
		return
	}

	if err := h.Orgs.AddAdmin(ctx, orgID, targetID); err != nil {
		h.writeOrgError(w, err)
		return
	}

	// Mirror the implied membership onto the account; degraded on failure.
	if err := h.Accounts.AddSociety(ctx, targetID, orgID); err != nil {
		h.Log.Warn("failed to mirror admin membership onto account",
			zap.String("org_id", orgID.Hex()),
			zap.String("account_id", targetID.Hex()),
			zap.Error(err))
	}

	updated, err := h.Orgs.GetByID(ctx, orgID)
	if err != nil {
		h.writeOrgError(w, err)
		return
	}
	apiutil.Respond(w, http.StatusOK, updated, "admin added")
}

func (h *Handler) writeOrgError(w http.ResponseWriter, err error) {
	if errors.Is(err, organizationstore.ErrOrganizationNotFound) {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.NotFound, "society not found"))
		return
	}
	apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "society lookup failed", err))
}
