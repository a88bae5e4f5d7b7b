// internal/app/features/societies/create.go
package societies

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	collegestore "github.com/dalemusser/campushub/internal/app/store/colleges"
	organizationstore "github.com/dalemusser/campushub/internal/app/store/organizations"
	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/dalemusser/campushub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
	College     string `json:"college"`
}

// HandleCreate handles POST /societies: creates an organization in the
// acting account's college with the founder as sole admin and member.
// The explicit college field is a fallback accepted only when the account
// has no affiliation of its own.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	acct, _ := auth.CurrentAccount(r)

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "invalid request body"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" || req.Description == "" {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "name and description are required"))
		return
	}

	// Creation writes to organizations, colleges, and accounts.
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var collegeID primitive.ObjectID
	switch {
	case acct.CollegeID != nil:
		collegeID = *acct.CollegeID
	case req.College != "":
		college, err := h.Colleges.ResolveNameOrID(ctx, req.College)
		if err != nil {
			if errors.Is(err, collegestore.ErrCollegeNotFound) {
				apiutil.WriteError(w, h.Log, apiutil.E(apiutil.NotFound, "college not found"))
				return
			}
			apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "college lookup failed", err))
			return
		}
		collegeID = college.ID
	default:
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "a college affiliation is required to create a society"))
		return
	}

	org, err := h.Orgs.Create(ctx, models.Organization{
		Name:        req.Name,
		Description: htmlsanitize.Sanitize(req.Description),
		AvatarURL:   req.AvatarURL,
		CollegeID:   collegeID,
	}, acct.ID)
	if err != nil {
		if errors.Is(err, organizationstore.ErrDuplicateOrganization) {
			apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Conflict, "a society with that name already exists in this college"))
			return
		}
		apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "could not create society", err))
		return
	}

	// The organization write is durable; the two cross-reference writes
	// degrade the side effect on failure but never the creation.
	if err := h.Colleges.AddOrg(ctx, collegeID, org.ID); err != nil {
		h.Log.Warn("failed to link society to college",
			zap.String("org_id", org.ID.Hex()),
			zap.String("college_id", collegeID.Hex()),
			zap.Error(err))
	}
	if err := h.Accounts.AddSociety(ctx, acct.ID, org.ID); err != nil {
		h.Log.Warn("failed to link society to founder account",
			zap.String("org_id", org.ID.Hex()),
			zap.String("account_id", acct.ID.Hex()),
			zap.Error(err))
	}

	h.Log.Info("society created",
		zap.String("org_id", org.ID.Hex()),
		zap.String("founder_id", acct.ID.Hex()))
	apiutil.Respond(w, http.StatusCreated, org, "society created")
}
