// internal/app/features/events/create.go
package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

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
	OrgID       string    `json:"org_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Mode        string    `json:"mode"`
	Location    string    `json:"location"`
	PosterURL   string    `json:"poster_url"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

// HandleCreate handles POST /events: creates an event under an
// organization. Only the organization's admins may create events, and the
// event must start before it ends. Online events get the fixed location
// "Online".
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	acct, _ := auth.CurrentAccount(r)

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "invalid request body"))
		return
	}
	orgID, err := primitive.ObjectIDFromHex(req.OrgID)
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "a valid org_id is required"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "a name is required"))
		return
	}
	if req.StartsAt.IsZero() || req.EndsAt.IsZero() || !req.StartsAt.Before(req.EndsAt) {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "the event must start before it ends"))
		return
	}

	mode := strings.ToLower(strings.TrimSpace(req.Mode))
	switch mode {
	case models.EventModeOnline:
		req.Location = "Online"
	case models.EventModeOffline:
		if strings.TrimSpace(req.Location) == "" {
			apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "a location is required for offline events"))
			return
		}
	default:
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "mode must be online or offline"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, err := h.Orgs.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, organizationstore.ErrOrganizationNotFound) {
			apiutil.WriteError(w, h.Log, apiutil.E(apiutil.NotFound, "society not found"))
			return
		}
		apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "society lookup failed", err))
		return
	}
	if !org.IsAdmin(acct.ID) {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Authorization, "only society admins can create events"))
		return
	}

	event, err := h.Events.Create(ctx, models.Event{
		Name:        req.Name,
		Description: htmlsanitize.Sanitize(req.Description),
		Mode:        mode,
		Location:    req.Location,
		PosterURL:   req.PosterURL,
		OrgID:       org.ID,
		CollegeID:   org.CollegeID,
		StartsAt:    req.StartsAt.UTC(),
		EndsAt:      req.EndsAt.UTC(),
	})
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "could not create event", err))
		return
	}

	// The event write is durable; the back-reference degrades on failure.
	if err := h.Orgs.AddEvent(ctx, org.ID, event.ID); err != nil {
		h.Log.Warn("failed to link event to society",
			zap.String("event_id", event.ID.Hex()),
			zap.String("org_id", org.ID.Hex()),
			zap.Error(err))
	}

	apiutil.Respond(w, http.StatusCreated, event, "event created")
}
