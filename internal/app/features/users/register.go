// internal/app/features/users/register.go
package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	accountstore "github.com/dalemusser/campushub/internal/app/store/accounts"
	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type registerRequest struct {
	FullName    string `json:"full_name"`
	Handle      string `json:"handle"`
	Department  string `json:"department"`
	LevelOrYear string `json:"level_or_year"`
}

// HandleRegister handles POST /users/register: completes the profile and
// marks the account fully registered.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	acct, _ := auth.CurrentAccount(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "invalid request body"))
		return
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Handle = strings.TrimSpace(req.Handle)
	if req.FullName == "" || req.Handle == "" {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "full name and handle are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	taken, err := h.Accounts.HandleExistsForOther(ctx, req.Handle, acct.ID)
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "could not check handle", err))
		return
	}
	if taken {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Conflict, "that handle is already taken"))
		return
	}

	updated, err := h.Accounts.CompleteRegistration(ctx, acct.ID, req.FullName, req.Handle, req.Department, req.LevelOrYear)
	if err != nil {
		// The pre-check races with other registrations; the unique index
		// is the authority.
		if errors.Is(err, accountstore.ErrDuplicateHandle) {
			apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Conflict, "that handle is already taken"))
			return
		}
		apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "could not complete registration", err))
		return
	}

	h.Log.Info("registration completed", zap.String("account_id", acct.ID.Hex()))
	apiutil.Respond(w, http.StatusOK, updated, "registration completed")
}
