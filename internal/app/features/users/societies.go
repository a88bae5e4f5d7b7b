// internal/app/features/users/societies.go
package users

import (
	"context"
	"net/http"

	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
)

// HandleSocieties handles GET /users/societies: resolves the account's
// membership references into full organizations.
func (h *Handler) HandleSocieties(w http.ResponseWriter, r *http.Request) {
	acct, _ := auth.CurrentAccount(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	orgs, err := h.Orgs.GetByIDs(ctx, acct.SocietyIDs)
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "could not load societies", err))
		return
	}
	apiutil.Respond(w, http.StatusOK, orgs, "societies for the current account")
}
