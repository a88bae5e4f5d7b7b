// internal/app/features/users/me.go
package users

import (
	"net/http"

	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/app/system/auth"
)

// HandleMe handles GET /users/me: returns the session's account.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	acct, _ := auth.CurrentAccount(r)
	apiutil.Respond(w, http.StatusOK, acct, "current account")
}
