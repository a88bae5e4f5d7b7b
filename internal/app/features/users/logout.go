// internal/app/features/users/logout.go
package users

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
)

// HandleLogout handles POST /users/logout. Logout is best-effort: both
// credential cookies are always cleared and the response is always 200.
// When the caller can still be identified, the stored renewal credential
// is revoked as well; revocation failure degrades the side effect but
// never the logout itself.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if accountID, ok := h.logoutPrincipal(r); ok {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		if err := h.Accounts.ClearRefreshToken(ctx, accountID); err != nil {
			h.Log.Warn("failed to revoke renewal credential",
				zap.String("account_id", accountID.Hex()),
				zap.Error(err))
		}
	}

	h.Sessions.Tokens().ClearAuthCookies(w)
	apiutil.Respond(w, http.StatusOK, nil, "signed out")
}

// logoutPrincipal identifies whose stored renewal credential to revoke.
// The access credential is usually expired by the time a user signs out,
// so the renewal cookie is accepted as identification too.
func (h *Handler) logoutPrincipal(r *http.Request) (primitive.ObjectID, bool) {
	if acct, ok := auth.CurrentAccount(r); ok {
		return acct.ID, true
	}

	c, err := r.Cookie(auth.RefreshCookie)
	if err != nil || c.Value == "" {
		return primitive.NilObjectID, false
	}
	hexID, err := h.Sessions.Tokens().VerifyRefresh(c.Value)
	if err != nil {
		return primitive.NilObjectID, false
	}
	accountID, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return accountID, true
}
