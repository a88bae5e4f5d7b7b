// internal/app/features/authgoogle/signin.go
package authgoogle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/app/system/googleid"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// signInRequest carries the identity assertion plus the optional claimed
// college affiliation.
type signInRequest struct {
	IDToken     string `json:"id_token"`
	AccessToken string `json:"access_token"`
	College     string `json:"college"`
	EmailFormat string `json:"email_format"`
}

// HandleSignIn handles POST /users/google-auth: verify the assertion,
// resolve the account, and issue the session credentials as cookies.
func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "invalid request body"))
		return
	}
	if req.IDToken == "" && req.AccessToken == "" {
		apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Validation, "an identity token is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var claims *googleid.Claims
	var err error
	if req.IDToken != "" {
		claims, err = h.Verifier.VerifyIDToken(ctx, req.IDToken)
	} else {
		claims, err = h.Verifier.VerifyAccessToken(ctx, req.AccessToken)
	}
	if err != nil {
		switch {
		case errors.Is(err, googleid.ErrEmailUnverified):
			apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Authentication, "your email is not verified with the identity provider"))
		case errors.Is(err, googleid.ErrInvalidAssertion):
			apiutil.WriteError(w, h.Log, apiutil.E(apiutil.Authentication, "invalid identity token"))
		default:
			apiutil.WriteError(w, h.Log, err)
		}
		return
	}

	acct, created, err := h.resolver.Resolve(ctx, claims, req.College, req.EmailFormat)
	if err != nil {
		apiutil.WriteError(w, h.Log, err)
		return
	}

	tokens := h.Sessions.Tokens()
	access, err := tokens.MintAccess(&acct)
	if err != nil {
		apiutil.WriteError(w, h.Log, err)
		return
	}
	refresh, err := tokens.MintRefresh(acct.ID)
	if err != nil {
		apiutil.WriteError(w, h.Log, err)
		return
	}
	if err := h.Accounts.UpdateRefreshToken(ctx, acct.ID, refresh); err != nil {
		apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "could not persist session", err))
		return
	}
	tokens.SetAuthCookies(w, access, refresh)

	msg := "signed in successfully"
	if created {
		msg = "account created; complete your registration"
	}
	h.Log.Info("google sign-in",
		zap.String("account_id", acct.ID.Hex()),
		zap.Bool("created", created))
	apiutil.Respond(w, http.StatusOK, acct, msg)
}
