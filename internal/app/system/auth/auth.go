// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/domain/models"
	"go.uber.org/zap"
)

// AccountFetcher loads fresh account data on each request, so profile
// updates and membership changes take effect immediately. A nil result
// means the account does not exist (or could not be loaded).
type AccountFetcher interface {
	FetchAccount(ctx context.Context, accountID string) *models.Account
}

type ctxKey string

const currentAccountKey ctxKey = "currentAccount"

// SessionManager is the single authorization boundary: it validates the
// access credential carried on a request, loads the account, and exposes
// it to downstream handlers. No operation below this layer re-checks
// session validity.
type SessionManager struct {
	tokens  *TokenManager
	fetcher AccountFetcher
	log     *zap.Logger
}

// NewSessionManager builds the guard around a token manager.
func NewSessionManager(tokens *TokenManager, logger *zap.Logger) *SessionManager {
	return &SessionManager{tokens: tokens, log: logger}
}

// SetAccountFetcher wires the database-backed account loader.
func (sm *SessionManager) SetAccountFetcher(f AccountFetcher) {
	sm.fetcher = f
}

// Tokens returns the underlying token manager (for issuing and logout).
func (sm *SessionManager) Tokens() *TokenManager {
	return sm.tokens
}

// CurrentAccount returns the account placed in context by the guard.
func CurrentAccount(r *http.Request) (*models.Account, bool) {
	a, ok := r.Context().Value(currentAccountKey).(*models.Account)
	return a, ok
}

// WithTestAccount injects an account into the request context, bypassing
// credential verification. Tests only.
func WithTestAccount(r *http.Request, acct *models.Account) *http.Request {
	return withAccount(r, acct)
}

// LoadSessionAccount attaches the account to context when a valid access
// credential is present. Requests without one pass through untouched;
// RequireSignedIn decides whether that matters.
func (sm *SessionManager) LoadSessionAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if acct, authErr := sm.authenticate(r); authErr == nil {
			r = withAccount(r, acct)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn rejects requests without a valid session. The failure
// messages are differentiated so callers can tell a missing credential
// from an expired one from a vanished account.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentAccount(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		acct, authErr := sm.authenticate(r)
		if authErr != nil {
			apiutil.WriteError(w, sm.log, authErr)
			return
		}
		next.ServeHTTP(w, withAccount(r, acct))
	})
}

// authenticate extracts the access credential (cookie preferred, bearer
// header as fallback), verifies it, and loads the account.
func (sm *SessionManager) authenticate(r *http.Request) (*models.Account, *apiutil.Error) {
	token := ""
	if c, err := r.Cookie(AccessCookie); err == nil {
		token = c.Value
	}
	if token == "" {
		if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		}
	}
	if token == "" {
		return nil, apiutil.E(apiutil.Authentication, "authentication required")
	}

	claims, err := sm.tokens.VerifyAccess(token)
	if err != nil {
		return nil, apiutil.Wrap(apiutil.Authentication, "invalid or expired access token", err)
	}

	if sm.fetcher == nil {
		return nil, apiutil.E(apiutil.Authentication, "authentication unavailable")
	}
	// A credential whose account has been deleted no longer names a live
	// principal, so it deliberately fails authentication (401) rather than
	// mapping to a missing resource (404).
	acct := sm.fetcher.FetchAccount(r.Context(), claims.Subject)
	if acct == nil {
		return nil, apiutil.E(apiutil.Authentication, "account not found")
	}
	return acct, nil
}

func withAccount(r *http.Request, acct *models.Account) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentAccountKey, acct))
}
