// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	accountstore "github.com/dalemusser/campushub/internal/app/store/accounts"
	collegestore "github.com/dalemusser/campushub/internal/app/store/colleges"
	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/dalemusser/campushub/internal/app/system/googleid"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Google sign-in.
type Handler struct {
	Verifier googleid.Verifier
	Accounts *accountstore.Store
	Colleges *collegestore.Store
	Sessions *auth.SessionManager
	Log      *zap.Logger

	resolver *Resolver
}

// NewHandler constructs the sign-in handler with its collaborators.
func NewHandler(verifier googleid.Verifier, accounts *accountstore.Store, colleges *collegestore.Store, sessions *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Verifier: verifier,
		Accounts: accounts,
		Colleges: colleges,
		Sessions: sessions,
		Log:      logger,
		resolver: NewResolver(accounts, colleges, logger),
	}
}
