// internal/app/features/users/handler.go
package users

import (
	accountstore "github.com/dalemusser/campushub/internal/app/store/accounts"
	organizationstore "github.com/dalemusser/campushub/internal/app/store/organizations"
	"github.com/dalemusser/campushub/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for account operations.
type Handler struct {
	Accounts *accountstore.Store
	Orgs     *organizationstore.Store
	Sessions *auth.SessionManager
	Log      *zap.Logger
}

// NewHandler constructs the account handler with its collaborators.
func NewHandler(accounts *accountstore.Store, orgs *organizationstore.Store, sessions *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Accounts: accounts, Orgs: orgs, Sessions: sessions, Log: logger}
}
