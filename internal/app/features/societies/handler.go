// internal/app/features/societies/handler.go
package societies

import (
	accountstore "github.com/dalemusser/campushub/internal/app/store/accounts"
	collegestore "github.com/dalemusser/campushub/internal/app/store/colleges"
	organizationstore "github.com/dalemusser/campushub/internal/app/store/organizations"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for organization membership.
type Handler struct {
	Accounts *accountstore.Store
	Colleges *collegestore.Store
	Orgs     *organizationstore.Store
	Log      *zap.Logger
}

// NewHandler constructs the societies handler with its collaborators.
func NewHandler(accounts *accountstore.Store, colleges *collegestore.Store, orgs *organizationstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Accounts: accounts, Colleges: colleges, Orgs: orgs, Log: logger}
}
