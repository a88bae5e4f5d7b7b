// internal/app/features/colleges/handler.go
package colleges

import (
	collegestore "github.com/dalemusser/campushub/internal/app/store/colleges"
	organizationstore "github.com/dalemusser/campushub/internal/app/store/organizations"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for college operations.
type Handler struct {
	Colleges *collegestore.Store
	Orgs     *organizationstore.Store
	Log      *zap.Logger
}

// NewHandler constructs the college handler with its collaborators.
func NewHandler(colleges *collegestore.Store, orgs *organizationstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Colleges: colleges, Orgs: orgs, Log: logger}
}
