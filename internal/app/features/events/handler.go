// internal/app/features/events/handler.go
package events

import (
	eventstore "github.com/dalemusser/campushub/internal/app/store/events"
	organizationstore "github.com/dalemusser/campushub/internal/app/store/organizations"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for organization events.
type Handler struct {
	Events *eventstore.Store
	Orgs   *organizationstore.Store
	Log    *zap.Logger
}

// NewHandler constructs the events handler with its collaborators.
func NewHandler(events *eventstore.Store, orgs *organizationstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Events: events, Orgs: orgs, Log: logger}
}
