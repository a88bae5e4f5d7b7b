// internal/app/features/events/routes.go
package events

import (
	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the event routes under the base path (typically "/events"
// from bootstrap). Listing is public; creation requires a session (the
// org-admin check happens in the handler).
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Post("/by-org", h.HandleByOrg)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Post("/", h.HandleCreate)
	})

	return r
}
