// internal/app/features/societies/routes.go
package societies

import (
	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the society routes under the base path (typically
// "/societies" from bootstrap). Every route mutates membership state and
// requires a valid session.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Post("/", h.HandleCreate)
		pr.Post("/add-admin", h.HandleAddAdmin)
		pr.Post("/toggle-membership", h.HandleToggleMembership)
	})

	return r
}
