// internal/app/features/colleges/routes.go
package colleges

import (
	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the college routes under the base path (typically
// "/colleges" from bootstrap). Search and lookups are public so the
// sign-in screen can offer college selection; the importer requires a
// session.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleSearch)
	r.Post("/email-format", h.HandleAddEmailFormat)
	r.Get("/email-format", h.HandleGetEmailFormats)
	r.Post("/orgs", h.HandleOrgs)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Post("/import", h.HandleImport)
	})

	return r
}
