// internal/app/features/users/routes.go
package users

import (
	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the account routes under the base path (typically
// "/users" from bootstrap).
//
// Logout sits outside the signed-in group: the access credential is
// short-lived and is usually expired by the time someone signs out, and
// a logout that 401s would leave live cookies behind.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Post("/logout", h.HandleLogout)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Post("/register", h.HandleRegister)
		pr.Get("/me", h.HandleMe)
		pr.Get("/societies", h.HandleSocieties)
	})

	return r
}
