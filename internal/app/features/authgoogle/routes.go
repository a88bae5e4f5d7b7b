// internal/app/features/authgoogle/routes.go
package authgoogle

import "github.com/go-chi/chi/v5"

// Routes mounts the Google sign-in route (typically under
// "/users/google-auth" from bootstrap). Sign-in is the entry point, so no
// session middleware applies here.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleSignIn)
	return r
}
