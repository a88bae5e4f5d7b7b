// internal/app/features/health/routes.go
package health

import "github.com/go-chi/chi/v5"

// Routes mounts the health check (typically at "/health" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
