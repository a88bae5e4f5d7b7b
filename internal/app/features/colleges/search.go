// internal/app/features/colleges/search.go
package colleges

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
)

// HandleSearch handles GET /colleges?search=&page=&page_size=. The page
// has a stable creation order and no total count; callers detect the end
// of results by receiving fewer than page_size items.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	term := q.Get("search")
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	colleges, err := h.Colleges.Search(ctx, term, page, pageSize)
	if err != nil {
		apiutil.WriteError(w, h.Log, apiutil.Wrap(apiutil.Dependency, "could not search colleges", err))
		return
	}
	apiutil.Respond(w, http.StatusOK, colleges, "colleges")
}
