package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/sections", h.ListSections)
	r.Get("/sections/{category}", h.GetSection)
	r.Post("/ask", h.Ask)
	r.Post("/{category}", h.FetchTopic)
	r.Get("/{category}/panel", h.GetPanel)
	return r
}
