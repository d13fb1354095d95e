package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/hikma-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.StartQuiz)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/{id}", h.GetQuiz)
		r.Delete("/{id}", h.EndQuiz)
		r.Post("/{id}/name", h.SubmitName)
		r.Post("/{id}/answer", h.SubmitAnswer)
		r.Post("/{id}/next", h.NextQuestion)
		r.Post("/{id}/restart", h.RestartQuiz)
		r.Get("/{id}/certificate", h.GetCertificate)
	})
	return r
}

func CertificateRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)
	r.Use(auth.RequireRole(auth.RoleStaff))

	r.Get("/", h.ListCertificates)
	return r
}
