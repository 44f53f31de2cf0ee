package question

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/trivia-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListQuestions)
	r.Post("/search", h.SearchQuestions)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Post("/", h.CreateQuestion)
		r.Delete("/{id}", h.DeleteQuestion)
	})
	return r
}
