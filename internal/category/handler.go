package category

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/trivia-api/internal/config"
)

type Handler struct {
	service CategoryService
}

func NewHandler(s CategoryService) *Handler {
	return &Handler{service: s}
}

// ListCategories godoc
// @Summary      List every category
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} config.ErrorResponse
// @Router       /categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoCategories) {
			config.NotFound(w)
			return
		}
		config.InternalServerError(w)
		return
	}

	config.JSON(w, http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}
