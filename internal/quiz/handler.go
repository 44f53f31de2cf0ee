package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/saulo-duarte/trivia-api/internal/question"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

// PlayQuiz godoc
// @Summary      Get a random question that has not been played yet
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body PlayQuizDTO true "Previous questions and category (id 0 = all)"
// @Success      200 {object} PlayQuizResponse
// @Failure      400 {object} config.ErrorResponse
// @Router       /quizzes [post]
func (h *Handler) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto PlayQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body to play quiz")
		config.BadRequest(w)
		return
	}
	if err := config.Validate(dto); err != nil {
		log.WithError(err).Warn("Quiz payload failed validation")
		config.BadRequest(w)
		return
	}

	next, err := h.service.NextQuestion(r.Context(), dto.PreviousQuestions, dto.QuizCategory.ID.Int())
	if err != nil {
		config.InternalServerError(w)
		return
	}

	resp := PlayQuizResponse{Success: true}
	if next != nil {
		formatted := question.ToResponse(next)
		resp.Question = &formatted
	}

	config.JSON(w, http.StatusOK, resp)
}
