package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/trivia-api/internal/auth"
	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service     QuestionService
	defaultSize int
}

func NewHandler(s QuestionService, questionsPerPage int) *Handler {
	if questionsPerPage <= 0 {
		questionsPerPage = 10
	}
	return &Handler{service: s, defaultSize: questionsPerPage}
}

func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return fallback
	}
	return v
}

// requestLogger adds the caller's user id when the request went through AuthMiddleware.
func requestLogger(r *http.Request) logrus.FieldLogger {
	log := config.WithContext(r.Context())
	if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
		return log.WithField("user_id", claims.UserID)
	}
	return log
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		config.BadRequest(w)
	case errors.Is(err, ErrQuestionNotFound), errors.Is(err, ErrPageNotFound):
		config.NotFound(w)
	default:
		config.InternalServerError(w)
	}
}

// ListQuestions godoc
// @Summary      List questions one page at a time
// @Tags         questions
// @Produce      json
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200 {object} QuestionPageResponse
// @Failure      404 {object} config.ErrorResponse
// @Router       /questions [get]
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", h.defaultSize)

	result, err := h.service.ListQuestions(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, QuestionPageResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		Categories:      result.Categories,
		CurrentCategory: nil,
	})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionDTO true "Question data"
// @Success      200 {object} CreateQuestionResponse
// @Failure      400 {object} config.ErrorResponse
// @Router       /questions [post]
func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)

	var dto CreateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body to create question")
		config.BadRequest(w)
		return
	}
	if err := config.Validate(dto); err != nil {
		log.WithError(err).Warn("Question payload failed validation")
		config.BadRequest(w)
		return
	}

	q, err := h.service.CreateQuestion(r.Context(), dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, CreateQuestionResponse{
		Success: true,
		Created: q.ID,
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeleteQuestionResponse
// @Failure      400 {object} config.ErrorResponse
// @Failure      404 {object} config.ErrorResponse
// @Router       /questions/{id} [delete]
func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "id")

	if err := h.service.DeleteQuestion(r.Context(), questionID); err != nil {
		writeServiceError(w, err)
		return
	}
	requestLogger(r).WithField("question_id", questionID).Info("Question removed")

	config.JSON(w, http.StatusOK, DeleteQuestionResponse{
		Success: true,
		Deleted: questionID,
	})
}

// SearchQuestions godoc
// @Summary      Search questions by a case-insensitive substring
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchQuestionsDTO true "Search term"
// @Success      200 {object} QuestionListResponse
// @Failure      400 {object} config.ErrorResponse
// @Router       /questions/search [post]
func (h *Handler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SearchQuestionsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body to search questions")
		config.BadRequest(w)
		return
	}
	if err := config.Validate(dto); err != nil {
		log.WithError(err).Warn("Search payload failed validation")
		config.BadRequest(w)
		return
	}

	questions, err := h.service.SearchQuestions(r.Context(), *dto.Query)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
	})
}

// ListQuestionsByCategory godoc
// @Summary      List the questions of a category
// @Tags         categories
// @Produce      json
// @Param        categoryId path int true "Category ID"
// @Success      200 {object} QuestionListResponse
// @Failure      400 {object} config.ErrorResponse
// @Router       /categories/{categoryId}/questions [get]
func (h *Handler) ListQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")

	questions, err := h.service.ListQuestionsByCategory(r.Context(), categoryID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: &categoryID,
	})
}
