package question

import (
	"github.com/saulo-duarte/trivia-api/internal/category"
	"gorm.io/gorm"
)

type QuestionContainer struct {
	Handler *Handler
	Repo    QuestionRepository
}

func NewQuestionContainer(db *gorm.DB, categoryRepo category.CategoryRepository, questionsPerPage int) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(repo, categoryRepo)
	handler := NewHandler(service, questionsPerPage)

	return &QuestionContainer{
		Handler: handler,
		Repo:    repo,
	}
}
