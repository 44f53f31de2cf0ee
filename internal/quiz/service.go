package quiz

import (
	"context"

	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/saulo-duarte/trivia-api/internal/question"
	"github.com/sirupsen/logrus"
)

type QuizService interface {
	// NextQuestion returns nil, nil once every candidate has been seen.
	NextQuestion(ctx context.Context, previousQuestions []int, categoryID int) (*question.Question, error)
}

type quizService struct {
	repo question.QuestionRepository
	pick Picker
}

func NewService(repo question.QuestionRepository, pick Picker) QuizService {
	if pick == nil {
		pick = UniformPicker
	}
	return &quizService{
		repo: repo,
		pick: pick,
	}
}

func (s *quizService) NextQuestion(ctx context.Context, previousQuestions []int, categoryID int) (*question.Question, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"category_id":    categoryID,
		"previous_count": len(previousQuestions),
	})

	candidates, err := s.repo.ListExcluding(ctx, previousQuestions, categoryID)
	if err != nil {
		log.WithError(err).Error("Failed to list quiz candidates")
		return nil, err
	}

	next, ok := pickOne(candidates, s.pick)
	if !ok {
		log.Info("No questions left for quiz")
		return nil, nil
	}

	log.WithField("question_id", next.ID).Debug("Quiz question selected")
	return next, nil
}
